package item

import (
	"slices"
)

// MaterialType - укрупнённая группа материала.
type MaterialType string

const (
	// MaterialTypeN - углеродистая и низколегированная сталь.
	MaterialTypeN MaterialType = "N"
	// MaterialTypeS - нержавеющая сталь.
	MaterialTypeS MaterialType = "S"
)

// Material - марка материала из справочника.
type Material struct {
	Grade string
	Type  MaterialType
}

// Марки материалов, которые принимает расчёт. Порядок - порядок вывода в подсказках.
var materials = []Material{
	{Grade: "P235GH", Type: MaterialTypeN},
	{Grade: "P265GH", Type: MaterialTypeN},
	{Grade: "16MO3", Type: MaterialTypeN},
	{Grade: "1.4301", Type: MaterialTypeS},
	{Grade: "1.4571", Type: MaterialTypeS},
}

// BaselineGrade - базовая марка, для неё надбавка за материал равна 1.
const BaselineGrade = "P235GH"

// MaterialTypes возвращает группы материалов в порядке вывода.
func MaterialTypes() []MaterialType {
	return []MaterialType{MaterialTypeN, MaterialTypeS}
}

// ParseMaterialType распознаёт обозначение группы ("N", "S").
func ParseMaterialType(s string) (MaterialType, bool) {
	switch MaterialType(s) {
	case MaterialTypeN, MaterialTypeS:
		return MaterialType(s), true
	}
	return "", false
}

// MaterialTypeOf возвращает группу для марки материала.
func MaterialTypeOf(grade string) (MaterialType, bool) {
	for _, m := range materials {
		if m.Grade == grade {
			return m.Type, true
		}
	}
	return "", false
}

// IsKnownGrade сообщает, есть ли марка в справочнике.
func IsKnownGrade(grade string) bool {
	_, ok := MaterialTypeOf(grade)
	return ok
}

// Grades возвращает все марки в порядке справочника.
func Grades() []string {
	out := make([]string, 0, len(materials))
	for _, m := range materials {
		out = append(out, m.Grade)
	}
	return out
}

// GradesOf возвращает марки группы в порядке справочника.
func GradesOf(t MaterialType) []string {
	var out []string
	for _, m := range materials {
		if m.Type == t {
			out = append(out, m.Grade)
		}
	}
	return out
}

// IsStainless - марка относится к нержавеющим сталям.
func IsStainless(grade string) bool {
	t, ok := MaterialTypeOf(grade)
	return ok && t == MaterialTypeS
}

// ResolveMaterialType принимает либо марку, либо обозначение группы.
func ResolveMaterialType(value string) (MaterialType, bool) {
	if t, ok := ParseMaterialType(value); ok {
		return t, true
	}
	return MaterialTypeOf(value)
}

// SortGradesDesc сортирует марки по убыванию ключа.
func SortGradesDesc(grades []string) {
	slices.Sort(grades)
	slices.Reverse(grades)
}
