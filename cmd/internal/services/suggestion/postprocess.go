package suggestion

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/zhukovvlad/fittings-go/cmd/internal/item"
	"github.com/zhukovvlad/fittings-go/cmd/internal/services/labels"
	"github.com/zhukovvlad/fittings-go/cmd/internal/util"
)

func (e *Engine) postProcess(col item.Column, values []any, freeEntry bool, locale string) []Candidate {
	switch {
	case col.IsDiameter():
		out := numericCandidates(values, diameterLabel)
		if freeEntry {
			out = append([]Candidate{{
				Label:      e.translator.Translate("free_entry", locale),
				Group:      GroupFreeEntry,
				GroupLabel: e.translator.Translate("free_entry", locale),
			}}, out...)
		}
		return out
	case col.IsThickness():
		return numericCandidates(values, labels.FormatDecimal)
	case col == item.ColumnMaterial:
		return e.materialCandidates(values, locale)
	}
	return []Candidate{}
}

// numericCandidates сортирует числовые значения по возрастанию.
func numericCandidates(values []any, label func(float64) string) []Candidate {
	nums := make([]float64, 0, len(values))
	for _, v := range values {
		f, ok := util.ToFloat(v)
		if !ok {
			continue
		}
		if slices.ContainsFunc(nums, func(seen float64) bool { return util.ApproxEqual(seen, f) }) {
			continue
		}
		nums = append(nums, f)
	}
	slices.Sort(nums)

	out := make([]Candidate, 0, len(nums))
	for _, f := range nums {
		out = append(out, Candidate{Label: label(f), Value: f})
	}
	return out
}

// diameterLabel: "DN100 (114,3)" для диаметров из таблицы, иначе число.
func diameterLabel(outer float64) string {
	if d, ok := item.LookupDiameter(outer); ok {
		return fmt.Sprintf("%s (%s)", d.Name(), labels.FormatDecimal(d.Outer))
	}
	return labels.FormatDecimal(outer)
}

// materialCandidates раскрывает группы материалов в марки и группирует марки по группам:
// сначала N по возрастанию, затем S по убыванию.
func (e *Engine) materialCandidates(values []any, locale string) []Candidate {
	byType := make(map[item.MaterialType][]string)
	add := func(mt item.MaterialType, grade string) {
		if !slices.Contains(byType[mt], grade) {
			byType[mt] = append(byType[mt], grade)
		}
	}
	for _, v := range values {
		s, ok := v.(string)
		if !ok {
			continue
		}
		if mt, ok := item.ParseMaterialType(s); ok {
			for _, g := range item.GradesOf(mt) {
				add(mt, g)
			}
			continue
		}
		if mt, ok := item.MaterialTypeOf(s); ok {
			add(mt, s)
		}
	}

	var out []Candidate
	for _, mt := range item.MaterialTypes() {
		grades := byType[mt]
		if mt == item.MaterialTypeS {
			item.SortGradesDesc(grades)
		} else {
			slices.SortFunc(grades, cmp.Compare[string])
		}
		groupLabel := e.translator.Translate(labels.MaterialTypeKey(string(mt)), locale)
		for _, g := range grades {
			out = append(out, Candidate{Label: g, Value: g, Group: string(mt), GroupLabel: groupLabel})
		}
	}
	if out == nil {
		return []Candidate{}
	}
	return out
}
