package ruleset

import (
	"fmt"

	"github.com/zhukovvlad/fittings-go/cmd/internal/item"
	"github.com/zhukovvlad/fittings-go/cmd/internal/services/apierrors"
)

// Погонная масса стальной трубы, кг/м: k * s * (D - s).
const (
	pipeMassFactorN = 0.02466
	pipeMassFactorS = 0.02491
)

var pipeRule = &CustomRule{
	Name:         "pipe",
	CustomWeight: pipeWeight,
	Standard:     pipeStandard,
	Options:      pipeOptions,
	FreeEntry:    []item.Column{item.ColumnDN1},
}

// isWeldedPipe: десятки кода 1 - сварная труба (1010), иначе бесшовная (1000).
func isWeldedPipe(code int) bool {
	return (code/10)%10 == 1
}

func pipeMaterialType(it *item.PipeFittingItem) (item.MaterialType, error) {
	grade := it.MaterialGrade()
	mt, ok := item.MaterialTypeOf(grade)
	if !ok {
		return "", fmt.Errorf("%w: %q", apierrors.ErrMaterialNotFound, grade)
	}
	return mt, nil
}

// pipeWeight - масса одного погонного метра трубы.
func pipeWeight(it *item.PipeFittingItem) (float64, error) {
	dn, okD := it.Float(item.ColumnDN1)
	s, okS := it.Float(item.ColumnS1)
	if !okD || !okS {
		return 0, fmt.Errorf("%w: для трубы нужны dn1 и s1", apierrors.ErrItemIncomplete)
	}
	mt, err := pipeMaterialType(it)
	if err != nil {
		return 0, err
	}
	k := pipeMassFactorN
	if mt == item.MaterialTypeS {
		k = pipeMassFactorS
	}
	return k * s * (dn - s), nil
}

func pipeStandard(it *item.PipeFittingItem) (string, error) {
	code, err := it.TypeCode()
	if err != nil {
		return "", err
	}
	mt, err := pipeMaterialType(it)
	if err != nil {
		return "", err
	}
	welded := isWeldedPipe(code)
	switch {
	case mt == item.MaterialTypeN && !welded:
		return "EN 10216-2", nil
	case mt == item.MaterialTypeN && welded:
		return "EN 10217-2", nil
	case mt == item.MaterialTypeS && !welded:
		return "EN 10216-5", nil
	default:
		return "EN 10217-7", nil
	}
}

// pipeOptions - предопределённые значения полей трубы для подсказок.
func pipeOptions(it *item.PipeFittingItem, col item.Column) []any {
	code, err := it.TypeCode()
	if err != nil {
		return nil
	}
	mt, hasMaterial := item.MaterialTypeOf(it.MaterialGrade())

	switch col {
	case item.ColumnMaterial:
		out := make([]any, 0)
		for _, g := range item.Grades() {
			out = append(out, g)
		}
		return out

	case item.ColumnDN1:
		out := make([]any, 0)
		for _, d := range item.NominalDiameters() {
			if hasMaterial {
				if _, ok := FindThicknessRange(d.Outer, code, mt); !ok {
					continue
				}
			} else if !hasAnyThicknessRange(d.Outer, code) {
				continue
			}
			out = append(out, d.Outer)
		}
		return out

	case item.ColumnS1:
		dn, hasDN := it.Float(item.ColumnDN1)
		out := make([]any, 0)
		if !hasDN || !hasMaterial {
			for _, s := range wallThicknessSeries {
				out = append(out, s)
			}
			return out
		}
		r, ok := FindThicknessRange(dn, code, mt)
		if !ok {
			return out
		}
		for _, s := range wallThicknessSeries {
			if r.Contains(s) {
				out = append(out, s)
			}
		}
		return out
	}
	return nil
}
