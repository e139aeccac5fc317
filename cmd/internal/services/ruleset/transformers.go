package ruleset

import (
	"strconv"

	"github.com/zhukovvlad/fittings-go/cmd/internal/item"
)

// MaterialTypeTransformer приводит марку материала к группе N/S.
// Группа остаётся группой, неизвестная марка возвращается как есть и ни с чем не совпадёт.
func MaterialTypeTransformer(value any) any {
	s, ok := value.(string)
	if !ok {
		return value
	}
	if t, ok := item.ResolveMaterialType(s); ok {
		return string(t)
	}
	return s
}

// TypeIDAlias направляет поиск в группу справочника другого кода типа.
func TypeIDAlias(code int) Transformer {
	target := strconv.Itoa(code)
	return func(value any) any {
		if value == nil {
			return nil
		}
		return target
	}
}

// ScaleWeight возвращает пересчёт веса с постоянным коэффициентом.
func ScaleWeight(factor float64) func(float64) float64 {
	return func(w float64) float64 { return w * factor }
}

// DefaultTransformers используются, когда правило ещё не выбрано (typeId не задан).
var DefaultTransformers = map[item.Column]Transformer{
	item.ColumnMaterial: MaterialTypeTransformer,
}
