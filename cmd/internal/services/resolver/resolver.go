package resolver

import (
	"fmt"
	"slices"
	"strings"

	"github.com/zhukovvlad/fittings-go/cmd/internal/item"
	"github.com/zhukovvlad/fittings-go/cmd/internal/services/apierrors"
	"github.com/zhukovvlad/fittings-go/cmd/internal/services/dataset"
	"github.com/zhukovvlad/fittings-go/cmd/internal/services/ruleset"
	"github.com/zhukovvlad/fittings-go/cmd/internal/util"
	"github.com/zhukovvlad/fittings-go/cmd/pkg/logging"
)

// Resolver определяет вес и стандарт позиции: по формуле или поиском в справочнике.
type Resolver struct {
	dispatcher *ruleset.Dispatcher
	dataset    *dataset.Dataset
	logger     *logging.Logger
}

// NewResolver создает новый экземпляр Resolver
func NewResolver(dispatcher *ruleset.Dispatcher, ds *dataset.Dataset, logger *logging.Logger) *Resolver {
	return &Resolver{
		dispatcher: dispatcher,
		dataset:    ds,
		logger:     logger,
	}
}

// ResolveWeight возвращает массу одной единицы позиции, кг.
func (r *Resolver) ResolveWeight(it *item.PipeFittingItem) (float64, error) {
	rs, err := r.dispatcher.Resolve(it)
	if err != nil {
		return 0, err
	}

	switch rule := rs.(type) {
	case *ruleset.CustomRule:
		return rule.CustomWeight(it)
	case *ruleset.LookupRule:
		match, err := r.FindMatch(it, rule)
		if err != nil {
			return 0, err
		}
		if match.Attributes.Weight == nil {
			return 0, fmt.Errorf("%w: у записи справочника нет веса", apierrors.ErrPipeFittingNotFound)
		}
		weight := *match.Attributes.Weight
		if rule.WeightTransformer != nil {
			weight = rule.WeightTransformer(weight)
		}
		return weight, nil
	}
	return 0, fmt.Errorf("%w: неизвестный вид правила %T", apierrors.ErrRulesetNotFound, rs)
}

// ResolveStandard возвращает стандарт позиции; nil - стандарт не определён.
func (r *Resolver) ResolveStandard(it *item.PipeFittingItem) (*string, error) {
	rs, err := r.dispatcher.Resolve(it)
	if err != nil {
		return nil, err
	}

	switch rule := rs.(type) {
	case *ruleset.CustomRule:
		if rule.Standard == nil {
			return nil, nil
		}
		standard, err := rule.Standard(it)
		if err != nil {
			return nil, err
		}
		return util.NilIfEmpty(standard), nil
	case *ruleset.LookupRule:
		match, err := r.FindMatch(it, rule)
		if err != nil {
			return nil, err
		}
		if match.Attributes.Standard == nil {
			return nil, nil
		}
		standard := *match.Attributes.Standard
		return &standard, nil
	}
	return nil, fmt.Errorf("%w: неизвестный вид правила %T", apierrors.ErrRulesetNotFound, rs)
}

// FindMatch ищет единственную запись справочника, совпадающую с позицией по всем значимым полям.
func (r *Resolver) FindMatch(it *item.PipeFittingItem, rule *ruleset.LookupRule) (*item.PipeFittingItem, error) {
	matches, err := r.Matches(it, rule, "")
	if err != nil {
		return nil, err
	}
	switch len(matches) {
	case 0:
		r.logger.Debugf("Нет записи справочника для %s", describe(it))
		return nil, fmt.Errorf("%w: %s", apierrors.ErrPipeFittingNotFound, describe(it))
	case 1:
		return matches[0], nil
	default:
		r.logger.Warnf("Найдено %d записей справочника для %s", len(matches), describe(it))
		return nil, fmt.Errorf("%w: %d записей для %s", apierrors.ErrPipeFittingAmbiguous, len(matches), describe(it))
	}
}

// Matches возвращает записи группы позиции, совпадающие по значимым полям до upTo (не включая).
// Пустой upTo - все значимые поля.
func (r *Resolver) Matches(it *item.PipeFittingItem, rule *ruleset.LookupRule, upTo item.Column) ([]*item.PipeFittingItem, error) {
	code, err := rule.GroupCode(it)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apierrors.ErrRulesetNotFound, err)
	}
	return Filter(r.dataset.Group(code), it, MatchColumns(it, upTo), rule.Transform), nil
}

// MatchColumns - значимые поля позиции до upTo, без количества.
func MatchColumns(it *item.PipeFittingItem, upTo item.Column) []item.Column {
	cols := it.RelevantColumns()
	if upTo != "" {
		cols = item.ColumnsBefore(cols, upTo)
	}
	return slices.DeleteFunc(slices.Clone(cols), func(c item.Column) bool {
		return c == item.ColumnQuantity
	})
}

// Filter оставляет строки, у которых значения полей совпадают с позицией после преобразования.
// Незаполненные поля позиции не ограничивают выборку.
func Filter(
	rows []*item.PipeFittingItem,
	it *item.PipeFittingItem,
	columns []item.Column,
	transform func(col item.Column, value any) any,
) []*item.PipeFittingItem {
	var out []*item.PipeFittingItem
	for _, row := range rows {
		if rowMatches(row, it, columns, transform) {
			out = append(out, row)
		}
	}
	return out
}

func rowMatches(row, it *item.PipeFittingItem, columns []item.Column, transform func(item.Column, any) any) bool {
	for _, col := range columns {
		want := it.Get(col)
		if want == nil {
			continue
		}
		if !util.SafeEquals(transform(col, want), transform(col, row.Get(col))) {
			return false
		}
	}
	return true
}

func describe(it *item.PipeFittingItem) string {
	parts := []string{"typeId " + it.TypeID}
	for _, col := range MatchColumns(it, "") {
		if col == item.ColumnTypeID {
			continue
		}
		if v := it.Get(col); v != nil {
			parts = append(parts, fmt.Sprintf("%s=%v", col, v))
		}
	}
	return strings.Join(parts, ", ")
}
