package suggestion

import (
	"fmt"
	"slices"
	"strconv"

	"github.com/zhukovvlad/fittings-go/cmd/internal/item"
	"github.com/zhukovvlad/fittings-go/cmd/internal/metrics"
	"github.com/zhukovvlad/fittings-go/cmd/internal/services/apierrors"
	"github.com/zhukovvlad/fittings-go/cmd/internal/services/dataset"
	"github.com/zhukovvlad/fittings-go/cmd/internal/services/labels"
	"github.com/zhukovvlad/fittings-go/cmd/internal/services/resolver"
	"github.com/zhukovvlad/fittings-go/cmd/internal/services/ruleset"
	"github.com/zhukovvlad/fittings-go/cmd/internal/util"
	"github.com/zhukovvlad/fittings-go/cmd/pkg/logging"
)

// GroupFreeEntry - группа с вариантом ручного ввода, выводится первой.
const GroupFreeEntry = "FREE_ENTRY"

// Candidate - допустимое значение поля для выпадающего списка.
type Candidate struct {
	Label      string `json:"label"`
	Value      any    `json:"value"`
	Group      string `json:"group,omitempty"`
	GroupLabel string `json:"group_label,omitempty"`
}

// Engine вычисляет допустимые значения следующего поля незаполненной позиции.
type Engine struct {
	dispatcher    *ruleset.Dispatcher
	dataset       *dataset.Dataset
	resolver      *resolver.Resolver
	translator    labels.Translator
	defaultLocale string
	logger        *logging.Logger
}

// NewEngine создает новый экземпляр Engine
func NewEngine(
	dispatcher *ruleset.Dispatcher,
	ds *dataset.Dataset,
	res *resolver.Resolver,
	translator labels.Translator,
	defaultLocale string,
	logger *logging.Logger,
) *Engine {
	return &Engine{
		dispatcher:    dispatcher,
		dataset:       ds,
		resolver:      res,
		translator:    translator,
		defaultLocale: defaultLocale,
		logger:        logger,
	}
}

// GetCandidates возвращает варианты значения поля col для позиции it.
// Пустая локаль заменяется локалью по умолчанию.
func (e *Engine) GetCandidates(it *item.PipeFittingItem, col item.Column, locale string) (candidates []Candidate, err error) {
	defer func() { metrics.ObserveCandidates(string(col), err) }()

	if locale == "" {
		locale = e.defaultLocale
	}
	if col == item.ColumnTypeID {
		return e.typeCandidates(locale), nil
	}
	if col == item.ColumnQuantity {
		return []Candidate{}, nil
	}
	if _, known := item.ParseColumn(string(col)); !known {
		return nil, apierrors.NewValidationError("неизвестное поле %q", col)
	}

	var (
		values    []any
		freeEntry bool
	)
	if it.Get(item.ColumnTypeID) == nil {
		values = distinct(resolver.Filter(e.dataset.All(), it, resolver.MatchColumns(it, col), defaultTransform), col)
	} else {
		if !it.IsColumnAvailable(col) {
			return []Candidate{}, nil
		}
		rs, err := e.dispatcher.Resolve(it)
		if err != nil {
			return nil, err
		}
		switch rule := rs.(type) {
		case *ruleset.CustomRule:
			if rule.Options != nil {
				values = rule.Options(it, col)
			}
			freeEntry = slices.Contains(rule.FreeEntry, col)
		case *ruleset.LookupRule:
			matches, err := e.resolver.Matches(it, rule, col)
			if err != nil {
				return nil, err
			}
			values = distinct(matches, col)
		default:
			return nil, fmt.Errorf("%w: неизвестный вид правила %T", apierrors.ErrRulesetNotFound, rs)
		}
	}

	e.logger.Debugf("Подсказки для %s (typeId %q): %d значений", col, it.TypeID, len(values))
	return e.postProcess(col, values, freeEntry, locale), nil
}

func defaultTransform(col item.Column, value any) any {
	if value == nil {
		return nil
	}
	if tf, ok := ruleset.DefaultTransformers[col]; ok {
		return tf(value)
	}
	return value
}

// distinct собирает различающиеся значения поля из строк справочника в порядке появления.
func distinct(rows []*item.PipeFittingItem, col item.Column) []any {
	var out []any
	for _, row := range rows {
		v := row.Get(col)
		if v == nil {
			continue
		}
		if slices.ContainsFunc(out, func(seen any) bool { return util.SafeEquals(seen, v) }) {
			continue
		}
		out = append(out, v)
	}
	return out
}

// typeCandidates - коды с формулой и коды из справочника, пересечённые с поддерживаемыми.
// Порядок - порядок категорий и кодов внутри категории.
func (e *Engine) typeCandidates(locale string) []Candidate {
	out := make([]Candidate, 0)
	for _, c := range typeCategories {
		groupLabel := e.translator.Translate(labels.CategoryKey(c.Name), locale)
		for _, code := range c.Codes {
			if !e.isTypeAvailable(code) {
				continue
			}
			out = append(out, Candidate{
				Label:      e.translator.Translate(labels.TypeKey(code), locale),
				Value:      strconv.Itoa(code),
				Group:      c.Name,
				GroupLabel: groupLabel,
			})
		}
	}
	return out
}

// isTypeAvailable: код считается по формуле или по нему есть записи справочника
// (для кодов-псевдонимов - записи группы, в которой идёт поиск).
func (e *Engine) isTypeAvailable(code int) bool {
	rs, ok := e.dispatcher.ResolveCode(code)
	if !ok {
		return false
	}
	switch rule := rs.(type) {
	case *ruleset.CustomRule:
		return true
	case *ruleset.LookupRule:
		groupCode, err := rule.GroupCode(&item.PipeFittingItem{TypeID: strconv.Itoa(code)})
		return err == nil && e.dataset.HasGroup(groupCode)
	}
	return false
}
