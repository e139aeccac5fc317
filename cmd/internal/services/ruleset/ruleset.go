package ruleset

import (
	"fmt"

	"github.com/zhukovvlad/fittings-go/cmd/internal/item"
	"github.com/zhukovvlad/fittings-go/cmd/internal/rules"
	"github.com/zhukovvlad/fittings-go/cmd/internal/services/apierrors"
)

// Transformer приводит значение поля к виду, в котором оно сравнивается со справочником
// (например, марку материала к группе N/S). Применяется к обеим сторонам сравнения.
type Transformer func(value any) any

// RuleSet - правило классификации: либо поиск в справочнике, либо формула.
// Реализации: *LookupRule и *CustomRule.
type RuleSet interface {
	ruleName() string
}

// LookupRule - вес и стандарт берутся из справочника точным совпадением по полям.
type LookupRule struct {
	Name string
	// CSVAttributeMapping - поле позиции -> колонка справочной записи.
	CSVAttributeMapping map[item.Column]string
	// Transformers - приведение значений перед сравнением и при загрузке справочника.
	Transformers map[item.Column]Transformer
	// WeightTransformer - пересчёт найденного в справочнике веса.
	WeightTransformer func(weight float64) float64
}

func (r *LookupRule) ruleName() string { return r.Name }

// Transform применяет преобразователь поля, если он объявлен.
func (r *LookupRule) Transform(col item.Column, value any) any {
	if value == nil {
		return nil
	}
	if tf, ok := r.Transformers[col]; ok && tf != nil {
		return tf(value)
	}
	return value
}

// GroupCode возвращает код группы справочника, в которой ищется позиция.
func (r *LookupRule) GroupCode(it *item.PipeFittingItem) (int, error) {
	probe := &item.PipeFittingItem{}
	if err := probe.Set(item.ColumnTypeID, r.Transform(item.ColumnTypeID, it.Get(item.ColumnTypeID))); err != nil {
		return 0, err
	}
	return probe.TypeCode()
}

// CustomRule - вес и стандарт считаются по формуле, справочник не используется.
type CustomRule struct {
	Name         string
	CustomWeight func(it *item.PipeFittingItem) (float64, error)
	// Standard может быть nil - тогда стандарт не определяется.
	Standard func(it *item.PipeFittingItem) (string, error)
	// Options - предопределённый набор значений поля для подсказок.
	Options func(it *item.PipeFittingItem, col item.Column) []any
	// FreeEntry - поля, для которых разрешён ручной ввод значения.
	FreeEntry []item.Column
}

func (r *CustomRule) ruleName() string { return r.Name }

// Name возвращает имя правила для логов.
func Name(rs RuleSet) string {
	if rs == nil {
		return "<nil>"
	}
	return rs.ruleName()
}

// Dispatcher выбирает правило классификации по typeId.
type Dispatcher struct {
	table *rules.Table[RuleSet]
}

// NewDispatcher создаёт диспетчер со стандартной таблицей классификации.
func NewDispatcher() *Dispatcher {
	return &Dispatcher{table: classificationTable}
}

// NewDispatcherWithTable создаёт диспетчер с произвольной таблицей (тесты, расширения).
func NewDispatcherWithTable(table *rules.Table[RuleSet]) *Dispatcher {
	return &Dispatcher{table: table}
}

// Resolve возвращает правило для позиции или ErrRulesetNotFound.
func (d *Dispatcher) Resolve(it *item.PipeFittingItem) (RuleSet, error) {
	code, err := it.TypeCode()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apierrors.ErrRulesetNotFound, err)
	}
	rs, ok := d.ResolveCode(code)
	if !ok {
		return nil, fmt.Errorf("%w: typeId %d", apierrors.ErrRulesetNotFound, code)
	}
	return rs, nil
}

// ResolveCode возвращает правило для числового кода типа.
func (d *Dispatcher) ResolveCode(code int) (RuleSet, bool) {
	e, ok := d.table.Resolve(code)
	if !ok {
		return nil, false
	}
	return e.Handler, true
}

// Describe возвращает описание таблицы классификации.
func (d *Dispatcher) Describe() []string {
	return d.table.Describe()
}
