package dataset

import (
	"fmt"
	"slices"

	"github.com/zhukovvlad/fittings-go/cmd/internal/item"
	"github.com/zhukovvlad/fittings-go/cmd/internal/services/ruleset"
	"github.com/zhukovvlad/fittings-go/cmd/internal/util"
	"github.com/zhukovvlad/fittings-go/cmd/pkg/logging"
)

const (
	// Отвод 45° получается из отвода 90° сдвигом кода и половиной массы.
	derivedElbowCodeShift   = -10
	derivedElbowWeightRatio = 0.5
)

// Builder строит справочник из плоских записей.
type Builder struct {
	dispatcher *ruleset.Dispatcher
	logger     *logging.Logger
}

// NewBuilder создает новый экземпляр Builder
func NewBuilder(dispatcher *ruleset.Dispatcher, logger *logging.Logger) *Builder {
	return &Builder{
		dispatcher: dispatcher,
		logger:     logger,
	}
}

// buildReport - счётчики отброшенных записей для итогового лога.
type buildReport struct {
	missingKey int
	custom     int
	badWeight  int
	incomplete int
	derived    int
}

// Build превращает записи в справочник. Ошибка возвращается только если
// для записи нет правила классификации: это пробел в таблицах, а не в данных.
func (b *Builder) Build(records []Record) (*Dataset, error) {
	logger := b.logger.WithField("method", "Build")
	logger.Infof("Строим справочник из %d записей", len(records))

	groups := make(map[int][]*item.PipeFittingItem)
	var report buildReport

	for i, rec := range records {
		line := i + 1

		id, hasID := rec.Value(ruleset.FieldID)
		rawWeight, hasWeight := rec.Value(ruleset.FieldWeight)
		_, hasMaterial := rec.Value(ruleset.FieldMaterialID)
		if !hasID || !hasWeight || !hasMaterial {
			report.missingKey++
			logger.Debugf("Запись %d пропущена: нет id, weight или materialId", line)
			continue
		}

		rs, err := b.dispatcher.Resolve(&item.PipeFittingItem{TypeID: id})
		if err != nil {
			logger.Errorf("Запись %d: не найдено правило классификации для id %q", line, id)
			return nil, fmt.Errorf("запись %d: %w", line, err)
		}

		rule, ok := rs.(*ruleset.LookupRule)
		if !ok {
			report.custom++
			continue
		}

		row, err := mapRecord(rec, rule)
		if err != nil {
			report.incomplete++
			logger.Warnf("Запись %d пропущена: %v", line, err)
			continue
		}

		weight, ok := util.ParseNumeric(rawWeight)
		if !ok {
			report.badWeight++
			logger.Warnf("Запись %d пропущена: вес %q не является числом", line, rawWeight)
			continue
		}
		row.Attributes.Weight = util.Float64Ptr(weight)
		if standard, ok := rec.Value(ruleset.FieldStandard); ok {
			row.Attributes.Standard = util.StringPtr(standard)
		}

		if !row.IsComplete() {
			report.incomplete++
			logger.Debugf("Запись %d пропущена: не заполнены поля %v", line, row.MissingColumns())
			continue
		}

		code, err := row.TypeCode()
		if err != nil {
			report.incomplete++
			logger.Warnf("Запись %d пропущена: %v", line, err)
			continue
		}
		groups[code] = append(groups[code], row)

		if slices.Contains(ruleset.ElbowDerivationCodes, code) {
			groups[code+derivedElbowCodeShift] = append(groups[code+derivedElbowCodeShift], deriveElbow(row, code))
			report.derived++
		}
	}

	ds := newDataset(groups)
	logger.Infof("Справочник построен: %d групп, %d записей (выведено отводов 45°: %d); пропущено: без ключевых полей %d, по формуле %d, с ошибкой веса %d, неполных %d",
		len(ds.codes), ds.size, report.derived, report.missingKey, report.custom, report.badWeight, report.incomplete)
	return ds, nil
}

// mapRecord переносит колонки записи в поля позиции по отображению правила.
func mapRecord(rec Record, rule *ruleset.LookupRule) (*item.PipeFittingItem, error) {
	row := &item.PipeFittingItem{}
	for _, col := range item.AllColumns {
		field, ok := rule.CSVAttributeMapping[col]
		if !ok {
			continue
		}
		raw, ok := rec.Value(field)
		if !ok {
			continue
		}
		if err := row.Set(col, rule.Transform(col, raw)); err != nil {
			return nil, err
		}
		if col.IsDiameter() {
			if dn, ok := row.Float(col); ok && !item.IsNominalDiameter(dn) {
				row.Unset(col)
			}
		}
	}
	row.Quantity = util.Float64Ptr(1)
	return row, nil
}

func deriveElbow(row *item.PipeFittingItem, code int) *item.PipeFittingItem {
	derived := row.Clone()
	derived.TypeID = fmt.Sprint(code + derivedElbowCodeShift)
	derived.Attributes.Weight = util.Float64Ptr(*row.Attributes.Weight * derivedElbowWeightRatio)
	return derived
}
