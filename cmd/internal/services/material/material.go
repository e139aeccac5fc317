package material

import (
	"fmt"
	"strings"

	"github.com/zhukovvlad/fittings-go/cmd/internal/item"
	"github.com/zhukovvlad/fittings-go/cmd/internal/rules"
	"github.com/zhukovvlad/fittings-go/cmd/internal/services/apierrors"
	"github.com/zhukovvlad/fittings-go/cmd/internal/util"
	"github.com/zhukovvlad/fittings-go/cmd/pkg/logging"
)

// Идентификаторы множителей в расшифровке расчёта.
const (
	FactorUnitPrice         = "UNIT_PRICE"
	FactorMaterialSurcharge = "MATERIAL_SURCHARGE"
	FactorFormFactor        = "FORM_FACTOR"
	FactorWeight            = "WEIGHT"
	FactorQuantity          = "QUANTITY"

	formulaSeparator = " * "
)

// Calculator считает стоимость материала позиции.
type Calculator struct {
	table  *rules.Table[priceRule]
	logger *logging.Logger
}

// NewCalculator создает новый экземпляр Calculator со стандартной таблицей цен
func NewCalculator(logger *logging.Logger) *Calculator {
	return &Calculator{
		table:  priceTable,
		logger: logger,
	}
}

// CalculateMaterialPrice возвращает стоимость материала позиции с учётом количества
// и записывает расшифровку расчёта в атрибуты позиции. Вес должен быть уже определён.
func (c *Calculator) CalculateMaterialPrice(it *item.PipeFittingItem) (float64, error) {
	code, err := it.TypeCode()
	if err != nil {
		return 0, fmt.Errorf("%w: %v", apierrors.ErrCalculationConditionNotFound, err)
	}
	entry, ok := c.table.Resolve(code)
	if !ok {
		return 0, fmt.Errorf("%w: нет правила цены материала для typeId %d", apierrors.ErrCalculationConditionNotFound, code)
	}
	rule := entry.Handler

	grade := it.MaterialGrade()
	price, ok := rule.prices[grade]
	if !ok {
		return 0, fmt.Errorf("%w: %q (правило цены %q)", apierrors.ErrMaterialNotFound, grade, entry.Name)
	}
	if it.Attributes.Weight == nil {
		return 0, fmt.Errorf("%w: вес позиции не определён", apierrors.ErrItemIncomplete)
	}
	weight := *it.Attributes.Weight

	formFactor := 1.0
	if rule.formFactor != nil {
		formFactor = rule.formFactor(code)
	}
	quantity := it.QuantityValue()

	result := price.unitPrice * weight * price.surcharge * formFactor * quantity

	it.Attributes.CalculationMaterial = newBreakdown(
		item.Factor{ID: FactorUnitPrice, Value: price.unitPrice},
		item.Factor{ID: FactorMaterialSurcharge, Value: price.surcharge},
		item.Factor{ID: FactorFormFactor, Value: formFactor},
		item.Factor{ID: FactorWeight, Value: weight},
		item.Factor{ID: FactorQuantity, Value: quantity},
	)
	c.logger.Debugf("Цена материала typeId %d (%s): %s = %g", code, entry.Name, it.Attributes.CalculationMaterial.Formula, result)
	return result, nil
}

// Describe возвращает описание таблицы цен построчно.
func (c *Calculator) Describe() []string {
	return c.table.Describe()
}

// newBreakdown отбрасывает множители, равные 1, кроме количества.
// Формула - идентификаторы оставшихся множителей в том же порядке.
func newBreakdown(factors ...item.Factor) *item.MaterialCalculation {
	kept := make([]item.Factor, 0, len(factors))
	ids := make([]string, 0, len(factors))
	for _, f := range factors {
		if f.ID != FactorQuantity && util.ApproxEqual(f.Value, 1) {
			continue
		}
		kept = append(kept, f)
		ids = append(ids, f.ID)
	}
	return &item.MaterialCalculation{
		Factors: kept,
		Formula: strings.Join(ids, formulaSeparator),
	}
}
