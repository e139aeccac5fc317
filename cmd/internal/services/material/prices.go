package material

import (
	"github.com/zhukovvlad/fittings-go/cmd/internal/item"
	"github.com/zhukovvlad/fittings-go/cmd/internal/rules"
)

type gradePrice struct {
	unitPrice float64
	surcharge float64
}

type priceRule struct {
	prices     map[string]gradePrice
	formFactor func(code int) float64
}

// Надбавка за марку относительно базовой P235GH.
var materialSurcharges = map[string]float64{
	item.BaselineGrade: 1.0,
	"P265GH":           1.1,
	"16MO3":            1.8,
	"1.4301":           3.4,
	"1.4571":           3.9,
}

// pricesFor - цена за кг одинакова для всех марок правила, марка влияет через надбавку.
func pricesFor(unitPrice float64) map[string]gradePrice {
	out := make(map[string]gradePrice, len(materialSurcharges))
	for grade, surcharge := range materialSurcharges {
		out[grade] = gradePrice{unitPrice: unitPrice, surcharge: surcharge}
	}
	return out
}

func constFormFactor(v float64) func(int) float64 {
	return func(int) float64 { return v }
}

// Бесшовная труба дороже сварной.
func pipeFormFactor(code int) float64 {
	if code == 1000 {
		return 1.2
	}
	return 1.0
}

// Сварные отводы (26xx) вдвое дешевле бесшовных (21xx).
func elbowFormFactor(code int) float64 {
	if (code/100)%10 == 6 {
		return 0.5
	}
	return 1.0
}

// Таблица цен материала. Границы своих диапазонов, независимые от классификации.
var priceTable = rules.MustTable("material price",
	rules.Entry[priceRule]{Name: "pipe", Condition: rules.OneOf(1000, 1010),
		Handler: priceRule{prices: pricesFor(1.5), formFactor: pipeFormFactor}},
	rules.Entry[priceRule]{Name: "elbow", Condition: rules.OneOf(2110, 2610, 2100, 2600),
		Handler: priceRule{prices: pricesFor(2.4), formFactor: elbowFormFactor}},
	rules.Entry[priceRule]{Name: "tee", Condition: rules.Between(3000, 3999),
		Handler: priceRule{prices: pricesFor(2.8)}},
	rules.Entry[priceRule]{Name: "reducer", Condition: rules.Between(4000, 4999),
		Handler: priceRule{prices: pricesFor(2.6)}},
	rules.Entry[priceRule]{Name: "cap", Condition: rules.Between(5000, 5999),
		Handler: priceRule{prices: pricesFor(2.2), formFactor: constFormFactor(1.0)}},
	rules.Entry[priceRule]{Name: "flange", Condition: rules.Between(6000, 7999),
		Handler: priceRule{prices: pricesFor(1.9), formFactor: constFormFactor(0.75)}},
)
