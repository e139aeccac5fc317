package item

import "slices"

// Factor - множитель в формуле расчёта стоимости материала.
type Factor struct {
	ID    string  `json:"id"`
	Value float64 `json:"value"`
}

// MaterialCalculation - расшифровка расчёта стоимости материала для аудита.
type MaterialCalculation struct {
	Factors []Factor `json:"factors"`
	Formula string   `json:"formula"`
}

// EffortStep - один шаг расчёта трудозатрат.
type EffortStep struct {
	Name          string  `json:"name"`
	EffortPerUnit float64 `json:"effort_per_unit"`
	Quantity      float64 `json:"quantity"`
	Size          string  `json:"size"`
}

// Hours - трудозатраты шага: норма на единицу × количество.
func (s EffortStep) Hours() float64 {
	return s.EffortPerUnit * s.Quantity
}

// EffortCalculation - пошаговая расшифровка трудозатрат.
type EffortCalculation struct {
	Steps []EffortStep `json:"steps"`
	Total float64      `json:"total"`
}

// Attributes - вычисляемые атрибуты позиции. JSON-ключи совпадают
// с ключами, которые ожидают внешние клиенты.
type Attributes struct {
	Weight                 *float64             `json:"WEIGHT,omitempty"`
	Standard               *string              `json:"STANDARD,omitempty"`
	PriceMaterial          *float64             `json:"PRICE_MATERIAL,omitempty"`
	EffortHours            *float64             `json:"EFFORD_HOURS,omitempty"`
	CalculationMaterial    *MaterialCalculation `json:"CALCULATION_MATERIAL,omitempty"`
	CalculationEffortHours *EffortCalculation   `json:"CALCULATION_EFFORD_HOURS,omitempty"`
	Errors                 []string             `json:"ERRORS,omitempty"`
}

// AddError добавляет сообщение об ошибке расчёта.
func (a *Attributes) AddError(msg string) {
	a.Errors = append(a.Errors, msg)
}

func (a Attributes) clone() Attributes {
	out := Attributes{
		Weight:        clonePtr(a.Weight),
		Standard:      clonePtr(a.Standard),
		PriceMaterial: clonePtr(a.PriceMaterial),
		EffortHours:   clonePtr(a.EffortHours),
		Errors:        slices.Clone(a.Errors),
	}
	if a.CalculationMaterial != nil {
		mc := *a.CalculationMaterial
		mc.Factors = slices.Clone(mc.Factors)
		out.CalculationMaterial = &mc
	}
	if a.CalculationEffortHours != nil {
		ec := *a.CalculationEffortHours
		ec.Steps = slices.Clone(ec.Steps)
		out.CalculationEffortHours = &ec
	}
	return out
}

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
