package effort

import (
	"fmt"
	"math"

	"github.com/zhukovvlad/fittings-go/cmd/internal/item"
	"github.com/zhukovvlad/fittings-go/cmd/internal/services/apierrors"
)

// Эмпирические нормы трудозатрат, ч. Диаметр и толщина в мм.

// HandlingPipe - погрузка и перемещение трубы, на метр.
func HandlingPipe(dn float64) float64 {
	return 0.001*dn + 0.08
}

// LayingPipe - укладка трубы, на метр.
func LayingPipe(dn, s float64) float64 {
	return 0.18 + 0.011*s + 0.00045*dn*s
}

// Fitting2End - установка фитинга с двумя концами.
func Fitting2End(dn float64) float64 {
	return 0.032 + 0.00833*dn
}

// Fitting3End - установка фитинга с тремя концами.
func Fitting3End(dn float64) float64 {
	return Fitting2End(dn) * 1.3
}

// FlangedConnection - сборка фланцевого соединения.
func FlangedConnection(dn float64) float64 {
	return 0.48 + 0.0012*math.Pow(dn, 1.3)
}

// Коэффициенты полинома кольцевого шва. Округлённая аппроксимация, менять нельзя.
var weldCoefficients = [10]float64{0.33, 0.009, -0.04, -3e-8, 0.0035, -8e-11, -1.2e-4, 3.7e-4, 3.2e-8, 2.7e-5}

// CircularWeld - кольцевой сварной шов.
func CircularWeld(dn, s float64, grade string) (float64, error) {
	factor, err := MaterialFactor(grade)
	if err != nil {
		return 0, err
	}
	a := weldCoefficients
	poly := a[0] +
		a[1]*dn +
		a[2]*s +
		a[3]*dn*dn +
		a[4]*s*s +
		a[5]*dn*dn*dn +
		a[6]*s*s*s +
		a[7]*dn*s +
		a[8]*dn*dn*s +
		a[9]*dn*s*s
	return factor * poly, nil
}

const stainlessWeldFactor = 1.6

// MaterialFactor - нержавеющие марки варятся дольше.
func MaterialFactor(grade string) (float64, error) {
	if !item.IsKnownGrade(grade) {
		return 0, fmt.Errorf("%w: %q", apierrors.ErrMaterialNotFound, grade)
	}
	if item.IsStainless(grade) {
		return stainlessWeldFactor, nil
	}
	return 1, nil
}
