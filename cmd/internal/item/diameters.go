package item

import (
	"fmt"

	"github.com/zhukovvlad/fittings-go/cmd/internal/util"
)

// NominalDiameter - строка таблицы номинальных диаметров: DN и наружный диаметр, мм.
type NominalDiameter struct {
	DN    int
	Outer float64
}

// Ряд наружных диаметров стальных труб (EN 10220), в мм.
var nominalDiameters = []NominalDiameter{
	{DN: 15, Outer: 21.3},
	{DN: 20, Outer: 26.9},
	{DN: 25, Outer: 33.7},
	{DN: 32, Outer: 42.4},
	{DN: 40, Outer: 48.3},
	{DN: 50, Outer: 60.3},
	{DN: 65, Outer: 76.1},
	{DN: 80, Outer: 88.9},
	{DN: 100, Outer: 114.3},
	{DN: 125, Outer: 139.7},
	{DN: 150, Outer: 168.3},
	{DN: 200, Outer: 219.1},
	{DN: 250, Outer: 273.0},
	{DN: 300, Outer: 323.9},
	{DN: 350, Outer: 355.6},
	{DN: 400, Outer: 406.4},
	{DN: 450, Outer: 457.0},
	{DN: 500, Outer: 508.0},
}

// NominalDiameters возвращает копию таблицы номинальных диаметров.
func NominalDiameters() []NominalDiameter {
	out := make([]NominalDiameter, len(nominalDiameters))
	copy(out, nominalDiameters)
	return out
}

// LookupDiameter ищет наружный диаметр в таблице (с погрешностью).
func LookupDiameter(outer float64) (NominalDiameter, bool) {
	for _, d := range nominalDiameters {
		if util.ApproxEqual(d.Outer, outer) {
			return d, true
		}
	}
	return NominalDiameter{}, false
}

// IsNominalDiameter сообщает, есть ли диаметр в таблице.
func IsNominalDiameter(outer float64) bool {
	_, ok := LookupDiameter(outer)
	return ok
}

// Name возвращает обозначение вида "DN100".
func (d NominalDiameter) Name() string {
	return fmt.Sprintf("DN%d", d.DN)
}
