package ruleset

import (
	"github.com/zhukovvlad/fittings-go/cmd/internal/item"
	"github.com/zhukovvlad/fittings-go/cmd/internal/util"
)

// ThicknessRange - допустимые толщины стенки трубы для диаметра, кода типа и группы материала.
type ThicknessRange struct {
	DN           float64
	TypeID       int
	MaterialType item.MaterialType
	Min, Max     float64
}

// Contains: значение совпадает с границей (с погрешностью) или лежит строго внутри.
func (r ThicknessRange) Contains(s float64) bool {
	return util.ApproxEqual(s, r.Min) || util.ApproxEqual(s, r.Max) || (s > r.Min && s < r.Max)
}

// Стандартный ряд толщин стенок, мм.
var wallThicknessSeries = []float64{
	1.6, 2.0, 2.3, 2.6, 2.9, 3.2, 3.6, 4.0, 4.5, 5.0, 5.6, 6.3, 7.1, 8.0, 8.8, 10.0, 11.0, 12.5, 14.2, 16.0,
}

// WallThicknessSeries возвращает копию ряда толщин.
func WallThicknessSeries() []float64 {
	out := make([]float64, len(wallThicknessSeries))
	copy(out, wallThicknessSeries)
	return out
}

var thicknessRanges = []ThicknessRange{
	// 1000 бесшовная, N (EN 10216-2)
	{21.3, 1000, item.MaterialTypeN, 2.0, 3.2},
	{26.9, 1000, item.MaterialTypeN, 2.0, 3.2},
	{33.7, 1000, item.MaterialTypeN, 2.6, 4.5},
	{42.4, 1000, item.MaterialTypeN, 2.6, 5.0},
	{48.3, 1000, item.MaterialTypeN, 2.6, 5.0},
	{60.3, 1000, item.MaterialTypeN, 2.9, 5.6},
	{76.1, 1000, item.MaterialTypeN, 2.9, 7.1},
	{88.9, 1000, item.MaterialTypeN, 3.2, 8.0},
	{114.3, 1000, item.MaterialTypeN, 3.6, 8.8},
	{139.7, 1000, item.MaterialTypeN, 4.0, 10.0},
	{168.3, 1000, item.MaterialTypeN, 4.5, 11.0},
	{219.1, 1000, item.MaterialTypeN, 5.6, 12.5},
	{273.0, 1000, item.MaterialTypeN, 6.3, 14.2},
	{323.9, 1000, item.MaterialTypeN, 7.1, 16.0},

	// 1000 бесшовная, S (EN 10216-5)
	{21.3, 1000, item.MaterialTypeS, 1.6, 2.9},
	{26.9, 1000, item.MaterialTypeS, 1.6, 2.9},
	{33.7, 1000, item.MaterialTypeS, 2.0, 3.2},
	{42.4, 1000, item.MaterialTypeS, 2.0, 3.6},
	{48.3, 1000, item.MaterialTypeS, 2.0, 3.6},
	{60.3, 1000, item.MaterialTypeS, 2.0, 4.0},
	{76.1, 1000, item.MaterialTypeS, 2.3, 5.0},
	{88.9, 1000, item.MaterialTypeS, 2.3, 5.6},
	{114.3, 1000, item.MaterialTypeS, 2.6, 6.3},
	{139.7, 1000, item.MaterialTypeS, 2.9, 7.1},
	{168.3, 1000, item.MaterialTypeS, 2.9, 8.0},

	// 1010 сварная, N (EN 10217-2)
	{21.3, 1010, item.MaterialTypeN, 1.6, 2.6},
	{26.9, 1010, item.MaterialTypeN, 1.6, 2.6},
	{33.7, 1010, item.MaterialTypeN, 2.0, 3.2},
	{42.4, 1010, item.MaterialTypeN, 2.0, 3.6},
	{48.3, 1010, item.MaterialTypeN, 2.0, 3.6},
	{60.3, 1010, item.MaterialTypeN, 2.3, 4.0},
	{76.1, 1010, item.MaterialTypeN, 2.3, 5.0},
	{88.9, 1010, item.MaterialTypeN, 2.6, 5.6},
	{114.3, 1010, item.MaterialTypeN, 2.9, 6.3},
	{139.7, 1010, item.MaterialTypeN, 3.2, 6.3},
	{168.3, 1010, item.MaterialTypeN, 3.2, 7.1},
	{219.1, 1010, item.MaterialTypeN, 4.0, 8.0},
	{273.0, 1010, item.MaterialTypeN, 4.5, 8.8},
	{323.9, 1010, item.MaterialTypeN, 5.0, 10.0},
	{355.6, 1010, item.MaterialTypeN, 5.6, 11.0},
	{406.4, 1010, item.MaterialTypeN, 6.3, 12.5},
	{457.0, 1010, item.MaterialTypeN, 6.3, 12.5},
	{508.0, 1010, item.MaterialTypeN, 6.3, 14.2},

	// 1010 сварная, S (EN 10217-7)
	{21.3, 1010, item.MaterialTypeS, 1.6, 2.0},
	{26.9, 1010, item.MaterialTypeS, 1.6, 2.0},
	{33.7, 1010, item.MaterialTypeS, 1.6, 2.6},
	{42.4, 1010, item.MaterialTypeS, 1.6, 2.6},
	{48.3, 1010, item.MaterialTypeS, 1.6, 2.6},
	{60.3, 1010, item.MaterialTypeS, 1.6, 2.9},
	{76.1, 1010, item.MaterialTypeS, 2.0, 2.9},
	{88.9, 1010, item.MaterialTypeS, 2.0, 3.2},
	{114.3, 1010, item.MaterialTypeS, 2.0, 3.6},
	{139.7, 1010, item.MaterialTypeS, 2.3, 4.0},
	{168.3, 1010, item.MaterialTypeS, 2.6, 4.5},
	{219.1, 1010, item.MaterialTypeS, 2.6, 5.0},
	{273.0, 1010, item.MaterialTypeS, 2.9, 5.6},
	{323.9, 1010, item.MaterialTypeS, 3.2, 6.3},
}

// FindThicknessRange ищет диапазон толщин по диаметру, коду типа и группе материала.
func FindThicknessRange(dn float64, typeID int, mt item.MaterialType) (ThicknessRange, bool) {
	for _, r := range thicknessRanges {
		if r.TypeID == typeID && r.MaterialType == mt && util.ApproxEqual(r.DN, dn) {
			return r, true
		}
	}
	return ThicknessRange{}, false
}

func hasAnyThicknessRange(dn float64, typeID int) bool {
	for _, mt := range item.MaterialTypes() {
		if _, ok := FindThicknessRange(dn, typeID, mt); ok {
			return true
		}
	}
	return false
}
