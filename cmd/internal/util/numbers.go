package util

import (
	"math"
	"reflect"
	"strconv"
	"strings"
)

// Epsilon - относительная погрешность при сравнении чисел с плавающей точкой.
const Epsilon = 1e-9

// ParseNumeric разбирает числовое значение из справочника.
// Значения с точкой разбираются как дробные, остальные как целые.
func ParseNumeric(raw string) (float64, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, false
	}
	if strings.Contains(raw, ".") {
		f, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return 0, false
		}
		return f, true
	}
	i, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, false
	}
	return float64(i), true
}

// ApproxEqual сравнивает числа с относительной погрешностью Epsilon.
func ApproxEqual(a, b float64) bool {
	if a == b {
		return true
	}
	scale := math.Max(1, math.Max(math.Abs(a), math.Abs(b)))
	return math.Abs(a-b) <= Epsilon*scale
}

// ToFloat приводит числовые значения (и указатели на них) к float64.
func ToFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case *float64:
		if n == nil {
			return 0, false
		}
		return *n, true
	}
	return 0, false
}

// SafeEquals сравнивает значения атрибутов: числа с погрешностью,
// строки и bool точно, всё остальное структурно.
func SafeEquals(a, b any) bool {
	a, b = derefValue(a), derefValue(b)
	if a == nil || b == nil {
		return a == nil && b == nil
	}

	fa, aNum := ToFloat(a)
	fb, bNum := ToFloat(b)
	if aNum || bNum {
		return aNum && bNum && ApproxEqual(fa, fb)
	}

	switch av := a.(type) {
	case string:
		bv, ok := b.(string)
		return ok && av == bv
	case bool:
		bv, ok := b.(bool)
		return ok && av == bv
	}
	return reflect.DeepEqual(a, b)
}

func derefValue(v any) any {
	switch p := v.(type) {
	case *float64:
		if p == nil {
			return nil
		}
		return *p
	case *string:
		if p == nil {
			return nil
		}
		return *p
	}
	return v
}
