package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// ========== Тесты для ParseNumeric ==========

func TestParseNumeric(t *testing.T) {
	t.Run("значение с точкой разбирается как дробное", func(t *testing.T) {
		v, ok := ParseNumeric("114.3")
		assert.True(t, ok)
		assert.Equal(t, 114.3, v)
	})

	t.Run("значение без точки разбирается как целое", func(t *testing.T) {
		v, ok := ParseNumeric("2110")
		assert.True(t, ok)
		assert.Equal(t, 2110.0, v)
	})

	t.Run("пробелы по краям игнорируются", func(t *testing.T) {
		v, ok := ParseNumeric("  4.5 ")
		assert.True(t, ok)
		assert.Equal(t, 4.5, v)
	})

	t.Run("пустая строка и мусор не разбираются", func(t *testing.T) {
		_, ok := ParseNumeric("")
		assert.False(t, ok)

		_, ok = ParseNumeric("4,5")
		assert.False(t, ok, "запятая не является десятичным разделителем в справочнике")

		_, ok = ParseNumeric("abc")
		assert.False(t, ok)
	})
}

// ========== Тесты для SafeEquals ==========

func TestSafeEquals(t *testing.T) {
	t.Run("числа в пределах погрешности равны", func(t *testing.T) {
		assert.True(t, SafeEquals(2.0, 2.0+1e-20))
		assert.True(t, SafeEquals(0.1+0.2, 0.3))
		assert.True(t, SafeEquals(114.3, 114.30000000001))
	})

	t.Run("рефлексивность и симметричность", func(t *testing.T) {
		values := []any{2.0, 3.6, "P235GH", true, nil}
		for _, v := range values {
			assert.True(t, SafeEquals(v, v), "значение %v должно быть равно самому себе", v)
		}
		assert.Equal(t, SafeEquals(1.0, 1.0+1e-12), SafeEquals(1.0+1e-12, 1.0))
		assert.Equal(t, SafeEquals(4.0, 4.5), SafeEquals(4.5, 4.0))
	})

	t.Run("строки сравниваются точно", func(t *testing.T) {
		assert.False(t, SafeEquals("A", "B"))
		assert.True(t, SafeEquals("N", "N"))
		assert.False(t, SafeEquals("n", "N"))
	})

	t.Run("bool сравнивается точно", func(t *testing.T) {
		assert.True(t, SafeEquals(true, true))
		assert.False(t, SafeEquals(true, false))
	})

	t.Run("разные типы не равны", func(t *testing.T) {
		assert.False(t, SafeEquals("2", 2.0))
		assert.False(t, SafeEquals(2.0, nil))
		assert.False(t, SafeEquals(nil, "x"))
	})

	t.Run("целые и дробные сравниваются как числа", func(t *testing.T) {
		assert.True(t, SafeEquals(2, 2.0))
		assert.True(t, SafeEquals(int64(100), 100.0))
	})

	t.Run("указатели разыменовываются", func(t *testing.T) {
		assert.True(t, SafeEquals(Float64Ptr(4.5), 4.5))
		assert.True(t, SafeEquals(StringPtr("S"), "S"))
		var nilFloat *float64
		assert.True(t, SafeEquals(nilFloat, nil))
	})

	t.Run("структуры сравниваются структурно", func(t *testing.T) {
		assert.True(t, SafeEquals([]int{1, 2}, []int{1, 2}))
		assert.False(t, SafeEquals([]int{1, 2}, []int{2, 1}))
	})
}
