package util

import (
	"database/sql"
	"strconv"
)

// NullStringValue возвращает строку из sql.NullString.
// NULL превращается в пустую строку - для справочных записей это «значение отсутствует».
func NullStringValue(ns sql.NullString) string {
	if !ns.Valid {
		return ""
	}
	return ns.String
}

// NullFloat64String преобразует sql.NullFloat64 в строку.
// 'f' и -1 дают минимально необходимое количество знаков после точки,
// целые значения выводятся без точки (4.0 -> "4").
func NullFloat64String(nf sql.NullFloat64) string {
	if !nf.Valid {
		return ""
	}
	return strconv.FormatFloat(nf.Float64, 'f', -1, 64)
}

// Deref безопасно разыменовывает *string.
func Deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// Float64Ptr возвращает указатель на float64
func Float64Ptr(f float64) *float64 {
	return &f
}

// StringPtr возвращает указатель на string
func StringPtr(s string) *string {
	return &s
}

// NilIfEmpty - пустая строка считается отсутствующим значением.
func NilIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// FloatPtrString форматирует *float64 так же, как NullFloat64String.
func FloatPtrString(f *float64) string {
	if f == nil {
		return ""
	}
	return NullFloat64String(sql.NullFloat64{Float64: *f, Valid: true})
}
