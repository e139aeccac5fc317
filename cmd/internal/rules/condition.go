package rules

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// Condition описывает множество числовых кодов типа: диапазон [From, To],
// явный перечень кодов, исключения и фильтр по разряду кода.
// Значение Condition неизменяемо: методы With*/Except возвращают копию.
type Condition struct {
	from, to   int
	hasRange   bool
	codes      []int
	except     []int
	digitPlace int
	digits     []int
}

// Between - коды от from до to включительно.
func Between(from, to int) Condition {
	return Condition{from: from, to: to, hasRange: true}
}

// OneOf - явный перечень кодов.
func OneOf(codes ...int) Condition {
	return Condition{codes: slices.Clone(codes)}
}

// Except исключает коды из условия.
func (c Condition) Except(codes ...int) Condition {
	c.except = append(slices.Clone(c.except), codes...)
	return c
}

// WithDigit ограничивает условие кодами, у которых разряд place (10, 100, 1000)
// принимает одно из значений digits. Например, WithDigit(100, 6) для 2610.
func (c Condition) WithDigit(place int, digits ...int) Condition {
	c.digitPlace = place
	c.digits = slices.Clone(digits)
	return c
}

// Matches проверяет, входит ли код в условие.
func (c Condition) Matches(code int) bool {
	inBase := false
	if c.hasRange && code >= c.from && code <= c.to {
		inBase = true
	}
	if !inBase && slices.Contains(c.codes, code) {
		inBase = true
	}
	if !inBase || slices.Contains(c.except, code) {
		return false
	}
	if c.digitPlace > 0 && !slices.Contains(c.digits, (code/c.digitPlace)%10) {
		return false
	}
	return true
}

// Codes перечисляет все коды, подходящие под условие, по возрастанию.
func (c Condition) Codes() []int {
	var out []int
	if c.hasRange {
		for code := c.from; code <= c.to; code++ {
			if c.Matches(code) {
				out = append(out, code)
			}
		}
	}
	for _, code := range c.codes {
		if c.Matches(code) && !slices.Contains(out, code) {
			out = append(out, code)
		}
	}
	slices.Sort(out)
	return out
}

// String возвращает описание условия для логов и ошибок.
func (c Condition) String() string {
	var parts []string
	if c.hasRange {
		parts = append(parts, fmt.Sprintf("%d-%d", c.from, c.to))
	}
	if len(c.codes) > 0 {
		parts = append(parts, "{"+joinInts(c.codes)+"}")
	}
	desc := strings.Join(parts, " | ")
	if c.digitPlace > 0 {
		desc += fmt.Sprintf(" digit[%d] in {%s}", c.digitPlace, joinInts(c.digits))
	}
	if len(c.except) > 0 {
		desc += " except {" + joinInts(c.except) + "}"
	}
	return desc
}

func joinInts(values []int) string {
	s := make([]string, len(values))
	for i, v := range values {
		s[i] = strconv.Itoa(v)
	}
	return strings.Join(s, ",")
}
