package rules

import (
	"fmt"
)

// Entry - одна строка упорядоченной таблицы правил: условие по коду типа и обработчик.
type Entry[H any] struct {
	Name      string
	Condition Condition
	Handler   H
}

// Table - упорядоченная таблица правил, первое совпадение выигрывает.
// Условия строк таблицы не пересекаются, это проверяется в NewTable.
type Table[H any] struct {
	name    string
	entries []Entry[H]
}

// NewTable создаёт таблицу и проверяет, что условия строк попарно не пересекаются.
func NewTable[H any](name string, entries ...Entry[H]) (*Table[H], error) {
	for i := range entries {
		codes := entries[i].Condition.Codes()
		for j := i + 1; j < len(entries); j++ {
			for _, code := range codes {
				if entries[j].Condition.Matches(code) {
					return nil, fmt.Errorf("таблица %q: правила %q и %q пересекаются на коде %d",
						name, entries[i].Name, entries[j].Name, code)
				}
			}
		}
	}
	return &Table[H]{name: name, entries: entries}, nil
}

// MustTable как NewTable, но паникует. Для статических таблиц, проверяемых при старте.
func MustTable[H any](name string, entries ...Entry[H]) *Table[H] {
	t, err := NewTable(name, entries...)
	if err != nil {
		panic(err)
	}
	return t
}

// Resolve возвращает первое правило, условие которого выполняется для кода.
func (t *Table[H]) Resolve(code int) (Entry[H], bool) {
	for _, e := range t.entries {
		if e.Condition.Matches(code) {
			return e, true
		}
	}
	var zero Entry[H]
	return zero, false
}

func (t *Table[H]) Name() string {
	return t.name
}

// Entries возвращает копию строк таблицы в порядке проверки.
func (t *Table[H]) Entries() []Entry[H] {
	out := make([]Entry[H], len(t.entries))
	copy(out, t.entries)
	return out
}

// Describe возвращает описание таблицы построчно: "имя: условие".
func (t *Table[H]) Describe() []string {
	out := make([]string, 0, len(t.entries))
	for _, e := range t.entries {
		out = append(out, fmt.Sprintf("%s: %s", e.Name, e.Condition))
	}
	return out
}
