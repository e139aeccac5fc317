package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCondition_Matches(t *testing.T) {
	t.Run("диапазон включает границы", func(t *testing.T) {
		c := Between(3000, 3099)
		assert.True(t, c.Matches(3000))
		assert.True(t, c.Matches(3099))
		assert.False(t, c.Matches(2999))
		assert.False(t, c.Matches(3100))
	})

	t.Run("явный перечень", func(t *testing.T) {
		c := OneOf(2110, 2610, 2100, 2600)
		assert.True(t, c.Matches(2610))
		assert.False(t, c.Matches(2111))
	})

	t.Run("исключения", func(t *testing.T) {
		c := Between(3100, 3199).Except(3150, 3160)
		assert.True(t, c.Matches(3100))
		assert.False(t, c.Matches(3150))
		assert.False(t, c.Matches(3160))
	})

	t.Run("фильтр по разряду", func(t *testing.T) {
		c := Between(2000, 2999).WithDigit(100, 6)
		assert.True(t, c.Matches(2610))
		assert.True(t, c.Matches(2600))
		assert.False(t, c.Matches(2110))
	})

	t.Run("Except не меняет исходное условие", func(t *testing.T) {
		base := Between(1, 10)
		_ = base.Except(5)
		assert.True(t, base.Matches(5))
	})
}

func TestCondition_Codes(t *testing.T) {
	assert.Equal(t, []int{2600, 2610}, Between(2600, 2610).WithDigit(10, 0, 1).Except(2601, 2602, 2603, 2604, 2605, 2606, 2607, 2608, 2609).Codes())
	assert.Equal(t, []int{1000, 1010}, OneOf(1010, 1000).Codes())
}

func TestCondition_String(t *testing.T) {
	assert.Equal(t, "3100-3199 except {3150,3160}", Between(3100, 3199).Except(3150, 3160).String())
	assert.Equal(t, "{1000,1010}", OneOf(1000, 1010).String())
	assert.Equal(t, "2000-2999 digit[100] in {1}", Between(2000, 2999).WithDigit(100, 1).String())
}

func TestNewTable(t *testing.T) {
	t.Run("непересекающиеся правила", func(t *testing.T) {
		table, err := NewTable("test",
			Entry[string]{Name: "outlet", Condition: OneOf(3150, 3160), Handler: "outlet"},
			Entry[string]{Name: "reducing", Condition: Between(3100, 3199).Except(3150, 3160), Handler: "reducing"},
		)
		require.NoError(t, err)

		e, ok := table.Resolve(3150)
		require.True(t, ok)
		assert.Equal(t, "outlet", e.Handler)

		e, ok = table.Resolve(3101)
		require.True(t, ok)
		assert.Equal(t, "reducing", e.Handler)

		_, ok = table.Resolve(9999)
		assert.False(t, ok)
	})

	t.Run("пересечение диапазонов отклоняется", func(t *testing.T) {
		_, err := NewTable("broken",
			Entry[int]{Name: "a", Condition: Between(3000, 3999)},
			Entry[int]{Name: "b", Condition: OneOf(3100)},
		)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "3100")
	})

	t.Run("MustTable паникует на пересечении", func(t *testing.T) {
		assert.Panics(t, func() {
			MustTable("broken",
				Entry[int]{Name: "a", Condition: Between(1, 5)},
				Entry[int]{Name: "b", Condition: Between(5, 9)},
			)
		})
	})

	t.Run("Describe перечисляет правила по порядку", func(t *testing.T) {
		table := MustTable("d",
			Entry[int]{Name: "pipe", Condition: Between(1000, 1999)},
			Entry[int]{Name: "cap", Condition: Between(5000, 5999)},
		)
		assert.Equal(t, []string{"pipe: 1000-1999", "cap: 5000-5999"}, table.Describe())
		assert.Equal(t, "d", table.Name())
		assert.Len(t, table.Entries(), 2)
	})
}
