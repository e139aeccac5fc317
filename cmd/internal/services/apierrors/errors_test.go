package apierrors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsFatal(t *testing.T) {
	t.Run("пробелы в таблицах правил фатальны", func(t *testing.T) {
		assert.True(t, IsFatal(fmt.Errorf("%w: typeId 9999", ErrRulesetNotFound)))
		assert.True(t, IsFatal(fmt.Errorf("%w: typeId 9999", ErrCalculationConditionNotFound)))
	})

	t.Run("ошибки позиции не фатальны", func(t *testing.T) {
		assert.False(t, IsFatal(ErrMaterialNotFound))
		assert.False(t, IsFatal(ErrPipeFittingAmbiguous))
		assert.False(t, IsFatal(NewValidationError("плохой ввод")))
	})
}

func TestIsClientError(t *testing.T) {
	assert.True(t, IsClientError(fmt.Errorf("%w: dn1", ErrItemIncomplete)))
	assert.True(t, IsClientError(NewValidationError("column %s", "x")))
	assert.True(t, IsClientError(fmt.Errorf("обёртка: %w", ErrPipeFittingNotFound)))
	assert.False(t, IsClientError(ErrRulesetNotFound))
	assert.False(t, IsClientError(NewNotFoundError("нет")))
}

func TestErrorMessages(t *testing.T) {
	assert.Equal(t, "column x", NewValidationError("column %s", "x").Error())
	assert.Equal(t, "нет 5", NewNotFoundError("нет %d", 5).Error())
}
