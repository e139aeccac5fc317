package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLogger_GetLoggerWithField(t *testing.T) {
	base := NewNopLogger()

	l := base.GetLoggerWithField("handler", "calculateItemsHandler").GetLoggerWithField("request_id", "42")

	assert.Equal(t, "calculateItemsHandler", l.Data["handler"])
	assert.Equal(t, "42", l.Data["request_id"])
	assert.Empty(t, base.Data, "исходный логгер не меняется")
}

func TestGetLogger(t *testing.T) {
	assert.NotNil(t, GetLogger().Entry)
}
