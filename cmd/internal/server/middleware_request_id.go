package server

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/zhukovvlad/fittings-go/cmd/pkg/logging"
)

const (
	RequestIDHeader = "X-Request-ID"
	requestIDKey    = "request_id"
)

// RequestIDMiddleware берёт X-Request-ID клиента или генерирует новый UUID
// и возвращает его в ответе.
func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if _, err := uuid.Parse(id); err != nil {
			id = uuid.NewString()
		}
		c.Set(requestIDKey, id)
		c.Header(RequestIDHeader, id)
		c.Next()
	}
}

// requestID возвращает идентификатор запроса или "".
func requestID(c *gin.Context) string {
	return c.GetString(requestIDKey)
}

// requestLogger - логгер обработчика с идентификатором запроса.
func (s *Server) requestLogger(c *gin.Context, handler string) *logging.Logger {
	return s.logger.GetLoggerWithField("handler", handler).GetLoggerWithField(requestIDKey, requestID(c))
}
