package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/zhukovvlad/fittings-go/cmd/internal/api_models"
	"github.com/zhukovvlad/fittings-go/cmd/internal/item"
	"github.com/zhukovvlad/fittings-go/cmd/internal/services/apierrors"
	"github.com/zhukovvlad/fittings-go/cmd/internal/util"
	"github.com/zhukovvlad/fittings-go/cmd/pkg/logging"
)

// calculateItemsHandler рассчитывает одну позицию ("item") или пакет ("items").
// Для пакета ошибки позиций возвращаются в их ERRORS, ответ - 200.
func (s *Server) calculateItemsHandler(c *gin.Context) {
	logger := s.requestLogger(c, "calculateItemsHandler")

	var req api_models.CalculateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warnf("Ошибка парсинга JSON: %v", err)
		c.JSON(http.StatusBadRequest, errorResponse(apierrors.NewValidationError("некорректный JSON: %v", err)))
		return
	}

	switch {
	case req.Item != nil && req.Items != nil:
		c.JSON(http.StatusBadRequest, errorResponse(apierrors.NewValidationError("нужно передать либо item, либо items")))
	case req.Items != nil:
		s.calculateBatch(c, logger, req.Items)
	case req.Item != nil:
		s.calculateSingle(c, logger, req.Item)
	default:
		c.JSON(http.StatusBadRequest, errorResponse(apierrors.NewValidationError("позиция не передана")))
	}
}

func (s *Server) calculateSingle(c *gin.Context, logger *logging.Logger, payload api_models.ItemPayload) {
	it, err := itemFromPayload(payload)
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	if err := s.services.Calculation.CalculateItem(it); err != nil {
		status := statusFor(err)
		if status == http.StatusInternalServerError {
			logger.Errorf("Ошибка расчёта позиции typeId %q: %v", it.TypeID, err)
		}
		it.Attributes.AddError(err.Error())
		c.JSON(status, api_models.CalculateItemResponse{Item: it, Error: util.StringPtr(err.Error())})
		return
	}

	c.JSON(http.StatusOK, api_models.CalculateItemResponse{Item: it})
}

func (s *Server) calculateBatch(c *gin.Context, logger *logging.Logger, payloads []api_models.ItemPayload) {
	items := make([]*item.PipeFittingItem, 0, len(payloads))
	for i, p := range payloads {
		it, err := itemFromPayload(p)
		if err != nil {
			c.JSON(http.StatusBadRequest, errorResponse(apierrors.NewValidationError("позиция %d: %v", i, err)))
			return
		}
		items = append(items, it)
	}

	summary, err := s.services.Calculation.CalculateBatch(c.Request.Context(), items)
	if err != nil {
		status := statusFor(err)
		if status == http.StatusInternalServerError {
			logger.Errorf("Ошибка пакетного расчёта: %v", err)
		}
		c.JSON(status, errorResponse(err))
		return
	}

	c.JSON(http.StatusOK, api_models.CalculateBatchResponse{
		Items:  items,
		Total:  summary.Total,
		Failed: summary.Failed,
	})
}
