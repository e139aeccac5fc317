package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/text/language"

	"github.com/zhukovvlad/fittings-go/cmd/internal/api_models"
	"github.com/zhukovvlad/fittings-go/cmd/internal/item"
	"github.com/zhukovvlad/fittings-go/cmd/internal/services/apierrors"
)

// candidatesHandler возвращает допустимые значения поля для частично заполненной позиции.
func (s *Server) candidatesHandler(c *gin.Context) {
	var req api_models.CandidatesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(apierrors.NewValidationError("некорректный JSON: %v", err)))
		return
	}

	col, ok := item.ParseColumn(req.Column)
	if !ok {
		c.JSON(http.StatusBadRequest, errorResponse(apierrors.NewValidationError("неизвестное поле %q", req.Column)))
		return
	}
	it, err := itemFromPayload(req.Item)
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	locale := req.Locale
	if locale == "" {
		locale = acceptLanguage(c)
	}

	candidates, err := s.services.Suggestion.GetCandidates(it, col, locale)
	if err != nil {
		status := statusFor(err)
		if status == http.StatusInternalServerError {
			s.requestLogger(c, "candidatesHandler").Errorf("Ошибка подсказок для %s (typeId %q): %v", col, it.TypeID, err)
		}
		c.JSON(status, errorResponse(err))
		return
	}

	c.JSON(http.StatusOK, api_models.CandidatesResponse{
		Column:     string(col),
		Candidates: newCandidateDTOs(candidates),
	})
}

// typeCodesHandler - список доступных кодов типа по категориям.
// Локаль берётся из параметра locale или заголовка Accept-Language.
func (s *Server) typeCodesHandler(c *gin.Context) {
	locale := c.Query("locale")
	if locale == "" {
		locale = acceptLanguage(c)
	}

	candidates, err := s.services.Suggestion.GetCandidates(&item.PipeFittingItem{}, item.ColumnTypeID, locale)
	if err != nil {
		s.requestLogger(c, "typeCodesHandler").Errorf("ошибка получения кодов типа: %v", err)
		c.JSON(statusFor(err), errorResponse(err))
		return
	}

	out := make([]api_models.TypeCodeDTO, 0, len(candidates))
	for _, cand := range candidates {
		code, _ := cand.Value.(string)
		out = append(out, api_models.TypeCodeDTO{
			Code:          code,
			Label:         cand.Label,
			Category:      cand.Group,
			CategoryLabel: cand.GroupLabel,
		})
	}
	c.JSON(http.StatusOK, out)
}

// acceptLanguage возвращает самый приоритетный язык из Accept-Language или "".
// Пустая строка означает локаль по умолчанию.
func acceptLanguage(c *gin.Context) string {
	header := c.GetHeader("Accept-Language")
	if header == "" {
		return ""
	}
	tags, _, err := language.ParseAcceptLanguage(header)
	if err != nil || len(tags) == 0 {
		return ""
	}
	return tags[0].String()
}
