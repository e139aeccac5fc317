package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/zhukovvlad/fittings-go/cmd/internal/api_models"
)

func (s *Server) HomeHandler(c *gin.Context) {
	c.JSON(200, gin.H{
		"message": "Welcome to the Fittings API",
	})
}

func (s *Server) getStatsHandler(c *gin.Context) {
	c.JSON(http.StatusOK, api_models.StatsResponse{
		Dataset: newDatasetStats(s.services.Dataset.Stats()),
		Rules: api_models.RulesStats{
			Classification: s.services.Dispatcher.Describe(),
			MaterialPrice:  s.services.Material.Describe(),
			EffortHours:    s.services.Effort.Describe(),
		},
		Message: "Статистика успешно получена",
	})
}
