package server

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/zhukovvlad/fittings-go/cmd/internal/config"
	"github.com/zhukovvlad/fittings-go/cmd/internal/services/calculation"
	"github.com/zhukovvlad/fittings-go/cmd/internal/services/dataset"
	"github.com/zhukovvlad/fittings-go/cmd/internal/services/effort"
	"github.com/zhukovvlad/fittings-go/cmd/internal/services/material"
	"github.com/zhukovvlad/fittings-go/cmd/internal/services/ruleset"
	"github.com/zhukovvlad/fittings-go/cmd/internal/services/suggestion"
	"github.com/zhukovvlad/fittings-go/cmd/pkg/logging"
)

// Services - зависимости HTTP-слоя. Все сервисы создаются в main и только читают справочник.
type Services struct {
	Dispatcher  *ruleset.Dispatcher
	Dataset     *dataset.Dataset
	Calculation *calculation.CalculationService
	Suggestion  *suggestion.Engine
	Material    *material.Calculator
	Effort      *effort.Calculator
}

type Server struct {
	router   *gin.Engine
	logger   *logging.Logger
	services Services
	config   *config.Config
}

func NewServer(services Services, logger *logging.Logger, cfg *config.Config) *Server {
	server := &Server{
		logger:   logger,
		services: services,
		config:   cfg,
	}
	router := gin.Default()

	// Настройка CORS
	corsConfig := cors.DefaultConfig()
	if cfg.IsDebug != nil && *cfg.IsDebug {
		// В режиме отладки - локальные origins фронтенда
		corsConfig.AllowOrigins = []string{
			"http://localhost:5173",
			"http://127.0.0.1:5173",
		}
	} else {
		if len(cfg.CORS.AllowedOrigins) > 0 {
			corsConfig.AllowOrigins = cfg.CORS.AllowedOrigins
		} else {
			// В production CORS origins должны быть явно настроены
			logger.Warn("CORS allowed_origins not configured in production - using restrictive default")
			corsConfig.AllowOrigins = []string{}
		}
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Accept-Language", RequestIDHeader}
	corsConfig.ExposeHeaders = []string{"Content-Length", RequestIDHeader}
	router.Use(cors.New(corsConfig))
	router.Use(RequestIDMiddleware())

	router.GET("/home", server.HomeHandler)
	router.GET("/api/stats", server.getStatsHandler)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// --- API V1 ---
	v1 := router.Group("/api/v1")
	if cfg.RateLimit.RequestsPerSecond > 0 {
		v1.Use(RateLimitMiddleware(cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst))
	}
	{
		v1.POST("/items/calculate", server.calculateItemsHandler)
		v1.POST("/items/candidates", server.candidatesHandler)
		v1.GET("/type-codes", server.typeCodesHandler)
	}

	server.router = router
	return server
}

// Router нужен тестам для вызова ServeHTTP без запуска сервера.
func (s *Server) Router() *gin.Engine {
	return s.router
}

func (s *Server) Start(address string) error {
	return s.router.Run(address)
}

func errorResponse(err error) gin.H {
	return gin.H{"error": err.Error()}
}
