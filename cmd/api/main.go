package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/agendly/booking-api/internal/config"
	dbpkg "github.com/agendly/booking-api/internal/db"
	"github.com/agendly/booking-api/internal/logging"
	"github.com/agendly/booking-api/internal/routes"
)

func main() {

	logger := logging.Init()
	defer logger.Sync()

	cfg := config.Load()
	db := dbpkg.NewDB(cfg)

	r := gin.Default()

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, cfg)

	logger.Info("server running", zap.String("addr", cfg.Addr()))
	if err := r.Run(cfg.Addr()); err != nil {
		logger.Fatal("failed to start server", zap.Error(err))
	}
}
