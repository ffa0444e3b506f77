package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	pipelineHTTP "syllabus-extraction/internal/pipeline/delivery/http"
)

func (srv HTTPServer) mapHandlers() error {
	srv.registerMiddlewares()
	srv.registerSystemRoutes()
	srv.registerDomainRoutes()
	return nil
}

func (srv HTTPServer) registerMiddlewares() {
	srv.gin.Use(gin.Recovery())
}

func (srv HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)
}

func (srv HTTPServer) registerDomainRoutes() {
	ctx := context.Background()

	api := srv.gin.Group("/api/v1")
	pipelineHTTP.RegisterRoutes(api, srv.pipelineHandler)
	srv.l.Infof(ctx, "extraction route registered at POST /api/v1/schedules/extract")
}
