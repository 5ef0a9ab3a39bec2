package api

import (
	"github.com/gin-gonic/gin"

	authUsecase "handoff-backend/internal/auth/usecase"
	catalogUsecase "handoff-backend/internal/catalog/usecase"
	uploadUsecase "handoff-backend/internal/upload/usecase"
	"handoff-backend/pkg/config"
)

type Handler struct {
	authUsecase    authUsecase.AuthUsecase
	catalogUsecase catalogUsecase.CatalogUsecase
	uploadUsecase  uploadUsecase.UploadUsecase
	config         *config.Config
}

func NewHandler(authUc authUsecase.AuthUsecase, catalogUc catalogUsecase.CatalogUsecase, uploadUc uploadUsecase.UploadUsecase, cfg *config.Config) *Handler {
	return &Handler{
		authUsecase:    authUc,
		catalogUsecase: catalogUc,
		uploadUsecase:  uploadUc,
		config:         cfg,
	}
}

func (h *Handler) Start(addr string) error {
	r := gin.Default()
	gin.SetMode(gin.ReleaseMode)

	// CORS middleware
	r.Use(func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")
		if origin != "" {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
		} else {
			c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		}

		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	// Setup routes
	SetupRoutes(r, h.authUsecase, h.catalogUsecase, h.uploadUsecase, h.config)

	return r.Run(addr)
}
