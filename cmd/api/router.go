package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	authdelivery "handoff-backend/internal/auth/delivery"
	authUsecase "handoff-backend/internal/auth/usecase"
	catalogdelivery "handoff-backend/internal/catalog/delivery"
	catalogUsecase "handoff-backend/internal/catalog/usecase"
	uploaddelivery "handoff-backend/internal/upload/delivery"
	uploadUsecase "handoff-backend/internal/upload/usecase"
	"handoff-backend/pkg/config"
)

func SetupRoutes(r *gin.Engine, authUc authUsecase.AuthUsecase, catalogUc catalogUsecase.CatalogUsecase, uploadUc uploadUsecase.UploadUsecase, cfg *config.Config) {
	authHandler := authdelivery.NewAuthHandler(authUc)
	productHandler := catalogdelivery.NewProductHandler(catalogUc)
	uploadHandler := uploaddelivery.NewUploadHandler(uploadUc, cfg.MaxUploadBytes)

	api := r.Group("/api")
	{
		// Health check (no auth required)
		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
		})

		// Auth routes
		auth := api.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
			auth.POST("/logout", authdelivery.AuthMiddleware(authUc), authHandler.Logout)
			auth.GET("/me", authHandler.Me)
		}

		// Product routes; browsing is public, mutations require a confirmed session
		products := api.Group("/products")
		{
			products.GET("", productHandler.ListProducts)
			products.GET("/:id", productHandler.GetProduct)
			products.POST("", authdelivery.AuthMiddleware(authUc), productHandler.CreateProduct)
			products.PATCH("/:id", authdelivery.AuthMiddleware(authUc), productHandler.UpdateProduct)
			products.DELETE("/:id", authdelivery.AuthMiddleware(authUc), productHandler.DeleteProduct)
		}

		// The caller's own listings, sold ones included
		api.GET("/my-products", authdelivery.AuthMiddleware(authUc), productHandler.MyProducts)

		// Single-file upload endpoint (protected)
		api.POST("/upload", authdelivery.AuthMiddleware(authUc), uploadHandler.Upload)
	}
}
