package routes

import (
	"net/http"

	"oneflow/internal/adapter/http/handlers"
	"oneflow/internal/usecase"

	"github.com/gin-gonic/gin"
)

const (
	PathAuth      = "/auth"
	PathCustomers = "/customers"
	PathServices  = "/services"
	PathProducts  = "/products"
	PathEstimates = "/estimates"
)

func addPingRoutes(rg *gin.RouterGroup) {
	rg.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
}

func addAuthRoutes(rg *gin.RouterGroup, authHandler *handlers.AuthHandler, authUseCase usecase.IAuthUseCase) {
	authGroup := rg.Group(PathAuth)
	{
		authGroup.POST("/login", authHandler.Login)
		authGroup.POST("/signup", authHandler.SignUp)
		authGroup.POST("/confirm-email", authHandler.ConfirmEmail)
		authGroup.POST("/logout", authHandler.Logout)
		authGroup.GET("/me", handlers.RequireAuth(authUseCase), authHandler.Me)
	}
}

func addConsoleRoutes(
	rg *gin.RouterGroup,
	customerHandler *handlers.CustomerHandler,
	serviceHandler *handlers.ServiceHandler,
	productHandler *handlers.ProductHandler,
	estimateHandler *handlers.EstimateHandler,
) {
	customers := rg.Group(PathCustomers)
	{
		customers.GET("", customerHandler.ListCustomers)
		customers.POST("", customerHandler.CreateCustomer)
		customers.GET("/:id", customerHandler.GetCustomer)
		customers.PUT("/:id", customerHandler.UpdateCustomer)
		customers.DELETE("/:id", customerHandler.DeleteCustomer)
	}

	services := rg.Group(PathServices)
	{
		services.GET("", serviceHandler.ListServices)
		services.POST("", serviceHandler.CreateService)
		services.GET("/:id", serviceHandler.GetService)
		services.PUT("/:id", serviceHandler.UpdateService)
		services.DELETE("/:id", serviceHandler.DeleteService)
	}

	products := rg.Group(PathProducts)
	{
		products.GET("", productHandler.ListProducts)
		products.POST("", productHandler.CreateProduct)
		products.GET("/:id", productHandler.GetProduct)
		products.PUT("/:id", productHandler.UpdateProduct)
		products.DELETE("/:id", productHandler.DeleteProduct)
	}

	estimates := rg.Group(PathEstimates)
	{
		estimates.GET("", estimateHandler.ListEstimates)
		estimates.POST("", estimateHandler.CreateEstimate)
		estimates.GET("/:id", estimateHandler.GetEstimate)
		estimates.PUT("/:id", estimateHandler.UpdateEstimate)
		estimates.DELETE("/:id", estimateHandler.DeleteEstimate)
		estimates.PATCH("/:id/approve", estimateHandler.ApproveEstimate)
	}
}
