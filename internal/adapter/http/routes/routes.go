package routes

import (
	"log"
	"strconv"

	_ "oneflow/docs" // swag-generated swagger registration
	"oneflow/internal/adapter/http/handlers"
	"oneflow/internal/adapter/persistence/repository"
	"oneflow/internal/config"
	"oneflow/internal/domain/entities"
	"oneflow/internal/infrastructure/auth"
	"oneflow/internal/infrastructure/database"
	"oneflow/internal/usecase"
	"oneflow/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

// Run wires the application and starts the server.
func Run() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes(cfg)

	if err := router.Run(":" + strconv.Itoa(cfg.Server.Port)); err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes(cfg config.Config) {
	customerRepo, serviceRepo, productRepo, estimateRepo := buildRepositories(cfg.Storage)

	customerUseCase := usecase.NewCustomerUseCase(customerRepo)
	serviceUseCase := usecase.NewServiceUseCase(serviceRepo)
	productUseCase := usecase.NewProductUseCase(productRepo)
	estimateUseCase := usecase.NewEstimateUseCase(estimateRepo, customerRepo, serviceRepo, productRepo)

	provider := auth.NewLocalAuthProvider(cfg.Auth.TokenSecret, cfg.Auth.TokenIssuer, cfg.Auth.TokenTTL)
	authUseCase := usecase.NewAuthUseCase(provider)

	customerHandler := handlers.NewCustomerHandler(customerUseCase)
	serviceHandler := handlers.NewServiceHandler(serviceUseCase)
	productHandler := handlers.NewProductHandler(productUseCase)
	estimateHandler := handlers.NewEstimateHandler(estimateUseCase)
	authHandler := handlers.NewAuthHandler(authUseCase)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addAuthRoutes(v1, authHandler, authUseCase)

	// Everything below the session boundary requires a valid token.
	console := v1.Group("")
	console.Use(handlers.RequireAuth(authUseCase))
	addConsoleRoutes(console, customerHandler, serviceHandler, productHandler, estimateHandler)
}

// buildRepositories selects the storage backing. The repositories share
// one interface, so the rest of the wiring never knows which driver is
// active.
func buildRepositories(cfg config.StorageConfig) (
	interfaces.ICatalogRepository[entities.Customer],
	interfaces.ICatalogRepository[entities.Service],
	interfaces.ICatalogRepository[entities.Product],
	interfaces.IEstimateRepository,
) {
	switch cfg.Driver {
	case "dynamodb":
		ddb := database.ConnectDynamoDB()
		return repository.NewCatalogDynamoRepository[entities.Customer](ddb, cfg.CustomersTable),
			repository.NewCatalogDynamoRepository[entities.Service](ddb, cfg.ServicesTable),
			repository.NewCatalogDynamoRepository[entities.Product](ddb, cfg.ProductsTable),
			repository.NewEstimateDynamoRepository(ddb, cfg.EstimatesTable)
	default:
		if cfg.Driver != "memory" {
			log.Printf("Unknown STORAGE_DRIVER %q, falling back to memory", cfg.Driver)
		}
		return repository.NewMemoryCatalogRepository[entities.Customer](),
			repository.NewMemoryCatalogRepository[entities.Service](),
			repository.NewMemoryCatalogRepository[entities.Product](),
			repository.NewMemoryEstimateRepository()
	}
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
