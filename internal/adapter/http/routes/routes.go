package routes

import (
	"context"
	"strconv"
	"time"

	_ "engenharia_os/docs"
	"engenharia_os/internal/adapter/http/handlers"
	"engenharia_os/internal/adapter/persistence/memory"
	"engenharia_os/internal/adapter/persistence/repository"
	"engenharia_os/internal/domain/entities"
	"engenharia_os/internal/infrastructure/config"
	"engenharia_os/internal/infrastructure/database"
	"engenharia_os/internal/infrastructure/export"
	"engenharia_os/internal/infrastructure/logging"
	"engenharia_os/internal/infrastructure/notification"
	"engenharia_os/internal/usecase"
	"engenharia_os/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Run will start the server
func Run() {
	cfg, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("invalid configuration")
	}
	logger := logging.New(cfg.LogLevel, cfg.IsProduction())
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	repo, err := newServiceOrderRepository(context.Background(), cfg, logger)
	if err != nil {
		logger.WithError(err).Fatal("failed to connect to the service order store")
	}

	router := newRouter(cfg, logger, repo)

	logger.WithFields(logrus.Fields{"port": cfg.Port, "store": cfg.StoreBackend}).Info("starting server")
	if err := router.Run(":" + strconv.Itoa(cfg.Port)); err != nil {
		logger.WithError(err).Fatal("failed to startup the application")
	}
}

func newRouter(cfg config.Config, logger *logrus.Logger, repo interfaces.IServiceOrderRepository) *gin.Engine {
	router := gin.New()
	setMiddlewares(router, logger)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	sessions := memory.NewSessionStore(cfg.SessionTTL)
	feed := notification.NewSessionFeed(cfg.NotificationHistory, logger)
	sessions.OnEvict(feed.Forget)
	lifecycle := usecase.NewServiceOrderLifecycleUseCase(repo, sessions, feed, cfg.HourlyRate, logger)

	serviceOrderHandler := handlers.NewServiceOrderHandler(lifecycle, export.NewXLSXExporter(cfg.HourlyRate), cfg.HourlyRate, logger)
	lifecycleHandler := handlers.NewLifecycleHandler(lifecycle, feed, cfg.HourlyRate)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addServiceOrderRoutes(v1, serviceOrderHandler)
	addLifecycleRoutes(v1, lifecycleHandler)

	return router
}

func newServiceOrderRepository(ctx context.Context, cfg config.Config, logger *logrus.Logger) (interfaces.IServiceOrderRepository, error) {
	if cfg.StoreBackend == config.StoreBackendMemory {
		logger.Warn("using in-memory service order store with demo data")
		return memory.NewServiceOrderRepository(demoServiceOrders(time.Now().UTC())...), nil
	}

	ddb, err := database.ConnectDynamoDB(ctx, cfg.DynamoDB)
	if err != nil {
		return nil, err
	}
	return repository.NewServiceOrderDynamoRepository(ddb, cfg.DynamoDB.ServiceOrdersTable, cfg.DynamoDB.StatusIndex), nil
}

func setMiddlewares(router *gin.Engine, logger *logrus.Logger) {
	router.Use(logging.GinMiddleware(logger))
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered any) {
		logger.WithField("panic", recovered).Error("recovered from panic")
		c.AbortWithStatus(500)
	}))
}

// demoServiceOrders seeds the memory backend with one OS per editable stage.
func demoServiceOrders(now time.Time) []entities.ServiceOrder {
	day := func(offset int) *time.Time {
		d := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC).AddDate(0, 0, offset)
		return &d
	}
	return []entities.ServiceOrder{
		{
			ID:                "os-demo-1",
			Numero:            1,
			Status:            entities.OSStatusEmPlanejamento,
			Cliente:           "Planta Norte",
			SolicitanteNome:   "Ana Souza",
			Disciplina:        "Elétrica",
			CCA:               "CCA-100",
			ResponsavelEM:     "Carlos Lima",
			DataCompromissada: day(30),
			Version:           1,
			CreatedAt:         now,
			UpdatedAt:         now,
		},
		{
			ID:                 "os-demo-2",
			Numero:             2,
			Status:             entities.OSStatusEmExecucao,
			Cliente:            "Planta Sul",
			SolicitanteNome:    "Bruno Reis",
			Disciplina:         "Mecânica",
			CCA:                "CCA-200",
			ResponsavelEM:      "Carlos Lima",
			DataCompromissada:  day(20),
			DataInicioPrevista: day(-5),
			DataFimPrevista:    day(10),
			HHPlanejado:        40,
			ValorOrcamento:     3800,
			Version:            1,
			CreatedAt:          now,
			UpdatedAt:          now,
		},
	}
}
