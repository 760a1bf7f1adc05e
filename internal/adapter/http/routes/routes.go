package routes

import (
	"log"
	"os"
	"strconv"
	"strings"

	_ "pagove/docs" // This will be auto-generated
	"pagove/internal/adapter/http/handlers"
	repository2 "pagove/internal/adapter/persistence/repository"
	"pagove/internal/infrastructure/banks"
	"pagove/internal/infrastructure/database"
	"pagove/internal/infrastructure/events"
	"pagove/internal/usecase"
	"pagove/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const PORT = 8080

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	ddb := database.ConnectDynamoDB()

	referenceRepo := repository2.NewPaymentReferenceDynamoRepository(ddb)
	groupRepo := repository2.NewPaymentGroupDynamoRepository(ddb)
	bankTxRepo := repository2.NewBankTransactionDynamoRepository(ddb)

	registry := banks.NewDefaultRegistry()

	settlement, dispatcher := newEventPublishers()

	referenceUseCase := usecase.NewReferenceUseCase(referenceRepo, registry)
	groupUseCase := usecase.NewGroupUseCase(groupRepo, referenceRepo, registry, settlement, dispatcher)
	confirmationUseCase := usecase.NewConfirmationUseCase(referenceRepo, bankTxRepo, groupRepo, registry, groupUseCase, settlement, dispatcher)

	paymentHandler := handlers.NewPaymentHandler(referenceUseCase, confirmationUseCase)
	groupHandler := handlers.NewGroupHandler(groupUseCase, confirmationUseCase)

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addPaymentRoutes(v1, paymentHandler, groupHandler)
}

// newEventPublishers wires Kafka when KAFKA_BROKERS is set and falls back to
// log-only publishing otherwise, so the service still runs without a broker.
func newEventPublishers() (interfaces.ISettlementNotifier, interfaces.INotificationDispatcher) {
	brokersEnv := os.Getenv("KAFKA_BROKERS")
	if brokersEnv == "" {
		log.Printf("[events] KAFKA_BROKERS not set, events will be logged only")
		fallback := events.NewLogPublisher()
		return fallback, fallback
	}

	producer, err := events.NewKafkaPublisher(strings.Split(brokersEnv, ","))
	if err != nil {
		log.Printf("[events] kafka producer unavailable (%v), events will be logged only", err)
		fallback := events.NewLogPublisher()
		return fallback, fallback
	}
	return producer, producer
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
