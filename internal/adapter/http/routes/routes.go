package routes

import (
	"log"
	"os"
	"strconv"

	_ "buffet_pizzas/docs" // This will be auto-generated
	"buffet_pizzas/internal/adapter/http/handlers"
	"buffet_pizzas/internal/adapter/persistence/repository"
	"buffet_pizzas/internal/infrastructure/database"
	"buffet_pizzas/internal/infrastructure/mail"
	"buffet_pizzas/internal/infrastructure/payments"
	"buffet_pizzas/internal/infrastructure/pdf"
	"buffet_pizzas/internal/usecase"
	"buffet_pizzas/internal/usecase/interfaces"

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

	bookingRepo := repository.NewBookingDynamoRepository(ddb)
	configRepo := repository.NewPricingConfigDynamoRepository(ddb)
	paymentRepo := repository.NewDepositPaymentDynamoRepository(ddb)
	pageViewRepo := repository.NewPageViewDynamoRepository(ddb)

	bookingUseCase := usecase.NewBookingUseCase(bookingRepo, mail.NewSMTPSender())
	configUseCase := usecase.NewPricingConfigUseCase(configRepo)
	documentUseCase := usecase.NewDocumentUseCase(bookingRepo, configRepo, pdf.NewWriter())
	pageViewUseCase := usecase.NewPageViewUseCase(pageViewRepo)

	var paymentGateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(os.Getenv("MERCADOPAGO_ACCESS_TOKEN"))
	if err != nil {
		log.Printf("Mercado Pago gateway not configured: %v", err)
	} else {
		paymentGateway = mpGateway
	}

	paymentUseCase := usecase.NewDepositPaymentUseCase(paymentRepo, bookingRepo, configRepo, paymentGateway)

	bookingHandler := handlers.NewBookingHandler(bookingUseCase, configUseCase)
	configHandler := handlers.NewPricingConfigHandler(configUseCase)
	documentHandler := handlers.NewDocumentHandler(documentUseCase)
	paymentHandler := handlers.NewDepositPaymentHandler(paymentUseCase)
	pageViewHandler := handlers.NewPageViewHandler(pageViewUseCase)

	// Rotas publicas
	v1 := router.Group("/v1")
	addBuffetRoutes(v1, bookingHandler, configHandler, documentHandler, paymentHandler, pageViewHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
