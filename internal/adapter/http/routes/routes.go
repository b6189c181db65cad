package routes

import (
	"log"
	"os"
	"strconv"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "mbg_backend/docs" // This will be auto-generated
	"mbg_backend/internal/adapter/http/handlers"
	"mbg_backend/internal/adapter/persistence/repository"
	"mbg_backend/internal/infrastructure/cache"
	"mbg_backend/internal/infrastructure/database"
	"mbg_backend/internal/infrastructure/email"
	"mbg_backend/internal/infrastructure/payments"
	"mbg_backend/internal/usecase"
	"mbg_backend/internal/usecase/interfaces"
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

	eventRepo := repository.NewEventDynamoRepository(ddb)
	programRepo := repository.NewProgramDynamoRepository(ddb)
	eventRegRepo := repository.NewEventRegistrationDynamoRepository(ddb)
	programRegRepo := repository.NewProgramRegistrationDynamoRepository(ddb)
	eventPaymentRepo := repository.NewEventPaymentDynamoRepository(ddb)
	programPaymentRepo := repository.NewProgramPaymentDynamoRepository(ddb)
	contactRepo := repository.NewContactMessageDynamoRepository(ddb)

	gateway := newPesapalGateway()
	mailer := newMailer()
	adminEmails := email.AdminEmails()

	paymentUseCase := usecase.NewPaymentUseCase(usecase.PaymentUseCaseDeps{
		EventPayments:   eventPaymentRepo,
		ProgramPayments: programPaymentRepo,
		EventRegs:       eventRegRepo,
		ProgramRegs:     programRegRepo,
		Events:          eventRepo,
		Programs:        programRepo,
		Gateway:         gateway,
		Mailer:          mailer,
		CallbackURL:     payments.ConfigFromEnv().CallbackURL,
	})
	eventUseCase := usecase.NewEventUseCase(eventRepo)
	programUseCase := usecase.NewProgramUseCase(programRepo)
	eventRegUseCase := usecase.NewEventRegistrationUseCase(eventRepo, eventRegRepo, eventPaymentRepo, mailer, adminEmails)
	programRegUseCase := usecase.NewProgramRegistrationUseCase(programRepo, programRegRepo, mailer, adminEmails)
	contactUseCase := usecase.NewContactUseCase(contactRepo, mailer, adminEmails)

	eventHandler := handlers.NewEventHandler(eventUseCase, eventRegUseCase)
	programHandler := handlers.NewProgramHandler(programUseCase, programRegUseCase)
	contactHandler := handlers.NewContactHandler(contactUseCase)
	paymentHandler := handlers.NewPaymentHandler(paymentUseCase, frontendURL())

	// Public routes
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addCatalogRoutes(v1, eventHandler, programHandler, contactHandler)
	addPaymentRoutes(v1, paymentHandler)
}

// newPesapalGateway builds the gateway client with its credential cache. The
// cache backend is Redis when REDIS_ADDR is set, in-process memory otherwise.
func newPesapalGateway() interfaces.IPaymentGateway {
	cfg := payments.ConfigFromEnv()

	var store cache.Cache
	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		db, _ := strconv.Atoi(os.Getenv("REDIS_DB"))
		store = cache.NewRedisCache(addr, os.Getenv("REDIS_PASSWORD"), db)
	} else {
		log.Printf("REDIS_ADDR not set, Pesapal credentials cached in process memory")
		store = cache.NewMemoryCache()
	}

	return payments.NewClient(cfg, payments.NewCredentialCache(cfg, store))
}

func newMailer() interfaces.IEmailSender {
	if os.Getenv("SMTP_HOST") == "" {
		log.Printf("SMTP_HOST not set, emails will only be logged")
		return email.LogSender{}
	}
	return email.NewSMTPSenderFromEnv()
}

func frontendURL() string {
	if v := os.Getenv("FRONTEND_URL"); v != "" {
		return v
	}
	return "http://localhost:3000"
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
