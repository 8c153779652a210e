package main

import (
	"context"
	"fmt"
	"net/http"
	"time"

	_ "github.com/adamingor/dodo-pizza-api/docs" // Import generated docs
	"github.com/adamingor/dodo-pizza-api/internal/auth"
	"github.com/adamingor/dodo-pizza-api/internal/config"
	"github.com/adamingor/dodo-pizza-api/internal/controllers"
	"github.com/adamingor/dodo-pizza-api/internal/database"
	"github.com/adamingor/dodo-pizza-api/internal/mailer"
	"github.com/adamingor/dodo-pizza-api/internal/middleware"
	"github.com/adamingor/dodo-pizza-api/internal/models"
	"github.com/adamingor/dodo-pizza-api/internal/services"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"github.com/swaggo/files"
	"github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

var (
	db              *gorm.DB
	configuration   *config.Config
	sessions        *auth.Sessions
	pizzaController controllers.PizzaController
	cartController  controllers.CartController
	orderController controllers.OrderController
	authController  *controllers.AuthController
)

// @title Dodo Pizza API
// @version 1.0
// @description Order-management backend for the Dodo Pizza storefront
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey CookieAuth
// @in cookie
// @name auth-token
func main() {
	// Load environment variables
	loadDotenvFile()

	// Initialize logger
	setUpLogger()

	// Load configuration
	configuration = loadConfig()

	// Initialize database connection
	setupDatabase(configuration)

	// Session tokens for the auth cookie
	sessions = auth.NewSessions(configuration.SessionSecret, time.Duration(configuration.SessionTTLHours)*time.Hour)

	// Initialize services and controllers
	setupControllers()

	// Initialize Gin router
	var router *gin.Engine = setupRouter()

	// Start the server
	log.Infof("Starting server on %s:%d", configuration.Host, configuration.Port)
	router.Run(fmt.Sprintf("%v:%d", configuration.Host, configuration.Port))
}

// checkPanicErr checks if an error occurred and panics if it did
func checkPanicErr(err error) {
	if err != nil {
		panic(err)
	}
}

// loadDotenvFile loads environment variables from a .env file
// If the file is not found, it will log a warning and use system environment variables
func loadDotenvFile() {
	if err := godotenv.Load(); err != nil {
		log.Warn("No .env file found, using system environment variables")
	}
}

// setUpLogger initializes the logger with a JSON formatter and sets the log level based on the environment
func setUpLogger() {
	log.SetFormatter(&log.JSONFormatter{})
	environment := config.GetEnvWithDefault("APP_ENV", "development")
	switch environment {
	case "development":
		log.SetLevel(log.DebugLevel)
	case "production":
		log.SetLevel(log.ErrorLevel)
	default:
		log.SetLevel(log.InfoLevel)
	}
}

// loadConfig loads the application configuration from environment variables
// It returns a Config struct or panics if there is an error
func loadConfig() *config.Config {
	conf, err := config.LoadConfig()
	checkPanicErr(err)
	return conf
}

// setupDatabase initializes the database connection, migrates the schema and
// seeds the catalog when it is empty
func setupDatabase(conf *config.Config) *gorm.DB {
	var err error
	db, err = database.Init(conf)
	checkPanicErr(err)

	// Seed only if the catalog is empty
	var count int64
	db.Model(&models.Pizza{}).Count(&count)
	if count == 0 {
		log.Info("Database is empty, seeding initial data")
		seedDatabase()
	} else {
		log.Info("Database already seeded with initial data")
	}
	return db
}

// seedDatabase seeds the catalog with a small starter set of pizzas
func seedDatabase() {
	// Shared rows are created up front so the pizzas below reference them
	// by id instead of inserting duplicates.
	tomato := models.Ingredient{Name: "Tomato Sauce"}
	mozzarella := models.Ingredient{Name: "Mozzarella"}
	basil := models.Ingredient{Name: "Basil", IsRemovable: true}
	pepperoni := models.Ingredient{Name: "Pepperoni", IsRemovable: true}
	olives := models.Ingredient{Name: "Olives", IsRemovable: true}
	for _, ingredient := range []*models.Ingredient{&tomato, &mozzarella, &basil, &pepperoni, &olives} {
		if err := db.Create(ingredient).Error; err != nil {
			log.WithError(err).Warn("Failed to seed ingredient")
		}
	}

	extraCheese := models.AdditionalIngredient{Name: "Extra Cheese", Price: 1.99, Image: "/img/extras/cheese.png"}
	jalapenos := models.AdditionalIngredient{Name: "Jalapenos", Price: 1.49, Image: "/img/extras/jalapenos.png"}
	for _, additional := range []*models.AdditionalIngredient{&extraCheese, &jalapenos} {
		if err := db.Create(additional).Error; err != nil {
			log.WithError(err).Warn("Failed to seed additional ingredient")
		}
	}

	small := models.Attribute{Type: "size", Name: "25cm"}
	large := models.Attribute{Type: "size", Name: "35cm"}
	thin := models.Attribute{Type: "dough", Name: "thin"}
	for _, attribute := range []*models.Attribute{&small, &large, &thin} {
		if err := db.Create(attribute).Error; err != nil {
			log.WithError(err).Warn("Failed to seed attribute")
		}
	}

	pizzas := []models.Pizza{
		{
			Name: "Margherita", Type: "classic",
			Ingredients: []models.Ingredient{tomato, mozzarella, basil},
			Variations: []models.PizzaVariation{
				{Image: "/img/margherita-25.png", Price: 10.99,
					Ingredients:           []models.Ingredient{tomato, mozzarella, basil},
					AdditionalIngredients: []models.AdditionalIngredient{extraCheese},
					Attributes:            []models.Attribute{small, thin}},
				{Image: "/img/margherita-35.png", Price: 14.99,
					Ingredients:           []models.Ingredient{tomato, mozzarella, basil},
					AdditionalIngredients: []models.AdditionalIngredient{extraCheese},
					Attributes:            []models.Attribute{large}},
			},
		},
		{
			Name: "Pepperoni", Type: "meat",
			Ingredients: []models.Ingredient{tomato, mozzarella, pepperoni},
			Variations: []models.PizzaVariation{
				{Image: "/img/pepperoni-25.png", Price: 12.99,
					Ingredients:           []models.Ingredient{tomato, mozzarella, pepperoni},
					AdditionalIngredients: []models.AdditionalIngredient{extraCheese, jalapenos},
					Attributes:            []models.Attribute{small}},
			},
		},
		{
			Name: "Vegetarian", Type: "veggie",
			Ingredients: []models.Ingredient{tomato, mozzarella, olives},
			Variations: []models.PizzaVariation{
				{Image: "/img/veggie-25.png", Price: 11.99,
					Ingredients: []models.Ingredient{tomato, mozzarella, olives},
					Attributes:  []models.Attribute{small}},
			},
		},
	}
	for _, pizza := range pizzas {
		if err := db.Create(&pizza).Error; err != nil {
			log.WithError(err).Warn("Failed to seed pizza")
		}
	}
	log.Info("Database seeded successfully")
}

// setupControllers builds the service and controller graph
func setupControllers() {
	var mail mailer.Mailer = mailer.LogMailer{}
	if configuration.SMTPHost != "" {
		mail = mailer.NewSMTPMailer(configuration.SMTPHost, configuration.SMTPPort,
			configuration.SMTPUser, configuration.SMTPPassword, configuration.MailFrom)
	}

	var google auth.GoogleVerifier
	if configuration.GoogleClientID != "" {
		verifier, err := auth.NewGoogleVerifier(context.Background(), configuration.GoogleClientID)
		checkPanicErr(err)
		google = verifier
	} else {
		log.Warn("GOOGLE_CLIENT_ID not set, Google sign-in disabled")
		google = disabledGoogleVerifier{}
	}

	pizzaController = controllers.NewPizzaController(services.NewPizzaService(db))
	cartController = controllers.NewCartController(services.NewCartService(db))
	orderController = controllers.NewOrderController(services.NewOrderService(db))
	authController = controllers.NewAuthController(services.NewUserService(db), sessions, google, mail,
		configuration.IsProduction(), configuration.AppURL)
}

// disabledGoogleVerifier rejects every token when no client id is configured
type disabledGoogleVerifier struct{}

func (disabledGoogleVerifier) Verify(_ context.Context, _ string) (auth.GoogleProfile, error) {
	return auth.GoogleProfile{}, fmt.Errorf("google sign-in is not configured")
}

// setupRouter initializes the Gin router and sets up the routes
// It returns the configured router
func setupRouter() *gin.Engine {
	router := gin.Default()

	// The storefront runs on its own origin and authenticates with the
	// session cookie, so credentialed CORS is required.
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{configuration.AppURL}
	corsConfig.AllowCredentials = true
	router.Use(cors.New(corsConfig))

	setupRoutes(router)

	return router
}

// setupRoutes defines the routes for the Gin router
func setupRoutes(router *gin.Engine) {
	// Health check endpoint
	router.GET("/health", healthCheckHandler)

	// Authentication routes
	authGroup := router.Group("/auth")
	{
		authGroup.POST("/register", authController.Register)
		authGroup.POST("/login", authController.Login)
		authGroup.POST("/google", authController.GoogleSignIn)
		authGroup.POST("/logout", authController.Logout)
		authGroup.GET("/me", authController.Me)
		authGroup.POST("/check-email", authController.CheckEmail)
		authGroup.POST("/forgot-password", authController.ForgotPassword)
		authGroup.POST("/reset-password", authController.ResetPassword)
	}

	// Public catalog routes
	pizza := router.Group("/pizza")
	{
		pizza.GET("/search", pizzaController.SearchPizzas)
		pizza.GET("/type", pizzaController.GetPizzaTypes)
		pizza.GET("/ingredients", pizzaController.GetIngredients)
		pizza.GET("/recomended/:pizzaId", pizzaController.GetRecommended)
		pizza.GET("", pizzaController.GetAllPizzas)
		pizza.GET("/:pizzaId", pizzaController.GetPizzaByID)
		pizza.POST("", pizzaController.CreatePizza)
		pizza.DELETE("/:pizzaId", pizzaController.DeletePizza)
	}

	// Protected routes (require a valid session cookie)
	cart := router.Group("/cart")
	cart.Use(middleware.RequireAuth(sessions))
	{
		cart.POST("", cartController.AddToCart)
		cart.GET("", cartController.GetCart)
		cart.PUT("/:cartItemId", cartController.UpdateQuantity)
		cart.DELETE("/:cartItemId", cartController.RemoveFromCart)
	}

	order := router.Group("/order")
	order.Use(middleware.RequireAuth(sessions))
	{
		order.POST("", orderController.CreateOrder)
		order.GET("", orderController.GetOrders)
		order.GET("/:orderId", orderController.GetOrderByID)
		order.PUT("/:orderId", orderController.UpdateStatus)
		order.DELETE("/:orderId", orderController.DeleteOrder)
	}

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}

// healthCheckHandler handles the health check endpoint
// @Summary Health check
// @Description Check if the service is running
// @Tags health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheckHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"service":   "dodo-pizza-api",
	})
}
