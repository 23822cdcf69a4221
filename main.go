package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sportsedu/rental_backend/controllers"
	"github.com/sportsedu/rental_backend/database"
	"github.com/sportsedu/rental_backend/docs"
	"github.com/sportsedu/rental_backend/middleware"
	"github.com/sportsedu/rental_backend/websocket"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title           Rental & Course Sharing API
// @version         1.0
// @description     API Server for the equipment rental and course sharing platform
// @host            localhost:8080
// @BasePath        /
// @schemes         http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	// Initialize database
	database.Connect()
	database.Migrate()

	// Set up Swagger info
	docs.SwaggerInfo.Title = "Rental & Course Sharing API"
	docs.SwaggerInfo.Description = "API Server for the equipment rental and course sharing platform"
	docs.SwaggerInfo.Version = "1.0"
	docs.SwaggerInfo.Host = "localhost:" + os.Getenv("PORT")
	if docs.SwaggerInfo.Host == "localhost:" {
		docs.SwaggerInfo.Host = "localhost:8080"
	}
	docs.SwaggerInfo.BasePath = "/"
	docs.SwaggerInfo.Schemes = []string{"http"}

	// Set up router
	router := gin.Default()

	// CORS middleware
	router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Public routes
	public := router.Group("/api")
	{
		public.POST("/users/signup", controllers.Signup)
		public.POST("/users/login", controllers.Login)

		public.GET("/equipment", controllers.GetEquipmentList)
		public.GET("/equipment/:id", controllers.GetEquipment)

		public.GET("/courses", controllers.GetCourses)
		public.GET("/courses/:id", controllers.GetCourse)
	}

	// Protected routes
	api := router.Group("/api")
	api.Use(middleware.JWTAuth())
	{
		// User routes
		api.GET("/users/me", controllers.GetMe)
		api.PUT("/users/me", controllers.UpdateMe)
		api.PUT("/users/me/password", controllers.UpdatePassword)
		api.GET("/users/me/courses", controllers.GetMyCourses)

		// Equipment routes
		api.POST("/equipment", controllers.CreateEquipment)

		// Rental routes
		api.POST("/rentals", controllers.CreateRental)
		api.GET("/rentals/my", controllers.GetMyRentals)
		api.GET("/rentals/all", controllers.GetAllRentals)
		api.PUT("/rentals/:id/approve", controllers.ApproveRental)
		api.PUT("/rentals/:id/return", controllers.ReturnRental)

		// Course routes
		api.POST("/courses", controllers.CreateCourse)

		// Chat routes
		api.GET("/chat/history/:rental_id", controllers.GetChatHistory)
		api.GET("/chat/rooms", controllers.GetChatRooms)
	}

	// WebSocket route (token travels as a query parameter)
	router.GET("/ws/:rental_id", websocket.HandleConnection)

	// Start server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("Server running on port %s", port)
	log.Printf("Swagger documentation available at http://localhost:%s/swagger/index.html", port)
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
