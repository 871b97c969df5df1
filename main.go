package main

import (
	"log"
	"os"
	"playfair-backend/handlers"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	router := gin.Default()

	config := cors.DefaultConfig()
	config.AllowOrigins = []string{"http://localhost:3000"}
	config.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	config.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"}
	config.AllowCredentials = true
	router.Use(cors.New(config))

	cipherHandler := handlers.NewCipherHandler()

	// API Routes
	api := router.Group("/api/v1")
	{
		api.GET("/health", cipherHandler.HealthCheck)

		cipher := api.Group("/cipher")
		{
			cipher.POST("/encrypt", cipherHandler.Encrypt)
			cipher.POST("/decrypt", cipherHandler.Decrypt)
			cipher.POST("/table", cipherHandler.Table)
		}
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("Server starting on port %s", port)
	log.Printf("API endpoints:")
	log.Printf("  POST /api/v1/cipher/encrypt - Encrypt plaintext with a Playfair key")
	log.Printf("  POST /api/v1/cipher/decrypt - Decrypt ciphertext with a Playfair key")
	log.Printf("  POST /api/v1/cipher/table   - Show the 5x5 table derived from a key")
	log.Printf("  GET  /api/v1/health         - Health check")
	log.Printf("")
	log.Printf("Features:")
	log.Printf("  • 5x5 key table over the 25-letter alphabet (J folded into I)")
	log.Printf("  • Digraph substitution: same-row, same-column and rectangle rules")
	log.Printf("  • Configurable filler letter (default X)")

	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
