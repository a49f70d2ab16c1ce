package main

import (
	"fmt"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	log.SetPrefix("lg/nutrition-api: ")
	log.SetFlags(log.LstdFlags)

	// .env is optional in deployed environments where variables are injected.
	if err := godotenv.Load(); err != nil {
		log.Printf("[main] no .env loaded: %v", err)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "3000"
	}

	pool := getDBPool()
	defer pool.Close()

	registerMetrics()

	h := Handler{store: &pgStore{db: pool}}

	fmt.Println("Starting gin app...")

	router := gin.Default()
	router.SetTrustedProxies(nil)
	h.registerRoutes(router)

	if err := router.Run(":" + port); err != nil {
		log.Fatalf("[main] server stopped: %v", err)
	}
}
