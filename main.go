package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/hallopetra/formbuilder-go/config"
	"github.com/hallopetra/formbuilder-go/db"
	"github.com/hallopetra/formbuilder-go/middleware"
	"github.com/hallopetra/formbuilder-go/routes"
)

// @title FormBuilder API
// @version 1.0
// @description Form definition, submission and export backend.
// @BasePath /
func main() {
	config.LoadConfig()
	middleware.Init()
	db.Init()

	router := gin.Default()
	router.Use(middleware.CORSMiddleware())
	router.LoadHTMLGlob("templates/*.html")
	router.Static("/static", "./static")

	routes.RegisterRoutes(router)

	port := ":" + config.ServerPort
	log.Printf("Starting server on %s", port)
	if err := router.Run(port); err != nil {
		log.Fatalf("Failed to start: %v", err)
	}
}
