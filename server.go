package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/gin-gonic/gin"

	"quoteurl/api/middleware"
	"quoteurl/api/routes"
	"quoteurl/config"
	"quoteurl/db"
	"quoteurl/services"
)

func main() {
	var configPath string
	flag.StringVar(&configPath, "config", "config.yaml", "Path to the configuration file")
	flag.Parse()

	err := config.LoadConfig(configPath)
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}
	log.Println("Starting server...")

	if err := db.ConnectDB(); err != nil {
		panic("Failed to connect to the database: " + err.Error())
	}

	if err := services.InitRedis(); err != nil {
		// Cache trouble degrades every loadtweet to an upstream fetch.
		log.Printf("redis unavailable, serving without tweet cache: %v", err)
	}
	defer services.CloseRedis()

	router := gin.Default()
	router.Use(middleware.PrometheusMiddleware("quoteurl"))
	router.Use(middleware.OptionalIdentity())
	router.LoadHTMLGlob("templates/*.html")

	routes.PublicApi(router)

	addr := fmt.Sprintf("%s:%d", config.AppConfig.Backend.Host, config.AppConfig.Backend.Port)
	if err := router.Run(addr); err != nil {
		panic(err)
	}
}
