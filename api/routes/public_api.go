package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"quoteurl/api/handlers"
)

func PublicApi(router *gin.Engine) {
	router.GET("/", handlers.MainPage)
	router.GET("/q/:id", handlers.GetQuote)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	appEndpoints := router.Group("/a/")
	{
		appEndpoints.GET("login", handlers.SignIn)
		appEndpoints.GET("upgrade", handlers.UpgradeMembership)
		appEndpoints.GET("loadtweet", handlers.LoadTweet)
		appEndpoints.POST("create", handlers.CreateQuote)

		appEndpoints.POST("register", handlers.Register)
		appEndpoints.POST("session", handlers.Login)
		appEndpoints.DELETE("session", handlers.Logout)
	}
}
