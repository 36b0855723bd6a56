package handlers_test

import (
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"quoteurl/api/middleware"
	"quoteurl/api/routes"
	"quoteurl/config"
	"quoteurl/db"
	"quoteurl/models"
)

// setupTestRouter boots the real route table against an in-memory database.
func setupTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	database, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	err = database.AutoMigrate(
		&models.User{}, &models.UserTokens{},
		&models.TwitterUser{}, &models.Tweet{}, &models.Dialogue{},
	)
	require.NoError(t, err)
	db.ORM = database
	t.Cleanup(func() { db.ORM = nil })

	conf := &config.ConfigSchema{}
	conf.Upstream.BaseURL = "http://upstream.invalid"
	conf.Identity.LoginURL = "https://id.example.org/login"
	config.AppConfig = conf
	t.Cleanup(func() { config.AppConfig = nil })

	router := gin.New()
	router.Use(middleware.OptionalIdentity())
	router.LoadHTMLGlob("../../templates/*.html")
	routes.PublicApi(router)
	return router
}

// createSignedInUser stores an account with an active session token.
func createSignedInUser(t *testing.T, nickname string) (string, int64) {
	t.Helper()

	user := models.User{Nickname: nickname, Password: "unused"}
	require.NoError(t, db.ORM.Create(&user).Error)

	token := "session_token_" + nickname
	require.NoError(t, db.ORM.Create(&models.UserTokens{UserID: user.ID, Token: token}).Error)

	return token, user.ID
}
