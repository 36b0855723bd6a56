package handlers

import (
	"fmt"
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"

	"quoteurl/api/middleware"
	"quoteurl/services"
)

// MainPage renders the composer with the quota message for the caller's
// signed-in state.
func MainPage(c *gin.Context) {
	user := middleware.CurrentUser(c)

	var msgHelp1 template.HTML
	if user == nil {
		msgHelp1 = template.HTML(fmt.Sprintf(
			`Anonymous users can add up to <em id="quote-size-limit">%d</em> Tweets per quote, <a href="/a/login">Sign-in</a> if you need more`,
			services.MaxQuoteSizeSignedOut,
		))
	} else {
		msgHelp1 = template.HTML(fmt.Sprintf(
			`You can add up to <em id="quote-size-limit">%d</em> Tweets per quote. If you need more visit the <a href="/a/upgrade">upgrade membership</a> page.`,
			services.MaxQuoteSizeSignedIn,
		))
	}

	c.HTML(http.StatusOK, "index.html", gin.H{
		"msg_help1": msgHelp1,
	})
}

// SignIn bounces the caller to the identity provider, returning to the root.
func SignIn(c *gin.Context) {
	c.Redirect(http.StatusFound, services.BuildLoginURL("/"))
}

func UpgradeMembership(c *gin.Context) {
	c.HTML(http.StatusOK, "upgrade.html", gin.H{})
}
