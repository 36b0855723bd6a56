package handlers

import (
	"html"
	"net/http"

	"github.com/gin-gonic/gin"

	"quoteurl/api/middleware"
	"quoteurl/services"
)

var tweetService = services.NewTweetService()

// LoadTweet serves a tweet payload through the cache passthrough. The body is
// the raw upstream payload on success, or the upstream error body with its
// status code on failure.
func LoadTweet(c *gin.Context) {
	tweetID := html.EscapeString(c.Query("id"))
	// fmt is accepted but not dispatched on, the payload is always the raw
	// upstream JSON.
	_ = html.EscapeString(c.Query("fmt"))

	payload, err := tweetService.LoadTweet(c.Request.Context(), tweetID)
	if err != nil {
		middleware.RecordTweetLoad("fetch_error")
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to reach upstream"})
		return
	}

	switch {
	case payload.FromCache:
		middleware.RecordTweetLoad("hit")
	case payload.StatusCode == http.StatusOK:
		middleware.RecordTweetLoad("miss")
	default:
		middleware.RecordTweetLoad("upstream_error")
	}

	c.Data(payload.StatusCode, "application/json; charset=utf-8", payload.Body)
}
