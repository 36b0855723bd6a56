package handlers

import (
	"errors"
	"html"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"quoteurl/api/middleware"
	"quoteurl/services"
)

var quoteService = services.NewQuoteService()

// CreateQuote builds and stores a dialogue from the submitted form. All three
// fields are escaped before any further use.
func CreateQuote(c *gin.Context) {
	statuses := html.EscapeString(c.PostForm("statuses"))
	authors := html.EscapeString(c.PostForm("authors"))
	rawJSON := html.EscapeString(c.PostForm("json"))

	var quotedBy *int64
	if user := middleware.CurrentUser(c); user != nil {
		quotedBy = &user.ID
	}

	dialogue, err := quoteService.CreateQuote(c.Request.Context(), services.QuoteInput{
		Statuses:  statuses,
		Authors:   authors,
		JSON:      rawJSON,
		QuotedBy:  quotedBy,
		IP:        c.ClientIP(),
		UserAgent: c.Request.UserAgent(),
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create quote"})
		return
	}

	c.JSON(http.StatusCreated, dialogue)
}

// GetQuote returns a stored dialogue by its shareable id.
func GetQuote(c *gin.Context) {
	dialogue, err := quoteService.GetQuote(c.Request.Context(), c.Param("id"))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Quote not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, dialogue)
}
