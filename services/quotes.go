package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"quoteurl/db"
	"quoteurl/models"
)

const (
	MaxQuoteSizeSignedOut = 4  // tweets per quote for anonymous callers
	MaxQuoteSizeSignedIn  = 10 // tweets per quote for signed-in callers
)

// SplitIDList normalizes a comma and/or space delimited list into its tokens.
// Blank tokens disappear, so arbitrary runs of separators collapse.
func SplitIDList(raw string) []string {
	return strings.Fields(strings.ReplaceAll(raw, ",", " "))
}

// QuoteInput carries the sanitized form fields plus the caller metadata the
// handler pulled from the request. QuotedBy stays nil for anonymous callers.
type QuoteInput struct {
	Statuses  string
	Authors   string
	JSON      string
	QuotedBy  *int64
	IP        string
	UserAgent string
}

type QuoteService struct{}

func NewQuoteService() *QuoteService {
	return &QuoteService{}
}

// CreateQuote assembles and stores a Dialogue from delimited status/author
// lists. The two lists are normalized independently and may differ in length;
// empty lists are accepted and stored as-is.
func (qs *QuoteService) CreateQuote(ctx context.Context, in QuoteInput) (*models.Dialogue, error) {
	statusList := SplitIDList(in.Statuses)
	authorList := SplitIDList(in.Authors)

	dialogue := &models.Dialogue{
		ID:              uuid.New().String(),
		Title:           strings.Join(statusList, " "),
		StatusIDList:    statusList,
		Authors:         strings.Join(authorList, " "),
		AuthorList:      authorList,
		QuotedBy:        in.QuotedBy,
		QuoterIP:        in.IP,
		QuoterUserAgent: in.UserAgent,
		Alias:           nil,
		JSON:            in.JSON,
	}

	if err := db.GetWriteDB(ctx).Create(dialogue).Error; err != nil {
		return nil, fmt.Errorf("failed to create dialogue: %w", err)
	}
	return dialogue, nil
}

// GetQuote fetches a stored dialogue by id.
func (qs *QuoteService) GetQuote(ctx context.Context, id string) (*models.Dialogue, error) {
	var dialogue models.Dialogue
	if err := db.GetReadOnlyDB(ctx).Where("id = ?", id).First(&dialogue).Error; err != nil {
		return nil, err
	}
	return &dialogue, nil
}
