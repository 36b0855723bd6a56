package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"quoteurl/config"
	"quoteurl/db"
	"quoteurl/models"
)

const (
	LoadedTweetCacheTime = time.Hour // TTL for cached tweet payloads
	TweetKeyPrefix       = "tweet_"
	TweetKeySuffix       = ".json"
)

// TweetCacheKey builds the cache key for a tweet id.
func TweetCacheKey(tweetID string) string {
	return TweetKeyPrefix + tweetID + TweetKeySuffix
}

// TweetPayload is what LoadTweet hands back to the handler: the upstream (or
// cached) body plus the status code to propagate.
type TweetPayload struct {
	StatusCode int
	Body       []byte
	FromCache  bool
}

type TweetService struct {
	client *http.Client
}

func NewTweetService() *TweetService {
	// No explicit timeout: a slow upstream stalls the serving request, there
	// is no retry or circuit-breaking in front of it.
	return &TweetService{client: http.DefaultClient}
}

func statusURL(tweetID string) string {
	base := strings.TrimRight(config.AppConfig.Upstream.BaseURL, "/")
	return base + "/statuses/show/" + tweetID + ".json"
}

// LoadTweet is a read-through cache over the upstream status API. A cache hit
// returns the stored payload verbatim. On a miss it fetches synchronously,
// caches the body only when the upstream answered 200, and otherwise carries
// the upstream status and error body back unchanged.
func (ts *TweetService) LoadTweet(ctx context.Context, tweetID string) (*TweetPayload, error) {
	key := TweetCacheKey(tweetID)

	if RedisClient != nil {
		cached, err := RedisClient.Get(ctx, key).Bytes()
		if err == nil {
			return &TweetPayload{StatusCode: http.StatusOK, Body: cached, FromCache: true}, nil
		}
		if !errors.Is(err, redis.Nil) {
			// Cache store trouble counts as a miss, the request goes upstream.
			log.Printf("tweet cache read failed for %s: %v", key, err)
		}
	}

	url := statusURL(tweetID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build upstream request: %w", err)
	}
	resp, err := ts.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", url, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read upstream response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		// Error bodies are propagated verbatim and never cached.
		return &TweetPayload{StatusCode: resp.StatusCode, Body: body}, nil
	}

	if RedisClient != nil {
		// SetNX keeps add semantics: concurrent misses may both fetch, the
		// first populate wins and neither request errors.
		if err := RedisClient.SetNX(ctx, key, body, LoadedTweetCacheTime).Err(); err != nil {
			log.Printf("tweet cache populate failed for %s: %v", key, err)
		}
	}

	if db.ORM != nil {
		if err := ts.importTweet(ctx, body); err != nil {
			// Import is best effort, the serving request already has its body.
			log.Printf("tweet import failed for %s: %v", tweetID, err)
		}
	}

	return &TweetPayload{StatusCode: http.StatusOK, Body: body}, nil
}

// statusDocument is the subset of the upstream status payload the importer
// keeps. Old payloads carry only numeric ids, newer ones add *_str twins.
type statusDocument struct {
	ID                   int64  `json:"id"`
	IDStr                string `json:"id_str"`
	CreatedAt            string `json:"created_at"`
	Text                 string `json:"text"`
	Favorited            bool   `json:"favorited"`
	Truncated            bool   `json:"truncated"`
	Source               string `json:"source"`
	InReplyToStatusID    int64  `json:"in_reply_to_status_id"`
	InReplyToStatusIDStr string `json:"in_reply_to_status_id_str"`
	InReplyToUserIDStr   string `json:"in_reply_to_user_id_str"`
	InReplyToScreenName  string `json:"in_reply_to_screen_name"`
	User                 struct {
		ID              int64  `json:"id"`
		IDStr           string `json:"id_str"`
		Name            string `json:"name"`
		ScreenName      string `json:"screen_name"`
		Description     string `json:"description"`
		Location        string `json:"location"`
		FollowersCount  int64  `json:"followers_count"`
		ProfileImageURL string `json:"profile_image_url"`
		URL             string `json:"url"`
		Protected       bool   `json:"protected"`
	} `json:"user"`
}

func stringID(str string, numeric int64) string {
	if str != "" {
		return str
	}
	return strconv.FormatInt(numeric, 10)
}

// importTweet upserts the Tweet row and its owning TwitterUser row from a
// successful upstream payload. Both upserts are idempotent on the upstream id.
func (ts *TweetService) importTweet(ctx context.Context, payload []byte) error {
	var doc statusDocument
	if err := json.Unmarshal(payload, &doc); err != nil {
		return fmt.Errorf("failed to decode status payload: %w", err)
	}
	if doc.ID == 0 && doc.IDStr == "" {
		return fmt.Errorf("status payload has no id")
	}

	owner, err := ts.upsertOwner(ctx, &doc, payload)
	if err != nil {
		return err
	}

	tweet := models.Tweet{
		TweetID:                  stringID(doc.IDStr, doc.ID),
		NumericTweetID:           doc.ID,
		Favorited:                doc.Favorited,
		Truncated:                doc.Truncated,
		InReplyToStatusID:        stringID(doc.InReplyToStatusIDStr, doc.InReplyToStatusID),
		NumericInReplyToStatusID: doc.InReplyToStatusID,
		InReplyToUserID:          doc.InReplyToUserIDStr,
		InReplyToScreenName:      doc.InReplyToScreenName,
		Source:                   doc.Source,
		Text:                     doc.Text,
		UserID:                   owner.ID,
		JSON:                     string(payload),
	}
	if doc.InReplyToStatusID == 0 && doc.InReplyToStatusIDStr == "" {
		tweet.InReplyToStatusID = ""
	}
	if createdAt, err := time.Parse(time.RubyDate, doc.CreatedAt); err == nil {
		tweet.CreatedAt = createdAt
	}

	// A re-import of an already known tweet is a no-op.
	err = db.GetWriteDB(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "tweet_id"}}, DoNothing: true}).
		Create(&tweet).Error
	if err != nil {
		return fmt.Errorf("failed to store tweet %s: %w", tweet.TweetID, err)
	}
	return nil
}

func (ts *TweetService) upsertOwner(ctx context.Context, doc *statusDocument, payload []byte) (*models.TwitterUser, error) {
	userID := stringID(doc.User.IDStr, doc.User.ID)

	var owner models.TwitterUser
	err := db.GetReadOnlyDB(ctx).Where("user_id = ?", userID).First(&owner).Error
	if err == nil {
		return &owner, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to look up author %s: %w", userID, err)
	}

	owner = models.TwitterUser{
		UserID:          userID,
		NumericUserID:   doc.User.ID,
		Name:            doc.User.Name,
		ScreenName:      doc.User.ScreenName,
		Description:     doc.User.Description,
		Location:        doc.User.Location,
		FollowersCount:  doc.User.FollowersCount,
		ProfileImageURL: doc.User.ProfileImageURL,
		URL:             doc.User.URL,
		Protected:       doc.User.Protected,
		JSON:            string(payload),
	}
	err = db.GetWriteDB(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "user_id"}}, DoNothing: true}).
		Create(&owner).Error
	if err != nil {
		return nil, fmt.Errorf("failed to store author %s: %w", userID, err)
	}
	if owner.ID == 0 {
		// Lost a concurrent insert race, read the winning row.
		if err := db.GetReadOnlyDB(ctx).Where("user_id = ?", userID).First(&owner).Error; err != nil {
			return nil, fmt.Errorf("failed to re-read author %s: %w", userID, err)
		}
	}
	return &owner, nil
}
