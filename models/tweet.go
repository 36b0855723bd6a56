package models

import "time"

// TwitterUser is the imported profile of a tweet author.
type TwitterUser struct {
	ID              int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID          string `gorm:"size:60;uniqueIndex" json:"user_id"`
	NumericUserID   int64  `json:"numeric_user_id"`
	Name            string `gorm:"size:255" json:"name"`
	ScreenName      string `gorm:"size:60;index" json:"screen_name"`
	Description     string `gorm:"type:text" json:"description"`
	Location        string `gorm:"size:255" json:"location"`
	FollowersCount  int64  `json:"followers_count"`
	ProfileImageURL string `gorm:"size:512" json:"profile_image_url"`
	URL             string `gorm:"size:512" json:"url"`
	Protected       bool   `json:"protected"`
	// Raw upstream payload the record was imported from.
	JSON string `gorm:"type:text" json:"-"`
}

func (TwitterUser) TableName() string {
	return "twitter_users"
}

// Tweet is a status imported from the upstream API. TweetID and NumericTweetID
// are two representations of the same upstream identifier.
type Tweet struct {
	ID                       int64        `gorm:"primaryKey;autoIncrement" json:"id"`
	TweetID                  string       `gorm:"size:60;uniqueIndex" json:"tweet_id"`
	NumericTweetID           int64        `json:"numeric_tweet_id"`
	CreatedAt                time.Time    `json:"created_at"`
	Favorited                bool         `json:"favorited"`
	Truncated                bool         `json:"truncated"`
	InReplyToStatusID        string       `gorm:"size:60" json:"in_reply_to_status_id"`
	NumericInReplyToStatusID int64        `json:"numeric_in_reply_to_status_id"`
	InReplyToUserID          string       `gorm:"size:60" json:"in_reply_to_user_id"`
	InReplyToScreenName      string       `gorm:"size:60" json:"in_reply_to_screen_name"`
	Source                   string       `gorm:"size:255" json:"source"`
	Text                     string       `gorm:"type:text" json:"text"`
	UserID                   int64        `gorm:"index" json:"user_id"`
	User                     *TwitterUser `gorm:"foreignKey:UserID" json:"user,omitempty"`
	// Set once when the tweet is first imported, never updated after.
	ImportedDate time.Time `gorm:"autoCreateTime" json:"imported_date"`
	JSON         string    `gorm:"type:text" json:"-"`
}

func (Tweet) TableName() string {
	return "tweets"
}
