package models

import "time"

// Dialogue is a stored quote composition. The status/author lists are a
// self-contained snapshot of caller input, not references to Tweet rows, and
// the two lists may differ in length.
type Dialogue struct {
	ID           string   `gorm:"primaryKey;type:varchar(36)" json:"id"`
	Title        string   `gorm:"size:255" json:"title"`
	StatusIDList []string `gorm:"serializer:json" json:"status_id_list"`
	Authors      string   `gorm:"size:255" json:"authors"`
	AuthorList   []string `gorm:"serializer:json" json:"author_list"`
	// Account that composed the quote. Nil for anonymous compositions.
	QuotedBy        *int64  `gorm:"index" json:"quoted_by,omitempty"`
	QuoterIP        string  `gorm:"size:60" json:"quoter_ip"`
	QuoterUserAgent string  `gorm:"size:512" json:"quoter_user_agent"`
	// Reserved for short-URL aliases, unset at creation.
	Alias       *string   `gorm:"size:60;index" json:"alias,omitempty"`
	CreatedDate time.Time `gorm:"autoCreateTime" json:"created_date"`
	JSON        string    `gorm:"type:text" json:"json"`
}

func (Dialogue) TableName() string {
	return "dialogues"
}
