package models

import "time"

// NewsItem is a published news entry.
type NewsItem struct {
	ID        string    `bson:"_id,omitempty" json:"id"`
	Title     string    `bson:"title" json:"title"`
	Category  string    `bson:"category" json:"category"` // "Tech", "Culture", "Event"
	Excerpt   string    `bson:"excerpt" json:"excerpt"`
	Date      string    `bson:"date_display" json:"date"`
	Content   string    `bson:"content,omitempty" json:"content,omitempty"`
	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
}

// Course describes a learning module and whether it is open.
type Course struct {
	ID        string `bson:"_id,omitempty" json:"id"`
	Title     string `bson:"title" json:"title"`
	Desc      string `bson:"description" json:"desc"`
	Level     string `bson:"level" json:"level"`
	Status    string `bson:"status" json:"status"` // "AVAILABLE" or "COMING_SOON"
	IconName  string `bson:"icon_name" json:"iconName"`
	SortOrder int    `bson:"sort_order" json:"-"`
}

// Available reports whether the module can be entered.
func (c Course) Available() bool { return c.Status == "AVAILABLE" }

// VocabularyItem is one French/Fongbé quiz entry.
type VocabularyItem struct {
	ID      string   `bson:"_id,omitempty" json:"id"`
	Level   int      `bson:"level" json:"level"`
	Fr      string   `bson:"fr" json:"fr"`
	Fon     string   `bson:"fon" json:"fon"`
	Options []string `bson:"options" json:"options"`
}

// Comment is attached to a news item.
type Comment struct {
	ID        string    `bson:"_id,omitempty" json:"id"`
	NewsID    string    `bson:"news_id" json:"news_id"`
	UserName  string    `bson:"user_name" json:"user_name"`
	Content   string    `bson:"content" json:"content"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}

// Partner is a listed partner organisation.
type Partner struct {
	ID         string `bson:"_id,omitempty" json:"id"`
	Name       string `bson:"name" json:"name"`
	Type       string `bson:"type" json:"type"` // "OFFICIAL", "TECH", "ACADEMIC"
	WebsiteURL string `bson:"website_url,omitempty" json:"website_url,omitempty"`
}
