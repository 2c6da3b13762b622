package models

import "time"

// XPNotification is an ephemeral toast shown when WP is gained. It fires
// once and is auto-removed after the display duration; never persisted.
// Amount 0 is valid and used for feedback-only events.
type XPNotification struct {
	ID        string    `json:"id"`
	Amount    int       `json:"amount"`
	Reason    string    `json:"reason"`
	CreatedAt time.Time `json:"-"`
}

// NotificationTTL is how long an XP toast stays visible.
const NotificationTTL = 3 * time.Second
