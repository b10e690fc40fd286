package models

import (
	"time"

	"gorm.io/gorm"
)

// PhoneVerification holds one SMS verification code. Delivery happens through
// the external gateway client; only the bookkeeping lives here.
type PhoneVerification struct {
	gorm.Model
	Mobile    string    `gorm:"size:15;index" json:"mobile"`
	Code      string    `gorm:"size:6;not null" json:"-"`
	SessionID string    `gorm:"size:36;uniqueIndex" json:"sessionId"`
	ExpiresAt time.Time `gorm:"not null" json:"expiresAt"`
	IsUsed    bool      `gorm:"default:false" json:"isUsed"`
}
