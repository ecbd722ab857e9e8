// Package domain holds the current-entitlement projection. Exactly zero or
// one row per email; the row is overwritten wholesale by each newer payment
// and never appended to. Expiry is evaluated lazily at read time.
package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
)

type ActiveSubscription struct {
	ID        snowflake.ID `gorm:"primaryKey" json:"id"`
	Email     string       `gorm:"type:text;not null;uniqueIndex" json:"email"`
	Service   string       `gorm:"type:text;not null" json:"service"`
	PaidOn    time.Time    `gorm:"not null" json:"paid_on"`
	ExpiresOn time.Time    `gorm:"not null" json:"expires_on"`
	CreatedAt time.Time    `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time    `gorm:"not null" json:"updated_at"`
}

func (ActiveSubscription) TableName() string { return "active_subscriptions" }

// ActiveAt reports whether the entitlement window covers the given instant.
func (s ActiveSubscription) ActiveAt(at time.Time) bool {
	return !s.PaidOn.After(at) && s.ExpiresOn.After(at)
}
