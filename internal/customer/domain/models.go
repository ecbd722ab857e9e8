package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
)

// Customer anchors identity for the portal. One row per email; created_at is
// write-once and updated_at advances on every successful payment touch.
type Customer struct {
	ID        snowflake.ID `gorm:"primaryKey" json:"id"`
	Email     string       `gorm:"type:text;not null;uniqueIndex" json:"email"`
	CreatedAt time.Time    `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time    `gorm:"not null" json:"updated_at"`
}

func (Customer) TableName() string { return "customers" }
