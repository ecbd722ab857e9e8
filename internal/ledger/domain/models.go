// Package domain holds the append-only payment ledger. Rows are written once
// per successful gateway payment and never updated or deleted; the
// entitlement projection can always be rebuilt from this table.
package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
)

type Transaction struct {
	ID        snowflake.ID `gorm:"primaryKey" json:"id"`
	Email     string       `gorm:"type:text;not null;index" json:"email"`
	Reference string       `gorm:"type:text;not null;uniqueIndex" json:"reference"`
	Service   string       `gorm:"type:text;not null" json:"service"`
	Amount    int64        `gorm:"not null" json:"amount"`
	PaidOn    time.Time    `gorm:"not null" json:"paid_on"`
	ExpiresOn time.Time    `gorm:"not null" json:"expires_on"`
	CreatedAt time.Time    `gorm:"not null" json:"created_at"`
}

func (Transaction) TableName() string { return "transactions" }
