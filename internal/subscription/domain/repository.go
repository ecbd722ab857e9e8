package domain

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	// Activate inserts or overwrites the entitlement window for the email,
	// but only when the incoming paid_on is newer than the stored one. The
	// guard makes the write order-independent under out-of-order webhook
	// delivery without a per-email lock. Returns false when the stored row
	// was already newer.
	Activate(ctx context.Context, db *gorm.DB, sub *ActiveSubscription) (bool, error)
	FindByEmail(ctx context.Context, db *gorm.DB, email string) (*ActiveSubscription, error)
}
