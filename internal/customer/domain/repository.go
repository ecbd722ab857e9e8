package domain

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	// Upsert inserts the customer or, when the email already exists, bumps
	// updated_at only. Single race-safe statement; email and created_at are
	// never rewritten.
	Upsert(ctx context.Context, db *gorm.DB, customer *Customer) error
	FindByEmail(ctx context.Context, db *gorm.DB, email string) (*Customer, error)
}
