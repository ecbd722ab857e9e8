package domain

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	// Insert is always a blind insert. Deduplication against redelivered
	// gateway events happens in the reconciler, not here.
	Insert(ctx context.Context, db *gorm.DB, txn *Transaction) error
	ExistsByReference(ctx context.Context, db *gorm.DB, reference string) (bool, error)
	ListByEmail(ctx context.Context, db *gorm.DB, email string) ([]Transaction, error)
}
