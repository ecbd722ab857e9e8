package repository

import (
	"context"

	"github.com/hotspotlabs/netpass/internal/ledger/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) Insert(ctx context.Context, db *gorm.DB, txn *domain.Transaction) error {
	return db.WithContext(ctx).Exec(
		`INSERT INTO transactions (id, email, reference, service, amount, paid_on, expires_on, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		txn.ID,
		txn.Email,
		txn.Reference,
		txn.Service,
		txn.Amount,
		txn.PaidOn,
		txn.ExpiresOn,
		txn.CreatedAt,
	).Error
}

func (r *repo) ExistsByReference(ctx context.Context, db *gorm.DB, reference string) (bool, error) {
	var count int64
	err := db.WithContext(ctx).Raw(
		`SELECT COUNT(1) FROM transactions WHERE reference = ?`,
		reference,
	).Scan(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *repo) ListByEmail(ctx context.Context, db *gorm.DB, email string) ([]domain.Transaction, error) {
	var txns []domain.Transaction
	err := db.WithContext(ctx).Raw(
		`SELECT id, email, reference, service, amount, paid_on, expires_on, created_at
		 FROM transactions
		 WHERE email = ?
		 ORDER BY paid_on DESC, id DESC`,
		email,
	).Scan(&txns).Error
	if err != nil {
		return nil, err
	}
	return txns, nil
}
