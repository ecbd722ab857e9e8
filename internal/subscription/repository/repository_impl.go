package repository

import (
	"context"

	"github.com/hotspotlabs/netpass/internal/subscription/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) Activate(ctx context.Context, db *gorm.DB, sub *domain.ActiveSubscription) (bool, error) {
	res := db.WithContext(ctx).Exec(
		`INSERT INTO active_subscriptions (id, email, service, paid_on, expires_on, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT (email) DO UPDATE SET
			service = excluded.service,
			paid_on = excluded.paid_on,
			expires_on = excluded.expires_on,
			updated_at = excluded.updated_at
		 WHERE excluded.paid_on > active_subscriptions.paid_on`,
		sub.ID,
		sub.Email,
		sub.Service,
		sub.PaidOn,
		sub.ExpiresOn,
		sub.CreatedAt,
		sub.UpdatedAt,
	)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *repo) FindByEmail(ctx context.Context, db *gorm.DB, email string) (*domain.ActiveSubscription, error) {
	var sub domain.ActiveSubscription
	err := db.WithContext(ctx).Raw(
		`SELECT id, email, service, paid_on, expires_on, created_at, updated_at
		 FROM active_subscriptions WHERE email = ?`,
		email,
	).Scan(&sub).Error
	if err != nil {
		return nil, err
	}
	if sub.ID == 0 {
		return nil, nil
	}
	return &sub, nil
}
