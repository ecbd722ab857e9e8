package domain

import (
	"context"
	"errors"
)

type Service interface {
	Record(ctx context.Context, txn Transaction) error
	HasReference(ctx context.Context, reference string) (bool, error)
	History(ctx context.Context, email string) ([]Transaction, error)
}

var (
	ErrInvalidTransaction = errors.New("invalid_transaction")
	ErrInvalidWindow      = errors.New("invalid_window")
)
