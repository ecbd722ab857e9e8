package domain

import (
	"context"
	"errors"
)

type UpsertCustomerRequest struct {
	Email string
}

type Service interface {
	Upsert(context.Context, UpsertCustomerRequest) (Customer, error)
	GetByEmail(context.Context, string) (Customer, error)
}

var (
	ErrInvalidEmail = errors.New("invalid_email")
	ErrNotFound     = errors.New("not_found")
)
