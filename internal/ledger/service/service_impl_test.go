package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/glebarez/sqlite"
	"github.com/hotspotlabs/netpass/internal/clock"
	"github.com/hotspotlabs/netpass/internal/ledger/domain"
	ledgerrepo "github.com/hotspotlabs/netpass/internal/ledger/repository"
	ledgerservice "github.com/hotspotlabs/netpass/internal/ledger/service"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func setupService(t *testing.T) (domain.Service, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect database: %v", err)
	}
	if err := db.AutoMigrate(&domain.Transaction{}); err != nil {
		t.Fatalf("failed to migrate database: %v", err)
	}
	node, err := snowflake.NewNode(1)
	if err != nil {
		t.Fatalf("new node: %v", err)
	}
	svc := ledgerservice.New(ledgerservice.Params{
		DB:    db,
		Log:   zap.NewNop(),
		GenID: node,
		Clock: clock.NewFakeClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)),
		Repo:  ledgerrepo.Provide(),
	})
	return svc, db
}

func validTxn(reference string, paidOn time.Time) domain.Transaction {
	return domain.Transaction{
		Email:     "ada@example.com",
		Reference: reference,
		Service:   "daily",
		Amount:    500,
		PaidOn:    paidOn,
		ExpiresOn: paidOn.Add(24 * time.Hour),
	}
}

func TestRecordRejectsInvalidTransactions(t *testing.T) {
	ctx := context.Background()
	svc, _ := setupService(t)
	paidOn := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	cases := []struct {
		name    string
		mutate  func(*domain.Transaction)
		wantErr error
	}{
		{"missing email", func(txn *domain.Transaction) { txn.Email = " " }, domain.ErrInvalidTransaction},
		{"missing reference", func(txn *domain.Transaction) { txn.Reference = "" }, domain.ErrInvalidTransaction},
		{"missing service", func(txn *domain.Transaction) { txn.Service = "" }, domain.ErrInvalidTransaction},
		{"negative amount", func(txn *domain.Transaction) { txn.Amount = -1 }, domain.ErrInvalidTransaction},
		{"zero paid_on", func(txn *domain.Transaction) { txn.PaidOn = time.Time{} }, domain.ErrInvalidWindow},
		{"inverted window", func(txn *domain.Transaction) { txn.ExpiresOn = txn.PaidOn.Add(-time.Hour) }, domain.ErrInvalidWindow},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			txn := validTxn("ref_invalid", paidOn)
			tc.mutate(&txn)
			if err := svc.Record(ctx, txn); !errors.Is(err, tc.wantErr) {
				t.Fatalf("expected %v, got %v", tc.wantErr, err)
			}
		})
	}
}

func TestRecordDuplicateReferenceFailsOnUniqueIndex(t *testing.T) {
	ctx := context.Background()
	svc, _ := setupService(t)
	paidOn := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	if err := svc.Record(ctx, validTxn("ref_dup", paidOn)); err != nil {
		t.Fatalf("first record: %v", err)
	}
	if err := svc.Record(ctx, validTxn("ref_dup", paidOn)); err == nil {
		t.Fatal("expected duplicate reference to fail")
	}
}

func TestHasReference(t *testing.T) {
	ctx := context.Background()
	svc, _ := setupService(t)
	paidOn := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	if err := svc.Record(ctx, validTxn("ref_seen", paidOn)); err != nil {
		t.Fatalf("record: %v", err)
	}

	exists, err := svc.HasReference(ctx, "ref_seen")
	if err != nil {
		t.Fatalf("has reference: %v", err)
	}
	if !exists {
		t.Fatal("expected ref_seen to exist")
	}

	exists, err = svc.HasReference(ctx, "ref_unseen")
	if err != nil {
		t.Fatalf("has reference: %v", err)
	}
	if exists {
		t.Fatal("expected ref_unseen to be absent")
	}

	if _, err := svc.HasReference(ctx, "  "); !errors.Is(err, domain.ErrInvalidTransaction) {
		t.Fatalf("expected ErrInvalidTransaction, got %v", err)
	}
}

func TestHistoryIsNewestFirst(t *testing.T) {
	ctx := context.Background()
	svc, _ := setupService(t)
	t1 := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	t2 := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)

	if err := svc.Record(ctx, validTxn("ref_old", t1)); err != nil {
		t.Fatalf("record old: %v", err)
	}
	if err := svc.Record(ctx, validTxn("ref_new", t2)); err != nil {
		t.Fatalf("record new: %v", err)
	}

	history, err := svc.History(ctx, "ada@example.com")
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if len(history) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(history))
	}
	if history[0].Reference != "ref_new" || history[1].Reference != "ref_old" {
		t.Fatalf("expected newest first, got %s then %s", history[0].Reference, history[1].Reference)
	}

	other, err := svc.History(ctx, "other@example.com")
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if len(other) != 0 {
		t.Fatalf("expected empty history, got %d rows", len(other))
	}
}
