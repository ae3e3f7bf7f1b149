package transaction

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("transaction not found")

//go:generate mockgen -source=service.go -destination=service_mock.go -package=transaction
type Repository interface {
	CreateTransaction(ctx context.Context, tx *Transaction) error
	GetTransaction(ctx context.Context, id uuid.UUID) (*Transaction, error)
	UpdateTransaction(ctx context.Context, tx *Transaction) error
	UpdateCategory(ctx context.Context, id uuid.UUID, category string) error
	ListTransactions(ctx context.Context, filter ListFilter) ([]*Transaction, error)
	DeleteTransaction(ctx context.Context, id uuid.UUID) error
	CreateTransactions(ctx context.Context, txs []*Transaction) error
}

// Accounts is the slice of the account service the transaction service
// needs to keep cached balances in step with transaction mutations.
type Accounts interface {
	AdjustBalance(ctx context.Context, id uuid.UUID, deltaCents int64) error
}

type Service struct {
	repo     Repository
	accounts Accounts
}

func NewService(repo Repository, accounts Accounts) *Service {
	return &Service{repo: repo, accounts: accounts}
}

type CreateParams struct {
	Description string
	AmountCents int64
	Type        Type
	Category    string
	AccountID   uuid.UUID
	Date        time.Time
	Recurring   bool
	Tags        []string
}

type ListFilter struct {
	Type      *Type
	Category  *string
	AccountID *uuid.UUID
	StartDate *time.Time
	EndDate   *time.Time
}

// Create stores the transaction and applies its signed amount to the
// account's cached balance.
func (s *Service) Create(ctx context.Context, params CreateParams) (*Transaction, error) {
	tx := &Transaction{
		Description: params.Description,
		AmountCents: params.AmountCents,
		Type:        params.Type,
		Category:    params.Category,
		AccountID:   params.AccountID,
		Date:        params.Date,
		Recurring:   params.Recurring,
		Tags:        params.Tags,
	}
	if err := s.repo.CreateTransaction(ctx, tx); err != nil {
		return nil, err
	}

	if err := s.accounts.AdjustBalance(ctx, tx.AccountID, tx.SignedAmountCents()); err != nil {
		return nil, fmt.Errorf("applying balance: %w", err)
	}

	return tx, nil
}

// CreateBatch stores imported transactions and applies each one's signed
// amount to its account.
func (s *Service) CreateBatch(ctx context.Context, params []CreateParams) ([]*Transaction, error) {
	if len(params) == 0 {
		return nil, nil
	}

	txs := make([]*Transaction, len(params))
	for i, p := range params {
		txs[i] = &Transaction{
			Description: p.Description,
			AmountCents: p.AmountCents,
			Type:        p.Type,
			Category:    p.Category,
			AccountID:   p.AccountID,
			Date:        p.Date,
			Recurring:   p.Recurring,
			Tags:        p.Tags,
		}
	}

	if err := s.repo.CreateTransactions(ctx, txs); err != nil {
		return nil, fmt.Errorf("create transactions: %w", err)
	}

	for _, tx := range txs {
		if err := s.accounts.AdjustBalance(ctx, tx.AccountID, tx.SignedAmountCents()); err != nil {
			return nil, fmt.Errorf("applying balance: %w", err)
		}
	}

	return txs, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Transaction, error) {
	return s.repo.GetTransaction(ctx, id)
}

func (s *Service) List(ctx context.Context, filter ListFilter) ([]*Transaction, error) {
	return s.repo.ListTransactions(ctx, filter)
}

// Update persists an edited transaction, reversing the old balance effect
// and applying the new one when amount, type or account changed.
func (s *Service) Update(ctx context.Context, tx *Transaction) error {
	old, err := s.repo.GetTransaction(ctx, tx.ID)
	if err != nil {
		return err
	}

	if err := s.repo.UpdateTransaction(ctx, tx); err != nil {
		return err
	}

	if old.SignedAmountCents() == tx.SignedAmountCents() && old.AccountID == tx.AccountID {
		return nil
	}

	if err := s.accounts.AdjustBalance(ctx, old.AccountID, -old.SignedAmountCents()); err != nil {
		return fmt.Errorf("reversing balance: %w", err)
	}

	if err := s.accounts.AdjustBalance(ctx, tx.AccountID, tx.SignedAmountCents()); err != nil {
		return fmt.Errorf("applying balance: %w", err)
	}

	return nil
}

// ApplyCategory is the explicit confirmation step for a categorization
// suggestion; nothing else in the system rewrites a transaction's
// category.
func (s *Service) ApplyCategory(ctx context.Context, id uuid.UUID, category string) error {
	return s.repo.UpdateCategory(ctx, id, category)
}

// Delete removes the transaction and reverses its balance effect.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	tx, err := s.repo.GetTransaction(ctx, id)
	if err != nil {
		return err
	}

	if err := s.repo.DeleteTransaction(ctx, id); err != nil {
		return err
	}

	if err := s.accounts.AdjustBalance(ctx, tx.AccountID, -tx.SignedAmountCents()); err != nil {
		return fmt.Errorf("reversing balance: %w", err)
	}

	return nil
}
