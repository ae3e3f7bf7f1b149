// Package snapshot assembles the full data set the analytics engine
// computes over. Analytics never touches the database directly; callers
// load a snapshot, hand it to the engine and discard it.
package snapshot

import (
	"context"
	"fmt"

	"github.com/dmarques/financo/internal/account"
	"github.com/dmarques/financo/internal/analytics"
	"github.com/dmarques/financo/internal/budget"
	"github.com/dmarques/financo/internal/goal"
	"github.com/dmarques/financo/internal/transaction"
)

type Loader struct {
	transactions *transaction.Service
	accounts     *account.Service
	budgets      *budget.Service
	goals        *goal.Service
}

func NewLoader(
	transactions *transaction.Service,
	accounts *account.Service,
	budgets *budget.Service,
	goals *goal.Service,
) *Loader {
	return &Loader{
		transactions: transactions,
		accounts:     accounts,
		budgets:      budgets,
		goals:        goals,
	}
}

func (l *Loader) Load(ctx context.Context) (analytics.Snapshot, error) {
	txs, err := l.transactions.List(ctx, transaction.ListFilter{})
	if err != nil {
		return analytics.Snapshot{}, fmt.Errorf("loading transactions: %w", err)
	}

	accounts, err := l.accounts.List(ctx)
	if err != nil {
		return analytics.Snapshot{}, fmt.Errorf("loading accounts: %w", err)
	}

	budgets, err := l.budgets.List(ctx)
	if err != nil {
		return analytics.Snapshot{}, fmt.Errorf("loading budgets: %w", err)
	}

	goals, err := l.goals.List(ctx)
	if err != nil {
		return analytics.Snapshot{}, fmt.Errorf("loading goals: %w", err)
	}

	return analytics.Snapshot{
		Transactions: txs,
		Accounts:     accounts,
		Budgets:      budgets,
		Goals:        goals,
	}, nil
}
