package transaction_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/dmarques/financo/internal/transaction"
)

func TestService_Create(t *testing.T) {
	type testCase struct {
		name      string
		params    transaction.CreateParams
		setupMock func(repo *transaction.MockRepository, accounts *transaction.MockAccounts)
		wantErr   bool
	}

	accountID := uuid.New()

	tests := []testCase{
		{
			name: "IncomeAppliesPositiveDelta",
			params: transaction.CreateParams{
				Description: "Salário",
				AmountCents: 5000,
				Type:        transaction.TypeIncome,
				AccountID:   accountID,
				Date:        time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
			},
			setupMock: func(repo *transaction.MockRepository, accounts *transaction.MockAccounts) {
				repo.EXPECT().
					CreateTransaction(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, tx *transaction.Transaction) error {
						tx.ID = uuid.New()
						tx.CreatedAt = time.Now()
						return nil
					})
				accounts.EXPECT().AdjustBalance(gomock.Any(), accountID, int64(5000)).Return(nil)
			},
		},
		{
			name: "ExpenseAppliesNegativeDelta",
			params: transaction.CreateParams{
				Description: "Mercado",
				AmountCents: 3000,
				Type:        transaction.TypeExpense,
				AccountID:   accountID,
				Date:        time.Date(2026, 3, 11, 0, 0, 0, 0, time.UTC),
			},
			setupMock: func(repo *transaction.MockRepository, accounts *transaction.MockAccounts) {
				repo.EXPECT().CreateTransaction(gomock.Any(), gomock.Any()).Return(nil)
				accounts.EXPECT().AdjustBalance(gomock.Any(), accountID, int64(-3000)).Return(nil)
			},
		},
		{
			name: "RepoError",
			params: transaction.CreateParams{
				AmountCents: 500,
				Type:        transaction.TypeExpense,
				AccountID:   accountID,
			},
			setupMock: func(repo *transaction.MockRepository, accounts *transaction.MockAccounts) {
				repo.EXPECT().CreateTransaction(gomock.Any(), gomock.Any()).Return(errors.New("db error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := transaction.NewMockRepository(ctrl)
			accounts := transaction.NewMockAccounts(ctrl)
			tt.setupMock(repo, accounts)

			svc := transaction.NewService(repo, accounts)
			got, err := svc.Create(context.Background(), tt.params)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, got)

				return
			}

			assert.NoError(t, err)
			assert.NotNil(t, got)
		})
	}
}

// Opening balance 100.00, income of 50.00 and expense of 30.00 leave the
// account at 120.00; deleting the expense reverses its effect back to
// 150.00.
func TestService_BalanceReversal(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := transaction.NewMockRepository(ctrl)
	accounts := transaction.NewMockAccounts(ctrl)
	svc := transaction.NewService(repo, accounts)

	accountID := uuid.New()
	balance := int64(10_000) // 100.00 opening

	adjust := func(_ context.Context, _ uuid.UUID, delta int64) error {
		balance += delta
		return nil
	}

	accounts.EXPECT().AdjustBalance(gomock.Any(), accountID, gomock.Any()).DoAndReturn(adjust).Times(3)
	repo.EXPECT().CreateTransaction(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, tx *transaction.Transaction) error {
			tx.ID = uuid.New()
			return nil
		}).Times(2)

	_, err := svc.Create(context.Background(), transaction.CreateParams{
		AmountCents: 5_000,
		Type:        transaction.TypeIncome,
		AccountID:   accountID,
	})
	require.NoError(t, err)

	expense, err := svc.Create(context.Background(), transaction.CreateParams{
		AmountCents: 3_000,
		Type:        transaction.TypeExpense,
		AccountID:   accountID,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(12_000), balance)

	repo.EXPECT().GetTransaction(gomock.Any(), expense.ID).Return(expense, nil)
	repo.EXPECT().DeleteTransaction(gomock.Any(), expense.ID).Return(nil)

	require.NoError(t, svc.Delete(context.Background(), expense.ID))
	assert.Equal(t, int64(15_000), balance)
}

func TestService_Update_MovesBalanceBetweenAccounts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := transaction.NewMockRepository(ctrl)
	accounts := transaction.NewMockAccounts(ctrl)
	svc := transaction.NewService(repo, accounts)

	oldAccount := uuid.New()
	newAccount := uuid.New()

	old := &transaction.Transaction{
		ID:          uuid.New(),
		AmountCents: 2_000,
		Type:        transaction.TypeExpense,
		AccountID:   oldAccount,
	}

	edited := *old
	edited.AccountID = newAccount
	edited.AmountCents = 2_500

	repo.EXPECT().GetTransaction(gomock.Any(), old.ID).Return(old, nil)
	repo.EXPECT().UpdateTransaction(gomock.Any(), &edited).Return(nil)
	accounts.EXPECT().AdjustBalance(gomock.Any(), oldAccount, int64(2_000)).Return(nil)
	accounts.EXPECT().AdjustBalance(gomock.Any(), newAccount, int64(-2_500)).Return(nil)

	require.NoError(t, svc.Update(context.Background(), &edited))
}

func TestService_Update_NoBalanceChange(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := transaction.NewMockRepository(ctrl)
	accounts := transaction.NewMockAccounts(ctrl)
	svc := transaction.NewService(repo, accounts)

	old := &transaction.Transaction{
		ID:          uuid.New(),
		Description: "Mercado",
		AmountCents: 2_000,
		Type:        transaction.TypeExpense,
		AccountID:   uuid.New(),
	}

	edited := *old
	edited.Description = "Mercado Central"

	repo.EXPECT().GetTransaction(gomock.Any(), old.ID).Return(old, nil)
	repo.EXPECT().UpdateTransaction(gomock.Any(), &edited).Return(nil)

	require.NoError(t, svc.Update(context.Background(), &edited))
}

func TestService_ApplyCategory(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := transaction.NewMockRepository(ctrl)
	svc := transaction.NewService(repo, transaction.NewMockAccounts(ctrl))

	id := uuid.New()
	repo.EXPECT().UpdateCategory(gomock.Any(), id, "Alimentação").Return(nil)

	require.NoError(t, svc.ApplyCategory(context.Background(), id, "Alimentação"))
}

func TestService_CreateBatch_Empty(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := transaction.NewService(transaction.NewMockRepository(ctrl), transaction.NewMockAccounts(ctrl))

	txs, err := svc.CreateBatch(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, txs)
}
