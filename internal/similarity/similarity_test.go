package similarity_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmarques/financo/internal/similarity"
	"github.com/dmarques/financo/internal/transaction"
)

func TestScore(t *testing.T) {
	type testCase struct {
		name string
		a, b string
		want float64
	}

	tests := []testCase{
		{name: "Identical", a: "uber eats pedido", b: "uber eats pedido", want: 1},
		{name: "Disjoint", a: "mercado livre", b: "posto shell", want: 0},
		{name: "BothEmpty", a: "", b: "", want: 0},
		{name: "OneEmpty", a: "uber", b: "", want: 0},
		{name: "PartialOverlap", a: "uber eats", b: "uber pop", want: 1.0 / 3.0},
		{name: "CaseAndAccentsIgnored", a: "FARMÁCIA São João", b: "farmacia sao joao", want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, similarity.Score(tt.a, tt.b), 1e-9)
		})
	}
}

func TestScore_Symmetric(t *testing.T) {
	pairs := [][2]string{
		{"uber eats pedido 123", "uber eats pedido 456"},
		{"mercado central", "compra mercado"},
		{"a b c", "c d e"},
	}

	for _, p := range pairs {
		assert.Equal(t, similarity.Score(p[0], p[1]), similarity.Score(p[1], p[0]))
	}
}

func newTx(desc string, txType transaction.Type, category string) *transaction.Transaction {
	return &transaction.Transaction{
		ID:          uuid.New(),
		Description: desc,
		Type:        txType,
		Category:    category,
	}
}

func TestGroupTransactions(t *testing.T) {
	txs := []*transaction.Transaction{
		newTx("UBER EATS PEDIDO 123", transaction.TypeExpense, "Alimentação"),
		newTx("UBER EATS PEDIDO 123 SP", transaction.TypeExpense, "Alimentação"),
		newTx("POSTO SHELL COMBUSTIVEL", transaction.TypeExpense, "Transporte"),
		newTx("UBER EATS PEDIDO 123 RJ", transaction.TypeExpense, "Outros"),
	}

	groups := similarity.GroupTransactions(txs)
	require.Len(t, groups, 1)
	assert.Len(t, groups[0].Members, 3)
}

func TestGroupTransactions_TypeSeparation(t *testing.T) {
	txs := []*transaction.Transaction{
		newTx("TRANSFERENCIA PIX RECEBIDA", transaction.TypeIncome, "Outros"),
		newTx("TRANSFERENCIA PIX RECEBIDA", transaction.TypeExpense, "Outros"),
	}

	assert.Empty(t, similarity.GroupTransactions(txs))
}

func TestCategorySuggestions(t *testing.T) {
	txs := []*transaction.Transaction{
		newTx("UBER EATS PEDIDO 123", transaction.TypeExpense, "Alimentação"),
		newTx("UBER EATS PEDIDO 123 SP", transaction.TypeExpense, "Alimentação"),
		newTx("UBER EATS PEDIDO 123 RJ", transaction.TypeExpense, "Outros"),
	}

	suggestions := similarity.CategorySuggestions(txs)
	require.Len(t, suggestions, 1)

	s := suggestions[0]
	assert.Equal(t, "Outros", s.Transaction.Category)
	assert.Equal(t, "Alimentação", s.Category)
	assert.InDelta(t, 2.0/3.0, s.Confidence, 1e-9)
	assert.Equal(t, "2 of 3 similar transactions use this category", s.Reason)
}

func TestCategorySuggestions_UniformGroupSilent(t *testing.T) {
	txs := []*transaction.Transaction{
		newTx("UBER EATS PEDIDO 123", transaction.TypeExpense, "Alimentação"),
		newTx("UBER EATS PEDIDO 123 SP", transaction.TypeExpense, "Alimentação"),
		newTx("UBER EATS PEDIDO 123 RJ", transaction.TypeExpense, "Alimentação"),
	}

	assert.Empty(t, similarity.CategorySuggestions(txs))
}

func TestMerchantName(t *testing.T) {
	type testCase struct {
		name string
		in   string
		want string
	}

	tests := []testCase{
		{
			name: "DropsStopWordsAndShortTokens",
			in:   "PAG*Compra no Mercado Central de SP",
			want: "mercado central",
		},
		{
			name: "KeepsFirstThree",
			in:   "pagamento restaurante cantina dona maria lanches",
			want: "restaurante cantina dona",
		},
		{
			name: "FallsBackToOriginal",
			in:   "PAG de no da",
			want: "PAG de no da",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, similarity.MerchantName(tt.in))
		})
	}
}
