package normalize_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmarques/financo/internal/normalize"
)

func TestNormalize(t *testing.T) {
	type testCase struct {
		name string
		in   string
		want string
	}

	tests := []testCase{
		{
			name: "Empty",
			in:   "",
			want: "",
		},
		{
			name: "Lowercases",
			in:   "UBER EATS PEDIDO 123",
			want: "uber eats pedido 123",
		},
		{
			name: "StripsDiacritics",
			in:   "Salário de Março",
			want: "salario de marco",
		},
		{
			name: "ReplacesPunctuation",
			in:   "PAG*JoseSilva - 12/03",
			want: "pag josesilva 12 03",
		},
		{
			name: "CollapsesWhitespace",
			in:   "  compra   no\tmercado  ",
			want: "compra no mercado",
		},
		{
			name: "OnlySymbols",
			in:   "***---***",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, normalize.Normalize(tt.in))
		})
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	inputs := []string{
		"UBER EATS PEDIDO 123",
		"Salário de Março",
		"PAG*Farmácia São João",
		"",
	}

	for _, in := range inputs {
		once := normalize.Normalize(in)
		assert.Equal(t, once, normalize.Normalize(once), "input %q", in)
	}
}

func TestTokens(t *testing.T) {
	assert.Equal(t, []string{"uber", "eats", "pedido", "123"}, normalize.Tokens("UBER EATS, pedido #123"))
	assert.Empty(t, normalize.Tokens("  "))
}
