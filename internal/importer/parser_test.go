package importer_test

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/charmap"

	"github.com/dmarques/financo/internal/importer"
	"github.com/dmarques/financo/internal/transaction"
)

func date(y, m, d int) time.Time {
	return time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
}

func TestParser_Extrato(t *testing.T) {
	csv := `Extrato de conta corrente - 15/08/2026
Cliente;JOÃO DA SILVA
Agência;0001
Conta;12345-6

Data;Histórico;Valor;Saldo
05/08/2026;UBER EATS PEDIDO 4432;-45,90;1.954,10
01/08/2026;SALARIO ACME LTDA;8.500,00;2.000,00
`

	p := importer.NewParser()
	txs, err := p.Parse(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, txs, 2)

	assert.Equal(t, date(2026, 8, 5), txs[0].Date)
	assert.Equal(t, "UBER EATS PEDIDO 4432", txs[0].Description)
	assert.Equal(t, int64(4590), txs[0].AmountCents)
	assert.Equal(t, transaction.TypeExpense, txs[0].Type)

	assert.Equal(t, date(2026, 8, 1), txs[1].Date)
	assert.Equal(t, "SALARIO ACME LTDA", txs[1].Description)
	assert.Equal(t, int64(850000), txs[1].AmountCents)
	assert.Equal(t, transaction.TypeIncome, txs[1].Type)
}

func TestParser_Cartao(t *testing.T) {
	csv := `Fatura do cartão - agosto/2026

Data;Descrição;Débito;Crédito
10/08/2026;IFOOD RESTAURANTE;89,90; ;
12/08/2026;ESTORNO COMPRA; ;150,00;
 ; ; ;Página 1/1 ;
`

	p := importer.NewParser()
	txs, err := p.Parse(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, txs, 2)

	assert.Equal(t, int64(8990), txs[0].AmountCents)
	assert.Equal(t, transaction.TypeExpense, txs[0].Type)

	assert.Equal(t, "ESTORNO COMPRA", txs[1].Description)
	assert.Equal(t, int64(15000), txs[1].AmountCents)
	assert.Equal(t, transaction.TypeIncome, txs[1].Type)
}

func TestParser_Generico(t *testing.T) {
	csv := `Data;Descrição;Valor
15-08-2026;POSTO SHELL;R$ -200,00
`

	p := importer.NewParser()
	txs, err := p.Parse(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, txs, 1)

	assert.Equal(t, date(2026, 8, 15), txs[0].Date)
	assert.Equal(t, int64(20000), txs[0].AmountCents)
	assert.Equal(t, transaction.TypeExpense, txs[0].Type)
}

func TestParser_DifferentColumnOrder(t *testing.T) {
	csv := `Aleatório;Metadados
Valor;Descrição;Data;Ignorado
-10,00;TESTE ORDEM;30/01/2026;XXX
`

	p := importer.NewParser()
	txs, err := p.Parse(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, txs, 1)

	assert.Equal(t, "TESTE ORDEM", txs[0].Description)
	assert.Equal(t, int64(1000), txs[0].AmountCents)
}

func TestParser_Latin1Encoding(t *testing.T) {
	utf8CSV := "Data;Descrição;Valor\n30/01/2026;CAFÉ CENTRAL;-10,00\n"

	encoder := charmap.Windows1252.NewEncoder()
	latin1Bytes, err := encoder.Bytes([]byte(utf8CSV))
	require.NoError(t, err)

	p := importer.NewParser()
	txs, err := p.Parse(bytes.NewReader(latin1Bytes))
	require.NoError(t, err)
	require.Len(t, txs, 1)

	assert.Equal(t, "CAFÉ CENTRAL", txs[0].Description)
}

func TestParser_EmptyFile(t *testing.T) {
	p := importer.NewParser()
	_, err := p.Parse(strings.NewReader(""))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "no matching format")
}

func TestParser_HeaderOnly(t *testing.T) {
	csv := `Data;Descrição;Valor`

	p := importer.NewParser()
	txs, err := p.Parse(strings.NewReader(csv))
	require.NoError(t, err)
	assert.Empty(t, txs)
}

func TestParser_MissingDescription(t *testing.T) {
	csv := `Data;Descrição;Valor
30/01/2026;;-10,00
`

	p := importer.NewParser()
	_, err := p.Parse(strings.NewReader(csv))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "description")
}

func TestParser_SkipsFooterRows(t *testing.T) {
	csv := `Data;Descrição;Valor
30/01/2026;TESTE;-10,00
Totais;;;;
`

	p := importer.NewParser()
	txs, err := p.Parse(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, txs, 1)
}

func TestParser_LargeAmounts(t *testing.T) {
	csv := `Data;Descrição;Valor
30/01/2026;TRANSFERENCIA GRANDE;-1.234.567,89
`

	p := importer.NewParser()
	txs, err := p.Parse(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, txs, 1)

	assert.Equal(t, int64(123456789), txs[0].AmountCents)
}
