package category_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmarques/financo/internal/category"
	"github.com/dmarques/financo/internal/transaction"
)

func TestCatalog_AddCustomRule_Priority(t *testing.T) {
	catalog, err := category.NewCatalog()
	require.NoError(t, err)

	// Priority 1 beats every built-in rule, so "uber eats" resolves to
	// the custom category instead of the food-delivery rule.
	err = catalog.AddCustomRule(category.Rule{
		ID:         "custom-work-meals",
		Keywords:   []string{"uber eats"},
		Category:   "Refeições de Trabalho",
		Confidence: 0.99,
		AppliesTo:  category.AppliesExpense,
		Priority:   1,
	})
	require.NoError(t, err)

	e := category.NewEngine(catalog)
	res := e.Categorize(newTx("UBER EATS PEDIDO 123", 4590, transaction.TypeExpense), nil)

	assert.Equal(t, "Refeições de Trabalho", res.Category)
	assert.Equal(t, 0.99, res.Confidence)
}

func TestCatalog_AddCustomRule_BadPattern(t *testing.T) {
	catalog, err := category.NewCatalog()
	require.NoError(t, err)

	err = catalog.AddCustomRule(category.Rule{
		ID:       "custom-broken",
		Patterns: []string{"("},
		Category: "X",
	})
	assert.Error(t, err)
}

func TestCatalog_ExportImportRoundTrip(t *testing.T) {
	custom := category.Rule{
		ID:         "custom-pet",
		Keywords:   []string{"petshop", "veterinario"},
		Category:   "Pets",
		Confidence: 0.9,
		AppliesTo:  category.AppliesExpense,
		Priority:   5,
	}

	catalog, err := category.NewCatalog(custom)
	require.NoError(t, err)

	exported := catalog.ExportRules()
	require.Len(t, exported, 1)
	assert.Equal(t, "custom-pet", exported[0].ID)

	fresh, err := category.NewCatalog()
	require.NoError(t, err)
	require.NoError(t, fresh.ImportRules(exported))

	tx := newTx("PETSHOP AMIGO FIEL", 8000, transaction.TypeExpense)

	original := category.NewEngine(catalog).Categorize(tx, nil)
	restored := category.NewEngine(fresh).Categorize(tx, nil)

	assert.Equal(t, original, restored)
	assert.Equal(t, "Pets", restored.Category)
}

func TestCatalog_ExportRules_OmitsBuiltins(t *testing.T) {
	catalog, err := category.NewCatalog()
	require.NoError(t, err)

	assert.Empty(t, catalog.ExportRules())
	assert.NotEmpty(t, catalog.Rules())
}

func TestCatalog_Rules_ReturnsCopy(t *testing.T) {
	catalog, err := category.NewCatalog()
	require.NoError(t, err)

	rules := catalog.Rules()
	require.NotEmpty(t, rules)

	rules[0].Category = "Adulterada"

	assert.NotEqual(t, "Adulterada", catalog.Rules()[0].Category)
}

// Rule mutations arrive over HTTP while other requests are categorizing,
// so the catalog has to tolerate both happening at once. Run with -race.
func TestCatalog_ConcurrentAddAndCategorize(t *testing.T) {
	catalog, err := category.NewCatalog()
	require.NoError(t, err)

	e := category.NewEngine(catalog)
	tx := newTx("UBER EATS PEDIDO 123", 4590, transaction.TypeExpense)

	var wg sync.WaitGroup

	wg.Add(2)

	errs := make(chan error, 2)

	go func() {
		defer wg.Done()

		for i := 0; i < 200; i++ {
			if err := catalog.AddCustomRule(category.Rule{
				ID:         fmt.Sprintf("custom-%d", i),
				Keywords:   []string{fmt.Sprintf("loja %d", i)},
				Category:   "Compras",
				Confidence: 0.9,
				AppliesTo:  category.AppliesExpense,
				Priority:   100 + i,
			}); err != nil {
				errs <- err
				return
			}
		}
	}()

	go func() {
		defer wg.Done()

		for i := 0; i < 200; i++ {
			res := e.Categorize(tx, nil)
			if res.Category == "" {
				errs <- fmt.Errorf("empty category on iteration %d", i)
				return
			}
		}
	}()

	wg.Wait()
	close(errs)

	require.NoError(t, <-errs)
}
