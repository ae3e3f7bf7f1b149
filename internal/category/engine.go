package category

import (
	"sort"
	"strings"

	"github.com/dmarques/financo/internal/normalize"
	"github.com/dmarques/financo/internal/similarity"
	"github.com/dmarques/financo/internal/transaction"
)

// Reason identifies which tier of the engine produced a result.
type Reason string

const (
	ReasonKeyword Reason = "keyword-match"
	ReasonPattern Reason = "pattern-match"
	ReasonSimilar Reason = "similar-transactions"
	ReasonAmount  Reason = "amount-heuristic"
)

// Result is a categorization verdict. Confidence is always in (0, 1].
type Result struct {
	Category   string
	Confidence float64
	Reason     Reason
}

const (
	// similarityThreshold gates the historical-transaction fallback.
	similarityThreshold = 0.6

	// suggestionMinConfidence gates batch suggestions; anything at or
	// below it is not worth surfacing.
	suggestionMinConfidence = 0.7
)

// Amount bands for the last-resort heuristic, in cents.
const (
	incomeSalaryCents    = 300_000
	incomeFreelanceCents = 50_000
	expenseHousingCents  = 100_000
	expenseFoodCents     = 20_000
)

// Engine categorizes transactions against a rule catalog. It is stateless
// beyond the catalog and never mutates its inputs; applying a result to a
// transaction is the caller's decision.
type Engine struct {
	catalog *Catalog
}

func NewEngine(catalog *Catalog) *Engine {
	return &Engine{catalog: catalog}
}

// Categorize resolves a category for the transaction, trying rule
// matching, then similarity against same-type historical transactions,
// then a fixed amount-band heuristic. It always returns a result.
func (e *Engine) Categorize(tx *transaction.Transaction, history []*transaction.Transaction) Result {
	desc := normalize.Normalize(tx.Description)

	if res, ok := e.matchRules(desc, tx.Type); ok {
		return res
	}

	if res, ok := e.matchSimilar(tx, history); ok {
		return res
	}

	return amountHeuristic(tx)
}

func (e *Engine) matchRules(normalizedDesc string, txType transaction.Type) (Result, bool) {
	e.catalog.mu.RLock()
	defer e.catalog.mu.RUnlock()

	for i := range e.catalog.rules {
		rule := &e.catalog.rules[i]
		if !rule.appliesTo(txType) {
			continue
		}

		if keywordMatch(normalizedDesc, rule) {
			return Result{Category: rule.Category, Confidence: rule.Confidence, Reason: ReasonKeyword}, true
		}

		for _, re := range rule.compiledPatterns {
			if re.MatchString(normalizedDesc) {
				return Result{Category: rule.Category, Confidence: rule.Confidence, Reason: ReasonPattern}, true
			}
		}
	}

	return Result{}, false
}

func keywordMatch(desc string, rule *Rule) bool {
	matched := false

	for _, kw := range rule.normKeywords {
		if strings.Contains(desc, kw) {
			matched = true
			break
		}
	}

	if !matched {
		return false
	}

	for _, neg := range rule.normNegKeywords {
		if strings.Contains(desc, neg) {
			return false
		}
	}

	return true
}

// matchSimilar tallies the categories of same-type historical transactions
// whose descriptions score above the similarity threshold. The most
// frequent category wins, with confidence = winners / matched.
func (e *Engine) matchSimilar(tx *transaction.Transaction, history []*transaction.Transaction) (Result, bool) {
	counts := make(map[string]int)

	var order []string

	matched := 0

	for _, h := range history {
		if h.ID == tx.ID || h.Type != tx.Type || h.Category == "" {
			continue
		}

		if similarity.Score(tx.Description, h.Description) <= similarityThreshold {
			continue
		}

		matched++

		if _, seen := counts[h.Category]; !seen {
			order = append(order, h.Category)
		}

		counts[h.Category]++
	}

	if matched == 0 {
		return Result{}, false
	}

	best := ""
	bestCount := 0

	for _, cat := range order {
		if counts[cat] > bestCount {
			best = cat
			bestCount = counts[cat]
		}
	}

	return Result{
		Category:   best,
		Confidence: float64(bestCount) / float64(matched),
		Reason:     ReasonSimilar,
	}, true
}

// amountHeuristic is the last-resort tier; thresholds and confidences are
// fixed constants, not learned.
func amountHeuristic(tx *transaction.Transaction) Result {
	if tx.Type == transaction.TypeIncome {
		switch {
		case tx.AmountCents > incomeSalaryCents:
			return Result{Category: CategorySalary, Confidence: 0.6, Reason: ReasonAmount}
		case tx.AmountCents > incomeFreelanceCents:
			return Result{Category: CategoryFreelance, Confidence: 0.5, Reason: ReasonAmount}
		default:
			return Result{Category: CategoryOther, Confidence: 0.3, Reason: ReasonAmount}
		}
	}

	switch {
	case tx.AmountCents > expenseHousingCents:
		return Result{Category: CategoryHousing, Confidence: 0.4, Reason: ReasonAmount}
	case tx.AmountCents > expenseFoodCents:
		return Result{Category: CategoryFood, Confidence: 0.4, Reason: ReasonAmount}
	default:
		return Result{Category: CategoryOther, Confidence: 0.3, Reason: ReasonAmount}
	}
}

// Suggestion proposes replacing a transaction's category. Applying it is
// the caller's responsibility; the engine never writes.
type Suggestion struct {
	Transaction *transaction.Transaction
	OldCategory string
	NewCategory string
	Confidence  float64
	Reason      Reason
}

// BatchCategorize re-runs categorization over the whole set, using the set
// itself as history, and keeps only suggestions that change the category
// with confidence above the suggestion threshold, sorted by confidence
// descending.
func (e *Engine) BatchCategorize(txs []*transaction.Transaction) []Suggestion {
	var suggestions []Suggestion

	for _, tx := range txs {
		res := e.Categorize(tx, txs)
		if res.Category == tx.Category || res.Confidence <= suggestionMinConfidence {
			continue
		}

		suggestions = append(suggestions, Suggestion{
			Transaction: tx,
			OldCategory: tx.Category,
			NewCategory: res.Category,
			Confidence:  res.Confidence,
			Reason:      res.Reason,
		})
	}

	sort.SliceStable(suggestions, func(i, j int) bool {
		return suggestions[i].Confidence > suggestions[j].Confidence
	})

	return suggestions
}
