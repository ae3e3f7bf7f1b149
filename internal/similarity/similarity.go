// Package similarity clusters transactions by description overlap to seed
// batch re-categorization suggestions and merchant extraction.
package similarity

import (
	"fmt"

	"github.com/dmarques/financo/internal/normalize"
	"github.com/dmarques/financo/internal/transaction"
)

const (
	// groupThreshold is the minimum pairwise score for two transactions
	// to land in the same group.
	groupThreshold = 0.7

	// minSuggestionGroup is the smallest group size considered for
	// category convergence suggestions.
	minSuggestionGroup = 3
)

// Score returns the token-set Jaccard similarity of the two texts after
// normalization. Two empty token sets score 0, not NaN.
func Score(a, b string) float64 {
	setA := tokenSet(a)
	setB := tokenSet(b)

	if len(setA) == 0 && len(setB) == 0 {
		return 0
	}

	intersection := 0

	for tok := range setA {
		if _, ok := setB[tok]; ok {
			intersection++
		}
	}

	union := len(setA) + len(setB) - intersection

	return float64(intersection) / float64(union)
}

func tokenSet(text string) map[string]struct{} {
	tokens := normalize.Tokens(text)

	set := make(map[string]struct{}, len(tokens))
	for _, tok := range tokens {
		set[tok] = struct{}{}
	}

	return set
}

// Group is a set of transactions of the same type whose descriptions
// resemble the group's seed transaction.
type Group struct {
	Members []*transaction.Transaction
}

// GroupTransactions clusters transactions greedily in a single pass: each
// ungrouped transaction collects every later ungrouped transaction of the
// same type scoring above the threshold against it. The clustering is
// order-dependent and not transitively closed; the output only seeds
// suggestions for human review.
func GroupTransactions(txs []*transaction.Transaction) []Group {
	var groups []Group

	consumed := make([]bool, len(txs))

	for i, seed := range txs {
		if consumed[i] {
			continue
		}

		members := []*transaction.Transaction{seed}

		var memberIdx []int

		for j := range txs {
			if j == i || consumed[j] || txs[j].Type != seed.Type {
				continue
			}

			if Score(seed.Description, txs[j].Description) > groupThreshold {
				members = append(members, txs[j])
				memberIdx = append(memberIdx, j)
			}
		}

		if len(members) < 2 {
			continue
		}

		consumed[i] = true
		for _, j := range memberIdx {
			consumed[j] = true
		}

		groups = append(groups, Group{Members: members})
	}

	return groups
}

// Suggestion proposes converging a transaction onto the category most of
// its similar peers already use.
type Suggestion struct {
	Transaction *transaction.Transaction
	Category    string
	Confidence  float64
	Reason      string
}

// CategorySuggestions inspects each group of at least three members with
// more than one distinct category and suggests the majority category for
// the members not already in it.
func CategorySuggestions(txs []*transaction.Transaction) []Suggestion {
	var suggestions []Suggestion

	for _, group := range GroupTransactions(txs) {
		if len(group.Members) < minSuggestionGroup {
			continue
		}

		majority, count, distinct := majorityCategory(group.Members)
		if distinct < 2 || majority == "" {
			continue
		}

		n := len(group.Members)
		reason := fmt.Sprintf("%d of %d similar transactions use this category", count, n)

		for _, tx := range group.Members {
			if tx.Category == majority {
				continue
			}

			suggestions = append(suggestions, Suggestion{
				Transaction: tx,
				Category:    majority,
				Confidence:  float64(count) / float64(n),
				Reason:      reason,
			})
		}
	}

	return suggestions
}

// majorityCategory tallies member categories in first-seen order so ties
// resolve deterministically.
func majorityCategory(members []*transaction.Transaction) (string, int, int) {
	counts := make(map[string]int, len(members))

	var order []string

	for _, tx := range members {
		if _, seen := counts[tx.Category]; !seen {
			order = append(order, tx.Category)
		}

		counts[tx.Category]++
	}

	best := ""
	bestCount := 0

	for _, cat := range order {
		if counts[cat] > bestCount {
			best = cat
			bestCount = counts[cat]
		}
	}

	return best, bestCount, len(order)
}

// merchantStopWords are payment-rail filler tokens that carry no merchant
// information in Portuguese bank descriptions.
var merchantStopWords = map[string]struct{}{
	"pag":       {},
	"compra":    {},
	"pagamento": {},
	"em":        {},
	"de":        {},
	"no":        {},
	"na":        {},
	"do":        {},
	"da":        {},
}

// MerchantName extracts a short merchant label from a raw description:
// normalize, drop stop words and tokens of two characters or fewer, keep
// the first three remaining tokens. Falls back to the original description
// when nothing survives the filter.
func MerchantName(description string) string {
	var kept []string

	for _, tok := range normalize.Tokens(description) {
		if len(tok) <= 2 {
			continue
		}

		if _, stop := merchantStopWords[tok]; stop {
			continue
		}

		kept = append(kept, tok)
		if len(kept) == 3 {
			break
		}
	}

	if len(kept) == 0 {
		return description
	}

	result := kept[0]
	for _, tok := range kept[1:] {
		result += " " + tok
	}

	return result
}
