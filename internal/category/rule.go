// Package category assigns spending categories to transactions using an
// ordered rule catalog, with similarity and amount-band fallbacks.
package category

import (
	"fmt"
	"regexp"

	"github.com/dmarques/financo/internal/normalize"
	"github.com/dmarques/financo/internal/transaction"
)

// AppliesTo restricts a rule to income, expense or both transaction types.
type AppliesTo string

const (
	AppliesIncome  AppliesTo = "income"
	AppliesExpense AppliesTo = "expense"
	AppliesBoth    AppliesTo = "both"
)

// Rule maps transaction descriptions to a category. A rule matches when
// the normalized description contains any keyword and none of the negative
// keywords, or when any regex pattern matches the normalized description.
type Rule struct {
	ID               string    `json:"id"`
	Keywords         []string  `json:"keywords"`
	NegativeKeywords []string  `json:"negative_keywords,omitempty"`
	Patterns         []string  `json:"patterns,omitempty"`
	Category         string    `json:"category"`
	Confidence       float64   `json:"confidence"`
	AppliesTo        AppliesTo `json:"applies_to"`
	Priority         int       `json:"priority"` // Lower evaluates first.

	builtin          bool
	normKeywords     []string
	normNegKeywords  []string
	compiledPatterns []*regexp.Regexp
}

// compile precomputes normalized keyword forms and compiled patterns.
func (r *Rule) compile() error {
	r.normKeywords = r.normKeywords[:0]
	for _, kw := range r.Keywords {
		if n := normalize.Normalize(kw); n != "" {
			r.normKeywords = append(r.normKeywords, n)
		}
	}

	r.normNegKeywords = r.normNegKeywords[:0]
	for _, kw := range r.NegativeKeywords {
		if n := normalize.Normalize(kw); n != "" {
			r.normNegKeywords = append(r.normNegKeywords, n)
		}
	}

	r.compiledPatterns = r.compiledPatterns[:0]

	for _, p := range r.Patterns {
		re, err := regexp.Compile(p)
		if err != nil {
			return fmt.Errorf("rule %s: compiling pattern %q: %w", r.ID, p, err)
		}

		r.compiledPatterns = append(r.compiledPatterns, re)
	}

	return nil
}

// appliesTo reports whether the rule covers the given transaction type.
func (r *Rule) appliesTo(txType transaction.Type) bool {
	switch r.AppliesTo {
	case AppliesBoth, "":
		return true
	case AppliesIncome:
		return txType == transaction.TypeIncome
	case AppliesExpense:
		return txType == transaction.TypeExpense
	}

	return false
}
