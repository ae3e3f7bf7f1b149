package category

import (
	"fmt"
	"sort"
	"sync"
)

// Catalog is an ordered set of categorization rules: the built-in seed
// rules plus caller-supplied custom rules, kept sorted by priority
// ascending. Rules are pure configuration; the catalog never mutates
// transactions. Safe for concurrent use: rule mutations can arrive while
// engines are matching.
type Catalog struct {
	mu    sync.RWMutex
	rules []Rule
}

// NewCatalog builds a catalog from the built-in rules plus any custom
// rules. Custom rules with invalid regex patterns are rejected.
func NewCatalog(custom ...Rule) (*Catalog, error) {
	c := &Catalog{rules: make([]Rule, 0, len(builtinRules)+len(custom))}

	for _, r := range builtinRules {
		r.builtin = true
		if err := r.compile(); err != nil {
			// Built-in patterns are fixed at compile time; a failure
			// here is a programming error.
			panic(err)
		}

		c.rules = append(c.rules, r)
	}

	if err := c.ImportRules(custom); err != nil {
		return nil, err
	}

	return c, nil
}

// AddCustomRule inserts one caller-supplied rule and re-sorts the catalog.
func (c *Catalog) AddCustomRule(rule Rule) error {
	rule.builtin = false
	if err := rule.compile(); err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.rules = append(c.rules, rule)
	c.sortByPriority()

	return nil
}

// ImportRules inserts a batch of caller-supplied rules, as produced by
// ExportRules. The catalog is left unchanged if any rule fails to compile.
func (c *Catalog) ImportRules(rules []Rule) error {
	compiled := make([]Rule, 0, len(rules))

	for _, r := range rules {
		r.builtin = false
		if err := r.compile(); err != nil {
			return fmt.Errorf("importing rules: %w", err)
		}

		compiled = append(compiled, r)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.rules = append(c.rules, compiled...)
	c.sortByPriority()

	return nil
}

// RemoveRule drops the custom rule with the given ID. Built-in rules
// cannot be removed.
func (c *Catalog) RemoveRule(id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i, r := range c.rules {
		if r.builtin || r.ID != id {
			continue
		}

		c.rules = append(c.rules[:i], c.rules[i+1:]...)

		return nil
	}

	return fmt.Errorf("no custom rule with id %q", id)
}

// ExportRules returns only the caller-added rules, for backup. Built-in
// rules are never exported.
func (c *Catalog) ExportRules() []Rule {
	c.mu.RLock()
	defer c.mu.RUnlock()

	var custom []Rule

	for _, r := range c.rules {
		if r.builtin {
			continue
		}

		custom = append(custom, r)
	}

	return custom
}

// Rules returns a copy of every rule in evaluation order.
func (c *Catalog) Rules() []Rule {
	c.mu.RLock()
	defer c.mu.RUnlock()

	rules := make([]Rule, len(c.rules))
	copy(rules, c.rules)

	return rules
}

// sortByPriority requires c.mu to be held for writing.
func (c *Catalog) sortByPriority() {
	sort.SliceStable(c.rules, func(i, j int) bool {
		return c.rules[i].Priority < c.rules[j].Priority
	})
}
