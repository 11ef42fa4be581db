// Package scopes resolves declarative token-role tables against a canonical
// block. Tables are plain data owned by each syntax-aware adapter.
package scopes

import (
	"fmt"

	"github.com/alexisbeaulieu97/tinte/internal/theme"
)

// Rule maps a syntax role to an ordered chain of canonical tokens. The first
// non-empty token wins; Light or Dark is used only when every candidate is
// empty, which a validated block never produces.
type Rule struct {
	Name      string
	Scopes    []string
	Fallbacks []theme.Token
	Light     string
	Dark      string
	FontStyle string
}

// Resolve picks the color for the rule.
func (r Rule) Resolve(block theme.Block, mode theme.Mode) string {
	for _, tok := range r.Fallbacks {
		if value := block.Get(tok); value != "" {
			return value
		}
	}
	if mode == theme.Dark {
		return r.Dark
	}
	return r.Light
}

// Table is an ordered list of rules.
type Table []Rule

// Resolve returns role name to color for every rule.
func (t Table) Resolve(block theme.Block, mode theme.Mode) map[string]string {
	out := make(map[string]string, len(t))
	for _, rule := range t {
		out[rule.Name] = rule.Resolve(block, mode)
	}
	return out
}

// Lookup finds a rule by role name.
func (t Table) Lookup(name string) (Rule, bool) {
	for _, rule := range t {
		if rule.Name == name {
			return rule, true
		}
	}
	return Rule{}, false
}

// Names lists role names in table order.
func (t Table) Names() []string {
	names := make([]string, len(t))
	for i, rule := range t {
		names[i] = rule.Name
	}
	return names
}

// Check verifies the table is well formed: unique names, known tokens and
// both literal fallbacks present.
func (t Table) Check() error {
	seen := make(map[string]struct{}, len(t))
	for _, rule := range t {
		if rule.Name == "" {
			return fmt.Errorf("rule without name")
		}
		if _, dup := seen[rule.Name]; dup {
			return fmt.Errorf("rule %q defined twice", rule.Name)
		}
		seen[rule.Name] = struct{}{}
		if len(rule.Fallbacks) == 0 {
			return fmt.Errorf("rule %q has no canonical fallbacks", rule.Name)
		}
		for _, tok := range rule.Fallbacks {
			if !theme.IsToken(string(tok)) {
				return fmt.Errorf("rule %q references unknown token %q", rule.Name, tok)
			}
		}
		if rule.Light == "" || rule.Dark == "" {
			return fmt.Errorf("rule %q needs light and dark literals", rule.Name)
		}
	}
	return nil
}
