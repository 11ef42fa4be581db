// Package highlight resolves TextMate scopes against a VS Code theme's
// tokenColors for a fixed set of languages.
package highlight

import (
	"fmt"
	"sort"
	"strings"

	"github.com/samber/lo"

	"github.com/alexisbeaulieu97/tinte/internal/providers/vscode"
)

// Style is the resolved presentation of one scope.
type Style struct {
	Foreground string
	FontStyle  string
	// Selector is the tokenColors selector that matched, empty for the default.
	Selector string
}

// Bold reports whether FontStyle includes bold.
func (s Style) Bold() bool { return s.has("bold") }

// Italic reports whether FontStyle includes italic.
func (s Style) Italic() bool { return s.has("italic") }

// Underline reports whether FontStyle includes underline.
func (s Style) Underline() bool { return s.has("underline") }

func (s Style) has(flag string) bool {
	return lo.Contains(strings.Fields(s.FontStyle), flag)
}

// ErrLanguageNotLoaded is returned for languages outside the highlighter's set.
type ErrLanguageNotLoaded struct {
	Language string
	Loaded   []string
}

func (e ErrLanguageNotLoaded) Error() string {
	return fmt.Sprintf("language '%s' is not loaded (loaded: %s)", e.Language, strings.Join(e.Loaded, ", "))
}

type selectorRule struct {
	selector string
	settings vscode.TokenSettings
	order    int
}

// Highlighter is immutable once built and safe for concurrent use.
type Highlighter struct {
	themeName  string
	foreground string
	rules      []selectorRule
	languages  []string
}

// New builds a highlighter for t restricted to languages.
func New(t vscode.Theme, languages []string) *Highlighter {
	h := &Highlighter{
		themeName:  t.Name,
		foreground: t.Colors["editor.foreground"],
		languages:  NormalizeLanguages(languages),
	}
	order := 0
	for _, tc := range t.TokenColors {
		for _, sel := range tc.Scope {
			sel = strings.TrimSpace(sel)
			if sel == "" {
				continue
			}
			h.rules = append(h.rules, selectorRule{selector: sel, settings: tc.Settings, order: order})
			order++
		}
	}
	return h
}

// NormalizeLanguages lowercases, dedupes and sorts a language set.
func NormalizeLanguages(languages []string) []string {
	normalized := lo.Uniq(lo.FilterMap(languages, func(lang string, _ int) (string, bool) {
		lang = strings.ToLower(strings.TrimSpace(lang))
		return lang, lang != ""
	}))
	sort.Strings(normalized)
	return normalized
}

// ThemeName returns the name of the theme the highlighter was built from.
func (h *Highlighter) ThemeName() string { return h.themeName }

// Languages returns the loaded language set.
func (h *Highlighter) Languages() []string {
	return append([]string(nil), h.languages...)
}

// Supports reports whether lang is loaded.
func (h *Highlighter) Supports(lang string) bool {
	return lo.Contains(h.languages, strings.ToLower(lang))
}

// Resolve returns the style of scope in lang. A selector matches when it
// equals the scope or is a dot-separated prefix of it; the longest match wins
// and later tokenColors entries win ties.
func (h *Highlighter) Resolve(lang, scope string) (Style, error) {
	if !h.Supports(lang) {
		return Style{}, ErrLanguageNotLoaded{Language: lang, Loaded: h.Languages()}
	}
	return h.match(scope), nil
}

// ResolveStack resolves a scope stack, innermost scope last. The innermost
// scope with a matching selector decides.
func (h *Highlighter) ResolveStack(lang string, stack []string) (Style, error) {
	if !h.Supports(lang) {
		return Style{}, ErrLanguageNotLoaded{Language: lang, Loaded: h.Languages()}
	}
	for i := len(stack) - 1; i >= 0; i-- {
		if style := h.match(stack[i]); style.Selector != "" {
			return style, nil
		}
	}
	return Style{Foreground: h.foreground}, nil
}

func (h *Highlighter) match(scope string) Style {
	best := -1
	for i, rule := range h.rules {
		if !selectorMatches(rule.selector, scope) {
			continue
		}
		if best < 0 || len(rule.selector) > len(h.rules[best].selector) ||
			(len(rule.selector) == len(h.rules[best].selector) && rule.order > h.rules[best].order) {
			best = i
		}
	}
	if best < 0 {
		return Style{Foreground: h.foreground}
	}
	rule := h.rules[best]
	fg := rule.settings.Foreground
	if fg == "" {
		fg = h.foreground
	}
	return Style{Foreground: fg, FontStyle: rule.settings.FontStyle, Selector: rule.selector}
}

func selectorMatches(selector, scope string) bool {
	return scope == selector || strings.HasPrefix(scope, selector+".")
}
