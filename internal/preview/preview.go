// Package preview renders a canonical theme in the terminal: token swatches,
// contrast checks, the primary gradient and a highlighted code sample.
package preview

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/tinte/internal/color"
	"github.com/alexisbeaulieu97/tinte/internal/highlight"
	"github.com/alexisbeaulieu97/tinte/internal/providers/vscode"
	"github.com/alexisbeaulieu97/tinte/internal/theme"
)

// DefaultLanguage is used when Options.Language is empty.
const DefaultLanguage = "go"

// WCAG AA thresholds.
const (
	minContrastText  = 4.5
	minContrastLarge = 3.0
)

// Options selects what to render.
type Options struct {
	Mode     theme.Mode
	Language string
}

// Previewer renders previews. It owns a highlighter cache so repeated
// previews of the same theme reuse one highlighter.
type Previewer struct {
	renderer *lipgloss.Renderer
	cache    *highlight.Cache
	styles   styles
}

// New returns a Previewer writing styles for w's color profile.
func New(w io.Writer, cache *highlight.Cache) *Previewer {
	return NewWithRenderer(lipgloss.NewRenderer(w), cache)
}

// NewWithRenderer returns a Previewer using r.
func NewWithRenderer(r *lipgloss.Renderer, cache *highlight.Cache) *Previewer {
	if cache == nil {
		cache = highlight.NewCache()
	}
	return &Previewer{renderer: r, cache: cache, styles: newStyles(r)}
}

// Cache exposes the highlighter cache.
func (p *Previewer) Cache() *highlight.Cache {
	return p.cache
}

// Render produces the full preview of t for one mode. t must be valid.
func (p *Previewer) Render(name string, t theme.Theme, opts Options) (string, error) {
	mode := opts.Mode
	if !mode.Valid() {
		mode = theme.Light
	}
	lang := opts.Language
	if lang == "" {
		lang = DefaultLanguage
	}
	block := t.Block(mode)

	gradient, err := p.Gradient(block.Pr)
	if err != nil {
		return "", err
	}
	code, err := p.Code(name, block, mode, lang)
	if err != nil {
		return "", err
	}

	sections := []string{
		p.styles.title.Render(fmt.Sprintf("%s • %s", name, mode)),
		p.styles.section.Render("Tokens"),
		p.Swatches(block),
		p.styles.section.Render("Contrast"),
		p.Contrast(block),
		p.styles.section.Render("Primary gradient"),
		gradient,
		p.styles.section.Render("Components"),
		p.NewKit(block, mode).Showcase(),
		p.styles.section.Render("Sample (" + lang + ")"),
		code,
	}
	return lipgloss.JoinVertical(lipgloss.Left, sections...), nil
}

// Swatches renders one row per canonical token, each painted in its color
// with the best readable label color.
func (p *Previewer) Swatches(block theme.Block) string {
	rows := make([]string, 0, len(theme.Tokens))
	for _, tok := range theme.Tokens {
		hex := block.Get(tok)
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top,
			p.styles.label.Render(string(tok)),
			p.swatch(hex, hex),
		))
	}
	return strings.Join(rows, "\n")
}

func (p *Previewer) swatch(bg, text string) string {
	fg, err := color.BestTextColor(bg)
	if err != nil {
		return p.styles.fail.Render(text)
	}
	return p.styles.swatch.
		Background(lipgloss.Color(bg)).
		Foreground(lipgloss.Color(fg)).
		Render(text)
}

// ContrastPair is one checked foreground/background combination.
type ContrastPair struct {
	Foreground theme.Token
	Background theme.Token
	Min        float64
}

// ContrastPairs are the combinations every theme is checked against.
var ContrastPairs = []ContrastPair{
	{Foreground: theme.Tx, Background: theme.Bg, Min: minContrastText},
	{Foreground: theme.Tx, Background: theme.Bg2, Min: minContrastText},
	{Foreground: theme.Tx2, Background: theme.Bg, Min: minContrastText},
	{Foreground: theme.Tx3, Background: theme.Bg, Min: minContrastLarge},
	{Foreground: theme.Pr, Background: theme.Bg, Min: minContrastLarge},
}

// ContrastResult is the measured ratio of one pair.
type ContrastResult struct {
	Pair  ContrastPair
	Ratio float64
}

// Pass reports whether the ratio meets the pair's minimum.
func (r ContrastResult) Pass() bool {
	return r.Ratio >= r.Pair.Min
}

// CheckContrast measures every ContrastPairs entry for block.
func CheckContrast(block theme.Block) ([]ContrastResult, error) {
	out := make([]ContrastResult, 0, len(ContrastPairs))
	for _, pair := range ContrastPairs {
		fg, err := color.Luminance(block.Get(pair.Foreground))
		if err != nil {
			return nil, err
		}
		bg, err := color.Luminance(block.Get(pair.Background))
		if err != nil {
			return nil, err
		}
		out = append(out, ContrastResult{Pair: pair, Ratio: color.ContrastRatio(fg, bg)})
	}
	return out, nil
}

// CacheName is the highlighter cache key used for name in mode.
func CacheName(name string, mode theme.Mode) string {
	return fmt.Sprintf("%s (%s)", name, mode)
}

// InvalidateTheme drops cached highlighters of name for every mode.
func (p *Previewer) InvalidateTheme(name string) {
	for _, mode := range theme.Modes {
		p.cache.InvalidateTheme(CacheName(name, mode))
	}
}

// Contrast renders the contrast table.
func (p *Previewer) Contrast(block theme.Block) string {
	results, err := CheckContrast(block)
	if err != nil {
		return p.styles.fail.Render(err.Error())
	}
	lines := make([]string, 0, len(results))
	for _, r := range results {
		verdict := p.styles.pass.Render("pass")
		if !r.Pass() {
			verdict = p.styles.fail.Render("fail")
		}
		lines = append(lines, fmt.Sprintf("%-4s on %-4s %5.2f:1  %s %s",
			r.Pair.Foreground, r.Pair.Background, r.Ratio, verdict,
			p.styles.muted.Render(fmt.Sprintf("(min %.1f)", r.Pair.Min))))
	}
	return strings.Join(lines, "\n")
}

// Gradient renders the darker, base and lighter stops of seed.
func (p *Previewer) Gradient(seed string) (string, error) {
	g, err := color.DeriveGradient(seed)
	if err != nil {
		return "", err
	}
	return lipgloss.JoinHorizontal(lipgloss.Top,
		p.swatch(g.Darker, g.Darker),
		p.swatch(g.Base, g.Base),
		p.swatch(g.Lighter, g.Lighter),
	) + "\n" + p.styles.muted.Render(g.CSS(135)), nil
}

// Code renders the built-in sample for lang highlighted with the VS Code
// conversion of block. Highlighters are cached per name and mode; callers
// that edit a theme in place must invalidate it with InvalidateTheme.
func (p *Previewer) Code(name string, block theme.Block, mode theme.Mode, lang string) (string, error) {
	sample, ok := highlight.Samples[lang]
	if !ok {
		return "", fmt.Errorf("no sample for language %q", lang)
	}
	vs := vscode.Convert(CacheName(name, mode), block, mode)
	h := p.cache.Get(vs, []string{lang})

	styled, err := h.Highlight(lang, sample)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	for _, s := range styled {
		style := p.renderer.NewStyle().
			Foreground(lipgloss.Color(s.Style.Foreground)).
			Bold(s.Style.Bold()).
			Italic(s.Style.Italic()).
			Underline(s.Style.Underline())
		// Render per line so styles do not bleed across newlines.
		parts := strings.Split(s.Text, "\n")
		for i, part := range parts {
			if i > 0 {
				b.WriteString("\n")
			}
			if part != "" {
				b.WriteString(style.Render(part))
			}
		}
	}
	return p.styles.code.Background(lipgloss.Color(block.Bg)).Render(b.String()), nil
}
