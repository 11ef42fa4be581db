// Package provider registers the output adapters and runs the conversion
// pipeline: validate, derive, merge overrides, assemble, render.
package provider

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/alexisbeaulieu97/tinte/internal/palette"
	"github.com/alexisbeaulieu97/tinte/internal/theme"
)

var (
	idPattern      = regexp.MustCompile(`^[a-z][a-z0-9-]*$`)
	slugSeparators = regexp.MustCompile(`[^a-z0-9]+`)
)

// Metadata identifies a provider.
type Metadata struct {
	ID          string
	Name        string
	Description string
}

// Validate ensures metadata is well-formed.
func (m Metadata) Validate() error {
	if strings.TrimSpace(m.ID) == "" {
		return fmt.Errorf("provider metadata requires a non-empty ID")
	}
	if !idPattern.MatchString(m.ID) {
		return fmt.Errorf("provider '%s' has invalid ID (expected lowercase letters, digits and dashes)", m.ID)
	}
	if strings.TrimSpace(m.Name) == "" {
		return fmt.Errorf("provider '%s' metadata requires Name", m.ID)
	}
	return nil
}

// File is one rendered output.
type File struct {
	Name    string
	Content []byte
}

// Provider adapts canonical blocks to one target format. Derive must be pure
// and fully populate the provider's vocabulary; overrides are applied between
// Derive and Native/Render by the Service, never by the provider itself.
type Provider interface {
	Metadata() Metadata
	Derive(block theme.Block, mode theme.Mode) palette.Derived
	// Native returns the single-mode native object, ready for JSON encoding.
	Native(name string, mode theme.Mode, d palette.Derived) any
	// Render produces the provider's export files for both modes.
	Render(name string, light, dark palette.Derived) ([]File, error)
}

// Slug turns a theme name into a file-name-safe identifier.
func Slug(name string) string {
	slug := strings.Trim(slugSeparators.ReplaceAllString(strings.ToLower(name), "-"), "-")
	if slug == "" {
		return "theme"
	}
	return slug
}

// ErrNotFound is returned when the requested provider is not registered.
type ErrNotFound struct {
	ID string
}

func (e ErrNotFound) Error() string {
	return fmt.Sprintf("provider '%s' not found\nHint: run 'tinte providers' to list available providers", e.ID)
}
