package override

import (
	"github.com/alexisbeaulieu97/tinte/internal/logger"
	"github.com/alexisbeaulieu97/tinte/internal/palette"
	"github.com/alexisbeaulieu97/tinte/internal/theme"
)

// Normalizer decodes raw overrides and applies them, logging every recovered
// malformation instead of failing.
type Normalizer struct {
	log *logger.Logger
}

// NewNormalizer returns a Normalizer. log may be nil.
func NewNormalizer(log *logger.Logger) *Normalizer {
	return &Normalizer{log: log}
}

// Normalize decodes one provider's raw override.
func (n *Normalizer) Normalize(provider string, raw any) ProviderOverride {
	ov, issues := Decode(provider, raw)
	n.warn(provider, issues)
	return ov
}

// NormalizeAll decodes a provider-keyed object of raw overrides.
func (n *Normalizer) NormalizeAll(raw any) NormalizedOverrides {
	all, issues := DecodeAll(raw)
	n.warn("", issues)
	return all
}

// Apply merges ov onto the baseline for mode.
func (n *Normalizer) Apply(base palette.Derived, mode theme.Mode, ov ProviderOverride) palette.Derived {
	return Merge(base, mode, ov)
}

func (n *Normalizer) warn(provider string, issues []error) {
	if n == nil || len(issues) == 0 {
		return
	}
	log := n.log
	if provider != "" {
		log = log.With("provider", provider)
	}
	for _, err := range issues {
		log.Warn(err, "ignored malformed override fragment")
	}
}
