// Package theme defines the canonical Tinte model: two blocks (light and dark)
// of exactly thirteen semantic hex colors.
package theme

import (
	"encoding/json"
	"fmt"
	"sort"

	"gopkg.in/yaml.v3"

	tinteerrors "github.com/alexisbeaulieu97/tinte/pkg/errors"
)

// Mode selects one of the two canonical blocks.
type Mode string

const (
	Light Mode = "light"
	Dark  Mode = "dark"
)

// Modes lists modes in rendering order.
var Modes = []Mode{Light, Dark}

// Valid reports whether m is light or dark.
func (m Mode) Valid() bool {
	return m == Light || m == Dark
}

// ParseMode converts user input into a Mode.
func ParseMode(value string) (Mode, error) {
	m := Mode(value)
	if !m.Valid() {
		return "", fmt.Errorf("unknown mode %q (expected light or dark)", value)
	}
	return m, nil
}

// Token names a canonical color slot.
type Token string

const (
	Bg  Token = "bg"
	Bg2 Token = "bg_2"
	UI  Token = "ui"
	UI2 Token = "ui_2"
	UI3 Token = "ui_3"
	Tx  Token = "tx"
	Tx2 Token = "tx_2"
	Tx3 Token = "tx_3"
	Pr  Token = "pr"
	Sc  Token = "sc"
	Ac1 Token = "ac_1"
	Ac2 Token = "ac_2"
	Ac3 Token = "ac_3"
)

// Tokens is the fixed canonical vocabulary in display order.
var Tokens = []Token{Bg, Bg2, UI, UI2, UI3, Tx, Tx2, Tx3, Pr, Sc, Ac1, Ac2, Ac3}

var tokenSet = func() map[Token]struct{} {
	set := make(map[Token]struct{}, len(Tokens))
	for _, t := range Tokens {
		set[t] = struct{}{}
	}
	return set
}()

// IsToken reports whether name belongs to the canonical vocabulary.
func IsToken(name string) bool {
	_, ok := tokenSet[Token(name)]
	return ok
}

// Block is one mode's palette. Blocks are values: edits produce new blocks.
type Block struct {
	Bg  string `json:"bg" yaml:"bg" validate:"required,tinte_hex"`
	Bg2 string `json:"bg_2" yaml:"bg_2" validate:"required,tinte_hex"`
	UI  string `json:"ui" yaml:"ui" validate:"required,tinte_hex"`
	UI2 string `json:"ui_2" yaml:"ui_2" validate:"required,tinte_hex"`
	UI3 string `json:"ui_3" yaml:"ui_3" validate:"required,tinte_hex"`
	Tx  string `json:"tx" yaml:"tx" validate:"required,tinte_hex"`
	Tx2 string `json:"tx_2" yaml:"tx_2" validate:"required,tinte_hex"`
	Tx3 string `json:"tx_3" yaml:"tx_3" validate:"required,tinte_hex"`
	Pr  string `json:"pr" yaml:"pr" validate:"required,tinte_hex"`
	Sc  string `json:"sc" yaml:"sc" validate:"required,tinte_hex"`
	Ac1 string `json:"ac_1" yaml:"ac_1" validate:"required,tinte_hex"`
	Ac2 string `json:"ac_2" yaml:"ac_2" validate:"required,tinte_hex"`
	Ac3 string `json:"ac_3" yaml:"ac_3" validate:"required,tinte_hex"`
}

func (b *Block) slot(t Token) *string {
	switch t {
	case Bg:
		return &b.Bg
	case Bg2:
		return &b.Bg2
	case UI:
		return &b.UI
	case UI2:
		return &b.UI2
	case UI3:
		return &b.UI3
	case Tx:
		return &b.Tx
	case Tx2:
		return &b.Tx2
	case Tx3:
		return &b.Tx3
	case Pr:
		return &b.Pr
	case Sc:
		return &b.Sc
	case Ac1:
		return &b.Ac1
	case Ac2:
		return &b.Ac2
	case Ac3:
		return &b.Ac3
	default:
		return nil
	}
}

// Get returns the value of token t, or "" for names outside the vocabulary.
func (b Block) Get(t Token) string {
	if p := b.slot(t); p != nil {
		return *p
	}
	return ""
}

// With returns a copy of b with token t replaced. Unknown tokens leave the
// copy unchanged.
func (b Block) With(t Token, value string) Block {
	if p := b.slot(t); p != nil {
		*p = value
	}
	return b
}

// Map returns the block as a token-keyed map.
func (b Block) Map() map[string]string {
	out := make(map[string]string, len(Tokens))
	for _, t := range Tokens {
		out[string(t)] = b.Get(t)
	}
	return out
}

// BlockFromMap builds a block from exactly the thirteen canonical keys.
// Values are not checked here; see ValidateBlock.
func BlockFromMap(mode Mode, values map[string]string) (Block, error) {
	var unknown []string
	for key := range values {
		if !IsToken(key) {
			unknown = append(unknown, key)
		}
	}
	if len(unknown) > 0 {
		sort.Strings(unknown)
		return Block{}, tinteerrors.NewInvalidThemeError(string(mode), unknown[0], values[unknown[0]], "unknown token", nil)
	}

	var block Block
	for _, t := range Tokens {
		value, ok := values[string(t)]
		if !ok {
			return Block{}, tinteerrors.NewInvalidThemeError(string(mode), string(t), "", "missing token", nil)
		}
		block = block.With(t, value)
	}
	return block, nil
}

// UnmarshalJSON rejects blocks with missing or extra keys.
func (b *Block) UnmarshalJSON(data []byte) error {
	var values map[string]string
	if err := json.Unmarshal(data, &values); err != nil {
		return err
	}
	block, err := BlockFromMap("", values)
	if err != nil {
		return err
	}
	*b = block
	return nil
}

// UnmarshalYAML rejects blocks with missing or extra keys.
func (b *Block) UnmarshalYAML(value *yaml.Node) error {
	var values map[string]string
	if err := value.Decode(&values); err != nil {
		return err
	}
	block, err := BlockFromMap("", values)
	if err != nil {
		return err
	}
	*b = block
	return nil
}

// Theme pairs the light and dark blocks.
type Theme struct {
	Light Block `json:"light" yaml:"light"`
	Dark  Block `json:"dark" yaml:"dark"`
}

// Block returns the block for mode m. Any mode other than Dark yields Light.
func (t Theme) Block(m Mode) Block {
	if m == Dark {
		return t.Dark
	}
	return t.Light
}

// WithBlock returns a new theme with mode m replaced wholesale.
func (t Theme) WithBlock(m Mode, block Block) Theme {
	if m == Dark {
		t.Dark = block
	} else {
		t.Light = block
	}
	return t
}

type rawTheme struct {
	Light map[string]string `json:"light" yaml:"light"`
	Dark  map[string]string `json:"dark" yaml:"dark"`
}

// FromMaps builds a theme from raw per-mode maps, attributing structural
// errors to the right mode.
func FromMaps(light, dark map[string]string) (Theme, error) {
	if light == nil {
		return Theme{}, tinteerrors.NewInvalidThemeError(string(Light), "", "", "block is missing", nil)
	}
	if dark == nil {
		return Theme{}, tinteerrors.NewInvalidThemeError(string(Dark), "", "", "block is missing", nil)
	}
	lightBlock, err := BlockFromMap(Light, light)
	if err != nil {
		return Theme{}, err
	}
	darkBlock, err := BlockFromMap(Dark, dark)
	if err != nil {
		return Theme{}, err
	}
	return Theme{Light: lightBlock, Dark: darkBlock}, nil
}

// UnmarshalJSON decodes both blocks strictly.
func (t *Theme) UnmarshalJSON(data []byte) error {
	var raw rawTheme
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	decoded, err := FromMaps(raw.Light, raw.Dark)
	if err != nil {
		return err
	}
	*t = decoded
	return nil
}

// UnmarshalYAML decodes both blocks strictly.
func (t *Theme) UnmarshalYAML(value *yaml.Node) error {
	var raw rawTheme
	if err := value.Decode(&raw); err != nil {
		return err
	}
	decoded, err := FromMaps(raw.Light, raw.Dark)
	if err != nil {
		return err
	}
	*t = decoded
	return nil
}
