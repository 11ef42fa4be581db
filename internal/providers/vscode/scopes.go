package vscode

import (
	"github.com/alexisbeaulieu97/tinte/internal/scopes"
	"github.com/alexisbeaulieu97/tinte/internal/theme"
)

// TokenRules maps syntax roles to TextMate scopes. Fallback order is part of
// the visual contract; do not reorder without checking rendered themes.
var TokenRules = scopes.Table{
	{
		Name:      "comment",
		Scopes:    []string{"comment", "punctuation.definition.comment"},
		Fallbacks: []theme.Token{theme.Tx3},
		Light:     "#008000",
		Dark:      "#6a9955",
		FontStyle: "italic",
	},
	{
		Name:      "keyword",
		Scopes:    []string{"keyword", "keyword.control", "storage.type", "storage.modifier"},
		Fallbacks: []theme.Token{theme.Pr, theme.Sc},
		Light:     "#0000ff",
		Dark:      "#569cd6",
	},
	{
		Name:      "string",
		Scopes:    []string{"string", "string.quoted", "string.template"},
		Fallbacks: []theme.Token{theme.Ac1, theme.Ac2},
		Light:     "#a31515",
		Dark:      "#ce9178",
	},
	{
		Name:      "function",
		Scopes:    []string{"entity.name.function", "support.function", "meta.function-call"},
		Fallbacks: []theme.Token{theme.Ac2, theme.Pr},
		Light:     "#795e26",
		Dark:      "#dcdcaa",
	},
	{
		Name:      "constant",
		Scopes:    []string{"constant", "constant.language", "support.constant"},
		Fallbacks: []theme.Token{theme.Ac3, theme.Sc},
		Light:     "#0070c1",
		Dark:      "#4fc1ff",
	},
	{
		Name:      "number",
		Scopes:    []string{"constant.numeric"},
		Fallbacks: []theme.Token{theme.Ac3, theme.Ac1},
		Light:     "#098658",
		Dark:      "#b5cea8",
	},
	{
		Name:      "parameter",
		Scopes:    []string{"variable.parameter"},
		Fallbacks: []theme.Token{theme.Tx2, theme.Tx},
		Light:     "#001080",
		Dark:      "#9cdcfe",
		FontStyle: "italic",
	},
	{
		Name:      "variable",
		Scopes:    []string{"variable", "variable.other"},
		Fallbacks: []theme.Token{theme.Tx, theme.Tx2},
		Light:     "#001080",
		Dark:      "#9cdcfe",
	},
	{
		Name:      "property",
		Scopes:    []string{"variable.other.property", "meta.object-literal.key", "support.type.property-name"},
		Fallbacks: []theme.Token{theme.Ac1, theme.Tx2},
		Light:     "#001080",
		Dark:      "#9cdcfe",
	},
	{
		Name:      "type",
		Scopes:    []string{"entity.name.type", "entity.name.class", "support.type", "support.class"},
		Fallbacks: []theme.Token{theme.Sc, theme.Ac3},
		Light:     "#267f99",
		Dark:      "#4ec9b0",
	},
	{
		Name:      "operator",
		Scopes:    []string{"keyword.operator"},
		Fallbacks: []theme.Token{theme.Tx2, theme.Sc},
		Light:     "#000000",
		Dark:      "#d4d4d4",
	},
	{
		Name:      "punctuation",
		Scopes:    []string{"punctuation", "meta.brace"},
		Fallbacks: []theme.Token{theme.Tx2, theme.Tx3},
		Light:     "#000000",
		Dark:      "#d4d4d4",
	},
	{
		Name:      "tag",
		Scopes:    []string{"entity.name.tag"},
		Fallbacks: []theme.Token{theme.Pr, theme.Ac2},
		Light:     "#800000",
		Dark:      "#569cd6",
	},
	{
		Name:      "attribute",
		Scopes:    []string{"entity.other.attribute-name"},
		Fallbacks: []theme.Token{theme.Sc, theme.Ac1},
		Light:     "#e50000",
		Dark:      "#9cdcfe",
	},
	{
		Name:      "link",
		Scopes:    []string{"markup.underline.link", "string.other.link"},
		Fallbacks: []theme.Token{theme.Pr, theme.Ac1},
		Light:     "#0000ff",
		Dark:      "#3794ff",
		FontStyle: "underline",
	},
	{
		Name:      "heading",
		Scopes:    []string{"markup.heading", "entity.name.section"},
		Fallbacks: []theme.Token{theme.Pr, theme.Tx},
		Light:     "#800000",
		Dark:      "#569cd6",
		FontStyle: "bold",
	},
	{
		Name:      "invalid",
		Scopes:    []string{"invalid", "invalid.illegal"},
		Fallbacks: []theme.Token{theme.Ac3, theme.Pr},
		Light:     "#cd3131",
		Dark:      "#f44747",
	},
}
