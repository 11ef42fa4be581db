package highlight

// Segment is a run of source text tagged with its innermost scope.
type Segment struct {
	Text  string
	Scope string
}

// Styled is a segment with its resolved style.
type Styled struct {
	Segment
	Style Style
}

// Highlight resolves every segment of a pre-scoped snippet.
func (h *Highlighter) Highlight(lang string, segments []Segment) ([]Styled, error) {
	out := make([]Styled, 0, len(segments))
	for _, seg := range segments {
		style, err := h.Resolve(lang, seg.Scope)
		if err != nil {
			return nil, err
		}
		out = append(out, Styled{Segment: seg, Style: style})
	}
	return out, nil
}

// Samples are short pre-scoped snippets used by previews.
var Samples = map[string][]Segment{
	"go": {
		{Text: "// Greet says hello", Scope: "comment.line.double-slash.go"},
		{Text: "\n"},
		{Text: "func", Scope: "keyword.function.go"},
		{Text: " "},
		{Text: "Greet", Scope: "entity.name.function.go"},
		{Text: "("},
		{Text: "name", Scope: "variable.parameter.go"},
		{Text: " "},
		{Text: "string", Scope: "storage.type.go"},
		{Text: ") {\n\t"},
		{Text: "fmt", Scope: "variable.other.go"},
		{Text: ".", Scope: "punctuation.accessor.go"},
		{Text: "Printf", Scope: "support.function.go"},
		{Text: "("},
		{Text: "\"hello %s, %d\\n\"", Scope: "string.quoted.double.go"},
		{Text: ", name, "},
		{Text: "42", Scope: "constant.numeric.go"},
		{Text: ")\n}"},
	},
	"typescript": {
		{Text: "const", Scope: "storage.type.ts"},
		{Text: " "},
		{Text: "theme", Scope: "variable.other.constant.ts"},
		{Text: " "},
		{Text: "=", Scope: "keyword.operator.assignment.ts"},
		{Text: " { "},
		{Text: "name", Scope: "meta.object-literal.key.ts"},
		{Text: ": "},
		{Text: "'flexoki'", Scope: "string.quoted.single.ts"},
		{Text: ", "},
		{Text: "dark", Scope: "meta.object-literal.key.ts"},
		{Text: ": "},
		{Text: "true", Scope: "constant.language.boolean.true.ts"},
		{Text: " }"},
	},
}
