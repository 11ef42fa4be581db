package provider

import (
	"encoding/json"
	"fmt"

	"github.com/alexisbeaulieu97/tinte/internal/palette"
	"github.com/alexisbeaulieu97/tinte/internal/providers/figma"
	"github.com/alexisbeaulieu97/tinte/internal/providers/rayso"
	"github.com/alexisbeaulieu97/tinte/internal/providers/shadcn"
	"github.com/alexisbeaulieu97/tinte/internal/providers/shiki"
	"github.com/alexisbeaulieu97/tinte/internal/providers/vscode"
	"github.com/alexisbeaulieu97/tinte/internal/theme"
)

// Built-in provider IDs.
const (
	Shadcn = "shadcn"
	VSCode = "vscode"
	Shiki  = "shiki"
	Figma  = "figma"
	Rayso  = "rayso"
)

// Builtins returns a fresh instance of every built-in provider.
func Builtins() []Provider {
	return []Provider{
		shadcnProvider{},
		vscodeProvider{},
		shikiProvider{},
		figmaProvider{},
		raysoProvider{},
	}
}

type shadcnProvider struct{}

func (shadcnProvider) Metadata() Metadata {
	return Metadata{ID: Shadcn, Name: "shadcn/ui", Description: "CSS variables for shadcn/ui (globals.css)"}
}

func (shadcnProvider) Derive(block theme.Block, mode theme.Mode) palette.Derived {
	return shadcn.Derive(block, mode)
}

func (shadcnProvider) Native(_ string, _ theme.Mode, d palette.Derived) any {
	return d.Flatten()
}

func (shadcnProvider) Render(_ string, light, dark palette.Derived) ([]File, error) {
	t := shadcn.Assemble(light, dark)
	data, err := json.MarshalIndent(t, "", "  ")
	if err != nil {
		return nil, err
	}
	return []File{
		{Name: "globals.css", Content: shadcn.RenderCSS(t)},
		{Name: "shadcn.json", Content: data},
	}, nil
}

type vscodeProvider struct{}

func (vscodeProvider) Metadata() Metadata {
	return Metadata{ID: VSCode, Name: "VS Code", Description: "VS Code color themes, one per mode"}
}

func (vscodeProvider) Derive(block theme.Block, mode theme.Mode) palette.Derived {
	return vscode.Derive(block, mode)
}

func (vscodeProvider) Native(name string, mode theme.Mode, d palette.Derived) any {
	return vscode.Assemble(vscodeThemeName(name, mode), mode, d)
}

func (p vscodeProvider) Render(name string, light, dark palette.Derived) ([]File, error) {
	files := make([]File, 0, len(theme.Modes))
	for _, mode := range theme.Modes {
		d := light
		if mode == theme.Dark {
			d = dark
		}
		data, err := vscode.Marshal(vscode.Assemble(vscodeThemeName(name, mode), mode, d))
		if err != nil {
			return nil, err
		}
		files = append(files, File{
			Name:    fmt.Sprintf("%s-%s-color-theme.json", Slug(name), mode),
			Content: data,
		})
	}
	return files, nil
}

func vscodeThemeName(name string, mode theme.Mode) string {
	if mode == theme.Dark {
		return name + " Dark"
	}
	return name + " Light"
}

type shikiProvider struct{}

func (shikiProvider) Metadata() Metadata {
	return Metadata{ID: Shiki, Name: "Shiki", Description: "Shiki css-variables theme"}
}

func (shikiProvider) Derive(block theme.Block, mode theme.Mode) palette.Derived {
	return shiki.Derive(block, mode)
}

func (shikiProvider) Native(_ string, _ theme.Mode, d palette.Derived) any {
	return shiki.Assemble(d)
}

func (shikiProvider) Render(_ string, light, dark palette.Derived) ([]File, error) {
	t := shiki.Theme{Light: shiki.Assemble(light), Dark: shiki.Assemble(dark)}
	return []File{{Name: "shiki.css", Content: shiki.RenderCSS(t)}}, nil
}

// figmaProvider exports the shadcn vocabulary as Figma variables.
type figmaProvider struct{}

func (figmaProvider) Metadata() Metadata {
	return Metadata{ID: Figma, Name: "Figma", Description: "Figma variable collections (colors and numbers)"}
}

func (figmaProvider) Derive(block theme.Block, mode theme.Mode) palette.Derived {
	return shadcn.Derive(block, mode)
}

func (figmaProvider) Native(_ string, _ theme.Mode, d palette.Derived) any {
	return figma.Split(d.Flatten())
}

func (figmaProvider) Render(name string, light, dark palette.Derived) ([]File, error) {
	doc := figma.Document{
		Name: name,
		Modes: map[string]figma.Collection{
			string(theme.Light): figma.Split(light.Flatten()),
			string(theme.Dark):  figma.Split(dark.Flatten()),
		},
	}
	data, err := figma.Marshal(doc)
	if err != nil {
		return nil, err
	}
	return []File{{Name: "figma.json", Content: data}}, nil
}

type raysoProvider struct{}

func (raysoProvider) Metadata() Metadata {
	return Metadata{ID: Rayso, Name: "Ray.so", Description: "Ray.so code image theme"}
}

func (raysoProvider) Derive(block theme.Block, mode theme.Mode) palette.Derived {
	return rayso.Derive(block, mode)
}

func (raysoProvider) Native(_ string, _ theme.Mode, d palette.Derived) any {
	return rayso.Assemble(d)
}

func (raysoProvider) Render(_ string, light, dark palette.Derived) ([]File, error) {
	data, err := rayso.Marshal(rayso.Theme{Light: rayso.Assemble(light), Dark: rayso.Assemble(dark)})
	if err != nil {
		return nil, err
	}
	return []File{{Name: "rayso.json", Content: data}}, nil
}
