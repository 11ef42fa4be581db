// Package presets ships built-in theme documents.
package presets

import (
	"embed"
	"fmt"
	"path"
	"sort"
	"strings"

	"github.com/alexisbeaulieu97/tinte/internal/config"
)

//go:embed data/*.yaml
var files embed.FS

// Names lists the built-in presets sorted.
func Names() []string {
	entries, err := files.ReadDir("data")
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, strings.TrimSuffix(e.Name(), ".yaml"))
	}
	sort.Strings(names)
	return names
}

// Load parses the named preset through the same strict path as user files.
func Load(name string) (*config.Document, error) {
	file := path.Join("data", strings.ToLower(name)+".yaml")
	data, err := files.ReadFile(file)
	if err != nil {
		return nil, fmt.Errorf("unknown preset %q (available: %s)", name, strings.Join(Names(), ", "))
	}
	return config.Parse("preset:"+name, data)
}
