package config

import (
	"encoding/json"
	"strings"

	"github.com/alexisbeaulieu97/tinte/internal/theme"
)

func replace(s, old, repl string) string {
	if !strings.Contains(s, old) {
		panic("fixture does not contain " + old)
	}
	return strings.Replace(s, old, repl, 1)
}

func blockJSON(b theme.Block) string {
	data, err := json.Marshal(b)
	if err != nil {
		panic(err)
	}
	return string(data)
}
