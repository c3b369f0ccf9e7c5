package levels

import (
	"embed"
	"path/filepath"
	"strings"
)

//go:embed *.yaml
var LevelsFS embed.FS

// Load reads an embedded level document by name.
func Load(name string) ([]byte, error) {
	clean := filepath.ToSlash(name)
	clean = strings.TrimPrefix(clean, "levels/")
	return LevelsFS.ReadFile(clean)
}
