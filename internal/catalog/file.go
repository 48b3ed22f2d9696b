package catalog

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
)

// fileRecord mirrors one [[card]] table in a catalog file.
type fileRecord struct {
	Title       string `toml:"title"`
	Description string `toml:"description"`
	Link        string `toml:"link"`
	Icon        string `toml:"icon"`
}

type catalogFile struct {
	Card []fileRecord `toml:"card"`
}

// LoadFile reads a TOML catalog file and returns the catalog it describes.
//
// The file holds a sequence of [[card]] tables; their order in the file is
// the display order. Titles are required; every other field is passed
// through as-is. An empty file yields an empty catalog.
func LoadFile(path string) (Catalog, error) {
	if strings.TrimSpace(path) == "" {
		return Catalog{}, fmt.Errorf("catalog file path is required")
	}

	var parsed catalogFile
	if _, err := toml.DecodeFile(path, &parsed); err != nil {
		return Catalog{}, fmt.Errorf("decode catalog file: %w", err)
	}

	records := make([]Record, 0, len(parsed.Card))
	for i, card := range parsed.Card {
		if strings.TrimSpace(card.Title) == "" {
			return Catalog{}, fmt.Errorf("catalog file: card %d: title is required", i+1)
		}
		records = append(records, Record{
			Title:       card.Title,
			Description: card.Description,
			Link:        card.Link,
			Icon:        card.Icon,
		})
	}
	return New(records...), nil
}
