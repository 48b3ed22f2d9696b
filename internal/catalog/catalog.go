// Package catalog holds the ordered set of promotional cards shown on the
// landing page. A catalog is built once at startup and never mutated;
// insertion order is display order.
package catalog

// Record describes one promotional card.
type Record struct {
	// Title is the visible card heading.
	Title string
	// Description is the supporting copy under the title. May be empty.
	Description string
	// Link is the absolute URL the card navigates to. It is passed through
	// to the rendered anchor untouched; a malformed value is a visual
	// defect, not an error.
	Link string
	// Icon is the path or URL of the card's image.
	Icon string
}

// Catalog is a fixed, ordered sequence of records.
type Catalog struct {
	records []Record
}

// New builds a catalog from the given records, preserving their order.
func New(records ...Record) Catalog {
	owned := make([]Record, len(records))
	copy(owned, records)
	return Catalog{records: owned}
}

// Len reports the number of records in the catalog.
func (c Catalog) Len() int {
	return len(c.records)
}

// Records returns the catalog entries in display order. The returned slice
// is a copy so callers cannot mutate the catalog.
func (c Catalog) Records() []Record {
	out := make([]Record, len(c.records))
	copy(out, c.records)
	return out
}

// Default returns the built-in promotional catalog. The contents are the
// site's stock cards; deployments swap them out with a catalog file.
func Default() Catalog {
	return New(
		Record{
			Title:       "Deploy from cargo",
			Description: "Ship a Rust backend straight from your project with a single command. No Dockerfiles, no YAML.",
			Link:        "https://docs.shuttle.rs/introduction/welcome",
			Icon:        "/static/images/deploy.svg",
		},
		Record{
			Title:       "Provisioned databases",
			Description: "Ask for a database in code and get a connection string at runtime. Postgres, provisioned on demand.",
			Link:        "https://docs.shuttle.rs/resources/shuttle-shared-db",
			Icon:        "/static/images/database.svg",
		},
		Record{
			Title:       "Join the community",
			Description: "Questions, feedback, or just shipping something cool? The Discord is where it happens.",
			Link:        "https://discord.gg/shuttle",
			Icon:        "/static/images/community.svg",
		},
	)
}
