package templates

import (
	"context"
	"fmt"
	"io"

	"github.com/Xavientois/shuttle/internal/catalog"
	"github.com/a-h/templ"
)

// CardGrid renders one card per record, in record order. An empty slice
// renders an empty grid. Field values pass through untransformed beyond
// HTML escaping.
func CardGrid(cards []catalog.Record) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<section class="card-grid">`); err != nil {
			return err
		}
		for i, record := range cards {
			if err := Card(i, record).Render(ctx, w); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `</section>`)
		return err
	})
}

// Card renders a single promotional card. position feeds the DOM id; it
// identifies the card within one render pass and is not a domain key.
func Card(position int, record catalog.Record) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w, `<article id="card-%d" class="card">`, position); err != nil {
			return err
		}
		if err := ExternalLink(record.Link, "card-link", cardBody(record)).Render(ctx, w); err != nil {
			return err
		}
		_, err := io.WriteString(w, `</article>`)
		return err
	})
}

func cardBody(record catalog.Record) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w, `<img class="card-icon" src="%s" alt="">`, templ.EscapeString(record.Icon)); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, `<h3>%s</h3>`, templ.EscapeString(record.Title)); err != nil {
			return err
		}
		_, err := fmt.Fprintf(w, `<p>%s</p>`, templ.EscapeString(record.Description))
		return err
	})
}
