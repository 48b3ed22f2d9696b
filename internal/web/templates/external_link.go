package templates

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
)

// ExternalLink renders an outbound anchor around the given content.
//
// The anchor always opens in a new browsing context with
// rel="noopener noreferrer" so the destination page cannot reach back to
// the opener. class is an optional styling hint; inner may be nil.
func ExternalLink(href string, class string, inner templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		safeHref := templ.EscapeString(string(templ.URL(href)))
		if _, err := fmt.Fprintf(w, `<a href="%s"`, safeHref); err != nil {
			return err
		}
		if class != "" {
			if _, err := fmt.Fprintf(w, ` class="%s"`, templ.EscapeString(class)); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, ` target="_blank" rel="noopener noreferrer">`); err != nil {
			return err
		}
		if inner != nil {
			if err := inner.Render(ctx, w); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `</a>`)
		return err
	})
}
