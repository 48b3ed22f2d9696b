// Package templates renders the site's pages as templ components.
package templates

import (
	"context"
	"fmt"
	"io"

	"github.com/Xavientois/shuttle/internal/catalog"
	"github.com/Xavientois/shuttle/internal/platform/branding"
	"github.com/a-h/templ"
)

// LandingParams carries everything the landing page needs.
type LandingParams struct {
	// Lang is the BCP 47 tag for the html lang attribute.
	Lang string
	// MetaDescription feeds the description meta tag.
	MetaDescription string
	// Cards are rendered in order below the hero.
	Cards []catalog.Record
}

// LandingPage renders the full landing page document.
func LandingPage(params LandingParams) templ.Component {
	content := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w, `<div class="hero"><h1>%s</h1><p>%s</p></div>`,
			templ.EscapeString(branding.AppName), templ.EscapeString(branding.Tagline)); err != nil {
			return err
		}
		return CardGrid(params.Cards).Render(ctx, w)
	})
	return Layout(LayoutParams{
		Title:           branding.AppName + " — " + branding.Tagline,
		Lang:            params.Lang,
		MetaDescription: params.MetaDescription,
	}, content)
}

// LayoutParams controls the document shell around page content.
type LayoutParams struct {
	Title           string
	Lang            string
	MetaDescription string
}

// Layout renders the document shell and places content inside <main>.
func Layout(params LayoutParams, content templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		lang := params.Lang
		if lang == "" {
			lang = "en-US"
		}
		if _, err := fmt.Fprintf(w, `<!doctype html><html lang="%s"><head><meta charset="utf-8"><meta name="viewport" content="width=device-width, initial-scale=1">`,
			templ.EscapeString(lang)); err != nil {
			return err
		}
		if params.MetaDescription != "" {
			if _, err := fmt.Fprintf(w, `<meta name="description" content="%s">`,
				templ.EscapeString(params.MetaDescription)); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(w, `<title>%s</title><link rel="stylesheet" href="/static/site.css"></head><body><main>`,
			templ.EscapeString(params.Title)); err != nil {
			return err
		}
		if content != nil {
			if err := content.Render(ctx, w); err != nil {
				return err
			}
		}
		_, err := fmt.Fprintf(w, `</main><footer>&copy; %s</footer></body></html>`,
			templ.EscapeString(branding.AppName))
		return err
	})
}
