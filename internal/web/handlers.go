package web

import (
	"log"
	"net/http"

	"github.com/Xavientois/shuttle/internal/catalog"
	"github.com/Xavientois/shuttle/internal/platform/branding"
	"github.com/Xavientois/shuttle/internal/telemetry"
	"github.com/Xavientois/shuttle/internal/web/i18n"
	"github.com/Xavientois/shuttle/internal/web/routepath"
	"github.com/Xavientois/shuttle/internal/web/templates"
	"github.com/a-h/templ"
)

type handlers struct {
	catalog catalog.Catalog
	emitter *telemetry.Emitter
}

func newHandlers(cat catalog.Catalog, emitter *telemetry.Emitter) handlers {
	return handlers{catalog: cat, emitter: emitter}
}

// handleLanding renders the landing page with the configured card catalog.
func (h handlers) handleLanding(w http.ResponseWriter, r *http.Request) {
	// ServeMux routes every unmatched path to "/"; only the root renders.
	if r.URL.Path != routepath.Root {
		http.NotFound(w, r)
		return
	}

	h.emitPageView(r)
	page := templates.LandingPage(templates.LandingParams{
		Lang:            i18n.ResolveLang(r),
		MetaDescription: branding.Tagline,
		Cards:           h.catalog.Records(),
	})
	templ.Handler(page).ServeHTTP(w, r)
}

func (h handlers) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("OK"))
}

// emitPageView records the view without blocking the response on storage.
func (h handlers) emitPageView(r *http.Request) {
	err := h.emitter.Emit(r.Context(), telemetry.Event{
		Source:  "web",
		Kind:    "page_view",
		Message: r.URL.Path,
	})
	if err != nil {
		log.Printf("emit page view: %v", err)
	}
}
