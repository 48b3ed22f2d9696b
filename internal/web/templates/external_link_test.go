package templates

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/a-h/templ"
)

func TestExternalLinkOpensSafely(t *testing.T) {
	inner := templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := io.WriteString(w, "Read more")
		return err
	})

	got := render(t, ExternalLink("https://shuttle.rs", "card-link", inner))
	if !strings.Contains(got, `href="https://shuttle.rs"`) {
		t.Fatalf("missing href in %q", got)
	}
	if !strings.Contains(got, `target="_blank"`) {
		t.Fatalf("missing target in %q", got)
	}
	if !strings.Contains(got, `rel="noopener noreferrer"`) {
		t.Fatalf("missing rel in %q", got)
	}
	if !strings.Contains(got, `class="card-link"`) {
		t.Fatalf("missing class in %q", got)
	}
	if !strings.Contains(got, ">Read more</a>") {
		t.Fatalf("missing inner content in %q", got)
	}
}

func TestExternalLinkWithoutClassOrContent(t *testing.T) {
	got := render(t, ExternalLink("https://shuttle.rs", "", nil))
	if strings.Contains(got, "class=") {
		t.Fatalf("unexpected class attribute in %q", got)
	}
	if !strings.Contains(got, "></a>") {
		t.Fatalf("expected empty anchor in %q", got)
	}
}

func TestExternalLinkSanitizesJavascriptURL(t *testing.T) {
	got := render(t, ExternalLink("javascript:alert(1)", "", nil))
	if strings.Contains(got, "javascript:") {
		t.Fatalf("unsafe href survived in %q", got)
	}
}
