package templates

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/Xavientois/shuttle/internal/catalog"
	"github.com/a-h/templ"
)

func render(t *testing.T, component templ.Component) string {
	t.Helper()
	var b strings.Builder
	if err := component.Render(context.Background(), &b); err != nil {
		t.Fatalf("render: %v", err)
	}
	return b.String()
}

func TestCardGridRendersOneCardPerRecord(t *testing.T) {
	cards := []catalog.Record{
		{Title: "A", Description: "d1", Link: "https://x", Icon: "/i1.svg"},
		{Title: "B", Description: "d2", Link: "https://y", Icon: "/i2.svg"},
		{Title: "C", Description: "d3", Link: "https://z", Icon: "/i3.svg"},
	}

	got := render(t, CardGrid(cards))
	if count := strings.Count(got, `<article`); count != len(cards) {
		t.Fatalf("rendered %d cards, want %d", count, len(cards))
	}
	for i, card := range cards {
		if !strings.Contains(got, fmt.Sprintf(`id="card-%d"`, i)) {
			t.Fatalf("missing positional id for card %d in %q", i, got)
		}
		if !strings.Contains(got, `<h3>`+card.Title+`</h3>`) {
			t.Fatalf("missing title %q in %q", card.Title, got)
		}
		if !strings.Contains(got, `<p>`+card.Description+`</p>`) {
			t.Fatalf("missing description %q in %q", card.Description, got)
		}
		if !strings.Contains(got, `href="`+card.Link+`"`) {
			t.Fatalf("missing link %q in %q", card.Link, got)
		}
		if !strings.Contains(got, `src="`+card.Icon+`"`) {
			t.Fatalf("missing icon %q in %q", card.Icon, got)
		}
	}
}

func TestCardGridPreservesOrder(t *testing.T) {
	cards := []catalog.Record{
		{Title: "first", Link: "https://a"},
		{Title: "second", Link: "https://b"},
		{Title: "third", Link: "https://c"},
	}

	got := render(t, CardGrid(cards))
	posFirst := strings.Index(got, "first")
	posSecond := strings.Index(got, "second")
	posThird := strings.Index(got, "third")
	if posFirst < 0 || posSecond < 0 || posThird < 0 {
		t.Fatalf("missing titles in %q", got)
	}
	if !(posFirst < posSecond && posSecond < posThird) {
		t.Fatalf("titles out of order: %d %d %d", posFirst, posSecond, posThird)
	}
}

func TestCardGridEmptyRendersZeroCards(t *testing.T) {
	got := render(t, CardGrid(nil))
	if strings.Contains(got, "<article") {
		t.Fatalf("expected no cards, got %q", got)
	}
	if !strings.Contains(got, `class="card-grid"`) {
		t.Fatalf("expected grid wrapper, got %q", got)
	}
}

func TestCardGridIsIdempotent(t *testing.T) {
	cards := []catalog.Record{
		{Title: "A", Description: "d1", Link: "https://x", Icon: "/i1.svg"},
	}
	first := render(t, CardGrid(cards))
	second := render(t, CardGrid(cards))
	if first != second {
		t.Fatalf("renders differ:\n%q\n%q", first, second)
	}
}

func TestCardGridIconOnlyVariants(t *testing.T) {
	// Records identical except for the icon keep their icon order.
	cards := make([]catalog.Record, 3)
	for i := range cards {
		cards[i] = catalog.Record{
			Title:       "Deploy from cargo",
			Description: "Same copy on every card",
			Link:        "https://docs.shuttle.rs",
			Icon:        fmt.Sprintf("/images/icon%d.svg", i+1),
		}
	}

	got := render(t, CardGrid(cards))
	if count := strings.Count(got, "<article"); count != 3 {
		t.Fatalf("rendered %d cards, want 3", count)
	}
	pos1 := strings.Index(got, "/images/icon1.svg")
	pos2 := strings.Index(got, "/images/icon2.svg")
	pos3 := strings.Index(got, "/images/icon3.svg")
	if pos1 < 0 || pos2 < 0 || pos3 < 0 {
		t.Fatalf("missing icons in %q", got)
	}
	if !(pos1 < pos2 && pos2 < pos3) {
		t.Fatalf("icons out of order: %d %d %d", pos1, pos2, pos3)
	}
}

func TestCardEscapesFieldValues(t *testing.T) {
	got := render(t, Card(0, catalog.Record{
		Title:       `<script>alert("x")</script>`,
		Description: "a & b",
		Link:        "https://x",
		Icon:        "/i.svg",
	}))
	if strings.Contains(got, "<script>") {
		t.Fatalf("unescaped title in %q", got)
	}
	if !strings.Contains(got, "a &amp; b") {
		t.Fatalf("expected escaped description in %q", got)
	}
}

func TestCardEmptyDescriptionRendersEmptyParagraph(t *testing.T) {
	got := render(t, Card(0, catalog.Record{Title: "A", Link: "https://x", Icon: "/i.svg"}))
	if !strings.Contains(got, "<p></p>") {
		t.Fatalf("expected empty description paragraph in %q", got)
	}
}
