// Package i18n resolves the display language for a request.
package i18n

import (
	"net/http"

	"golang.org/x/text/language"
)

// Supported lists the languages the site ships copy for. The first entry
// is the fallback.
var Supported = []language.Tag{
	language.AmericanEnglish,
	language.English,
}

var matcher = language.NewMatcher(Supported)

// ResolveLang returns the BCP 47 tag to use for the page's lang attribute,
// negotiated from the request's Accept-Language header. A missing or
// unparsable header falls back to the first supported language.
func ResolveLang(r *http.Request) string {
	if r == nil {
		return Supported[0].String()
	}
	tags, _, err := language.ParseAcceptLanguage(r.Header.Get("Accept-Language"))
	if err != nil || len(tags) == 0 {
		return Supported[0].String()
	}
	_, index, _ := matcher.Match(tags...)
	return Supported[index].String()
}
