// Package static embeds the site's static assets for HTTP serving.
package static

import "embed"

// FS exposes web static assets for HTTP serving.
//
//go:embed *.css images/*.svg
var FS embed.FS
