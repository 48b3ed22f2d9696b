// Package routepath defines the URL paths served by the site so handlers
// and templates reference one set of constants.
package routepath

// Root is the landing page.
const Root = "/"

// StaticPrefix serves embedded static assets.
const StaticPrefix = "/static/"

// Health is the liveness probe endpoint.
const Health = "/up"
