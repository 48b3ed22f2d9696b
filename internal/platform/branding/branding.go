// Package branding centralizes product naming used across the site so
// page titles and headers stay consistent.
package branding

// AppName is the public product name shown in page titles and chrome.
const AppName = "Shuttle"

// Tagline is the short pitch rendered on the landing page hero.
const Tagline = "Build backends. Fast."
