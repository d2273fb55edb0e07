// Package assets serves project files from the dev server.
//
// Script, stylesheet and markup files have the dev-server placeholder replaced
// with the live dev-server URL before they are sent; everything else is sent as
// stored. Paths are resolved below the configured root and can never escape it.
package assets
