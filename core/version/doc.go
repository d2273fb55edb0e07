// Package version looks up the installed plugin and framework versions.
//
// Both lookups are cosmetic: they feed banner and version output only, so every
// failure collapses to an empty string instead of surfacing an error.
package version
