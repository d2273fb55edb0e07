// Package orphans reports orphaned build assets from the dev server.
//
// GET /__orphans resolves the manifest the same way the cleanup command does,
// compares it with the assets directory and returns the plan as JSON without
// removing anything. Manifests are served from a manifest.Cache, which the serve
// command invalidates whenever the build rewrites the file.
//
// Query parameters:
//   - ssr: "true" inspects the server-rendering manifest instead of the client one.
package orphans
