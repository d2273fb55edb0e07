// Package manifest reads the bundler's build manifest.
//
// The bundler emits two manifest shapes without a discriminator field:
//
//	client: {"resources/js/app.js": {"file": "assets/app-4ed993c7.js", "css": ["assets/app-2b5d1b8a.css"]}}
//	SSR:    {"resources/js/ssr.js": ["/build/assets/ssr-1.js", "/build/assets/ssr-2.js"]}
//
// The shape is decided once, from the first key in document order, and applied to the
// whole file. In a client manifest a value that is not a chunk object adds no paths;
// in an SSR manifest a value that is not a list fails to decode.
//
// Resolve finds the manifest on disk from an explicit path or the default candidates.
// Cache and Watcher keep a parsed manifest warm for the dev server.
package manifest
