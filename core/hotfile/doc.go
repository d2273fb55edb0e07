// Package hotfile manages the marker file that tells the web framework a dev server
// is running.
//
// While the dev server listens, the hot file contains its canonical URL (for example
// "http://[::1]:5173"). The framework checks for the file on every request and, when
// present, points script and style tags at that URL instead of the built assets.
//
// Lifecycle installs the process signal handlers that remove the file on shutdown.
// Installation state lives on the Lifecycle value rather than in a package variable,
// so tests and embedders can own independent lifecycles.
package hotfile
