// Package plugin turns the framework-side asset settings into bundler options.
//
// It mirrors what the bundler plugin does inside the bundler:
//
//   - Resolve validates the plugin settings (inputs, public/build directories,
//     hot file, SSR output, refresh paths, TLS detection).
//   - Resolver.Resolve merges them with the user's bundler config and the loaded
//     environment into a BundlerConfig for `serve` or `build`.
//   - Transform rewrites the dev-server placeholder in served code.
//
// Configuration problems are reported as apperror.ConfigurationError.
package plugin
