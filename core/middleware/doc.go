// Package middleware contains HTTP middleware for the dev server.
//
// # Components
//
//   - RayID: Generates a unique request id (RayID) for every incoming request,
//     injecting it into the context and response headers for tracing.
package middleware
