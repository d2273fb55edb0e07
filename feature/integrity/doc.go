// Package integrity checks that every asset a manifest references was built.
//
// It is the reverse of the orphan report: instead of files nobody references it
// lists references that point at no file, which usually means an interrupted build
// or an over-eager cleanup. The check is exposed as GET /__integrity on the dev
// server and as the integrity command.
package integrity
