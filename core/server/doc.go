// Package server holds the development server configuration.
package server
