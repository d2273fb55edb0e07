// Package output renders inspection results as a table, JSON or YAML.
package output
