// Package wire reads and writes pipeline values as JSON or YAML.
package wire
