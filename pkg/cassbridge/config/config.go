// Package config reads string settings from the process environment after merging .env files.
package config

type Config interface {
	Get(string) string
	GetOrDefault(string, string) string
}
