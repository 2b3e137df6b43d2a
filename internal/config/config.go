package config

import (
	"log"
	"os"
	"strings"
)

// Get returns the value of an environment variable, or fallback when unset.
func Get(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// MustGet returns the value of a required environment variable.
// Missing or blank values terminate the process.
func MustGet(key string) string {
	v := os.Getenv(key)
	if strings.TrimSpace(v) == "" {
		log.Fatalf("%s is required", key)
	}
	return v
}
