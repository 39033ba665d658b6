package config

import "time"

const (
	// Per-command deadline for CLI calls
	RequestTimeout = 90 * time.Second
)
