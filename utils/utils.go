package utils

import (
	"strings"
	"time"
)

// ClampInt restricts n to [lo, hi]
func ClampInt(n, lo, hi int) int {
	if n < lo {
		return lo
	}
	if n > hi {
		return hi
	}
	return n
}

func GetCurrentTimeISO8601() string {
	return time.Now().Format(time.RFC3339)
}

func IsProdEnv() bool {
	return strings.Contains(strings.ToLower(config.Stage), "prod")
}

// IsDevLikeEnv is true for stages where origin checks are relaxed
func IsDevLikeEnv(stage string) bool {
	switch strings.ToLower(stage) {
	case "test", "dev", "docker":
		return true
	}
	return false
}
