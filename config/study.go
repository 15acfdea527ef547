package config

import (
	"os"
	"strconv"
)

// Completion thresholds of a Küchen-Check. These are tunable study policy
// (they have been 20/5, 10/5 and 15/5 over the course of the project), so they
// come from the environment rather than being baked into the session logic.
type StudyConfig struct {
	RequiredItems      int
	RequiredCategories int
}

const (
	defaultRequiredItems      = 15
	defaultRequiredCategories = 5
)

func LoadStudyConfig() StudyConfig {
	return StudyConfig{
		RequiredItems:      envInt("REQUIRED_ITEMS", defaultRequiredItems),
		RequiredCategories: envInt("REQUIRED_CATEGORIES", defaultRequiredCategories),
	}
}

func envInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}
