package entropy

import (
	"crypto/sha256"
	"encoding/binary"
	"fmt"
	"slices"
	"strings"
)

// Mode determines how the generation seed is chosen.
type Mode string

const (
	// ModeRandom uses a non-deterministic seed (varies each run).
	ModeRandom Mode = "random"
	// ModeManual uses a user-provided seed value.
	ModeManual Mode = "manual"
	// ModeContent derives the seed from the current palette, so the same
	// input palette always yields the same variation.
	ModeContent Mode = "content"
)

// Config holds configuration for seed generation.
type Config struct {
	Mode  Mode    // Seed mode
	Value *uint64 // Seed value (only used when Mode is ModeManual)
}

// Calculate determines the seed value based on the seed mode.
// content is hashed for ModeContent and ignored otherwise.
func Calculate(config Config, content ...string) (uint64, error) {
	switch config.Mode {
	case ModeManual:
		if config.Value == nil {
			return 0, fmt.Errorf("seed value is required for manual seed mode")
		}
		return *config.Value, nil
	case ModeContent:
		if len(content) == 0 {
			return 0, fmt.Errorf("content is required for content-based seed mode")
		}
		return ContentSeed(content...), nil
	case ModeRandom, "":
		return RandomSeed(), nil
	default:
		return 0, fmt.Errorf("unknown seed mode: %s", config.Mode)
	}
}

// ContentSeed hashes parts into a deterministic seed.
func ContentSeed(parts ...string) uint64 {
	hasher := sha256.New()
	for _, p := range parts {
		hasher.Write([]byte(strings.ToLower(p)))
		hasher.Write([]byte{0})
	}
	hash := hasher.Sum(nil)
	return binary.LittleEndian.Uint64(hash[:8])
}

// ValidModes returns a list of valid seed modes.
func ValidModes() []Mode {
	return []Mode{ModeRandom, ModeManual, ModeContent}
}

// ParseMode converts a string to a Mode.
// Returns an error if the string is not a valid mode.
func ParseMode(s string) (Mode, error) {
	mode := Mode(strings.ToLower(strings.TrimSpace(s)))
	if slices.Contains(ValidModes(), mode) {
		return mode, nil
	}
	return "", fmt.Errorf("invalid seed mode: %s (valid: random, manual, content)", s)
}
