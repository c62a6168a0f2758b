package verifier

import (
	"os"
	"strconv"
)

const (
	defaultClassName = "Note"
	defaultReadLimit = 25
)

// Config holds behavior settings for the verification runner.
type Config struct {
	// ClassName is the resource collection the run creates and exercises.
	ClassName string `yaml:"class_name" env:"VERIFY_CLASS_NAME"`

	// ReadLimit caps how many records a read check fetches.
	ReadLimit int `yaml:"read_limit" env:"VERIFY_READ_LIMIT"`
}

// NewConfig reads from environment variables, falling back to defaults.
func NewConfig() Config {
	class := os.Getenv("VERIFY_CLASS_NAME")
	if class == "" {
		class = defaultClassName
	}

	limit := defaultReadLimit
	if v := os.Getenv("VERIFY_READ_LIMIT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			limit = n
		}
	}

	return Config{
		ClassName: class,
		ReadLimit: limit,
	}
}
