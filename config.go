package jvalue

import (
	"fmt"
	"log/slog"
	"strings"
	"sync/atomic"
)

// CopyPolicy decides what Copy does when the requested target type has no
// meaningful conversion from the current variant (for example an Array copied
// to a string).
type CopyPolicy uint8

const (
	// CopyStrict fails with ErrTypeMismatch
	CopyStrict CopyPolicy = iota
	// CopyZero returns the zero value of the target type
	CopyZero
)

// String returns the configuration name of the policy
func (p CopyPolicy) String() string {
	switch p {
	case CopyZero:
		return "zero"
	default:
		return "strict"
	}
}

// ParseCopyPolicy parses "strict" or "zero"
func ParseCopyPolicy(s string) (CopyPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "strict", "":
		return CopyStrict, nil
	case "zero", "default":
		return CopyZero, nil
	}
	return CopyStrict, &ValueError{
		Op:      "parse_copy_policy",
		Message: fmt.Sprintf("unknown copy policy %q", s),
		Err:     ErrInvalidConfig,
	}
}

// Default configuration values
const (
	DefaultIndent     = "\t"
	DefaultCopyPolicy = CopyStrict
)

// Config holds the package-level knobs of the document model
type Config struct {
	CopyPolicy CopyPolicy   // Behaviour of Copy on incompatible variant/target pairs
	Indent     string       // Indentation unit of the Pretty format
	Logger     *slog.Logger // Optional structured logger; nil disables logging
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		CopyPolicy: DefaultCopyPolicy,
		Indent:     DefaultIndent,
	}
}

// Clone creates a copy of the configuration
func (c *Config) Clone() *Config {
	if c == nil {
		return DefaultConfig()
	}

	clone := *c
	return &clone
}

// Validate validates the configuration and applies corrections
func (c *Config) Validate() error {
	if c == nil {
		return &ValueError{Op: "validate_config", Message: "config cannot be nil", Err: ErrInvalidConfig}
	}
	if c.CopyPolicy > CopyZero {
		return &ValueError{
			Op:      "validate_config",
			Message: fmt.Sprintf("unknown copy policy %d", c.CopyPolicy),
			Err:     ErrInvalidConfig,
		}
	}
	if strings.Trim(c.Indent, " \t") != "" {
		return &ValueError{
			Op:      "validate_config",
			Message: "indent may only contain spaces and tabs",
			Err:     ErrInvalidConfig,
		}
	}
	if c.Indent == "" {
		c.Indent = DefaultIndent
	}
	return nil
}

var activeConfig atomic.Pointer[Config]

func init() {
	activeConfig.Store(DefaultConfig())
}

// SetDefaultConfig validates cfg and installs a copy of it as the package default
func SetDefaultConfig(cfg *Config) error {
	clone := cfg.Clone()
	if err := clone.Validate(); err != nil {
		return err
	}
	activeConfig.Store(clone)
	return nil
}

// CurrentConfig returns a copy of the package default configuration
func CurrentConfig() *Config {
	return activeConfig.Load().Clone()
}

// ResetDefaultConfig restores DefaultConfig as the package default
func ResetDefaultConfig() {
	activeConfig.Store(DefaultConfig())
}

func loadConfig() *Config {
	return activeConfig.Load()
}
