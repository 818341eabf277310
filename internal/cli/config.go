package cli

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/cybergodev/jvalue"
)

// fileConfig is the layout of the optional TOML configuration file:
//
//	format      = "pretty"   # compress | compact | pretty
//	copy_policy = "strict"   # strict | zero
//	indent      = "  "
//	log_level   = "debug"
type fileConfig struct {
	Format     string `toml:"format"`
	CopyPolicy string `toml:"copy_policy"`
	Indent     string `toml:"indent"`
	LogLevel   string `toml:"log_level"`
}

// settings is the resolved configuration of one command invocation
type settings struct {
	format   jvalue.Format
	library  *jvalue.Config
	logLevel string
}

func defaultSettings() settings {
	return settings{
		format:  jvalue.Compact,
		library: jvalue.DefaultConfig(),
	}
}

// loadConfigFile reads a TOML configuration file
func loadConfigFile(path string) (fileConfig, error) {
	var fc fileConfig
	md, err := toml.DecodeFile(path, &fc)
	if err != nil {
		return fc, fmt.Errorf("read config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return fc, fmt.Errorf("read config %s: unknown key %q", path, undecoded[0].String())
	}
	return fc, nil
}

// apply merges the file values into s
func (fc fileConfig) apply(s *settings) error {
	if fc.Format != "" {
		f, err := jvalue.ParseFormat(fc.Format)
		if err != nil {
			return err
		}
		s.format = f
	}
	if fc.CopyPolicy != "" {
		p, err := jvalue.ParseCopyPolicy(fc.CopyPolicy)
		if err != nil {
			return err
		}
		s.library.CopyPolicy = p
	}
	if fc.Indent != "" {
		s.library.Indent = fc.Indent
	}
	if fc.LogLevel != "" {
		s.logLevel = fc.LogLevel
	}
	return s.library.Validate()
}
