// Package config loads generator.Options from a YAML file, following the
// defaults-then-file-override shape used throughout the example pack (see
// jinterlante1206-AleutianLocal's mcts.LoadMCTSConfig): start from sensible
// defaults, overlay whatever the file specifies, then validate.
package config

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"

	"github.com/ibnicena/pycppgen/internal/generator"
)

// fileName is the config file pycppgen looks for in the current directory
// when no --config flag is given.
const fileName = ".pycppgen.yaml"

// File is the on-disk shape of a pycppgen config file. Field names are
// lowercase/snake in YAML to match the rest of the example pack's
// convention for hand-written config.
type File struct {
	IndentWidth  *int   `yaml:"indent_width"` // nil when the key is absent
	FallbackType string `yaml:"fallback_type"`
	NumpyAlias   string `yaml:"numpy_alias"`
}

// Load resolves generator options with priority file > defaults. path may
// be empty, in which case Load looks for fileName in the working directory;
// if neither exists the defaults from generator.DefaultOptions are used
// unchanged.
func Load(path string) (generator.Options, error) {
	opts := generator.DefaultOptions()

	if path == "" {
		if _, err := os.Stat(fileName); err != nil {
			return opts, nil
		}
		path = fileName
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return opts, fmt.Errorf("config: read %s: %w", path, err)
	}

	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return opts, fmt.Errorf("config: parse %s: %w", path, err)
	}

	if f.IndentWidth != nil {
		opts.IndentWidth = *f.IndentWidth
	}
	if f.FallbackType != "" {
		opts.FallbackType = f.FallbackType
	}
	if f.NumpyAlias != "" {
		opts.NumpyAlias = f.NumpyAlias
	}

	if err := validate(opts); err != nil {
		return opts, fmt.Errorf("config: %s: %w", path, err)
	}

	return opts, nil
}

func validate(opts generator.Options) error {
	if opts.IndentWidth < 1 {
		return fmt.Errorf("indent_width must be >= 1, got %d", opts.IndentWidth)
	}
	if opts.FallbackType == "" {
		return fmt.Errorf("fallback_type must not be empty")
	}
	return nil
}
