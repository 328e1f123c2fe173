// Package config — .pocat.yaml configuration file support.
//
// When a .pocat.yaml file exists in the project root (or any parent
// directory), its values become the defaults for every parse; CLI
// flags still override them per invocation.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/minios-linux/pocat/pofile"
)

// FileName is the default config file name.
const FileName = ".pocat.yaml"

// File is the top-level .pocat.yaml structure.
type File struct {
	// Debug enables per-line parser trace logging.
	Debug bool `yaml:"debug,omitempty"`
	// Parallel enables parallel block processing.
	Parallel bool `yaml:"parallel,omitempty"`
	// BatchDivisor reduces the parallel batch count (default 2).
	BatchDivisor int `yaml:"batch_divisor,omitempty"`
	// AbortOnInvalid stops at the first invalid entry (default true).
	AbortOnInvalid *bool `yaml:"abort_on_invalid,omitempty"`
	// DropObsolete discards "#~" entries instead of keeping them.
	DropObsolete bool `yaml:"drop_obsolete,omitempty"`
	// PrintErrors mirrors fatal errors to stderr.
	PrintErrors bool `yaml:"print_errors,omitempty"`

	// Locale is the default catalog language code.
	Locale string `yaml:"locale,omitempty"`
	// Domain is the gettext domain (default "messages").
	Domain string `yaml:"domain,omitempty"`
	// Charset is the default catalog charset (default "utf-8").
	Charset string `yaml:"charset,omitempty"`
}

// Load reads and parses .pocat.yaml from the given directory.
// Returns nil if no .pocat.yaml exists.
func Load(dir string) (*File, error) {
	path := filepath.Join(dir, FileName)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	if f.BatchDivisor < 0 {
		return nil, fmt.Errorf("%s: batch_divisor must not be negative", path)
	}
	return &f, nil
}

// Find walks from dir toward the filesystem root and returns the first
// directory containing a .pocat.yaml, or "" when there is none.
func Find(dir string) string {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return ""
	}
	for {
		if _, err := os.Stat(filepath.Join(dir, FileName)); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return ""
		}
		dir = parent
	}
}

// Options overlays the file's values on the default parse options.
func (f *File) Options() pofile.Options {
	opts := pofile.DefaultOptions()
	if f == nil {
		return opts
	}
	opts.Debug = f.Debug
	opts.Parallel = f.Parallel
	if f.BatchDivisor > 0 {
		opts.BatchDivisor = f.BatchDivisor
	}
	if f.AbortOnInvalid != nil {
		opts.AbortOnInvalid = *f.AbortOnInvalid
	}
	opts.DropObsolete = f.DropObsolete
	opts.PrintErrors = f.PrintErrors
	opts.Locale = f.Locale
	opts.Domain = f.Domain
	opts.Charset = f.Charset
	return opts
}
