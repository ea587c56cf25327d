package wordindex

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/npillmayer/treemap"
	"gopkg.in/yaml.v3"
)

var (
	// ErrInvalidConfig signals an invalid index configuration.
	ErrInvalidConfig = errors.New("wordindex: invalid configuration")
)

// Config configures an Index. It may be read from a YAML file like this:
//
//	strategy: avl
//	min-length: 3
//	fold-case: true
//	stop-words: [the, a, an]
type Config struct {
	Strategy  string   `yaml:"strategy"`   // balancing strategy of the underlying map
	MinLength int      `yaml:"min-length"` // minimum word length in runes
	FoldCase  bool     `yaml:"fold-case"`  // index words in lower case
	StopWords []string `yaml:"stop-words"` // words to skip
}

// DefaultConfig returns the configuration used if no other is given.
func DefaultConfig() Config {
	return Config{
		Strategy:  treemap.RedBlack.String(),
		MinLength: 1,
		FoldCase:  true,
	}
}

// LoadConfig reads a YAML configuration file. Settings missing from the file
// keep their default values.
func LoadConfig(path string) (Config, error) {
	config := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return config, fmt.Errorf("wordindex: reading configuration: %w", err)
	}
	if err := yaml.Unmarshal(data, &config); err != nil {
		return config, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if err := config.validate(); err != nil {
		return config, err
	}
	tracer().Infof("wordindex: configuration loaded from %s", path)
	return config.normalized(), nil
}

func (cfg Config) normalized() Config {
	if cfg.Strategy == "" {
		cfg.Strategy = DefaultConfig().Strategy
	}
	if cfg.MinLength == 0 {
		cfg.MinLength = 1
	}
	if cfg.FoldCase {
		stop := make([]string, len(cfg.StopWords))
		for i, w := range cfg.StopWords {
			stop[i] = strings.ToLower(w)
		}
		cfg.StopWords = stop
	}
	return cfg
}

func (cfg Config) validate() error {
	cfg = cfg.normalized()
	if cfg.MinLength < 0 {
		return fmt.Errorf("%w: negative minimum word length %d", ErrInvalidConfig, cfg.MinLength)
	}
	if _, err := treemap.ParseStrategy(cfg.Strategy); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return nil
}
