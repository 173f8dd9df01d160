package dominosort

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Config is the YAML form of the search options.
//
//	max_iter: 5000
//	tolerance: 1e-9
//	integrality_tol: 1e-6
//	bounding: true
//	max_nodes: 0
//	verbose: false
//	warm_start: true
//
// Zero values and omitted keys keep the defaults.
type Config struct {
	MaxIter        int     `yaml:"max_iter"`
	Tolerance      float64 `yaml:"tolerance"`
	IntegralityTol float64 `yaml:"integrality_tol"`
	Bounding       *bool   `yaml:"bounding"`
	MaxNodes       int     `yaml:"max_nodes"`
	Verbose        bool    `yaml:"verbose"`
	WarmStart      bool    `yaml:"warm_start"`
}

// LoadConfig decodes a Config from r. Unknown keys are rejected and the
// resulting options are validated. An empty document yields the zero Config.
func LoadConfig(r io.Reader) (Config, error) {
	var c Config
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&c); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("%w: %w", ErrBadConfig, err)
	}
	if _, err := gatherOptions(c.Options()); err != nil {
		return Config{}, fmt.Errorf("%w: %w", ErrBadConfig, err)
	}

	return c, nil
}

// Options converts the non-zero fields of c into Option values.
func (c Config) Options() []Option {
	var opts []Option
	if c.MaxIter != 0 {
		opts = append(opts, WithMaxIter(c.MaxIter))
	}
	if c.Tolerance != 0 {
		opts = append(opts, WithTolerance(c.Tolerance))
	}
	if c.IntegralityTol != 0 {
		opts = append(opts, WithIntegralityTol(c.IntegralityTol))
	}
	if c.Bounding != nil {
		opts = append(opts, WithBounding(*c.Bounding))
	}
	if c.MaxNodes != 0 {
		opts = append(opts, WithMaxNodes(c.MaxNodes))
	}
	if c.Verbose {
		opts = append(opts, WithVerbose())
	}
	if c.WarmStart {
		opts = append(opts, WithWarmStart())
	}

	return opts
}
