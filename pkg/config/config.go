// Package config loads and validates engine tuning parameters for the
// search package: node/fail limits, clone rate, and the propagator
// scheduler's cost-class ladder. Configuration is read as YAML via
// gopkg.in/yaml.v3 and validated with github.com/go-playground/validator/v10
// struct tags, the way both nccheck and AleutianLocal load and validate
// their own YAML configuration.
package config

import (
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/bharathkarthikeyan/gecode/pkg/kernel"
	"github.com/bharathkarthikeyan/gecode/pkg/search"
)

// EngineOptions is the on-disk shape of search.Options, plus validation
// tags a raw search.Options value has no room for.
type EngineOptions struct {
	// NodeLimit stops a search once this many nodes have been visited.
	// 0 means unlimited.
	NodeLimit int `yaml:"node_limit" validate:"gte=0"`
	// FailLimit stops a search once this many failures have been
	// observed. 0 means unlimited.
	FailLimit int `yaml:"fail_limit" validate:"gte=0"`
	// CloneRate controls how often the DFS stack keeps a full space
	// clone versus a replayable choice path. Must be at least 1.
	CloneRate int `yaml:"clone_rate" validate:"gte=1"`
	// CostClassOrder optionally re-labels which of the kernel's fixed cost
	// classes a deployment considers "cheap" for log/metric grouping; it
	// does not reorder the scheduler's fixed ladder, it only has to name
	// classes the kernel actually defines.
	CostClassOrder []string `yaml:"cost_class_order,omitempty" validate:"omitempty,dive,oneof=unary binary ternary linear quadratic cubic crazy"`
}

var validate = validator.New()

// Load reads and validates engine options from a YAML file at path. A
// missing or malformed file, or a value failing validation, is programmer/
// operator misuse and is reported as a *kernel.MisuseError.
func Load(path string) (EngineOptions, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return EngineOptions{}, kernel.Misusef("config.Load", "reading %s: %v", path, err)
	}
	return Parse(data)
}

// Parse validates and decodes raw YAML bytes into EngineOptions. Exposed
// separately from Load so callers that already have the bytes (e.g. an
// embedded default, or a config fetched from somewhere other than the
// filesystem) don't need to round-trip through a temp file.
func Parse(data []byte) (EngineOptions, error) {
	opts := Default()
	if err := yaml.Unmarshal(data, &opts); err != nil {
		return EngineOptions{}, kernel.Misusef("config.Parse", "parsing engine options: %v", err)
	}
	if err := validate.Struct(opts); err != nil {
		return EngineOptions{}, kernel.Misusef("config.Parse", "invalid engine options: %v", err)
	}
	return opts, nil
}

// Default returns the zero-tuning configuration: no node/fail limit, and a
// clone rate of 1 (clone at every branch node).
func Default() EngineOptions {
	return EngineOptions{CloneRate: 1}
}

// ToSearchOptions adapts the loaded configuration into search.Options,
// leaving StopCondition for the caller to attach (it has no YAML
// representation).
func (o EngineOptions) ToSearchOptions() search.Options {
	return search.Options{
		NodeLimit: o.NodeLimit,
		FailLimit: o.FailLimit,
		CloneRate: o.CloneRate,
	}
}
