// Package rules loads validation rules from a YAML file into the core model.
package rules

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/leapstack-labs/crosscheck/pkg/core"
)

// locatorSpec is the YAML shape of one side of a rule.
type locatorSpec struct {
	Connection string `yaml:"connection"`
	Database   string `yaml:"database"`
	Schema     string `yaml:"schema"`
	Table      string `yaml:"table"`
	Column     string `yaml:"column"`
	Filter     string `yaml:"filter"`
}

// thresholdSpec is the YAML shape of a rule's tolerance.
type thresholdSpec struct {
	Kind  string  `yaml:"kind"`
	Value float64 `yaml:"value"`
}

// ruleSpec is the YAML shape of one rule entry.
type ruleSpec struct {
	ID               string         `yaml:"id"`
	Name             string         `yaml:"name"`
	Aggregate        string         `yaml:"aggregate"`
	CustomExpression string         `yaml:"custom_expression"`
	Source           locatorSpec    `yaml:"source"`
	Target           locatorSpec    `yaml:"target"`
	Threshold        *thresholdSpec `yaml:"threshold"`
	Enabled          *bool          `yaml:"enabled"`
}

// fileSpec is the YAML shape of a rules file.
type fileSpec struct {
	Rules []ruleSpec `yaml:"rules"`
}

// Load reads a rules file and returns the enabled rules, validated and in
// file order. Disabled rules are dropped here so callers never see them.
func Load(path string) ([]core.Rule, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read rules file: %w", err)
	}
	rules, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("rules file %s: %w", path, err)
	}
	return rules, nil
}

// Parse decodes and validates YAML rule definitions.
func Parse(data []byte) ([]core.Rule, error) {
	var file fileSpec
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, core.ConfigErrorf("invalid YAML: %v", err)
	}
	if len(file.Rules) == 0 {
		return nil, core.ConfigErrorf("no rules defined")
	}

	seen := make(map[string]struct{}, len(file.Rules))
	rules := make([]core.Rule, 0, len(file.Rules))
	for i, spec := range file.Rules {
		rule, err := buildRule(spec, i)
		if err != nil {
			return nil, err
		}
		if _, dup := seen[rule.ID]; dup {
			return nil, core.ConfigErrorf("duplicate rule id %q", rule.ID)
		}
		seen[rule.ID] = struct{}{}
		if !rule.Enabled {
			continue
		}
		rules = append(rules, rule)
	}
	return rules, nil
}

func buildRule(spec ruleSpec, index int) (core.Rule, error) {
	if spec.ID == "" {
		return core.Rule{}, core.ConfigErrorf("rule at index %d: id is required", index)
	}
	if spec.Aggregate == "" {
		return core.Rule{}, core.ConfigErrorf("rule %s: aggregate is required", spec.ID)
	}
	kind, err := core.ParseAggregateKind(spec.Aggregate)
	if err != nil {
		return core.Rule{}, core.ConfigErrorf("rule %s: %v", spec.ID, err)
	}

	if err := validateLocator(spec.ID, "source", spec.Source); err != nil {
		return core.Rule{}, err
	}
	if err := validateLocator(spec.ID, "target", spec.Target); err != nil {
		return core.Rule{}, err
	}

	// Threshold defaults to exact equality when omitted.
	thresholdKind := core.Exact
	thresholdValue := 0.0
	if spec.Threshold != nil {
		if spec.Threshold.Kind != "" {
			thresholdKind, err = core.ParseThresholdKind(spec.Threshold.Kind)
			if err != nil {
				return core.Rule{}, core.ConfigErrorf("rule %s: %v", spec.ID, err)
			}
		}
		thresholdValue = spec.Threshold.Value
	}

	name := spec.Name
	if name == "" {
		name = spec.ID
	}

	enabled := true
	if spec.Enabled != nil {
		enabled = *spec.Enabled
	}

	rule := core.Rule{
		ID:               spec.ID,
		Name:             name,
		Source:           toLocator(spec.Source),
		Target:           toLocator(spec.Target),
		Aggregate:        kind,
		CustomExpression: spec.CustomExpression,
		Threshold:        thresholdKind,
		ThresholdValue:   thresholdValue,
		Enabled:          enabled,
	}
	if err := rule.Validate(); err != nil {
		return core.Rule{}, err
	}
	return rule, nil
}

func validateLocator(ruleID, side string, spec locatorSpec) error {
	if spec.Connection == "" {
		return core.ConfigErrorf("rule %s: %s connection is required", ruleID, side)
	}
	if spec.Table == "" {
		return core.ConfigErrorf("rule %s: %s table is required", ruleID, side)
	}
	return nil
}

func toLocator(spec locatorSpec) core.Locator {
	return core.Locator{
		Connection: spec.Connection,
		Database:   spec.Database,
		Schema:     spec.Schema,
		Table:      spec.Table,
		Column:     spec.Column,
		Filter:     spec.Filter,
	}
}
