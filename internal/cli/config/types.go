// Package config loads CrossCheck's configuration: named connections plus
// run settings, merged from defaults, crosscheck.yaml, environment variables
// and CLI flags.
package config

import "github.com/leapstack-labs/crosscheck/pkg/adapter"

// Defaults applied when neither file, env nor flags say otherwise.
const (
	DefaultRulesFile   = "rules.yaml"
	DefaultReportDir   = "reports"
	DefaultConcurrency = 4
)

// ConnectionSpec is the YAML shape of one named connection.
type ConnectionSpec struct {
	Type     string            `koanf:"type"`
	Host     string            `koanf:"host"`
	Port     int               `koanf:"port"`
	Database string            `koanf:"database"`
	User     string            `koanf:"user"`
	Password string            `koanf:"password"`
	Schema   string            `koanf:"schema"`
	Path     string            `koanf:"path"`
	Options  map[string]string `koanf:"options"`
}

// Config is the fully merged CrossCheck configuration.
type Config struct {
	// Connections maps connection names to their backend settings.
	Connections map[string]ConnectionSpec `koanf:"connections"`

	// RulesFile is the path to the YAML rules definition.
	RulesFile string `koanf:"rules_file"`

	// ReportDir is where CSV reports are written.
	ReportDir string `koanf:"report_dir"`

	// Report, when set, is an explicit report file path overriding ReportDir.
	Report string `koanf:"report"`

	// Concurrency bounds how many rules are evaluated in parallel.
	Concurrency int `koanf:"concurrency"`

	Verbose bool `koanf:"verbose"`
}

// AdapterConfigs converts the connection specs into adapter configurations.
func (c *Config) AdapterConfigs() map[string]adapter.Config {
	configs := make(map[string]adapter.Config, len(c.Connections))
	for name, spec := range c.Connections {
		configs[name] = adapter.Config{
			Type:     spec.Type,
			Host:     spec.Host,
			Port:     spec.Port,
			Database: spec.Database,
			Username: spec.User,
			Password: spec.Password,
			Schema:   spec.Schema,
			Path:     spec.Path,
			Options:  spec.Options,
		}
	}
	return configs
}
