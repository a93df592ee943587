// Package config wires command-line flags, REMOLINO_* environment
// variables, and defaults through viper. The engine packages never read
// config directly; cmd pushes values into the solver via its setters.
package config

import (
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	ConfigDebug             = "debug"
	ConfigTTableMemFraction = "ttable-mem-fraction"
	ConfigTTableSizeMB      = "ttable-size-mb"
	ConfigTimeBudget        = "time-budget"
	ConfigNodeCheckInterval = "node-check-interval"
	ConfigCPUProfile        = "cpu-profile"
	ConfigMemProfile        = "mem-profile"
)

type Config struct {
	v    *viper.Viper
	args []string
}

func DefaultConfig() Config {
	v := viper.New()
	v.SetDefault(ConfigDebug, false)
	v.SetDefault(ConfigTTableMemFraction, 0.25)
	v.SetDefault(ConfigTTableSizeMB, 0)
	v.SetDefault(ConfigTimeBudget, 30*time.Second)
	v.SetDefault(ConfigNodeCheckInterval, 10000)
	v.SetDefault(ConfigCPUProfile, "")
	v.SetDefault(ConfigMemProfile, "")
	return Config{v: v}
}

// Load parses flags out of args and binds REMOLINO_* environment
// variables. Non-flag arguments remain available through Args.
func (c *Config) Load(args []string) error {
	fs := pflag.NewFlagSet("remolino", pflag.ContinueOnError)
	fs.Bool(ConfigDebug, false, "debug logging on")
	fs.Float64(ConfigTTableMemFraction, 0.25, "fraction of system memory for the transposition table")
	fs.Int(ConfigTTableSizeMB, 0, "transposition table size hint in MB; overrides the memory fraction if set")
	fs.Duration(ConfigTimeBudget, 30*time.Second, "wall-time budget for one exact solve")
	fs.Uint64(ConfigNodeCheckInterval, 10000, "nodes searched between solver clock polls")
	fs.String(ConfigCPUProfile, "", "write CPU profile to file")
	fs.String(ConfigMemProfile, "", "write memory profile to file")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := c.v.BindPFlags(fs); err != nil {
		return err
	}
	c.v.SetEnvPrefix("remolino")
	c.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	c.v.AutomaticEnv()
	c.args = fs.Args()
	return nil
}

// Args returns the non-flag arguments from the last Load.
func (c *Config) Args() []string {
	return c.args
}

func (c *Config) GetString(key string) string {
	return c.v.GetString(key)
}

func (c *Config) GetBool(key string) bool {
	return c.v.GetBool(key)
}

func (c *Config) GetInt(key string) int {
	return c.v.GetInt(key)
}

func (c *Config) GetUint64(key string) uint64 {
	return c.v.GetUint64(key)
}

func (c *Config) GetFloat64(key string) float64 {
	return c.v.GetFloat64(key)
}

func (c *Config) GetDuration(key string) time.Duration {
	return c.v.GetDuration(key)
}

// SanitizedSettings dumps the effective settings for the startup log line.
func (c *Config) SanitizedSettings() map[string]any {
	return c.v.AllSettings()
}
