package config

import (
	"testing"
	"time"

	"github.com/matryer/is"
)

func TestDefaults(t *testing.T) {
	is := is.New(t)
	c := DefaultConfig()
	is.Equal(c.GetBool(ConfigDebug), false)
	is.Equal(c.GetFloat64(ConfigTTableMemFraction), 0.25)
	is.Equal(c.GetInt(ConfigTTableSizeMB), 0)
	is.Equal(c.GetDuration(ConfigTimeBudget), 30*time.Second)
	is.Equal(c.GetUint64(ConfigNodeCheckInterval), uint64(10000))
}

func TestLoadFlags(t *testing.T) {
	is := is.New(t)
	c := DefaultConfig()
	err := c.Load([]string{
		"--debug",
		"--ttable-size-mb", "64",
		"--time-budget", "5s",
		"solve", "0x10", "0x20", "b",
	})
	is.NoErr(err)
	is.Equal(c.GetBool(ConfigDebug), true)
	is.Equal(c.GetInt(ConfigTTableSizeMB), 64)
	is.Equal(c.GetDuration(ConfigTimeBudget), 5*time.Second)
	is.Equal(c.Args(), []string{"solve", "0x10", "0x20", "b"})
}

func TestEnvOverride(t *testing.T) {
	is := is.New(t)
	t.Setenv("REMOLINO_NODE_CHECK_INTERVAL", "500")
	c := DefaultConfig()
	is.NoErr(c.Load(nil))
	is.Equal(c.GetUint64(ConfigNodeCheckInterval), uint64(500))
}
