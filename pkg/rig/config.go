package rig

import (
	"fmt"
	"io/ioutil"
	"time"

	"gopkg.in/yaml.v3"
)

// Config configures the rig daemon.
type Config struct {
	TickMillis int          `yaml:"tick_ms"`
	Serial     SerialConfig `yaml:"serial"`
	Store      StoreConfig  `yaml:"store"`
	Broker     string       `yaml:"broker"`
}

// SerialConfig selects the command link endpoint: a serial device,
// or a TCP listen address for bench use. At most one may be set.
type SerialConfig struct {
	Device string `yaml:"device"`
	Baud   int    `yaml:"baud"`
	Listen string `yaml:"listen"`
}

// StoreConfig configures preset persistence.
type StoreConfig struct {
	Image string `yaml:"image"`
}

// Defaults.
const (
	DefaultTickMillis = 20
	DefaultBaud       = 115200
)

// NewConfig creates a config with defaults.
func NewConfig() *Config {
	return &Config{
		TickMillis: DefaultTickMillis,
		Serial:     SerialConfig{Baud: DefaultBaud},
	}
}

// LoadConfig reads and validates a YAML config file.
func LoadConfig(path string) (*Config, error) {
	b, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, err
	}
	conf := NewConfig()
	if err = yaml.Unmarshal(b, conf); err != nil {
		return nil, err
	}
	if err = conf.Validate(); err != nil {
		return nil, err
	}
	return conf, nil
}

// Validate checks configuration correctness.
func (c *Config) Validate() error {
	if c.TickMillis <= 0 {
		return fmt.Errorf("tick_ms must be positive, got %d", c.TickMillis)
	}
	if c.Serial.Device != "" && c.Serial.Listen != "" {
		return fmt.Errorf("serial: device and listen are mutually exclusive")
	}
	if c.Serial.Baud <= 0 {
		return fmt.Errorf("serial: baud must be positive, got %d", c.Serial.Baud)
	}
	return nil
}

// TickInterval returns the scheduler tick period.
func (c *Config) TickInterval() time.Duration {
	return time.Duration(c.TickMillis) * time.Millisecond
}
