package eventloop

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Config sizes the bundled loops.
type Config struct {
	BufferSize int `yaml:"buffer_size"` // default: 1
	NumWorkers int `yaml:"num_workers"` // default: 1, only PartitionedLoop uses more
}

// NewConfig normalizes non-positive values to the defaults.
func NewConfig(bufferSize, numWorkers int) Config {
	if bufferSize <= 0 {
		bufferSize = 1
	}
	if numWorkers <= 0 {
		numWorkers = 1
	}
	return Config{
		BufferSize: bufferSize,
		NumWorkers: numWorkers,
	}
}

// ParseConfig reads a Config from yaml, applying the same defaulting as
// NewConfig for absent or non-positive fields.
func ParseConfig(data []byte) (Config, error) {
	var c Config
	if err := yaml.Unmarshal(data, &c); err != nil {
		return Config{}, fmt.Errorf("failed to parse loop config: %w", err)
	}
	return NewConfig(c.BufferSize, c.NumWorkers), nil
}
