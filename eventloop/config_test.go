package eventloop_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/on-the-ground/reduct_ive_go/eventloop"
)

func TestNewConfig_Defaults(t *testing.T) {
	c := eventloop.NewConfig(0, -3)
	assert.Equal(t, 1, c.BufferSize)
	assert.Equal(t, 1, c.NumWorkers)

	c = eventloop.NewConfig(32, 4)
	assert.Equal(t, 32, c.BufferSize)
	assert.Equal(t, 4, c.NumWorkers)
}

func TestParseConfig(t *testing.T) {
	c, err := eventloop.ParseConfig([]byte("buffer_size: 16\nnum_workers: 2\n"))
	require.NoError(t, err)
	assert.Equal(t, eventloop.Config{BufferSize: 16, NumWorkers: 2}, c)
}

func TestParseConfig_AbsentFieldsDefault(t *testing.T) {
	c, err := eventloop.ParseConfig([]byte("buffer_size: 16\n"))
	require.NoError(t, err)
	assert.Equal(t, 1, c.NumWorkers)
}

func TestParseConfig_BadYaml(t *testing.T) {
	_, err := eventloop.ParseConfig([]byte("buffer_size: [oops"))
	assert.Error(t, err)
}
