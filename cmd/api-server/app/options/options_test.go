package options

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDefaults(t *testing.T) {
	o, err := parse([]string{"api-server"})
	require.NoError(t, err)

	assert.Equal(t, 8000, *o.Port)
	assert.Equal(t, "debug", *o.Mode)
	assert.Equal(t, "/var/log/app.log", *o.LogFile)
	assert.Equal(t, 10*time.Second, o.Timeout())
}

func TestParseFlags(t *testing.T) {
	o, err := parse([]string{"api-server", "-p", "9090", "-m", "release", "--request-timeout", "3", "-l", "/tmp/app.log"})
	require.NoError(t, err)

	assert.Equal(t, 9090, *o.Port)
	assert.Equal(t, "release", *o.Mode)
	assert.Equal(t, "/tmp/app.log", *o.LogFile)
	assert.Equal(t, 3*time.Second, o.Timeout())
}

func TestParseInvalid(t *testing.T) {
	tests := [][]string{
		{"api-server", "-m", "verbose"},
		{"api-server", "--tls-cert-file", "cert.pem"},
		{"api-server", "-p", "0"},
		{"api-server", "--request-timeout", "-1"},
	}
	for _, args := range tests {
		o, err := parse(args)
		assert.Error(t, err, "args %v", args)
		assert.NotEmpty(t, o.Usage(err))
	}
}
