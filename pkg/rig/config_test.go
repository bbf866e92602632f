package rig

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	dir, err := ioutil.TempDir("", "rig-config")
	require.NoError(t, err)
	t.Cleanup(func() { os.RemoveAll(dir) })
	path := filepath.Join(dir, "rig.yml")
	require.NoError(t, ioutil.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `
tick_ms: 10
serial:
  device: /dev/ttyUSB0
  baud: 57600
store:
  image: /var/lib/rig/presets.bin
broker: mqtt://broker.local:1883/rig/
`)
	conf, err := LoadConfig(path)
	require.NoError(t, err)
	require.Equal(t, 10*time.Millisecond, conf.TickInterval())
	require.Equal(t, "/dev/ttyUSB0", conf.Serial.Device)
	require.Equal(t, 57600, conf.Serial.Baud)
	require.Equal(t, "/var/lib/rig/presets.bin", conf.Store.Image)
	require.Equal(t, "mqtt://broker.local:1883/rig/", conf.Broker)
}

func TestLoadConfigDefaults(t *testing.T) {
	path := writeConfig(t, `
serial:
  listen: "127.0.0.1:9600"
`)
	conf, err := LoadConfig(path)
	require.NoError(t, err)
	require.Equal(t, DefaultTickMillis, conf.TickMillis)
	require.Equal(t, DefaultBaud, conf.Serial.Baud)
	require.Equal(t, "127.0.0.1:9600", conf.Serial.Listen)
}

func TestConfigValidate(t *testing.T) {
	testCases := []struct {
		name    string
		content string
		errLike string
	}{
		{
			name:    "zero tick",
			content: "tick_ms: 0\n",
			errLike: "tick_ms",
		},
		{
			name:    "negative tick",
			content: "tick_ms: -5\n",
			errLike: "tick_ms",
		},
		{
			name:    "device and listen exclusive",
			content: "serial:\n  device: /dev/ttyUSB0\n  listen: \"127.0.0.1:9600\"\n",
			errLike: "mutually exclusive",
		},
		{
			name:    "bad baud",
			content: "serial:\n  baud: -1\n",
			errLike: "baud",
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := LoadConfig(writeConfig(t, tc.content))
			require.Error(t, err)
			require.Contains(t, err.Error(), tc.errLike)
		})
	}
}
