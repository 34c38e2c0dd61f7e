package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "chordnova.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("OUTPUT_PATH", "")
	cfg, err := Load("")
	require.NoError(t, err)

	assert := assert.New(t)
	assert.Equal(8080, cfg.HTTP.Port)
	assert.Equal(10, cfg.HTTP.ReadTimeoutSec)
	assert.Equal([]string{"*"}, cfg.HTTP.CORSOrigins)
	assert.Equal("./out", cfg.Export.Dir)
	assert.Equal(60.0, cfg.Export.TempoBPM)
	assert.Equal(80, cfg.Export.Velocity)
	assert.Equal(2, cfg.Export.BeatsPerChord)
	assert.False(cfg.Search.Dedup)
}

func TestLoadFile(t *testing.T) {
	t.Setenv("CHORDNOVA_TEST_DIR", "/tmp/voicings")
	path := writeConfig(t, `
http:
  port: 9090
  cors_origins: ["http://localhost:3000"]
logging:
  level: debug
export:
  dir: ${CHORDNOVA_TEST_DIR}
  tempo_bpm: 90
search:
  dedup: true
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	assert := assert.New(t)
	assert.Equal(9090, cfg.HTTP.Port)
	assert.Equal([]string{"http://localhost:3000"}, cfg.HTTP.CORSOrigins)
	assert.Equal("debug", cfg.Logging.Level)
	assert.Equal("/tmp/voicings", cfg.Export.Dir)
	assert.Equal(90.0, cfg.Export.TempoBPM)
	assert.Equal(80, cfg.Export.Velocity)
	assert.True(cfg.Search.Dedup)
}

func TestLoadInvalid(t *testing.T) {
	cases := map[string]string{
		"port":     "http:\n  port: 70000\n",
		"level":    "logging:\n  level: loud\n",
		"velocity": "export:\n  velocity: 200\n",
		"yaml":     "http: [\n",
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Load(writeConfig(t, body))
			assert.Error(t, err)
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
