package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}
	return path
}

func TestLoad_AppliesDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, `
operator:
  materials: [1]
  volumes: [10.0]
`))
	require.NoError(t, err)

	require.Equal(t, ".", cfg.Output.Dir)
	require.Equal(t, 1.0, cfg.Operator.Eigenvalue)
	require.Equal(t, "info", cfg.Logging.Level)
	require.Equal(t, "console", cfg.Logging.Format)
	require.Equal(t, ":9090", cfg.Monitoring.Addr)
	require.False(t, cfg.Monitoring.Enabled)
}

func TestLoad_ExplicitValues(t *testing.T) {
	cfg, err := Load(writeConfig(t, `
chain:
  file: /data/chain_endfb71.xml
  fission_q:
    U235: 2.0e8
output:
  dir: results/run1
operator:
  eigenvalue: 1.2
  materials: [1, 2]
  volumes: [10.0, 20.0]
logging:
  level: debug
  format: json
`))
	require.NoError(t, err)

	require.Equal(t, "/data/chain_endfb71.xml", cfg.Chain.File)
	require.Equal(t, 2.0e8, cfg.Chain.FissionQ["U235"])
	require.Equal(t, "results/run1", cfg.Output.Dir)
	require.Equal(t, 1.2, cfg.Operator.Eigenvalue)
	require.Equal(t, "json", cfg.Logging.Format)
}

func TestLoad_MissingMaterials(t *testing.T) {
	_, err := Load(writeConfig(t, `
operator:
  volumes: []
`))
	require.Error(t, err)
}

func TestLoad_VolumesMismatch(t *testing.T) {
	_, err := Load(writeConfig(t, `
operator:
  materials: [1, 2]
  volumes: [10.0]
`))
	require.ErrorContains(t, err, "volumes")
}

func TestLoad_InvalidLogFormat(t *testing.T) {
	_, err := Load(writeConfig(t, `
operator:
  materials: [1]
  volumes: [10.0]
logging:
  format: xml
`))
	require.Error(t, err)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}

func TestNewLogger(t *testing.T) {
	logger, err := NewLogger(LoggingConfig{Level: "debug", Format: "json"})
	require.NoError(t, err)
	require.NotNil(t, logger)

	_, err = NewLogger(LoggingConfig{Level: "verbose", Format: "console"})
	require.Error(t, err)
}
