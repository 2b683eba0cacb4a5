package config

import (
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBindFlags_ParsesStorageFlags(t *testing.T) {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	cfg := BindFlags(fs)

	err := fs.Parse([]string{
		"-t", "sqlite",
		"--host", "db.local",
		"-p", "5544",
		"-d", "/tmp/triva.db",
		"-u", "dpa",
		"-P", "pw",
		"--log-level", "debug",
		"-c", "/etc/dpa.json",
	})
	require.NoError(t, err)

	assert.Equal(t, Storage{
		DBType:   "sqlite",
		Host:     "db.local",
		Port:     5544,
		DBName:   "/tmp/triva.db",
		UserID:   "dpa",
		Password: "pw",
	}, cfg.Storage)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "/etc/dpa.json", cfg.JSONFilePath)
}

func TestBindUpdateFlags_ParsesUpdateFlags(t *testing.T) {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	cfg := BindFlags(fs)
	BindUpdateFlags(fs, cfg)

	err := fs.Parse([]string{
		"-A", "acct",
		"-T", "secret",
		"-C", "C1,C2",
		"-R", "P9",
		"--datasets", "workers",
		"-r", "30",
		"--request-timeout", "10s",
	})
	require.NoError(t, err)

	assert.Equal(t, "acct", cfg.Remote.AccountID)
	assert.Equal(t, "secret", cfg.Remote.Password)
	assert.Equal(t, []string{"C1", "C2"}, cfg.Sync.ClientIDs)
	assert.Equal(t, []string{"P9"}, cfg.Sync.ProjectIDs)
	assert.Equal(t, []string{"workers"}, cfg.Sync.Datasets)
	assert.Equal(t, 30, cfg.Sync.Repeat)
	assert.Equal(t, 10*time.Second, cfg.Remote.RequestTimeout)
}

func TestBindFlags_UnsetFlagsStayZero(t *testing.T) {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	cfg := BindFlags(fs)
	BindUpdateFlags(fs, cfg)

	require.NoError(t, fs.Parse(nil))
	assert.Equal(t, &StructuredConfig{}, cfg)
}
