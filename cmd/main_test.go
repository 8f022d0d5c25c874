package main

import (
	"bytes"
	"context"
	"flag"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// resetFlags resets the global flag.CommandLine to avoid "flag redefined" panic
func resetFlags() {
	flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.ExitOnError)
}

func TestParseFlags_Default(t *testing.T) {
	resetFlags()
	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()

	os.Args = []string{"cmd"}
	assert.Equal(t, "config.env", parseFlags())
}

func TestParseFlags_Custom(t *testing.T) {
	resetFlags()
	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()

	os.Args = []string{"cmd", "-c", "myconfig.env"}
	assert.Equal(t, "myconfig.env", parseFlags())
}

func TestPrintBuildInfo_Output(t *testing.T) {
	// Capture stdout
	oldStdout := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	buildVersion = "v1.0.0"
	buildCommit = "abcd1234"
	buildDate = "2025-09-26"

	printBuildInfo()

	w.Close()
	var buf bytes.Buffer
	_, _ = buf.ReadFrom(r)
	os.Stdout = oldStdout

	output := buf.String()
	assert.Contains(t, output, "Version: v1.0.0")
	assert.Contains(t, output, "Commit: abcd1234")
	assert.Contains(t, output, "Build: 2025-09-26")
}

func TestParseConfig_Defaults(t *testing.T) {
	cfg, err := parseConfig(filepath.Join(t.TempDir(), "nonexistent.env"))
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, "localhost", cfg.Host)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "hbnb.db", cfg.SQLitePath)
	assert.Equal(t, 5432, cfg.PostgresPort)
	assert.Equal(t, 16, cfg.PostgresMaxOpenConns)
	assert.Equal(t, 8, cfg.PostgresMaxIdleConns)
	assert.Equal(t, 3600, cfg.JWTExpSecond)
	assert.Empty(t, cfg.RedisAddr)
	assert.Empty(t, cfg.KafkaBrokers)
	assert.Equal(t, "hbnb.entities", cfg.KafkaTopic)
}

func TestParseConfig_CustomEnv(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("APP_PORT", "9090")
	t.Setenv("POSTGRES_HOST", "pg.example.com")
	t.Setenv("POSTGRES_PORT", "5433")
	t.Setenv("JWT_SECRET_KEY", "supersecret")
	t.Setenv("JWT_EXP_SECOND", "300")
	t.Setenv("REDIS_ADDR", "redis:6379")
	t.Setenv("KAFKA_BROKERS", "k1:9092,k2:9092")
	t.Setenv("ADMIN_EMAIL", "admin@hbnb.io")

	cfg, err := parseConfig(filepath.Join(t.TempDir(), "nonexistent.env"))
	require.NoError(t, err)

	assert.Equal(t, "production", cfg.Env)
	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "pg.example.com", cfg.PostgresHost)
	assert.Equal(t, 5433, cfg.PostgresPort)
	assert.Equal(t, "supersecret", cfg.JWTSecretKey)
	assert.Equal(t, 300, cfg.JWTExpSecond)
	assert.Equal(t, "redis:6379", cfg.RedisAddr)
	assert.Equal(t, []string{"k1:9092", "k2:9092"}, cfg.KafkaBrokers)
	assert.Equal(t, "admin@hbnb.io", cfg.AdminEmail)
}

func TestParseConfig_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.env")
	require.NoError(t, os.WriteFile(path, []byte("APP_PORT=7070\nSQLITE_PATH=/tmp/custom.db\n"), 0o600))
	t.Cleanup(func() {
		os.Unsetenv("APP_PORT")
		os.Unsetenv("SQLITE_PATH")
	})

	cfg, err := parseConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "7070", cfg.Port)
	assert.Equal(t, "/tmp/custom.db", cfg.SQLitePath)
}

func TestParseConfig_InvalidNumber(t *testing.T) {
	t.Setenv("POSTGRES_PORT", "not-a-number")

	_, err := parseConfig(filepath.Join(t.TempDir(), "nonexistent.env"))
	assert.Error(t, err)
}

func TestRun_SQLite(t *testing.T) {
	mr := miniredis.RunT(t)
	cfg := &Config{
		Env:           "development",
		Host:          "127.0.0.1",
		Port:          "0",
		LogLevel:      "debug",
		SQLitePath:    filepath.Join(t.TempDir(), "hbnb.db"),
		JWTSecretKey:  "testsecret",
		JWTExpSecond:  60,
		RedisAddr:     mr.Addr(),
		AdminEmail:    "admin@hbnb.io",
		AdminPassword: "admin1234",
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	errCh := make(chan error, 1)
	go func() { errCh <- run(ctx, cfg) }()

	select {
	case <-time.After(10 * time.Second):
		t.Fatal("test timed out")
	case err := <-errCh:
		require.NoError(t, err)
	}
}

func TestRun_RedisUnavailable(t *testing.T) {
	mr := miniredis.RunT(t)
	addr := mr.Addr()
	mr.Close()

	cfg := &Config{
		Env:        "development",
		Host:       "127.0.0.1",
		Port:       "0",
		LogLevel:   "info",
		SQLitePath: filepath.Join(t.TempDir(), "hbnb.db"),
		RedisAddr:  addr,
	}

	err := run(context.Background(), cfg)
	assert.Error(t, err)
}
