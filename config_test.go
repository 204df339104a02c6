package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := defaultConfig()
	require.Equal(t, "127.0.0.1:8080", cfg.Listen)
	require.Equal(t, "http://localhost:8001/api", cfg.Authors.URL)
	require.Equal(t, "http://localhost:8002/api", cfg.Publications.URL)
	require.Equal(t, 5*time.Second, cfg.Authors.Timeout)
	require.Equal(t, 5*time.Second, cfg.Publications.Timeout)
	require.Zero(t, cfg.Authors.Rate)
	require.NoError(t, cfg.validate())
}

func TestLoadINI(t *testing.T) {
	cfg := defaultConfig()
	err := cfg.loadINI([]byte(`
listen = 0.0.0.0:9000
base = /console
sessions = sqlite3:sessions.sqlite3

[authors]
url = http://authors.internal/api
timeout = 2s
rate = 10

[publications]
timeout = 1500ms
`))
	require.NoError(t, err)

	require.Equal(t, "0.0.0.0:9000", cfg.Listen)
	require.Equal(t, "/console", cfg.Base)
	require.Equal(t, "sqlite3:sessions.sqlite3", cfg.Sessions)
	require.Equal(t, "http://authors.internal/api", cfg.Authors.URL)
	require.Equal(t, 2*time.Second, cfg.Authors.Timeout)
	require.Equal(t, 10.0, cfg.Authors.Rate)

	// unset keys keep their defaults
	require.Equal(t, "http://localhost:8002/api", cfg.Publications.URL)
	require.Equal(t, 1500*time.Millisecond, cfg.Publications.Timeout)
	require.Zero(t, cfg.Publications.Rate)
}

func TestLoadINIMissingFile(t *testing.T) {
	cfg := defaultConfig()
	require.Error(t, cfg.loadINI("does-not-exist.ini"))
}

func TestLoadEnv(t *testing.T) {
	env := map[string]string{
		"AUTHORS_API_URL":   "http://authors.example.com/api",
		"UNRELATED_API_URL": "http://ignored",
	}

	cfg := defaultConfig()
	cfg.loadEnv(func(key string) string { return env[key] })

	require.Equal(t, "http://authors.example.com/api", cfg.Authors.URL)
	require.Equal(t, "http://localhost:8002/api", cfg.Publications.URL)
}

func TestPrecedence(t *testing.T) {
	cfg := defaultConfig()
	require.NoError(t, cfg.loadINI([]byte("[publications]\nurl = http://from-ini/api\n[authors]\nurl = http://from-ini/api\n")))

	cfg.loadEnv(func(key string) string {
		if key == "PUBLICATIONS_API_URL" {
			return "http://from-env/api"
		}
		return ""
	})

	cfg.applyFlags(
		flagValues{
			AuthorsURL:      "http://from-flag/api",
			PublicationsURL: "http://unchanged-flag/api",
			Listen:          "127.0.0.1:1",
		},
		func(name string) bool { return name == "authors-url" },
	)

	require.Equal(t, "http://from-flag/api", cfg.Authors.URL)
	require.Equal(t, "http://from-env/api", cfg.Publications.URL)
	require.Equal(t, "127.0.0.1:8080", cfg.Listen)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*config)
	}{
		{"missing authors url", func(c *config) { c.Authors.URL = "" }},
		{"missing publications url", func(c *config) { c.Publications.URL = "" }},
		{"zero timeout", func(c *config) { c.Publications.Timeout = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := defaultConfig()
			tt.modify(&cfg)
			require.Error(t, cfg.validate())
		})
	}
}

func TestOpenSessionStoreInMemory(t *testing.T) {
	store, db, err := openSessionStore("")
	require.NoError(t, err)
	require.Nil(t, store)
	require.Nil(t, db)
}

func TestOpenSessionStoreSQLite(t *testing.T) {
	t.Chdir(t.TempDir())
	store, db, err := openSessionStore("sqlite3:sessions.sqlite3")
	require.NoError(t, err)
	require.NotNil(t, store)
	defer db.Close()

	require.NoError(t, store.Commit("token", []byte("data"), time.Now().Add(time.Hour)))
	data, found, err := store.Find("token")
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, []byte("data"), data)
}

func TestOpenSessionStoreUnknownScheme(t *testing.T) {
	_, _, err := openSessionStore("not a url")
	require.Error(t, err)
}
