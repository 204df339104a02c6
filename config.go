package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/wansing/editorial/gateway"
	"gopkg.in/ini.v1"
)

type backendConfig struct {
	URL     string
	Timeout time.Duration
	Rate    float64 // requests per second, zero means unlimited
}

func (b backendConfig) options() []gateway.Option {
	return []gateway.Option{
		gateway.WithTimeout(b.Timeout),
		gateway.WithRateLimit(b.Rate),
	}
}

type config struct {
	Listen       string
	Base         string // URL prefix
	Sessions     string // database url, empty means in-memory sessions
	Authors      backendConfig
	Publications backendConfig
}

func defaultConfig() config {
	return config{
		Listen: "127.0.0.1:8080",
		Authors: backendConfig{
			URL:     "http://localhost:8001/api",
			Timeout: gateway.DefaultTimeout,
		},
		Publications: backendConfig{
			URL:     "http://localhost:8002/api",
			Timeout: gateway.DefaultTimeout,
		},
	}
}

// loadINI overrides the config with the values of an ini file. Source can be a file name or []byte.
//
//	listen = 127.0.0.1:8080
//	base = /console
//	sessions = sqlite3:sessions.sqlite3
//
//	[authors]
//	url = http://localhost:8001/api
//	timeout = 5s
//	rate = 10
//
//	[publications]
//	url = http://localhost:8002/api
func (cfg *config) loadINI(source interface{}) error {

	file, err := ini.Load(source)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	var root = file.Section("")
	cfg.Listen = root.Key("listen").MustString(cfg.Listen)
	cfg.Base = root.Key("base").MustString(cfg.Base)
	cfg.Sessions = root.Key("sessions").MustString(cfg.Sessions)

	for name, b := range map[string]*backendConfig{
		"authors":      &cfg.Authors,
		"publications": &cfg.Publications,
	} {
		if !file.HasSection(name) {
			continue
		}
		var section = file.Section(name)
		b.URL = section.Key("url").MustString(b.URL)
		b.Timeout = section.Key("timeout").MustDuration(b.Timeout)
		b.Rate = section.Key("rate").MustFloat64(b.Rate)
	}

	return nil
}

// loadEnv overrides the backend URLs with AUTHORS_API_URL and PUBLICATIONS_API_URL, if set.
func (cfg *config) loadEnv(getenv func(string) string) {
	if url := strings.TrimSpace(getenv("AUTHORS_API_URL")); url != "" {
		cfg.Authors.URL = url
	}
	if url := strings.TrimSpace(getenv("PUBLICATIONS_API_URL")); url != "" {
		cfg.Publications.URL = url
	}
}

// command line flags, applied if changed
type flagValues struct {
	Listen          string
	Base            string
	Sessions        string
	AuthorsURL      string
	PublicationsURL string
}

func (cfg *config) applyFlags(values flagValues, changed func(name string) bool) {
	if changed("listen") {
		cfg.Listen = values.Listen
	}
	if changed("base") {
		cfg.Base = values.Base
	}
	if changed("sessions") {
		cfg.Sessions = values.Sessions
	}
	if changed("authors-url") {
		cfg.Authors.URL = values.AuthorsURL
	}
	if changed("publications-url") {
		cfg.Publications.URL = values.PublicationsURL
	}
}

func (cfg config) validate() error {
	if cfg.Authors.URL == "" {
		return fmt.Errorf("missing authors service url")
	}
	if cfg.Publications.URL == "" {
		return fmt.Errorf("missing publications service url")
	}
	if cfg.Authors.Timeout <= 0 || cfg.Publications.Timeout <= 0 {
		return fmt.Errorf("timeouts must be positive")
	}
	return nil
}
