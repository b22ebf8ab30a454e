package main

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
)

type config struct {
	InitialText string
	SnapshotDB  string
	LogFile     string
	Accent      string
}

func defaultConfig() config {
	return config{Accent: "6"}
}

type fileConfig struct {
	InitialText string `toml:"initial_text"`
	SnapshotDB  string `toml:"snapshot_db"`
	LogFile     string `toml:"log_file"`
	Accent      string `toml:"accent"`
}

// loadConfig applies the keys present in the TOML file at path on top of the
// defaults; absent keys keep their default.
func loadConfig(path string) (config, error) {
	cfg := defaultConfig()

	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return config{}, fmt.Errorf("load demo config: %w", err)
	}

	if meta.IsDefined("initial_text") {
		cfg.InitialText = raw.InitialText
	}
	if meta.IsDefined("snapshot_db") {
		cfg.SnapshotDB = strings.TrimSpace(raw.SnapshotDB)
	}
	if meta.IsDefined("log_file") {
		cfg.LogFile = strings.TrimSpace(raw.LogFile)
	}
	if meta.IsDefined("accent") {
		if accent := strings.TrimSpace(raw.Accent); accent != "" {
			cfg.Accent = accent
		}
	}

	return cfg, nil
}
