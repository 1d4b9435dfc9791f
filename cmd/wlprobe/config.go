package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/halfmoor/wlprobe/internal/session"
)

type probeConfig struct {
	Socket         string
	Display        string
	MaxMessages    int
	ConnectTimeout time.Duration
}

func defaultProbeConfig() probeConfig {
	return probeConfig{
		MaxMessages:    session.DefaultMaxMessages,
		ConnectTimeout: 5 * time.Second,
	}
}

type fileConfig struct {
	Socket         string `toml:"socket"`
	Display        string `toml:"display"`
	MaxMessages    int    `toml:"max_messages"`
	ConnectTimeout string `toml:"connect_timeout"`
}

func loadProbeConfig(path string) (probeConfig, error) {
	cfg := defaultProbeConfig()

	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return probeConfig{}, fmt.Errorf("load probe config: %w", err)
	}

	if meta.IsDefined("socket") {
		cfg.Socket = strings.TrimSpace(raw.Socket)
	}

	if meta.IsDefined("display") {
		cfg.Display = strings.TrimSpace(raw.Display)
	}

	if meta.IsDefined("max_messages") {
		cfg.MaxMessages = raw.MaxMessages
	}

	if meta.IsDefined("connect_timeout") {
		d, err := time.ParseDuration(strings.TrimSpace(raw.ConnectTimeout))
		if err != nil {
			return probeConfig{}, fmt.Errorf("parse connect_timeout: %w", err)
		}
		cfg.ConnectTimeout = d
	}

	return cfg, nil
}
