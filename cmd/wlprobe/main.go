package main

import (
	"context"
	"flag"
	"os"

	"github.com/rs/zerolog/log"

	"github.com/halfmoor/wlprobe/internal/catalog"
	"github.com/halfmoor/wlprobe/internal/logging"
	"github.com/halfmoor/wlprobe/internal/observability"
	"github.com/halfmoor/wlprobe/internal/session"
	"github.com/halfmoor/wlprobe/internal/waydial"
)

func main() {
	configPath := flag.String("config", "", "optional TOML config path")
	socket := flag.String("socket", "", "display socket path, skips discovery")
	display := flag.String("display", "", "display name, overrides $WAYLAND_DISPLAY")
	limit := flag.Int("limit", 0, "max server messages to process (0 = config default)")
	timeout := flag.Duration("timeout", 0, "connect timeout (0 = config default)")
	flag.Parse()

	logging.ConfigureRuntime()
	observability.RegisterMetrics()

	cfg := defaultProbeConfig()
	if *configPath != "" {
		loaded, err := loadProbeConfig(*configPath)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to load probe config")
		}
		cfg = loaded
		log.Info().Str("path", *configPath).Msg("loaded probe config")
	}
	if *socket != "" {
		cfg.Socket = *socket
	}
	if *display != "" {
		cfg.Display = *display
	}
	if *limit > 0 {
		cfg.MaxMessages = *limit
	}
	if *timeout > 0 {
		cfg.ConnectTimeout = *timeout
	}

	path := cfg.Socket
	if path == "" {
		resolved, err := waydial.SocketPath(cfg.Display)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to locate display socket")
		}
		path = resolved
	}

	conn, err := waydial.Dial(context.Background(), path, cfg.ConnectTimeout)
	if err != nil {
		log.Fatal().Err(err).Str("socket", path).Msg("failed to connect to display")
	}
	defer conn.Close()
	log.Info().Str("socket", path).Msg("connected to display")

	sess, err := session.New(conn, session.Config{MaxMessages: cfg.MaxMessages})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to build session")
	}
	sess.Dispatcher().OnGlobal = func(e catalog.Entry) {
		log.Info().
			Uint32("name", e.Name).
			Str("interface", e.Interface).
			Uint32("version", e.Version).
			Msg("global")
	}
	sess.Dispatcher().OnDone = func(serial uint32) {
		log.Info().Uint32("serial", serial).Msg("sync done")
	}

	if err := sess.Handshake(); err != nil {
		log.Fatal().Err(err).Msg("handshake failed")
	}
	if err := sess.Run(); err != nil {
		log.Fatal().Err(err).Msg("session failed")
	}

	if err := writeReport(os.Stdout, sess.Catalog().List()); err != nil {
		log.Fatal().Err(err).Msg("failed to write report")
	}
}
