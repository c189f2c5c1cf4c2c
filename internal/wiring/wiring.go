// Package wiring assembles the settings store, relay, and gateway for
// CLI commands.
package wiring

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/pagechat/pagechat/pkg/gateway"
	"github.com/pagechat/pagechat/pkg/gemini"
	"github.com/pagechat/pagechat/pkg/relay"
	"github.com/pagechat/pagechat/pkg/settings"
)

// Logger builds the stderr JSON logger used by every command.
func Logger(quiet bool) *slog.Logger {
	level := slog.LevelInfo
	if quiet {
		level = slog.LevelError
	}
	return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// Stack is the assembled message path from a page surface to the
// provider: gateway -> relay -> settings/credential -> HTTP.
type Stack struct {
	Store   *settings.Store
	Relay   *relay.Relay
	Gateway *gateway.Gateway
}

// Open builds the stack around the settings database at dbPath, or the
// default location when empty.
func Open(dbPath string, logger *slog.Logger) (*Stack, error) {
	var store *settings.Store
	var err error
	if dbPath == "" {
		store, err = settings.OpenDefault()
	} else {
		store, err = settings.Open(dbPath)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open settings store: %w", err)
	}

	r := relay.New(store, gemini.NewClient(), logger)
	return &Stack{
		Store:   store,
		Relay:   r,
		Gateway: gateway.New(r, logger),
	}, nil
}

func (s *Stack) Close() error {
	return s.Store.Close()
}
