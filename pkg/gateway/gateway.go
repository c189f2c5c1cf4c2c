// Package gateway is the page-surface side of the relay channel: it
// sends composed prompts across, extracts the model's reply, and
// classifies every way the round trip can fail.
package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/pagechat/pagechat/models"
	"github.com/pagechat/pagechat/pkg/gemini"
)

// Failure taxonomy. Transport, declared, credential, and shape failures
// stay distinct so callers can decide what to surface.
var (
	ErrChannelUnavailable = errors.New("relay channel unavailable")
	ErrMissingCredential  = errors.New("API key not configured")
	ErrProvider           = errors.New("provider error")
	ErrResponseShape      = errors.New("unexpected provider response shape")
)

// Channel is the typed asynchronous request/response boundary to the
// privileged relay.
type Channel interface {
	Handle(ctx context.Context, req models.Request) models.Response
}

type Gateway struct {
	ch     Channel
	logger *slog.Logger
}

func New(ch Channel, logger *slog.Logger) *Gateway {
	if logger == nil {
		logger = slog.Default()
	}
	return &Gateway{ch: ch, logger: logger}
}

// GenerateAnswer sends one composed request over the channel and
// returns the model's text.
func (g *Gateway) GenerateAnswer(ctx context.Context, req *gemini.GenerateRequest) (string, error) {
	if g.ch == nil {
		return "", ErrChannelUnavailable
	}

	data, err := json.Marshal(req)
	if err != nil {
		return "", fmt.Errorf("failed to marshal prompt: %w", err)
	}

	resp := g.ch.Handle(ctx, models.Request{
		Action: models.ActionCallModel,
		Data:   data,
	})
	if !resp.Success {
		switch resp.ErrorKind {
		case models.ErrKindMissingCredential:
			return "", fmt.Errorf("%w: %s", ErrMissingCredential, resp.Error)
		default:
			return "", fmt.Errorf("%w: %s", ErrProvider, resp.Error)
		}
	}

	var genResp gemini.GenerateResponse
	if err := json.Unmarshal(resp.Data, &genResp); err != nil {
		return "", fmt.Errorf("%w: %v", ErrResponseShape, err)
	}
	text, err := genResp.Text()
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrResponseShape, err)
	}
	return text, nil
}

// Settings fetches the current settings over the channel.
func (g *Gateway) Settings(ctx context.Context) (models.Settings, error) {
	if g.ch == nil {
		return models.Settings{}, ErrChannelUnavailable
	}
	resp := g.ch.Handle(ctx, models.Request{Action: models.ActionGetSettings})
	if !resp.Success || resp.Settings == nil {
		return models.Settings{}, fmt.Errorf("%w: %s", ErrProvider, resp.Error)
	}
	return *resp.Settings, nil
}

// UpdateSettings persists settings via the relay, which broadcasts them
// to every surface.
func (g *Gateway) UpdateSettings(ctx context.Context, settings models.Settings) error {
	if g.ch == nil {
		return ErrChannelUnavailable
	}
	resp := g.ch.Handle(ctx, models.Request{
		Action:   models.ActionUpdateSettings,
		Settings: &settings,
	})
	if !resp.Success {
		return fmt.Errorf("%w: %s", ErrProvider, resp.Error)
	}
	return nil
}
