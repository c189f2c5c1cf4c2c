// Package relay is the privileged component that owns the API
// credential. Page surfaces never call the provider directly; they send
// typed requests over the channel and the relay performs the HTTP call.
package relay

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"

	"github.com/pagechat/pagechat/models"
	"github.com/pagechat/pagechat/pkg/gemini"
	"github.com/pagechat/pagechat/pkg/settings"
)

type Relay struct {
	store  *settings.Store
	client *gemini.Client
	logger *slog.Logger

	mu      sync.Mutex
	visible bool
}

func New(store *settings.Store, client *gemini.Client, logger *slog.Logger) *Relay {
	if logger == nil {
		logger = slog.Default()
	}
	return &Relay{
		store:   store,
		client:  client,
		logger:  logger,
		visible: true,
	}
}

// Handle services one channel request. It is total over the known
// actions; anything else is a declared failure, never a panic.
func (r *Relay) Handle(ctx context.Context, req models.Request) models.Response {
	r.logger.Debug("relay request", "action", req.Action)

	switch req.Action {
	case models.ActionCallModel:
		return r.callModel(ctx, req)
	case models.ActionGetSettings:
		return r.getSettings()
	case models.ActionUpdateSettings:
		return r.updateSettings(req)
	case models.ActionToggleWidget:
		return r.toggleWidget()
	default:
		return models.Response{
			Success:   false,
			Error:     "unknown action: " + req.Action,
			ErrorKind: models.ErrKindUnknownAction,
		}
	}
}

func (r *Relay) callModel(ctx context.Context, req models.Request) models.Response {
	var genReq gemini.GenerateRequest
	if err := json.Unmarshal(req.Data, &genReq); err != nil {
		return failure("invalid model request: "+err.Error(), models.ErrKindProvider)
	}

	current, err := r.store.Load()
	if err != nil {
		return failure("failed to load settings: "+err.Error(), models.ErrKindProvider)
	}
	if current.APIKey == "" {
		return failure("API key not configured", models.ErrKindMissingCredential)
	}

	model := current.ModelOrDefault()
	r.logger.Info("calling model", "model", model)

	resp, err := r.client.GenerateContent(ctx, current.APIKey, model, &genReq)
	if err != nil {
		r.logger.Error("model call failed", "model", model, "error", err)
		return failure(err.Error(), models.ErrKindProvider)
	}

	data, err := json.Marshal(resp)
	if err != nil {
		return failure("failed to encode provider response: "+err.Error(), models.ErrKindProvider)
	}
	return models.Response{Success: true, Data: data}
}

func (r *Relay) getSettings() models.Response {
	current, err := r.store.Load()
	if err != nil {
		return failure("failed to load settings: "+err.Error(), models.ErrKindProvider)
	}
	return models.Response{Success: true, Settings: &current}
}

func (r *Relay) updateSettings(req models.Request) models.Response {
	if req.Settings == nil {
		return failure("no settings provided", models.ErrKindUnknownAction)
	}
	// Save broadcasts the new value to every subscriber.
	if err := r.store.Save(*req.Settings); err != nil {
		return failure("failed to save settings: "+err.Error(), models.ErrKindProvider)
	}
	r.logger.Info("settings updated")
	return models.Response{Success: true}
}

func (r *Relay) toggleWidget() models.Response {
	r.mu.Lock()
	r.visible = !r.visible
	visible := r.visible
	r.mu.Unlock()
	return models.Response{Success: true, Visible: &visible}
}

// TestKey performs a direct trivial generation against the provider and
// returns its reply. This is the one surface that reports raw provider
// error text, used by the settings test action.
func (r *Relay) TestKey(ctx context.Context, apiKey, model string) (string, error) {
	if model == "" {
		model = models.DefaultModel
	}
	resp, err := r.client.GenerateContent(ctx, apiKey, model, gemini.NewTextRequest("Hello, Gemini!"))
	if err != nil {
		return "", err
	}
	return resp.Text()
}

func failure(msg, kind string) models.Response {
	return models.Response{Success: false, Error: msg, ErrorKind: kind}
}
