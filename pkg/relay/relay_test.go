package relay

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/pagechat/pagechat/models"
	"github.com/pagechat/pagechat/pkg/gemini"
	"github.com/pagechat/pagechat/pkg/settings"
)

func setupTestRelay(t *testing.T, handler http.HandlerFunc) (*Relay, *settings.Store) {
	t.Helper()
	store, err := settings.Open(filepath.Join(t.TempDir(), "relay-test.db"))
	if err != nil {
		t.Fatalf("settings.Open() error = %v", err)
	}
	t.Cleanup(func() { store.Close() })

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	return New(store, gemini.NewClientWithBaseURL(server.URL), nil), store
}

func generateReply(t *testing.T, text string) []byte {
	t.Helper()
	resp := gemini.GenerateResponse{
		Candidates: []gemini.Candidate{{Content: gemini.Content{Parts: []gemini.Part{{Text: text}}}}},
	}
	data, err := json.Marshal(resp)
	if err != nil {
		t.Fatalf("marshal reply: %v", err)
	}
	return data
}

func callModelData(t *testing.T) json.RawMessage {
	t.Helper()
	data, err := json.Marshal(gemini.NewTextRequest("What is this?"))
	if err != nil {
		t.Fatalf("marshal request: %v", err)
	}
	return data
}

func TestHandle_CallModel(t *testing.T) {
	var gotModel string
	r, store := setupTestRelay(t, func(w http.ResponseWriter, req *http.Request) {
		gotModel = req.URL.Path
		w.Write(generateReply(t, "A test page."))
	})

	configured := models.DefaultSettings()
	configured.APIKey = "test-key"
	if err := store.Save(configured); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	resp := r.Handle(context.Background(), models.Request{
		Action: models.ActionCallModel,
		Data:   callModelData(t),
	})
	if !resp.Success {
		t.Fatalf("Handle(callModel) failed: %s", resp.Error)
	}
	if gotModel != "/gemini-1.5-flash:generateContent" {
		t.Errorf("model path = %q, want default model", gotModel)
	}

	var genResp gemini.GenerateResponse
	if err := json.Unmarshal(resp.Data, &genResp); err != nil {
		t.Fatalf("unmarshal response data: %v", err)
	}
	text, err := genResp.Text()
	if err != nil {
		t.Fatalf("Text() error = %v", err)
	}
	if text != "A test page." {
		t.Errorf("Text() = %q, want %q", text, "A test page.")
	}
}

func TestHandle_CallModel_MissingKey(t *testing.T) {
	r, _ := setupTestRelay(t, func(w http.ResponseWriter, req *http.Request) {
		t.Error("provider should not be called without an API key")
	})

	resp := r.Handle(context.Background(), models.Request{
		Action: models.ActionCallModel,
		Data:   callModelData(t),
	})
	if resp.Success {
		t.Fatal("Handle(callModel) succeeded without an API key")
	}
	if resp.ErrorKind != models.ErrKindMissingCredential {
		t.Errorf("ErrorKind = %q, want %q", resp.ErrorKind, models.ErrKindMissingCredential)
	}
}

func TestHandle_CallModel_ProviderFailure(t *testing.T) {
	r, store := setupTestRelay(t, func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	})

	configured := models.DefaultSettings()
	configured.APIKey = "test-key"
	if err := store.Save(configured); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	resp := r.Handle(context.Background(), models.Request{
		Action: models.ActionCallModel,
		Data:   callModelData(t),
	})
	if resp.Success {
		t.Fatal("Handle(callModel) succeeded on provider failure")
	}
	if resp.ErrorKind != models.ErrKindProvider {
		t.Errorf("ErrorKind = %q, want %q", resp.ErrorKind, models.ErrKindProvider)
	}
}

func TestHandle_SettingsActions(t *testing.T) {
	r, store := setupTestRelay(t, func(w http.ResponseWriter, req *http.Request) {})

	resp := r.Handle(context.Background(), models.Request{Action: models.ActionGetSettings})
	if !resp.Success || resp.Settings == nil {
		t.Fatalf("Handle(getSettings) = %+v, want settings payload", resp)
	}
	if *resp.Settings != models.DefaultSettings() {
		t.Errorf("Settings = %+v, want defaults", *resp.Settings)
	}

	var notified []models.Settings
	store.Subscribe(func(s models.Settings) { notified = append(notified, s) })

	updated := models.DefaultSettings()
	updated.Theme = models.ThemeDark
	resp = r.Handle(context.Background(), models.Request{
		Action:   models.ActionUpdateSettings,
		Settings: &updated,
	})
	if !resp.Success {
		t.Fatalf("Handle(updateSettings) failed: %s", resp.Error)
	}
	if len(notified) != 1 || notified[0].Theme != models.ThemeDark {
		t.Errorf("subscribers notified with %+v, want the updated settings", notified)
	}

	got, err := store.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if got.Theme != models.ThemeDark {
		t.Errorf("Load().Theme = %q, want %q", got.Theme, models.ThemeDark)
	}
}

func TestHandle_UpdateSettings_NoPayload(t *testing.T) {
	r, _ := setupTestRelay(t, func(w http.ResponseWriter, req *http.Request) {})

	resp := r.Handle(context.Background(), models.Request{Action: models.ActionUpdateSettings})
	if resp.Success {
		t.Fatal("Handle(updateSettings) succeeded with no settings payload")
	}
}

func TestHandle_ToggleWidget(t *testing.T) {
	r, _ := setupTestRelay(t, func(w http.ResponseWriter, req *http.Request) {})

	resp := r.Handle(context.Background(), models.Request{Action: models.ActionToggleWidget})
	if !resp.Success || resp.Visible == nil || *resp.Visible {
		t.Fatalf("first toggle = %+v, want visible false", resp)
	}

	resp = r.Handle(context.Background(), models.Request{Action: models.ActionToggleWidget})
	if !resp.Success || resp.Visible == nil || !*resp.Visible {
		t.Fatalf("second toggle = %+v, want visible true", resp)
	}
}

func TestHandle_UnknownAction(t *testing.T) {
	r, _ := setupTestRelay(t, func(w http.ResponseWriter, req *http.Request) {})

	resp := r.Handle(context.Background(), models.Request{Action: "explode"})
	if resp.Success {
		t.Fatal("Handle(explode) succeeded, want declared failure")
	}
	if resp.ErrorKind != models.ErrKindUnknownAction {
		t.Errorf("ErrorKind = %q, want %q", resp.ErrorKind, models.ErrKindUnknownAction)
	}
}

func TestTestKey(t *testing.T) {
	r, _ := setupTestRelay(t, func(w http.ResponseWriter, req *http.Request) {
		if req.URL.Query().Get("key") != "probe-key" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		w.Write(generateReply(t, "Hello!"))
	})

	got, err := r.TestKey(context.Background(), "probe-key", "")
	if err != nil {
		t.Fatalf("TestKey() error = %v", err)
	}
	if got != "Hello!" {
		t.Errorf("TestKey() = %q, want %q", got, "Hello!")
	}

	if _, err := r.TestKey(context.Background(), "wrong-key", ""); err == nil {
		t.Error("TestKey() with bad key error = nil, want provider error")
	}
}
