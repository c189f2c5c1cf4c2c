package settings

import (
	"path/filepath"
	"testing"

	"github.com/pagechat/pagechat/models"
)

func setupTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "settings-test.db"))
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestOpen_SeedsDefaults(t *testing.T) {
	store := setupTestStore(t)

	got, err := store.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if got != models.DefaultSettings() {
		t.Errorf("Load() = %+v, want defaults %+v", got, models.DefaultSettings())
	}
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	store := setupTestStore(t)

	want := models.Settings{
		APIKey:   "test-key",
		AutoShow: false,
		Theme:    models.ThemeDark,
		FontSize: models.FontLarge,
		Model:    "gemini-1.5-pro",
	}
	if err := store.Save(want); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	got, err := store.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if got != want {
		t.Errorf("Load() = %+v, want %+v", got, want)
	}
}

func TestOpen_DoesNotOverwriteExisting(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings-test.db")

	store, err := Open(path)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	saved := models.DefaultSettings()
	saved.APIKey = "persisted-key"
	if err := store.Save(saved); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	store.Close()

	// Reopening must not reseed defaults over saved settings.
	store, err = Open(path)
	if err != nil {
		t.Fatalf("Open() second error = %v", err)
	}
	defer store.Close()

	got, err := store.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if got.APIKey != "persisted-key" {
		t.Errorf("Load().APIKey = %q, want %q after reopen", got.APIKey, "persisted-key")
	}
}

func TestSave_NotifiesSubscribers(t *testing.T) {
	store := setupTestStore(t)

	var first, second []models.Settings
	store.Subscribe(func(s models.Settings) { first = append(first, s) })
	store.Subscribe(func(s models.Settings) { second = append(second, s) })

	want := models.DefaultSettings()
	want.Theme = models.ThemeDark
	if err := store.Save(want); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	if len(first) != 1 || first[0] != want {
		t.Errorf("first subscriber got %+v, want one call with %+v", first, want)
	}
	if len(second) != 1 || second[0] != want {
		t.Errorf("second subscriber got %+v, want one call with %+v", second, want)
	}

	// Saving again re-notifies with the same value.
	if err := store.Save(want); err != nil {
		t.Fatalf("Save() second error = %v", err)
	}
	if len(first) != 2 {
		t.Errorf("first subscriber called %d times, want 2", len(first))
	}
}

func TestModelOrDefault(t *testing.T) {
	s := models.Settings{}
	if got := s.ModelOrDefault(); got != models.DefaultModel {
		t.Errorf("ModelOrDefault() = %q, want %q", got, models.DefaultModel)
	}
	s.Model = "gemini-1.5-pro"
	if got := s.ModelOrDefault(); got != "gemini-1.5-pro" {
		t.Errorf("ModelOrDefault() = %q, want configured model", got)
	}
}
