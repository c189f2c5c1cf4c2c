package models

import "encoding/json"

// Channel actions understood by the relay.
const (
	ActionCallModel      = "callModel"
	ActionGetSettings    = "getSettings"
	ActionUpdateSettings = "updateSettings"
	ActionToggleWidget   = "toggleWidget"
)

// Error kinds reported in a declared-failure Response. The gateway maps
// these back to typed errors on its side of the channel.
const (
	ErrKindMissingCredential = "missing_credential"
	ErrKindProvider          = "provider_error"
	ErrKindUnknownAction     = "unknown_action"
)

// Request is one message sent over the relay channel.
type Request struct {
	Action   string          `json:"action"`
	Data     json.RawMessage `json:"data,omitempty"`
	Settings *Settings       `json:"settings,omitempty"`
}

// Response is the relay's reply. Data carries the raw provider response
// for callModel; Settings is populated for getSettings.
type Response struct {
	Success   bool            `json:"success"`
	Data      json.RawMessage `json:"data,omitempty"`
	Settings  *Settings       `json:"settings,omitempty"`
	Visible   *bool           `json:"visible,omitempty"`
	Error     string          `json:"error,omitempty"`
	ErrorKind string          `json:"error_kind,omitempty"`
}
