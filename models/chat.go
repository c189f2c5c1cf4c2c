package models

// Sender identifies which side of the conversation produced a turn.
type Sender string

const (
	SenderUser Sender = "user"
	SenderBot  Sender = "bot"
)

// ChatTurn is one message in the conversation.
type ChatTurn struct {
	Sender Sender `json:"sender" yaml:"sender"`
	Text   string `json:"text" yaml:"text"`
}

// LastTurns returns the most recent n turns in chronological order.
// Older turns are retained by the caller for display only and never
// reach a prompt.
func LastTurns(history []ChatTurn, n int) []ChatTurn {
	if len(history) <= n {
		return history
	}
	return history[len(history)-n:]
}
