// Package chat owns the conversation: history, turn-taking, and the
// welcome/suggestion flow around the gateway.
package chat

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"sync"

	"github.com/pagechat/pagechat/models"
	"github.com/pagechat/pagechat/pkg/classifier"
	"github.com/pagechat/pagechat/pkg/gateway"
	"github.com/pagechat/pagechat/pkg/prompt"
)

// apologyMessage is the only failure text that ever reaches the
// transcript. Raw gateway errors go to diagnostic logging alone.
const apologyMessage = "I'm sorry, I encountered an error while processing your request."

var (
	// ErrEmptyInput rejects empty or whitespace-only submissions.
	ErrEmptyInput = errors.New("empty input")
	// ErrBusy rejects a submission while a response is in flight, so
	// requests never overlap and history mutates in order.
	ErrBusy = errors.New("a response is already in flight")
)

type Controller struct {
	gw       *gateway.Gateway
	composer prompt.Composer
	pctx     *models.PageContext
	logger   *slog.Logger

	mu       sync.Mutex
	history  []models.ChatTurn
	awaiting bool
}

func NewController(gw *gateway.Gateway, composer prompt.Composer, pctx *models.PageContext, logger *slog.Logger) *Controller {
	if logger == nil {
		logger = slog.Default()
	}
	return &Controller{
		gw:       gw,
		composer: composer,
		pctx:     pctx,
		logger:   logger,
	}
}

// Welcome returns the greeting shown before the first turn.
func (c *Controller) Welcome() string {
	return "Hello! I'm your context-aware assistant. I can help you with information about this page. " +
		classifier.Summarize(c.pctx)
}

// Context returns the page context the controller was built around.
func (c *Controller) Context() *models.PageContext {
	return c.pctx
}

// History returns a copy of the full transcript, oldest first. The full
// transcript is for display; only a sliding window reaches prompts.
func (c *Controller) History() []models.ChatTurn {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]models.ChatTurn, len(c.history))
	copy(out, c.history)
	return out
}

// Suggestions asks for suggested questions about the page. Never fails;
// degrades to the static fallback list.
func (c *Controller) Suggestions(ctx context.Context) []string {
	return c.gw.SuggestQuestions(ctx, c.pctx)
}

// Submit runs one user turn: the user message is appended optimistically,
// the composed prompt goes through the gateway, and the bot's reply (or
// the generic apology on any gateway failure) is appended and returned.
// Only input protocol violations return an error.
func (c *Controller) Submit(ctx context.Context, input string) (models.ChatTurn, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return models.ChatTurn{}, ErrEmptyInput
	}

	c.mu.Lock()
	if c.awaiting {
		c.mu.Unlock()
		return models.ChatTurn{}, ErrBusy
	}
	c.awaiting = true
	c.history = append(c.history, models.ChatTurn{Sender: models.SenderUser, Text: input})
	historySnapshot := make([]models.ChatTurn, len(c.history))
	copy(historySnapshot, c.history)
	c.mu.Unlock()

	answer, err := c.gw.GenerateAnswer(ctx, c.composer.ChatRequest(input, c.pctx, historySnapshot))
	if err != nil {
		c.logger.Error("chat turn failed", "error", err)
		answer = apologyMessage
	}

	turn := models.ChatTurn{Sender: models.SenderBot, Text: answer}
	c.mu.Lock()
	c.history = append(c.history, turn)
	c.awaiting = false
	c.mu.Unlock()
	return turn, nil
}
