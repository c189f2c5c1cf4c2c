// Package chatcli implements the chat, ask, and suggest commands.
package chatcli

import (
	"bufio"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/pagechat/pagechat/internal/pageload"
	"github.com/pagechat/pagechat/internal/wiring"
	chatpkg "github.com/pagechat/pagechat/pkg/chat"
	"github.com/pagechat/pagechat/pkg/prompt"
)

// ChatAction runs the interactive conversation loop for one page.
func ChatAction(c *cli.Context) error {
	logger := wiring.Logger(c.Bool("quiet"))
	if c.NArg() == 0 {
		return fmt.Errorf("no page given. Usage: pagechat chat <url-or-file>")
	}

	controller, stack, err := buildController(c, logger)
	if err != nil {
		return err
	}
	defer stack.Close()

	current, err := stack.Store.Load()
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}

	if current.AutoShow {
		fmt.Println(controller.Welcome())
		fmt.Println("\nSuggested questions:")
		for _, q := range controller.Suggestions(c.Context) {
			fmt.Printf("  - %s\n", q)
		}
		fmt.Println()
	}

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}
		input := strings.TrimSpace(scanner.Text())
		if input == "exit" || input == "quit" {
			break
		}

		turn, err := controller.Submit(c.Context, input)
		if err != nil {
			// Empty input: just reprompt.
			continue
		}
		fmt.Printf("\n%s\n\n", turn.Text)
	}
	return scanner.Err()
}

// AskAction answers a single question about a page and exits.
func AskAction(c *cli.Context) error {
	logger := wiring.Logger(c.Bool("quiet"))
	if c.NArg() < 2 {
		return fmt.Errorf("usage: pagechat ask <url-or-file> <question>")
	}

	controller, stack, err := buildController(c, logger)
	if err != nil {
		return err
	}
	defer stack.Close()

	question := strings.Join(c.Args().Slice()[1:], " ")
	turn, err := controller.Submit(c.Context, question)
	if err != nil {
		return err
	}
	fmt.Println(turn.Text)
	return nil
}

// SuggestAction prints suggested questions for a page.
func SuggestAction(c *cli.Context) error {
	logger := wiring.Logger(c.Bool("quiet"))
	if c.NArg() == 0 {
		return fmt.Errorf("no page given. Usage: pagechat suggest <url-or-file>")
	}

	controller, stack, err := buildController(c, logger)
	if err != nil {
		return err
	}
	defer stack.Close()

	for _, q := range controller.Suggestions(c.Context) {
		fmt.Println(q)
	}
	return nil
}

// buildController loads the target page and assembles the full message
// path behind a Controller.
func buildController(c *cli.Context, logger *slog.Logger) (*chatpkg.Controller, *wiring.Stack, error) {
	maxAge, err := time.ParseDuration(c.String("max-age"))
	if err != nil {
		return nil, nil, fmt.Errorf("invalid max-age duration: %w", err)
	}

	_, pctx, err := pageload.Load(c.Context, logger, c.Args().First(), pageload.Options{
		CacheDir:   c.String("cache-dir"),
		MaxAge:     maxAge,
		ForceFetch: c.Bool("force-fetch"),
	})
	if err != nil {
		return nil, nil, err
	}

	stack, err := wiring.Open(c.String("db"), logger)
	if err != nil {
		return nil, nil, err
	}

	composer := prompt.NewComposer()
	if c.IsSet("focus") {
		composer.FocusKeyword = c.String("focus")
	}
	if c.IsSet("focus-ordinal") {
		composer.FocusOrdinal = c.String("focus-ordinal")
	}

	return chatpkg.NewController(stack.Gateway, composer, pctx, logger), stack, nil
}
