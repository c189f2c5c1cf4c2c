package main

import (
	"log"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/pagechat/pagechat/internal/chatcli"
	"github.com/pagechat/pagechat/internal/configcli"
	"github.com/pagechat/pagechat/internal/inspect"
)

func main() {
	app := &cli.App{
		Name:  "pagechat",
		Usage: "chat with an AI assistant about the content of a web page",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "quiet", Aliases: []string{"q"}, Usage: "only log errors"},
		},
		Commands: []*cli.Command{
			{
				Name:      "chat",
				Usage:     "interactive conversation about a page",
				ArgsUsage: "<url-or-file>",
				Flags:     append(pageFlags(), chatFlags()...),
				Action:    chatcli.ChatAction,
			},
			{
				Name:      "ask",
				Usage:     "answer a single question about a page",
				ArgsUsage: "<url-or-file> <question>",
				Flags:     append(pageFlags(), chatFlags()...),
				Action:    chatcli.AskAction,
			},
			{
				Name:      "suggest",
				Usage:     "print suggested questions for a page",
				ArgsUsage: "<url-or-file>",
				Flags:     append(pageFlags(), chatFlags()...),
				Action:    chatcli.SuggestAction,
			},
			{
				Name:      "extract",
				Usage:     "dump the raw extracted page content",
				ArgsUsage: "<url-or-file>",
				Flags:     append(pageFlags(), formatFlag()),
				Action:    inspect.ExtractAction,
			},
			{
				Name:      "context",
				Usage:     "dump the derived page context and summary",
				ArgsUsage: "<url-or-file>",
				Flags:     append(pageFlags(), formatFlag()),
				Action:    inspect.ContextAction,
			},
			{
				Name:  "settings",
				Usage: "view and change persisted settings",
				Subcommands: []*cli.Command{
					{
						Name:   "get",
						Usage:  "print current settings",
						Flags:  []cli.Flag{dbFlag()},
						Action: configcli.GetAction,
					},
					{
						Name:  "set",
						Usage: "update settings and broadcast the change",
						Flags: []cli.Flag{
							dbFlag(),
							&cli.StringFlag{Name: "api-key", Usage: "model API key"},
							&cli.StringFlag{Name: "model", Usage: "model identifier"},
							&cli.StringFlag{Name: "theme", Usage: "light, dark, or system"},
							&cli.StringFlag{Name: "font-size", Usage: "small, medium, or large"},
							&cli.BoolFlag{Name: "auto-show", Usage: "show welcome and suggestions on chat start"},
						},
						Action: configcli.SetAction,
					},
					{
						Name:  "test",
						Usage: "verify the API key with a trivial provider call",
						Flags: []cli.Flag{
							dbFlag(),
							&cli.StringFlag{Name: "api-key", Usage: "key to test instead of the stored one"},
						},
						Action: configcli.TestAction,
					},
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func pageFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{Name: "cache-dir", Value: "pagechat-cache", Usage: "directory for cached page HTML"},
		&cli.StringFlag{Name: "max-age", Value: "1h", Usage: "max age before cached HTML goes stale"},
		&cli.BoolFlag{Name: "force-fetch", Usage: "bypass the HTML cache"},
	}
}

func chatFlags() []cli.Flag {
	return []cli.Flag{
		dbFlag(),
		&cli.StringFlag{Name: "focus", Usage: "keyword marking the section sent in full"},
		&cli.StringFlag{Name: "focus-ordinal", Usage: "ordinal marking the section sent in full"},
	}
}

func formatFlag() cli.Flag {
	return &cli.StringFlag{Name: "format", Value: "yaml", Usage: "output format: yaml or json"}
}

func dbFlag() cli.Flag {
	return &cli.StringFlag{Name: "db", Usage: "settings database path (default: next to the binary)"}
}
