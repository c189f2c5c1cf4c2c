// Package inspect implements the extract and context commands, dumping
// pipeline output for debugging extraction heuristics.
package inspect

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/urfave/cli/v2"
	"gopkg.in/yaml.v3"

	"github.com/pagechat/pagechat/internal/pageload"
	"github.com/pagechat/pagechat/internal/wiring"
	"github.com/pagechat/pagechat/models"
	"github.com/pagechat/pagechat/pkg/classifier"
)

// ExtractAction dumps the raw extracted page content.
func ExtractAction(c *cli.Context) error {
	raw, _, err := loadTarget(c)
	if err != nil {
		return err
	}
	return emit(c.String("format"), raw)
}

// ContextAction dumps the derived page context plus its summary.
func ContextAction(c *cli.Context) error {
	_, pctx, err := loadTarget(c)
	if err != nil {
		return err
	}
	out := struct {
		Context interface{} `json:"context" yaml:"context"`
		Summary string      `json:"summary" yaml:"summary"`
	}{
		Context: pctx,
		Summary: classifier.Summarize(pctx),
	}
	return emit(c.String("format"), out)
}

func loadTarget(c *cli.Context) (*models.RawPageContent, *models.PageContext, error) {
	logger := wiring.Logger(c.Bool("quiet"))
	if c.NArg() == 0 {
		return nil, nil, fmt.Errorf("no page given. Usage: pagechat %s <url-or-file>", c.Command.Name)
	}
	maxAge, err := time.ParseDuration(c.String("max-age"))
	if err != nil {
		return nil, nil, fmt.Errorf("invalid max-age duration: %w", err)
	}
	r, p, err := pageload.Load(c.Context, logger, c.Args().First(), pageload.Options{
		CacheDir:   c.String("cache-dir"),
		MaxAge:     maxAge,
		ForceFetch: c.Bool("force-fetch"),
	})
	if err != nil {
		return nil, nil, err
	}
	return r, p, nil
}

func emit(format string, v interface{}) error {
	switch format {
	case "json":
		data, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal output: %w", err)
		}
		fmt.Println(string(data))
	default:
		data, err := yaml.Marshal(v)
		if err != nil {
			return fmt.Errorf("failed to marshal output: %w", err)
		}
		fmt.Print(string(data))
	}
	return nil
}
