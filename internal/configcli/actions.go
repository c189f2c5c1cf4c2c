// Package configcli implements the settings commands: the options
// surface of the assistant.
package configcli

import (
	"fmt"

	"github.com/urfave/cli/v2"
	"gopkg.in/yaml.v3"

	"github.com/pagechat/pagechat/internal/wiring"
)

// GetAction prints the current settings. The API key is masked.
func GetAction(c *cli.Context) error {
	logger := wiring.Logger(c.Bool("quiet"))
	stack, err := wiring.Open(c.String("db"), logger)
	if err != nil {
		return err
	}
	defer stack.Close()

	current, err := stack.Gateway.Settings(c.Context)
	if err != nil {
		return err
	}
	if current.APIKey != "" {
		current.APIKey = mask(current.APIKey)
	}

	data, err := yaml.Marshal(current)
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}
	fmt.Print(string(data))
	return nil
}

// SetAction applies the provided flags on top of the current settings,
// persists, and broadcasts the result.
func SetAction(c *cli.Context) error {
	logger := wiring.Logger(c.Bool("quiet"))
	stack, err := wiring.Open(c.String("db"), logger)
	if err != nil {
		return err
	}
	defer stack.Close()

	current, err := stack.Gateway.Settings(c.Context)
	if err != nil {
		return err
	}

	if c.IsSet("api-key") {
		current.APIKey = c.String("api-key")
	}
	if c.IsSet("model") {
		current.Model = c.String("model")
	}
	if c.IsSet("theme") {
		current.Theme = c.String("theme")
	}
	if c.IsSet("font-size") {
		current.FontSize = c.String("font-size")
	}
	if c.IsSet("auto-show") {
		current.AutoShow = c.Bool("auto-show")
	}

	if err := stack.Gateway.UpdateSettings(c.Context, current); err != nil {
		return err
	}
	fmt.Println("Settings saved.")
	return nil
}

// TestAction performs a direct trivial provider call and reports the
// key's validity, surfacing raw provider error text.
func TestAction(c *cli.Context) error {
	logger := wiring.Logger(c.Bool("quiet"))
	stack, err := wiring.Open(c.String("db"), logger)
	if err != nil {
		return err
	}
	defer stack.Close()

	current, err := stack.Store.Load()
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}
	apiKey := current.APIKey
	if c.IsSet("api-key") {
		apiKey = c.String("api-key")
	}
	if apiKey == "" {
		return fmt.Errorf("no API key to test. Set one with 'pagechat settings set --api-key ...'")
	}

	if _, err := stack.Relay.TestKey(c.Context, apiKey, current.ModelOrDefault()); err != nil {
		return fmt.Errorf("API key test failed: %w", err)
	}
	fmt.Println("API key is valid!")
	return nil
}

func mask(key string) string {
	if len(key) <= 4 {
		return "****"
	}
	return "****" + key[len(key)-4:]
}
