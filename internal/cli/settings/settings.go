package settings

import (
	"fmt"
	"slices"
	"strings"

	"github.com/julianstephens/watchlit/internal/cli"
	"github.com/julianstephens/watchlit/internal/models"
)

type SettingsCmd struct {
	List  bool              `help:"List current settings."`
	Get   string            `help:"Print the value of a single setting."`
	Set   map[string]string `help:"Update settings, e.g. --set release_grace_period=48 --set sort_by_upcoming=true."`
	Reset bool              `help:"Restore every setting to its default."`
}

func (c *SettingsCmd) Run(ctx *cli.Context) error {
	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	switch {
	case c.List:
		printSettings(settings)
		return nil
	case c.Get != "":
		if !models.IsSettingKey(c.Get) {
			return unknownKeyError(c.Get)
		}
		fmt.Println(models.SettingsToMap(settings)[c.Get])
		return nil
	case c.Reset:
		if err := ctx.Store.SaveSettings(models.DefaultSettings()); err != nil {
			return fmt.Errorf("failed to save settings: %w", err)
		}
		fmt.Println("Settings reset to defaults.")
		return nil
	case len(c.Set) > 0:
		updated, err := applyUpdates(settings, c.Set)
		if err != nil {
			return err
		}
		if err := ctx.Store.SaveSettings(updated); err != nil {
			return fmt.Errorf("failed to save settings: %w", err)
		}
		fmt.Println("Settings updated successfully.")
		return nil
	}

	fmt.Println("No changes specified. Use --list to view settings or --set key=value to update them.")
	return nil
}

// applyUpdates applies every change at once so that dependent settings, such
// as text_colors and the color indexes, are validated together.
func applyUpdates(settings models.Settings, changes map[string]string) (models.Settings, error) {
	data := models.SettingsToMap(settings)
	for key, value := range changes {
		if !models.IsSettingKey(key) {
			return models.Settings{}, unknownKeyError(key)
		}
		data[key] = value
	}

	updated, err := models.MapToSettings(data)
	if err != nil {
		return models.Settings{}, err
	}
	if err := updated.Validate(); err != nil {
		return models.Settings{}, fmt.Errorf("invalid settings: %w", err)
	}
	return updated, nil
}

func printSettings(settings models.Settings) {
	values := models.SettingsToMap(settings)
	width := len(slices.MaxFunc(models.SettingKeys, func(a, b string) int { return len(a) - len(b) }))

	fmt.Println("Current Settings:")
	for _, key := range models.SettingKeys {
		fmt.Printf("  %-*s  %s\n", width, key, values[key])
	}
}

func unknownKeyError(key string) error {
	return fmt.Errorf("unknown setting %q (valid: %s)", key, strings.Join(models.SettingKeys, ", "))
}
