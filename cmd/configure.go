package cmd

import (
	"errors"
	"fmt"

	huh "charm.land/huh/v2"
	"github.com/spf13/cobra"

	"github.com/zhubert/nexus/internal/config"
	"github.com/zhubert/nexus/internal/ui"
)

var configureCmd = &cobra.Command{
	Use:   "configure",
	Short: "Edit the research endpoint and notification settings",
	Long: `Opens an interactive form for the research service endpoint, its path and
desktop notifications, then writes the result to ~/.nexus/config.json.`,
	RunE: runConfigure,
}

func init() {
	rootCmd.AddCommand(configureCmd)
}

// configureValues holds the form's working copy of the settings
type configureValues struct {
	endpoint      string
	path          string
	notifications bool
}

func valuesFrom(cfg *config.Config) *configureValues {
	return &configureValues{
		endpoint:      cfg.GetEndpoint(),
		path:          cfg.GetPath(),
		notifications: cfg.GetNotificationsEnabled(),
	}
}

// apply copies the form values into cfg and validates the result
func (v *configureValues) apply(cfg *config.Config) error {
	if err := config.ValidateEndpoint(v.endpoint); err != nil {
		return err
	}
	if err := config.ValidatePath(v.path); err != nil {
		return err
	}
	cfg.SetEndpoint(v.endpoint)
	cfg.SetPath(v.path)
	cfg.SetNotificationsEnabled(v.notifications)
	return nil
}

func newConfigureForm(v *configureValues) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Research service URL").
				Description("Base URL, e.g. http://localhost:8000").
				Value(&v.endpoint).
				Validate(config.ValidateEndpoint),
			huh.NewInput().
				Title("Service path").
				Description("Appended to the URL, e.g. /research").
				Value(&v.path).
				Validate(config.ValidatePath),
			huh.NewConfirm().
				Title("Desktop notifications").
				Description("Notify when a reply arrives while the terminal is unfocused").
				Value(&v.notifications),
		),
	).WithTheme(ui.FormTheme())
}

// loadEditable reads the settings the form edits. Only the file is read, so
// NEXUS_* overrides are never written back, and values are left unvalidated
// so a broken file can still be repaired.
func loadEditable() (*config.Config, *configureValues, error) {
	cfg, err := config.LoadFile()
	if err != nil {
		return nil, nil, err
	}
	return cfg, valuesFrom(cfg), nil
}

func runConfigure(cmd *cobra.Command, args []string) error {
	cfg, v, err := loadEditable()
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}
	if err := newConfigureForm(v).Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			fmt.Println("Configuration unchanged.")
			return nil
		}
		return err
	}

	if err := v.apply(cfg); err != nil {
		return err
	}
	if err := cfg.Save(); err != nil {
		return err
	}
	fmt.Printf("Saved %s\n", cfg.FilePath())
	return nil
}
