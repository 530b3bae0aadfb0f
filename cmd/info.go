package cmd

import (
	"fmt"
	"os"

	"github.com/hance08/concil/internal/app"
	"github.com/hance08/concil/internal/ui/views"
	"github.com/spf13/cobra"
)

type infoRunner struct {
	app *app.App
}

func NewInfoCmd(application *app.App) *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Display application information",
		Long:  `Display current configuration, database path, and system details.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &infoRunner{
				app: application,
			}

			return runner.Run()
		},
	}
}

func (r *infoRunner) Run() error {
	cfg := r.app.Config

	configPath := cfg.ConfigPath
	if configPath == "" {
		configPath = "(None, using defaults)"
	}

	dbPath, err := app.DatabasePath(cfg)
	if err != nil {
		dbPath = "Unknown"
	}

	dbExists := false
	if _, err := os.Stat(dbPath); err == nil {
		dbExists = true
	}

	items := views.SystemInfoItem{
		ConfigPath:   configPath,
		DBPath:       dbPath,
		DBExists:     dbExists,
		AppDataDir:   getAppDataDirOrUnknown(),
		GatewayMode:  cfg.Gateway.Mode,
		LookupDelay:  fmt.Sprintf("%d ms", cfg.Lookup.DelayMs),
		DefaultInput: cfg.Defaults.Input,
		OutputDir:    cfg.Defaults.OutputDir,
		LogLevel:     cfg.Log.Level,
	}

	if err := views.RenderSystemInfo(items); err != nil {
		return err
	}
	return nil
}

func getAppDataDirOrUnknown() string {
	dir, err := app.AppDataDir()
	if err != nil {
		return "Unknown"
	}
	return dir
}
