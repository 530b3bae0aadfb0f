package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/hance08/concil/cmd/runs"
	"github.com/hance08/concil/internal/app"
	"github.com/hance08/concil/internal/config"
	"github.com/hance08/concil/internal/constants"
	"github.com/hance08/concil/internal/errhandler"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile string
	cfg     *config.Config
)

func Execute(migrations fs.FS) {
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " ERROR ",
		Style: pterm.NewStyle(pterm.BgLightRed, pterm.FgBlack),
	}

	cfgFile = configFlag(os.Args[1:])
	if err := initConfig(); err != nil {
		pterm.Error.Println(err)
		os.Exit(1)
	}

	application, cleanup, err := app.NewApp(cfg, migrations)
	if err != nil {
		pterm.Error.Println(err)
		os.Exit(1)
	}

	defer cleanup()

	rootCmd := &cobra.Command{
		Use:   constants.AppName,
		Short: "concil looks up gateway transactions and reconciles sales spreadsheets",
		Long: `concil is a terminal tool for a small payment portal.

It looks up gateway transactions by ID, reconciles a sales spreadsheet
against the gateway (fees, net amount, profit and ROI per sale) and keeps
a history of every reconciliation run.`,
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "set the config file path")

	rootCmd.AddCommand(NewLookupCmd(application))
	rootCmd.AddCommand(NewReconcileCmd(application))
	rootCmd.AddCommand(NewFeesCmd())
	rootCmd.AddCommand(NewSampleCmd(application))
	rootCmd.AddCommand(NewInfoCmd(application))
	rootCmd.AddCommand(runs.NewRunsCmd(application.Service))

	if err := rootCmd.Execute(); err != nil {
		code := 1
		if errhandler.IsCancelled(err) {
			code = errhandler.HandleError(err)
		} else {
			pterm.Error.Println(capitalize(err.Error()))
		}

		// os.Exit skips the deferred cleanup
		cleanup()
		os.Exit(code)
	}
}

// configFlag finds --config before cobra parses the flags; the config has
// to be loaded before the commands are built.
func configFlag(args []string) string {
	for i, arg := range args {
		switch {
		case arg == "--config" || arg == "-c":
			if i+1 < len(args) {
				return args[i+1]
			}
		case strings.HasPrefix(arg, "--config="):
			return strings.TrimPrefix(arg, "--config=")
		case strings.HasPrefix(arg, "-c="):
			return strings.TrimPrefix(arg, "-c=")
		}
	}
	return ""
}

func initConfig() error {
	setDefaults()

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		appDir, err := app.AppDataDir()
		if err != nil {
			return fmt.Errorf("error getting app dir: %w", err)
		}

		viper.AddConfigPath(appDir)
		viper.SetConfigName(constants.ConfigFileName)
		viper.SetConfigType("yaml")

		if err := createDefaultConfig(appDir); err != nil {
			return fmt.Errorf("failed to ensure config file: %w", err)
		}
	}

	viper.SetEnvPrefix(constants.EnvPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv() // allow using environment variables to override

	if err := viper.ReadInConfig(); err != nil {

		if cfgFile != "" {
			return fmt.Errorf("failed to read config file: %w", err)
		}

		if !errors.As(err, &viper.ConfigFileNotFoundError{}) {
			return fmt.Errorf("config file error: %w", err)
		}
	}

	cfg = config.NewDefault()
	if err := viper.Unmarshal(cfg); err != nil {
		return fmt.Errorf("unable to decode into struct, %v", err)
	}

	cfg.ConfigPath = viper.ConfigFileUsed()

	return nil
}

// setDefaults registers every key so env overrides work for keys missing
// from the file and a fresh config file lists them all.
func setDefaults() {
	d := config.NewDefault()

	viper.SetDefault("database.path", d.Database.Path)
	viper.SetDefault("defaults.input", d.Defaults.Input)
	viper.SetDefault("defaults.output_dir", d.Defaults.OutputDir)
	viper.SetDefault("lookup.delay_ms", d.Lookup.DelayMs)
	viper.SetDefault("gateway.mode", d.Gateway.Mode)
	viper.SetDefault("gateway.divergence_rate", d.Gateway.DivergenceRate)
	viper.SetDefault("gateway.timeout_seconds", d.Gateway.TimeoutSeconds)
	viper.SetDefault("log.level", d.Log.Level)
	viper.SetDefault("log.format", d.Log.Format)
	viper.SetDefault("log.prefix", d.Log.Prefix)
	viper.SetDefault("log.time_format", d.Log.TimeFormat)
}

func createDefaultConfig(appDir string) error {
	if err := os.MkdirAll(appDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	configPath := filepath.Join(appDir, constants.ConfigFileName+".yaml")

	if _, err := os.Stat(configPath); err == nil {
		return nil
	}

	if err := viper.WriteConfigAs(configPath); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

func capitalize(s string) string {
	if len(s) == 0 {
		return s
	}
	r := []rune(s)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}
