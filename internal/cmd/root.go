// Package cmd provides CLI command implementations.
package cmd

import (
	"github.com/spf13/cobra"

	"github.com/opmodel/vitetags/internal/cmdtypes"
	"github.com/opmodel/vitetags/internal/cmdutil"
	"github.com/opmodel/vitetags/internal/config"
	oerrors "github.com/opmodel/vitetags/internal/errors"
	"github.com/opmodel/vitetags/internal/output"
	"github.com/opmodel/vitetags/pkg/vite"
)

// rootFlags holds the persistent flags shared by every command.
type rootFlags struct {
	config     string
	hotFile    string
	buildDir   string
	assetsURL  string
	output     string
	verbose    bool
	timestamps bool
}

// NewRootCmd creates the root command for the vitetags CLI.
func NewRootCmd() *cobra.Command {
	var flags rootFlags
	cfg := &cmdtypes.GlobalConfig{}

	rootCmd := &cobra.Command{
		Use:   "vitetags",
		Short: "Render Vite entrypoints as HTML tags",
		Long: `vitetags resolves Vite entrypoints into <script> and <link> tags.

While the Vite dev server runs it writes a hot file and tags point at the
dev server. Otherwise entrypoints are looked up in the manifest written by
'vite build'.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initializeGlobals(cmd, &flags, cfg)
		},
	}

	rootCmd.PersistentFlags().StringVarP(&flags.config, "config", "c", "", "Path to config file (env: VITE_CONFIG)")
	rootCmd.PersistentFlags().StringVar(&flags.hotFile, "hot-file", "", "Path to the dev server hot file (env: VITE_HOT_FILE)")
	rootCmd.PersistentFlags().StringVar(&flags.buildDir, "build-dir", "", "Directory containing manifest.json (env: VITE_BUILD_DIRECTORY)")
	rootCmd.PersistentFlags().StringVar(&flags.assetsURL, "assets-url", "", "Base URL of built assets (env: VITE_ASSETS_URL)")
	rootCmd.PersistentFlags().StringVarP(&flags.output, "output", "o", "", "Output format: html, json, yaml, table")
	rootCmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&flags.timestamps, "timestamps", true, "Show timestamps in log output")

	rootCmd.AddCommand(NewTagsCmd(cfg))
	rootCmd.AddCommand(NewAssetCmd(cfg))
	rootCmd.AddCommand(NewModeCmd(cfg))
	rootCmd.AddCommand(NewManifestCmd(cfg))
	rootCmd.AddCommand(NewReactRefreshCmd(cfg))
	rootCmd.AddCommand(NewReloadCheckCmd(cfg))
	rootCmd.AddCommand(NewConfigCmd(cfg))
	rootCmd.AddCommand(NewVersionCmd(cfg))

	return rootCmd
}

// initializeGlobals loads configuration, sets up logging and builds the
// resolver.
func initializeGlobals(cmd *cobra.Command, flags *rootFlags, cfg *cmdtypes.GlobalConfig) error {
	format, err := output.ParseOutputFormat(flags.output, "")
	if err != nil {
		return oerrors.NewExitError(err, oerrors.ExitValidationError)
	}
	cfg.Output = format
	cfg.Verbose = flags.verbose

	configPath := flags.config
	if configPath == "" {
		configPath = config.GetConfigFile()
	}

	// A broken or schema-invalid config file does not stop commands that
	// never read it.
	loaded, err := loadConfig(configPath)
	if err != nil {
		cfg.ConfigErr = oerrors.NewValidationError("could not load configuration", configPath,
			"Run 'vitetags config vet' for details", err)
		loaded = &config.Config{}
	}

	resolved := config.ResolveAll(config.ResolveAllOptions{
		ConfigFlag:         flags.config,
		HotFileFlag:        flags.hotFile,
		BuildDirectoryFlag: flags.buildDir,
		AssetsURLFlag:      flags.assetsURL,
		OutputFlag:         flags.output,
		Config:             loaded,
	})
	cfg.Resolved = resolved
	cfg.ConfigPath = configPath
	cfg.Config = resolved.Apply(loaded).WithDefaults()

	logCfg := output.LogConfig{Verbose: flags.verbose}
	if cmd.Flags().Changed("timestamps") {
		logCfg.Timestamps = output.BoolPtr(flags.timestamps)
	} else if loaded.Log.Timestamps != nil {
		logCfg.Timestamps = loaded.Log.Timestamps
	}
	output.SetupLogging(logCfg)

	if flags.verbose {
		config.LogResolvedValues(resolved.Values())
	}
	if cfg.ConfigErr != nil {
		output.Warn("ignoring configuration file", "path", configPath, "error", cfg.ConfigErr)
	}

	cfg.Resolver = vite.New(cfg.Config.Options(nil, output.Logger()))
	return nil
}

// loadConfig reads the config file and checks it against the schema.
func loadConfig(path string) (*config.Config, error) {
	loaded, err := config.NewLoader().Load(path)
	if err != nil {
		return nil, err
	}

	validator, err := config.NewValidator()
	if err != nil {
		return nil, err
	}
	if err := validator.Validate(loaded); err != nil {
		return nil, err
	}
	return loaded, nil
}

// requireConfig fails when the config file could not be loaded.
func requireConfig(cfg *cmdtypes.GlobalConfig) error {
	if cfg.ConfigErr != nil {
		return cmdutil.Fail("configuration error", cfg.ConfigErr)
	}
	return nil
}
