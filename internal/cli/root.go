package cli

import (
	"fmt"
	"os"

	"noteai/internal/ai"
	"noteai/internal/config"
	"noteai/internal/i18n"
	"noteai/internal/playground"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "noteai",
	Short: "", // Will be set in init()
	Long:  "", // Will be set in init()
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPlayground()
	},
}

func Execute() error {
	return rootCmd.Execute()
}

// SetVersionInfo wires build metadata into the root command
func SetVersionInfo(version, buildTime, gitCommit string) {
	rootCmd.Version = fmt.Sprintf("%s (built %s, commit %s)", version, buildTime, gitCommit)
}

func init() {
	cobra.OnInitialize(initConfig)

	// Initialize i18n for command descriptions
	i18nMgr, err := i18n.NewManager(i18n.DefaultLanguage)
	if err != nil {
		// Fallback to hardcoded strings if i18n fails
		rootCmd.Short = "An AI writing assistant for markdown notebooks"
		rootCmd.Long = "noteai forwards selected text to an AI provider to summarize, improve, restyle or complete it, and inserts the result back into the notebook."
	} else {
		rootCmd.Short = i18nMgr.Get("app_short_description")
		rootCmd.Long = i18nMgr.Get("app_long_description")

		providersCmd.Short = i18nMgr.Get("providers_command_short")
		setProviderCmd.Short = i18nMgr.Get("set_provider_command_short")
		statusCmd.Short = i18nMgr.Get("status_command_short")
	}

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", getI18nString(i18nMgr, "config_file_flag", "config file (default is $HOME/.noteai.yaml)"))
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, getI18nString(i18nMgr, "verbose_output_flag", "verbose output"))

	rootCmd.AddCommand(providersCmd)
	rootCmd.AddCommand(setProviderCmd)
	rootCmd.AddCommand(statusCmd)
}

// getI18nString safely gets an i18n string with fallback
func getI18nString(mgr *i18n.Manager, key, fallback string) string {
	if mgr == nil {
		return fallback
	}
	return mgr.Get(key)
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		viper.AddConfigPath(home)
		viper.SetConfigType("yaml")
		viper.SetConfigName(".noteai")
	}

	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		if verbose {
			fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
		}
	}
}

func runPlayground() error {
	app, err := playground.NewApp()
	if err != nil {
		return fmt.Errorf("failed to create playground: %w", err)
	}
	return app.Run()
}

var providersCmd = &cobra.Command{
	Use:   "providers",
	Short: "", // Will be set in init()
	RunE: func(cmd *cobra.Command, args []string) error {
		i18nMgr, manager, err := loadManager()
		if err != nil {
			return err
		}

		fmt.Print(i18nMgr.Get("supported_providers_header"))
		for _, provider := range config.SupportedProviders() {
			marker := " "
			if string(provider) == manager.ActiveProvider() {
				marker = "*"
			}
			fmt.Printf("%s %s\n", marker, provider)
		}
		return nil
	},
}

var setProviderCmd = &cobra.Command{
	Use:   "set-provider <name>",
	Short: "", // Will be set in init()
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]
		apiKey, _ := cmd.Flags().GetString("api-key")

		i18nMgr, manager, err := loadManager()
		if err != nil {
			return err
		}

		if apiKey == "" {
			fmt.Printf(i18nMgr.Get("enter_api_key_prompt"), name)
			keyBytes, err := term.ReadPassword(int(os.Stdin.Fd()))
			fmt.Println()
			if err != nil {
				return fmt.Errorf("failed to read API key: %w", err)
			}
			apiKey = string(keyBytes)
		}

		if err := manager.SetProvider(name, apiKey); err != nil {
			return err
		}

		fmt.Printf(i18nMgr.Get("provider_configured_cli"), manager.ActiveProvider())
		return nil
	},
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "", // Will be set in init()
	RunE: func(cmd *cobra.Command, args []string) error {
		i18nMgr, manager, err := loadManager()
		if err != nil {
			return err
		}

		cfg := manager.GetConfig()
		if manager.ActiveProvider() == "" {
			fmt.Print(i18nMgr.Get("ai_status_not_configured"))
		} else {
			fmt.Printf(i18nMgr.Get("ai_status_provider"), manager.ActiveProvider())
			fmt.Printf(i18nMgr.Get("ai_status_model"), cfg.ModelFor(cfg.AI.Provider))
		}
		fmt.Printf(i18nMgr.Get("ai_status_config_dir"), config.NewManager().GetConfigDir())
		return nil
	},
}

func init() {
	setProviderCmd.Flags().String("api-key", "", "API key for the provider (prompted when omitted)")
}

// loadManager builds the AI manager and a matching i18n manager from
// the default config directory
func loadManager() (*i18n.Manager, *ai.Manager, error) {
	configMgr := config.NewManager()

	manager, err := ai.NewManager(configMgr.GetConfigDir())
	if err != nil {
		return nil, nil, err
	}

	language := i18n.DefaultLanguage
	if cfg := manager.GetConfig(); cfg != nil && cfg.Language != "" {
		language = cfg.Language
	}

	i18nMgr, err := i18n.NewManager(language)
	if err != nil {
		i18nMgr, err = i18n.NewManager(i18n.DefaultLanguage)
		if err != nil {
			return nil, nil, err
		}
	}

	return i18nMgr, manager, nil
}
