package cli

import (
	"errors"
	"sort"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/tubedash/internal/core/domain"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show or change configuration",
	Long: `Show the resolved configuration, or read and write single keys.

Values are stored in ~/.tubedash/config.toml. TUBEDASH_EMAIL,
TUBEDASH_CLIENT_ID and TUBEDASH_CLIENT_SECRET override the file.`,
	RunE: runConfigShow,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show resolved configuration",
	RunE:  runConfigShow,
}

var configGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Print a stored value",
	Args:  cobra.ExactArgs(1),
	RunE:  runConfigGet,
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Store a value",
	Args:  cobra.ExactArgs(2),
	RunE:  runConfigSet,
}

var configKeysCmd = &cobra.Command{
	Use:   "keys",
	Short: "List settable keys",
	RunE: func(cmd *cobra.Command, _ []string) error {
		for _, key := range settingKeys() {
			cmd.Println(key)
		}
		return nil
	},
}

func init() {
	configCmd.AddCommand(configShowCmd, configGetCmd, configSetCmd, configKeysCmd)
	rootCmd.AddCommand(configCmd)
}

func requireConfig() error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}
	return nil
}

func settingKeys() []string {
	keys := make([]string, 0, len(domain.SettingKinds))
	for key := range domain.SettingKinds {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	if err := requireConfig(); err != nil {
		return err
	}
	s := settingsService.Get()

	if jsonOutput {
		s.OAuth.ClientSecret = maskSecret(s.OAuth.ClientSecret)
		return printJSON(cmd, s)
	}

	cmd.Printf("Config file: %s\n\n", settingsService.Path())
	cmd.Println("[Account]")
	cmd.Printf("  Email:            %s\n", orNotSet(s.Account))
	cmd.Printf("  Allow-list:       %s\n", orNotSet(s.AllowListPath))
	cmd.Println()
	cmd.Println("[OAuth]")
	cmd.Printf("  Client ID:        %s\n", orNotSet(s.OAuth.ClientID))
	cmd.Printf("  Client secret:    %s\n", orNotSet(maskSecret(s.OAuth.ClientSecret)))
	cmd.Printf("  Callback port:    %d\n", s.OAuth.CallbackPort)
	cmd.Printf("  Consent timeout:  %s\n", s.OAuth.ConsentTimeout)
	cmd.Println()
	cmd.Println("[API]")
	cmd.Printf("  Data:             %s\n", s.API.DataBaseURL)
	cmd.Printf("  Analytics:        %s\n", s.API.AnalyticsBaseURL)
	cmd.Printf("  Exchange rates:   %s\n", s.API.ExchangeRateURL)
	cmd.Println()
	cmd.Println("[Reports]")
	cmd.Printf("  Default days:     %d\n", s.ReportDays)
	cmd.Printf("  Data directory:   %s\n", orNotSet(s.DataDir))
	return nil
}

func runConfigGet(cmd *cobra.Command, args []string) error {
	if err := requireConfig(); err != nil {
		return err
	}
	value, err := settingsService.Value(args[0])
	if err != nil {
		return err
	}
	if domain.SettingKinds[args[0]] == domain.SettingSecret {
		value = maskSecret(value)
	}
	cmd.Println(value)
	return nil
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	if err := requireConfig(); err != nil {
		return err
	}
	if err := settingsService.Set(args[0], args[1]); err != nil {
		return err
	}
	cmd.Printf("Set %s\n", args[0])
	return nil
}

// maskSecret keeps the last four characters of a secret.
func maskSecret(s string) string {
	if s == "" {
		return ""
	}
	if len(s) <= 8 {
		return "****"
	}
	return "****" + s[len(s)-4:]
}

func orNotSet(s string) string {
	if s == "" {
		return "(not set)"
	}
	return s
}
