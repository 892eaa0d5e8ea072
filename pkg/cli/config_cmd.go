package cli

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage CLI configuration profiles",
	}

	cmd.AddCommand(newConfigShowCmd())
	cmd.AddCommand(newConfigSetProfileCmd())
	cmd.AddCommand(newConfigUseProfileCmd())

	return cmd
}

func newConfigShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Display current configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := LoadUserConfig()
			if err != nil {
				_, _ = fmt.Fprintf(os.Stderr, "No configuration found at %s\n", ConfigPath())
				return err
			}
			if getOutputFormat(cmd) == "json" {
				return PrintJSON(os.Stdout, cfg)
			}
			PrintTable(os.Stdout, []string{"profile", "active", "host", "output"}, profileRows(cfg))
			return nil
		},
	}
}

// profileRows lists profiles by name, marking the current one with "*".
func profileRows(cfg *UserConfig) [][]string {
	names := make([]string, 0, len(cfg.Profiles))
	for name := range cfg.Profiles {
		names = append(names, name)
	}
	sort.Strings(names)

	rows := make([][]string, 0, len(names))
	for _, name := range names {
		p := cfg.Profiles[name]
		active := ""
		if name == cfg.CurrentProfile {
			active = "*"
		}
		host := p.Host
		if host == "" {
			host = "(local)"
		}
		rows = append(rows, []string{name, active, host, p.Output})
	}
	return rows
}

func newConfigSetProfileCmd() *cobra.Command {
	var (
		name   string
		host   string
		output string
	)

	cmd := &cobra.Command{
		Use:   "set-profile",
		Short: "Create or update a configuration profile",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if name == "" {
				return fmt.Errorf("--name is required")
			}
			if cmd.Flags().Changed("host") && host != "" {
				if err := validateHostURL(host); err != nil {
					return err
				}
			}
			// The local --output shadows the global flag, so validate it here.
			if cmd.Flags().Changed("output") {
				if err := validateOutputFormat(output); err != nil {
					return err
				}
			}

			cfg, err := LoadUserConfig()
			if err != nil {
				cfg = &UserConfig{
					CurrentProfile: "default",
					Profiles:       map[string]Profile{},
				}
			}

			p := cfg.Profiles[name]
			if cmd.Flags().Changed("host") {
				p.Host = host
			}
			if cmd.Flags().Changed("output") {
				p.Output = output
			}
			cfg.Profiles[name] = p

			if err := SaveUserConfig(cfg); err != nil {
				return err
			}
			if getOutputFormat(cmd) == "json" {
				return PrintJSON(os.Stdout, map[string]string{
					"status":  "ok",
					"profile": name,
					"path":    ConfigPath(),
				})
			}
			_, _ = fmt.Fprintf(os.Stdout, "Profile %q saved to %s\n", name, ConfigPath())
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Profile name (required)")
	cmd.Flags().StringVar(&host, "host", "", "insertkit server URL for this profile")
	cmd.Flags().StringVar(&output, "output", "", "Default output format")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func newConfigUseProfileCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "use-profile <name>",
		Short: "Set the active configuration profile",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := LoadUserConfig()
			if err != nil {
				return fmt.Errorf("no config found: %w", err)
			}
			name := args[0]
			if _, ok := cfg.Profiles[name]; !ok {
				return fmt.Errorf("profile %q not found", name)
			}
			cfg.CurrentProfile = name
			if err := SaveUserConfig(cfg); err != nil {
				return err
			}
			if getOutputFormat(cmd) == "json" {
				return PrintJSON(os.Stdout, map[string]string{
					"status":         "ok",
					"active_profile": name,
				})
			}
			_, _ = fmt.Fprintf(os.Stdout, "Active profile set to %q\n", name)
			return nil
		},
	}
}
