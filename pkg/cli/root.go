// Package cli implements the insertkit command-line tool. Commands run the
// parser and builder in-process, or call a running insertkit server when a
// host is configured.
package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"insertkit/internal/sqlinsert"
)

var (
	version = "dev"
	commit  = "none"
)

// rootOptions carries the resolved global flags to subcommands.
type rootOptions struct {
	host    string
	output  string
	profile string
}

// backend returns the remote client when a host is configured, otherwise
// the in-process implementation.
func (o *rootOptions) backend() backend {
	if o.host != "" {
		return NewClient(o.host)
	}
	return localBackend{}
}

// Execute runs the CLI.
func Execute() int {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		output, _ := rootCmd.PersistentFlags().GetString("output")
		if output == "json" {
			_ = PrintJSON(os.Stdout, errorObject(err))
		} else {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		return 1
	}
	return 0
}

// errorObject is the -o json rendering of a command failure.
func errorObject(err error) map[string]interface{} {
	errObj := map[string]interface{}{
		"error": err.Error(),
	}
	var apiErr *APIError
	var parseErr *sqlinsert.ParseError
	var buildErr *sqlinsert.BuildError
	switch {
	case errors.As(err, &apiErr):
		errObj["http_status"] = apiErr.HTTPStatus
		errObj["code"] = apiErr.Code
	case errors.As(err, &parseErr):
		errObj["code"] = string(parseErr.Kind)
		if parseErr.Kind == sqlinsert.KindArityMismatch {
			errObj["column_count"] = parseErr.ColumnCount
			errObj["value_count"] = parseErr.ValueCount
		}
	case errors.As(err, &buildErr):
		errObj["code"] = string(buildErr.Kind)
	}
	return errObj
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:           "insertkit",
		Short:         "Parse, edit and generate SQL INSERT statements",
		Long:          "Command-line tools for single-row SQL INSERT statements and column lists.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Config file is optional
			cfg, err := LoadUserConfig()
			if err != nil {
				cfg = &UserConfig{
					CurrentProfile: "default",
					Profiles:       map[string]Profile{},
				}
			}

			p, err := cfg.ActiveProfile(opts.profile)
			if err != nil {
				return err
			}

			// Apply precedence: flag > env > profile > default
			if !cmd.Flags().Changed("host") {
				if v := os.Getenv("INSERTKIT_HOST"); v != "" {
					opts.host = v
				} else if p.Host != "" {
					opts.host = p.Host
				}
			}
			if !cmd.Flags().Changed("output") {
				if v := os.Getenv("INSERTKIT_OUTPUT"); v != "" {
					opts.output = v
				} else if p.Output != "" {
					opts.output = p.Output
				}
			}
			if err := validateOutputFormat(opts.output); err != nil {
				return err
			}
			// Keep the flag in sync so Execute renders errors in the resolved format.
			_ = cmd.Root().PersistentFlags().Set("output", opts.output)
			if opts.host != "" {
				if err := validateHostURL(opts.host); err != nil {
					return err
				}
			}
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVar(&opts.host, "host", "", "insertkit server URL; commands run locally when empty")
	rootCmd.PersistentFlags().StringVarP(&opts.output, "output", "o", "table", "Output format (table, json)")
	rootCmd.PersistentFlags().StringVarP(&opts.profile, "profile", "p", "", "Config profile to use")

	rootCmd.AddCommand(newParseCmd(opts))
	rootCmd.AddCommand(newEditCmd(opts))
	rootCmd.AddCommand(newBuildCmd(opts))
	rootCmd.AddCommand(newFormatCmd(opts))
	rootCmd.AddCommand(newColumnsCmd(opts))

	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newConfigCmd())

	// Shell completions
	rootCmd.AddCommand(newCompletionCmd())

	return rootCmd
}

func newCompletionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:       "completion [bash|zsh|fish|powershell]",
		Short:     "Generate shell completion scripts",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"bash", "zsh", "fish", "powershell"},
		RunE: func(cmd *cobra.Command, args []string) error {
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(os.Stdout)
			case "zsh":
				return cmd.Root().GenZshCompletion(os.Stdout)
			case "fish":
				return cmd.Root().GenFishCompletion(os.Stdout, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(os.Stdout)
			default:
				return fmt.Errorf("unsupported shell: %s", args[0])
			}
		},
	}
	return cmd
}
