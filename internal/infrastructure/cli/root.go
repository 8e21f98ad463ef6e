package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/doeshing/keyclip-go/internal/app"
	"github.com/doeshing/keyclip-go/internal/infrastructure/cli/commands"
)

// Options holds CLI-level configuration.
type Options struct {
	Verbose bool
}

// NewRootCmd wires the cobra root command.
func NewRootCmd(ctx context.Context, opts Options) (*cobra.Command, error) {
	container, err := app.BuildContainer(ctx, opts.Verbose, nil, SystemSleeper{})
	if err != nil {
		return nil, err
	}
	container.Clipboard = NewClipboard(container.Config.Clipboard.Tool)

	root := &cobra.Command{
		Use:   "keyclip",
		Short: "KEYCLIP - credential store with clipboard integration",
		Long:  "KEYCLIP stores credential entries and copies their attributes (or TOTP codes) to the clipboard, with optional timed clearing.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().BoolP("quiet", "q", false, "Suppress secondary output such as copy confirmations")
	root.PersistentFlags().String("database", "", "Path of the credential database (default from config)")

	root.AddCommand(commands.NewClipCommand(container))
	root.AddCommand(commands.NewShowCommand(container))
	root.AddCommand(commands.NewTotpCommand(container))
	root.AddCommand(commands.NewListCommand(container))
	root.AddCommand(commands.NewAddCommand(container))
	root.AddCommand(commands.NewRemoveCommand(container))
	root.AddCommand(commands.NewVersionCommand())
	return root, nil
}
