package commands

import (
	"github.com/spf13/cobra"

	"github.com/doeshing/keyclip-go/internal/app"
	"github.com/doeshing/keyclip-go/internal/application/clip"
	"github.com/doeshing/keyclip-go/internal/domain"
)

// NewClipCommand creates the clip command.
func NewClipCommand(container *app.Container) *cobra.Command {
	var (
		attribute string
		totp      bool
	)

	cmd := &cobra.Command{
		Use:   "clip <entry> [timeout]",
		Short: "Copy an entry's attribute to the clipboard",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			quiet, _ := cmd.Flags().GetBool("quiet")
			database, _ := cmd.Flags().GetString("database")

			entryStore, err := container.OpenStore(database)
			if err != nil {
				return err
			}
			defer entryStore.Close()

			rawTimeout := ""
			if len(args) == 2 {
				rawTimeout = args[1]
			}

			svc := &clip.Service{
				Store:     entryStore,
				Clipboard: container.Clipboard,
				Sleeper:   container.Sleeper,
				Logger:    container.Logger,
				Out:       cmd.OutOrStdout(),
				Err:       cmd.ErrOrStderr(),
			}
			code := svc.Run(cmd.Context(), clip.Request{
				EntryPath:     args[0],
				Attribute:     attribute,
				AttributeSet:  cmd.Flags().Changed("attribute"),
				TotpRequested: totp,
				RawTimeout:    rawTimeout,
				Quiet:         quiet,
			})
			if code != 0 {
				return &domain.ExitError{Code: code}
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&attribute, "attribute", "a", clip.DefaultAttribute,
		`Copy the given attribute to the clipboard. Defaults to "password" if not specified`)
	cmd.Flags().BoolVarP(&totp, "totp", "t", false,
		`Copy the current TOTP to the clipboard (equivalent to "-a totp")`)
	return cmd
}
