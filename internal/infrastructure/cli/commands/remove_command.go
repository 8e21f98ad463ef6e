package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/doeshing/keyclip-go/internal/app"
)

// NewRemoveCommand creates the rm command.
func NewRemoveCommand(container *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "rm <entry>",
		Short: "Remove an entry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			database, _ := cmd.Flags().GetString("database")
			quiet, _ := cmd.Flags().GetBool("quiet")

			entryStore, err := container.OpenStore(database)
			if err != nil {
				return err
			}
			defer entryStore.Close()

			if err := entryStore.Delete(cmd.Context(), args[0]); err != nil {
				return err
			}
			if !quiet {
				fmt.Fprintf(cmd.OutOrStdout(), "Entry %s removed.\n", args[0])
			}
			return nil
		},
	}
}
