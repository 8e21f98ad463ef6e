package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/doeshing/keyclip-go/internal/app"
)

// NewListCommand creates the ls command.
func NewListCommand(container *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "ls",
		Short: "List all entry paths",
		RunE: func(cmd *cobra.Command, args []string) error {
			database, _ := cmd.Flags().GetString("database")
			entryStore, err := container.OpenStore(database)
			if err != nil {
				return err
			}
			defer entryStore.Close()

			paths, err := entryStore.List(cmd.Context())
			if err != nil {
				return err
			}
			for _, path := range paths {
				fmt.Fprintln(cmd.OutOrStdout(), path)
			}
			return nil
		},
	}
}
