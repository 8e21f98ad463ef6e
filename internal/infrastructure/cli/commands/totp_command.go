package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/doeshing/keyclip-go/internal/app"
	"github.com/doeshing/keyclip-go/internal/domain"
	"github.com/doeshing/keyclip-go/internal/ports"
)

// NewTotpCommand creates the totp command.
func NewTotpCommand(container *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "totp <entry>",
		Short: "Print an entry's current TOTP code",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			database, _ := cmd.Flags().GetString("database")
			entryStore, err := container.OpenStore(database)
			if err != nil {
				return err
			}
			defer entryStore.Close()

			return printTotp(cmd.Context(), cmd.OutOrStdout(), entryStore, args[0])
		},
	}
}

// printTotp writes the entry's current TOTP code to out.
func printTotp(ctx context.Context, out io.Writer, entryStore ports.EntryStore, path string) error {
	entry, err := entryStore.FindEntryByPath(ctx, path)
	if err != nil {
		return err
	}
	if entry == nil {
		return &domain.EntryNotFoundError{Path: path}
	}
	if !entry.HasTotp() {
		return fmt.Errorf("entry with path %s: %w", path, domain.ErrNoTotp)
	}

	code, err := entry.Totp()
	if err != nil {
		return err
	}
	fmt.Fprintln(out, code)
	return nil
}
