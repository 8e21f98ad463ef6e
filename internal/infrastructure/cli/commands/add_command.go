package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/doeshing/keyclip-go/internal/app"
	"github.com/doeshing/keyclip-go/internal/domain"
)

// NewAddCommand creates the add command.
func NewAddCommand(container *app.Container) *cobra.Command {
	var title string

	cmd := &cobra.Command{
		Use:   "add <entry> [key=value ...]",
		Short: "Add or update an entry with the given attributes",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			database, _ := cmd.Flags().GetString("database")
			quiet, _ := cmd.Flags().GetBool("quiet")

			entryStore, err := container.OpenStore(database)
			if err != nil {
				return err
			}
			defer entryStore.Close()

			path := args[0]
			entry, err := entryStore.FindEntryByPath(cmd.Context(), path)
			if err != nil {
				return err
			}
			if entry == nil {
				entry = domain.NewEntry(path)
			}
			if title != "" {
				entry.Title = title
			}

			for _, pair := range args[1:] {
				key, value, err := parseAttributePair(pair)
				if err != nil {
					return err
				}
				entry.Attributes.Set(key, value, isProtectedKey(key))
			}

			if err := entryStore.Save(cmd.Context(), entry); err != nil {
				return err
			}
			if !quiet {
				fmt.Fprintf(cmd.OutOrStdout(), "Entry %s saved.\n", path)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "Title of the entry")
	return cmd
}

func parseAttributePair(pair string) (key, value string, err error) {
	key, value, ok := strings.Cut(pair, "=")
	if !ok || key == "" {
		return "", "", fmt.Errorf("invalid attribute %q, expected key=value", pair)
	}
	return key, value, nil
}

// isProtectedKey marks secrets so show masks them by default.
func isProtectedKey(key string) bool {
	return key == "password" || key == domain.TotpAttributeKey
}
