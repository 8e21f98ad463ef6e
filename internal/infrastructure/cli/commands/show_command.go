package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/doeshing/keyclip-go/internal/app"
	"github.com/doeshing/keyclip-go/internal/domain"
)

// NewShowCommand creates the show command.
func NewShowCommand(container *app.Container) *cobra.Command {
	var (
		attribute     string
		showProtected bool
	)

	cmd := &cobra.Command{
		Use:   "show <entry>",
		Short: "Show an entry's attributes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			database, _ := cmd.Flags().GetString("database")
			entryStore, err := container.OpenStore(database)
			if err != nil {
				return err
			}
			defer entryStore.Close()

			entry, err := entryStore.FindEntryByPath(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if entry == nil {
				return &domain.EntryNotFoundError{Path: args[0]}
			}

			if attribute != "" {
				return showSingleAttribute(cmd.OutOrStdout(), entry, attribute)
			}
			showAllAttributes(cmd.OutOrStdout(), entry, showProtected)
			return nil
		},
	}

	cmd.Flags().StringVarP(&attribute, "attribute", "a", "", "Print only the value of the given attribute")
	cmd.Flags().BoolVarP(&showProtected, "show-protected", "s", false, "Show protected attribute values in clear text")
	return cmd
}

// showSingleAttribute resolves one attribute under the same matching rule the
// clip command uses and prints its raw value.
func showSingleAttribute(out io.Writer, entry *domain.Entry, query string) error {
	matches := domain.FindAttributes(entry.Attributes, query)
	switch len(matches) {
	case 0:
		return &domain.AttributeNotFoundError{Name: query}
	case 1:
		fmt.Fprintln(out, entry.Attributes.Value(matches[0]))
		return nil
	default:
		return &domain.AmbiguousAttributeError{Name: query, Matches: matches}
	}
}

func showAllAttributes(out io.Writer, entry *domain.Entry, showProtected bool) {
	if entry.Title != "" {
		fmt.Fprintf(out, "Title: %s\n", entry.Title)
	}
	for _, attr := range entry.Attributes.All() {
		value := attr.Value
		if attr.Protected && !showProtected {
			value = ProtectedMask
		}
		fmt.Fprintf(out, "%s: %s\n", attr.Key, value)
	}
}
