package commands

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/doeshing/keyclip-go/internal/domain"
)

type stubEntryStore struct {
	entry *domain.Entry
}

func (s *stubEntryStore) FindEntryByPath(_ context.Context, path string) (*domain.Entry, error) {
	if s.entry != nil && s.entry.Path == path {
		return s.entry, nil
	}
	return nil, nil
}

func (s *stubEntryStore) Save(context.Context, *domain.Entry) error { return nil }
func (s *stubEntryStore) Delete(context.Context, string) error      { return nil }
func (s *stubEntryStore) List(context.Context) ([]string, error)    { return nil, nil }
func (s *stubEntryStore) Close() error                              { return nil }

func TestPrintTotpWritesCode(t *testing.T) {
	entry := domain.NewEntry("Root/Email")
	entry.Attributes.Set(domain.TotpAttributeKey, "GEZDGNBVGY3TQOJQGEZDGNBVGY3TQOJQ", true)

	var out bytes.Buffer
	if err := printTotp(context.Background(), &out, &stubEntryStore{entry: entry}, "Root/Email"); err != nil {
		t.Fatalf("printTotp() error = %v", err)
	}
	if got := strings.TrimSpace(out.String()); len(got) != 6 {
		t.Fatalf("printTotp() wrote %q, want a 6-digit code", got)
	}
}

func TestPrintTotpWithoutConfiguration(t *testing.T) {
	entry := domain.NewEntry("Root/Email")
	entry.Attributes.Set("password", "secret123", true)

	var out bytes.Buffer
	err := printTotp(context.Background(), &out, &stubEntryStore{entry: entry}, "Root/Email")
	if !errors.Is(err, domain.ErrNoTotp) {
		t.Fatalf("error = %v, want ErrNoTotp", err)
	}
}

func TestPrintTotpEntryNotFound(t *testing.T) {
	var out bytes.Buffer
	err := printTotp(context.Background(), &out, &stubEntryStore{}, "Root/Nope")
	var notFound *domain.EntryNotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("error = %v, want EntryNotFoundError", err)
	}
}
