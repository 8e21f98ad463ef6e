package domain

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestFindAttributesExactMatchWins(t *testing.T) {
	attrs := NewAttributes()
	attrs.Set("password", "a", true)
	attrs.Set("password2", "b", true)
	attrs.Set("Password3", "c", true)

	got := FindAttributes(attrs, "password")
	if diff := cmp.Diff([]string{"password"}, got); diff != "" {
		t.Fatalf("FindAttributes mismatch (-want +got):\n%s", diff)
	}
}

func TestFindAttributesPrefixMatchesInOrder(t *testing.T) {
	attrs := NewAttributes()
	attrs.Set("username", "a", false)
	attrs.Set("url", "b", false)
	attrs.Set("UserEmail", "c", false)

	got := FindAttributes(attrs, "user")
	if diff := cmp.Diff([]string{"username", "UserEmail"}, got); diff != "" {
		t.Fatalf("FindAttributes mismatch (-want +got):\n%s", diff)
	}
}

func TestFindAttributesNoMatch(t *testing.T) {
	attrs := NewAttributes()
	attrs.Set("password", "a", true)

	if got := FindAttributes(attrs, "xyz"); len(got) != 0 {
		t.Fatalf("FindAttributes = %v, want empty", got)
	}
}

func TestFindAttributesCaseInsensitivePrefix(t *testing.T) {
	attrs := NewAttributes()
	attrs.Set("URL", "b", false)

	got := FindAttributes(attrs, "url")
	if diff := cmp.Diff([]string{"URL"}, got); diff != "" {
		t.Fatalf("FindAttributes mismatch (-want +got):\n%s", diff)
	}
}
