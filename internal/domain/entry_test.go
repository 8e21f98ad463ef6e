package domain

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestAttributesSetPreservesPositionOnReplace(t *testing.T) {
	attrs := NewAttributes()
	attrs.Set("username", "me", false)
	attrs.Set("password", "old", true)
	attrs.Set("url", "https://example.com", false)
	attrs.Set("password", "new", true)

	if diff := cmp.Diff([]string{"username", "password", "url"}, attrs.Keys()); diff != "" {
		t.Fatalf("keys mismatch (-want +got):\n%s", diff)
	}
	if got := attrs.Value("password"); got != "new" {
		t.Fatalf("Value(password) = %q, want new", got)
	}
}

func TestAttributesProtectedFlag(t *testing.T) {
	attrs := NewAttributes()
	attrs.Set("password", "secret", true)
	attrs.Set("url", "https://example.com", false)

	if !attrs.IsProtected("password") {
		t.Fatal("password should be protected")
	}
	if attrs.IsProtected("url") {
		t.Fatal("url should not be protected")
	}
}

func TestEntryHasTotp(t *testing.T) {
	tests := []struct {
		name string
		otp  string
		want bool
	}{
		{"bare secret", "GEZDGNBVGY3TQOJQGEZDGNBVGY3TQOJQ", true},
		{"otpauth URL", "otpauth://totp/Example:me?secret=GEZDGNBVGY3TQOJQGEZDGNBVGY3TQOJQ", true},
		{"invalid secret", "!!! not base32 !!!", false},
		{"empty", "", false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			entry := NewEntry("Root/Email")
			if tc.otp != "" {
				entry.Attributes.Set(TotpAttributeKey, tc.otp, true)
			}
			if got := entry.HasTotp(); got != tc.want {
				t.Fatalf("HasTotp() = %v, want %v", got, tc.want)
			}
		})
	}
}
