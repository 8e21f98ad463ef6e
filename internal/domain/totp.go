package domain

import (
	"crypto/sha256"
	"crypto/sha512"
	"fmt"
	"hash"
	"strings"
	"time"

	"github.com/creachadair/otp"
	"github.com/creachadair/otp/otpauth"
)

const (
	defaultTotpDigits = 6
	defaultTotpPeriod = 30
)

// totpSettings holds a normalized TOTP configuration for one entry.
// key is the decoded shared secret, not its base32 text form.
type totpSettings struct {
	key    []byte
	digits int
	period int
	hash   func() hash.Hash
}

// parseTotpSettings accepts either an otpauth:// URL or a bare base32 secret,
// the two forms the store keeps under the "otp" attribute.
func parseTotpSettings(raw string) (totpSettings, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return totpSettings{}, ErrNoTotp
	}

	settings := totpSettings{digits: defaultTotpDigits, period: defaultTotpPeriod}
	rawSecret := raw
	if strings.HasPrefix(raw, "otpauth://") {
		u, err := otpauth.ParseURL(raw)
		if err != nil {
			return totpSettings{}, fmt.Errorf("parse otpauth URL: %w", err)
		}
		if u.Type != "totp" {
			return totpSettings{}, fmt.Errorf("unsupported OTP type %q", u.Type)
		}
		rawSecret = u.RawSecret
		if u.Digits > 0 {
			settings.digits = u.Digits
		}
		if u.Period > 0 {
			settings.period = u.Period
		}
		switch strings.ToUpper(u.Algorithm) {
		case "", "SHA1":
		case "SHA256":
			settings.hash = sha256.New
		case "SHA512":
			settings.hash = sha512.New
		default:
			return totpSettings{}, fmt.Errorf("unsupported OTP algorithm %q", u.Algorithm)
		}
	}

	key, err := otp.ParseKey(rawSecret)
	if err != nil {
		return totpSettings{}, fmt.Errorf("parse OTP secret: %w", err)
	}
	settings.key = key
	return settings, nil
}

func (s totpSettings) codeAt(now time.Time) string {
	cfg := otp.Config{
		Key:    string(s.key),
		Hash:   s.hash,
		Digits: s.digits,
		TimeStep: func() uint64 {
			return uint64(now.Unix()) / uint64(s.period)
		},
	}
	return cfg.TOTP()
}
