package domain

import "time"

// TotpAttributeKey is the attribute holding an entry's TOTP configuration,
// either an otpauth:// URL or a bare base32 secret.
const TotpAttributeKey = "otp"

// Entry is a single credential record, addressable by a hierarchical path
// such as "Root/Email".
type Entry struct {
	Path       string
	Title      string
	Attributes *Attributes
	Created    time.Time
	Updated    time.Time
}

// NewEntry builds an empty entry at the given path.
func NewEntry(path string) *Entry {
	return &Entry{Path: path, Attributes: NewAttributes()}
}

// HasTotp reports whether the entry has a usable TOTP configuration.
func (e *Entry) HasTotp() bool {
	if e.Attributes == nil || !e.Attributes.HasKey(TotpAttributeKey) {
		return false
	}
	_, err := parseTotpSettings(e.Attributes.Value(TotpAttributeKey))
	return err == nil
}

// Totp returns the entry's current time-based one-time passcode.
func (e *Entry) Totp() (string, error) {
	return e.TotpAt(time.Now())
}

// TotpAt returns the passcode valid at the given instant.
func (e *Entry) TotpAt(now time.Time) (string, error) {
	if e.Attributes == nil {
		return "", ErrNoTotp
	}
	settings, err := parseTotpSettings(e.Attributes.Value(TotpAttributeKey))
	if err != nil {
		return "", err
	}
	return settings.codeAt(now), nil
}

// Attribute is a single key/value pair on an entry. Protected attributes
// hold secrets and are masked by default when displayed.
type Attribute struct {
	Key       string
	Value     string
	Protected bool
}

// Attributes is an insertion-ordered collection of attributes with unique keys.
type Attributes struct {
	list  []Attribute
	index map[string]int
}

// NewAttributes builds an empty collection.
func NewAttributes() *Attributes {
	return &Attributes{index: make(map[string]int)}
}

// Set adds or replaces an attribute, preserving the position of existing keys.
func (a *Attributes) Set(key, value string, protected bool) {
	if a.index == nil {
		a.index = make(map[string]int)
	}
	if i, ok := a.index[key]; ok {
		a.list[i].Value = value
		a.list[i].Protected = protected
		return
	}
	a.index[key] = len(a.list)
	a.list = append(a.list, Attribute{Key: key, Value: value, Protected: protected})
}

// HasKey reports whether the exact key is present.
func (a *Attributes) HasKey(key string) bool {
	if a == nil {
		return false
	}
	_, ok := a.index[key]
	return ok
}

// Value returns the stored value for key, or "" when absent.
func (a *Attributes) Value(key string) string {
	if a == nil {
		return ""
	}
	if i, ok := a.index[key]; ok {
		return a.list[i].Value
	}
	return ""
}

// IsProtected reports whether the attribute holds a secret.
func (a *Attributes) IsProtected(key string) bool {
	if a == nil {
		return false
	}
	if i, ok := a.index[key]; ok {
		return a.list[i].Protected
	}
	return false
}

// Keys returns the attribute keys in insertion order.
func (a *Attributes) Keys() []string {
	if a == nil {
		return nil
	}
	keys := make([]string, len(a.list))
	for i, attr := range a.list {
		keys[i] = attr.Key
	}
	return keys
}

// All returns the attributes in insertion order.
func (a *Attributes) All() []Attribute {
	if a == nil {
		return nil
	}
	out := make([]Attribute, len(a.list))
	copy(out, a.list)
	return out
}

// Len returns the number of attributes.
func (a *Attributes) Len() int {
	if a == nil {
		return 0
	}
	return len(a.list)
}
