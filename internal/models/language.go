package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"

	"golang.org/x/text/language"
)

// LanguageCode is a canonical BCP 47 tag such as "en", "es" or "pt-BR".
// Values are only produced by ParseLanguageCode or the constants below.
type LanguageCode string

const (
	DefaultLanguage LanguageCode = "en"
	// FallbackLanguage is the key every failed translation falls back to.
	FallbackLanguage LanguageCode = "en"
)

func ParseLanguageCode(s string) (LanguageCode, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", fmt.Errorf("empty language code")
	}
	tag, err := language.Parse(s)
	if err != nil {
		return "", fmt.Errorf("invalid language code %q: %w", s, err)
	}
	if tag == language.Und {
		return "", fmt.Errorf("invalid language code %q", s)
	}
	return LanguageCode(tag.String()), nil
}

func (c LanguageCode) String() string {
	return string(c)
}

func (c LanguageCode) Tag() language.Tag {
	return language.Make(string(c))
}

// UnmarshalJSON validates the code so request bodies never carry an
// unchecked language through the service.
func (c *LanguageCode) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	code, err := ParseLanguageCode(s)
	if err != nil {
		return err
	}
	*c = code
	return nil
}

type LanguageList []LanguageCode

// ParseLanguageList validates every entry and drops repeats, keeping the
// first occurrence so attempt order follows the caller's order.
func ParseLanguageList(raw []string) (LanguageList, error) {
	out := make(LanguageList, 0, len(raw))
	seen := make(map[LanguageCode]bool, len(raw))
	for _, r := range raw {
		code, err := ParseLanguageCode(r)
		if err != nil {
			return nil, err
		}
		if seen[code] {
			continue
		}
		seen[code] = true
		out = append(out, code)
	}
	return out, nil
}

func (l LanguageList) Equal(other LanguageList) bool {
	if len(l) != len(other) {
		return false
	}
	for i := range l {
		if l[i] != other[i] {
			return false
		}
	}
	return true
}

func (l LanguageList) Value() (driver.Value, error) {
	if l == nil {
		l = LanguageList{}
	}
	b, err := json.Marshal(l)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (l *LanguageList) Scan(src any) error {
	b, err := jsonColumn(src)
	if err != nil {
		return err
	}
	out := LanguageList{}
	if len(b) > 0 {
		if err := json.Unmarshal(b, &out); err != nil {
			return fmt.Errorf("decoding language list: %w", err)
		}
	}
	*l = out
	return nil
}

func jsonColumn(src any) ([]byte, error) {
	switch v := src.(type) {
	case nil:
		return nil, nil
	case []byte:
		return v, nil
	case string:
		return []byte(v), nil
	}
	return nil, fmt.Errorf("unsupported column type %T", src)
}
