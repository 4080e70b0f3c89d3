package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

type Status string

const (
	StatusDraft     Status = "draft"
	StatusPublished Status = "published"
	StatusArchived  Status = "archived"
)

func (s Status) Valid() bool {
	switch s {
	case StatusDraft, StatusPublished, StatusArchived:
		return true
	}
	return false
}

type Translation struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// Translations maps a language to its question/answer pair. It is stored
// as a JSON object column and always decodes into this concrete type.
type Translations map[LanguageCode]Translation

func (t Translations) Clone() Translations {
	out := make(Translations, len(t))
	for k, v := range t {
		out[k] = v
	}
	return out
}

func (t Translations) Value() (driver.Value, error) {
	if t == nil {
		t = Translations{}
	}
	b, err := json.Marshal(t)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (t *Translations) Scan(src any) error {
	b, err := jsonColumn(src)
	if err != nil {
		return err
	}
	out := Translations{}
	if len(b) > 0 {
		if err := json.Unmarshal(b, &out); err != nil {
			return fmt.Errorf("decoding translations: %w", err)
		}
	}
	*t = out
	return nil
}

type FAQ struct {
	ID               string       `json:"id"`
	OriginalLanguage LanguageCode `json:"originalLanguage"`
	Status           Status       `json:"status"`
	Category         *string      `json:"category,omitempty"`
	TargetLanguages  LanguageList `json:"targetLanguages"`
	Translations     Translations `json:"translations"`
	CreatedBy        *string      `json:"createdBy,omitempty"`
	CreatedAt        time.Time    `json:"createdAt"`
	UpdatedAt        time.Time    `json:"updatedAt"`
}

// Source returns the authoritative text stored under the original language.
func (f FAQ) Source() (Translation, bool) {
	tr, ok := f.Translations[f.OriginalLanguage]
	return tr, ok
}

// FAQItem is one entry of the public, single-language listing.
type FAQItem struct {
	ID       string  `json:"id"`
	Question string  `json:"question"`
	Answer   string  `json:"answer"`
	Category *string `json:"category"`
}

/*
|--------------------------------------------------------------------------
| REQUEST
|--------------------------------------------------------------------------
*/
type CreateFAQRequest struct {
	Question         string   `json:"question"`
	Answer           string   `json:"answer"`
	Category         *string  `json:"category"`
	TargetLanguages  []string `json:"targetLanguages"`
	OriginalLanguage string   `json:"originalLanguage"`
	Status           string   `json:"status"`
}

// UpdateFAQRequest fields are optional; nil keeps the stored value.
type UpdateFAQRequest struct {
	Question         *string   `json:"question"`
	Answer           *string   `json:"answer"`
	Category         *string   `json:"category"`
	TargetLanguages  *[]string `json:"targetLanguages"`
	OriginalLanguage *string   `json:"originalLanguage"`
	Status           *string   `json:"status"`
}

// FAQEvent is pushed to live admin listeners after each write.
type FAQEvent struct {
	Type string `json:"type"`
	ID   string `json:"id"`
}

const (
	EventFAQCreated = "faq.created"
	EventFAQUpdated = "faq.updated"
	EventFAQDeleted = "faq.deleted"
)
