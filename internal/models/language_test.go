package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLanguageCode(t *testing.T) {
	tests := []struct {
		in      string
		want    LanguageCode
		wantErr bool
	}{
		{"en", "en", false},
		{"EN", "en", false},
		{" es ", "es", false},
		{"pt-br", "pt-BR", false},
		{"zh_TW", "zh-TW", false},
		{"", "", true},
		{"not a language", "", true},
		{"und", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLanguageCode(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseLanguageList_DropsRepeats(t *testing.T) {
	got, err := ParseLanguageList([]string{"fr", "en", "FR", "es"})
	require.NoError(t, err)
	assert.Equal(t, LanguageList{"fr", "en", "es"}, got)

	_, err = ParseLanguageList([]string{"en", "??"})
	assert.Error(t, err)
}

func TestLanguageCode_UnmarshalJSON(t *testing.T) {
	var body struct {
		Lang LanguageCode `json:"lang"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"lang":"DE"}`), &body))
	assert.Equal(t, LanguageCode("de"), body.Lang)

	assert.Error(t, json.Unmarshal([]byte(`{"lang":"!!"}`), &body))
}

func TestLanguageList_ScanValue(t *testing.T) {
	v, err := LanguageList{"en", "es"}.Value()
	require.NoError(t, err)
	assert.Equal(t, `["en","es"]`, v)

	var l LanguageList
	require.NoError(t, l.Scan([]byte(`["fr"]`)))
	assert.Equal(t, LanguageList{"fr"}, l)

	require.NoError(t, l.Scan(nil))
	assert.Empty(t, l)

	assert.Error(t, l.Scan(42))
}

func TestLanguageList_Equal(t *testing.T) {
	assert.True(t, LanguageList{"en", "es"}.Equal(LanguageList{"en", "es"}))
	assert.False(t, LanguageList{"en", "es"}.Equal(LanguageList{"es", "en"}))
	assert.False(t, LanguageList{"en"}.Equal(nil))
}
