package translate

import (
	"context"
	"log/slog"

	"faq-service/internal/models"
)

// Orchestrator drives per-FAQ translation across the requested languages.
type Orchestrator struct {
	provider Provider
	log      *slog.Logger
}

func NewOrchestrator(provider Provider, log *slog.Logger) *Orchestrator {
	if log == nil {
		log = slog.Default()
	}
	return &Orchestrator{provider: provider, log: log}
}

// BuildTranslations returns a map that always holds the source text under
// originalLanguage. Every other language is best effort: languages are
// attempted one at a time in the given order, and a language whose
// question or answer fails is left out. In its place the text is
// translated to English and written under "en", so with several failures
// the last successful fallback wins. Provider failures are logged, never
// returned.
//
// The fallback is skipped when originalLanguage is already English; the
// seeded source entry is never overwritten.
func (o *Orchestrator) BuildTranslations(ctx context.Context, question, answer string, targetLanguages []models.LanguageCode, originalLanguage models.LanguageCode) models.Translations {
	translations := models.Translations{
		originalLanguage: {Question: question, Answer: answer},
	}

	for _, lang := range targetLanguages {
		if lang == originalLanguage {
			continue
		}

		tr, field, err := o.translatePair(ctx, question, answer, lang)
		if err == nil {
			translations[lang] = tr
			continue
		}

		o.log.Warn("translation failed", "lang", lang, "field", field, "error", err)

		if originalLanguage == models.FallbackLanguage {
			continue
		}

		fallback, field, err := o.translatePair(ctx, question, answer, models.FallbackLanguage)
		if err != nil {
			o.log.Error("fallback translation failed", "lang", lang, "fallback", models.FallbackLanguage, "field", field, "error", err)
			continue
		}
		translations[models.FallbackLanguage] = fallback
	}

	return translations
}

// translatePair also names the field that failed, "question" or "answer".
func (o *Orchestrator) translatePair(ctx context.Context, question, answer string, lang models.LanguageCode) (models.Translation, string, error) {
	q, err := o.provider.Translate(ctx, question, lang)
	if err != nil {
		return models.Translation{}, "question", err
	}
	a, err := o.provider.Translate(ctx, answer, lang)
	if err != nil {
		return models.Translation{}, "answer", err
	}
	return models.Translation{Question: q, Answer: a}, "", nil
}
