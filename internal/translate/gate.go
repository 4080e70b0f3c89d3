package translate

import "faq-service/internal/models"

// NeedsRetranslation reports whether an update changes any input of
// BuildTranslations. Values are compared against what the stored record
// implies: its source text, its target list and its original language.
// Changes to anything else (category, status) never trigger a rebuild.
func NeedsRetranslation(question, answer string, targetLanguages models.LanguageList, originalLanguage models.LanguageCode, existing models.FAQ) bool {
	src, ok := existing.Source()
	if !ok {
		return true
	}
	return question != src.Question ||
		answer != src.Answer ||
		!targetLanguages.Equal(existing.TargetLanguages) ||
		originalLanguage != existing.OriginalLanguage
}
