// Package service holds the FAQ and admin-auth use cases that sit between
// the HTTP handlers and the Content Store.
package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"faq-service/internal/cache"
	"faq-service/internal/helper"
	"faq-service/internal/models"
	"faq-service/internal/store"
	"faq-service/internal/translate"
)

type FAQStore interface {
	CreateFAQ(ctx context.Context, f *models.FAQ) error
	GetFAQ(ctx context.Context, id string) (*models.FAQ, error)
	ListFAQsByStatus(ctx context.Context, status models.Status) ([]models.FAQ, error)
	UpdateFAQ(ctx context.Context, f *models.FAQ) error
	DeleteFAQ(ctx context.Context, id string) (*models.FAQ, error)
}

type Translator interface {
	BuildTranslations(ctx context.Context, question, answer string, targetLanguages []models.LanguageCode, originalLanguage models.LanguageCode) models.Translations
}

type EventPublisher interface {
	Publish(event models.FAQEvent)
}

type FAQService struct {
	store      FAQStore
	cache      cache.Cache
	translator Translator
	events     EventPublisher
	cacheTTL   time.Duration
	log        *slog.Logger
}

type FAQServiceConfig struct {
	Store      FAQStore
	Cache      cache.Cache
	Translator Translator
	Events     EventPublisher // optional
	CacheTTL   time.Duration
	Logger     *slog.Logger
}

func NewFAQService(cfg FAQServiceConfig) *FAQService {
	log := cfg.Logger
	if log == nil {
		log = slog.Default()
	}
	return &FAQService{
		store:      cfg.Store,
		cache:      cfg.Cache,
		translator: cfg.Translator,
		events:     cfg.Events,
		cacheTTL:   cfg.CacheTTL,
		log:        log,
	}
}

func (s *FAQService) publish(eventType, id string) {
	if s.events != nil {
		s.events.Publish(models.FAQEvent{Type: eventType, ID: id})
	}
}

func listCacheKey(lang models.LanguageCode) string {
	return "faqs:" + lang.String()
}

func parseStatus(raw string, fallback models.Status) (models.Status, error) {
	if raw == "" {
		return fallback, nil
	}
	st := models.Status(strings.ToLower(strings.TrimSpace(raw)))
	if !st.Valid() {
		return "", helper.ValidationError("Status must be one of draft, published, archived")
	}
	return st, nil
}

func parseLanguage(raw string) (models.LanguageCode, error) {
	if strings.TrimSpace(raw) == "" {
		return models.DefaultLanguage, nil
	}
	code, err := models.ParseLanguageCode(raw)
	if err != nil {
		return "", helper.ValidationError(fmt.Sprintf("Invalid language code %q", raw))
	}
	return code, nil
}

func parseTargets(raw []string) (models.LanguageList, error) {
	targets, err := models.ParseLanguageList(raw)
	if err != nil {
		return nil, helper.ValidationError("Invalid target language: " + err.Error())
	}
	return targets, nil
}

func normalizeCategory(c *string) *string {
	if c == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*c)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

// Create translates the FAQ into its target languages and stores it.
// Translation failures only reduce coverage; they never fail the call.
func (s *FAQService) Create(ctx context.Context, adminID string, req models.CreateFAQRequest) (*models.FAQ, error) {
	question := strings.TrimSpace(req.Question)
	answer := strings.TrimSpace(req.Answer)
	if question == "" {
		return nil, helper.ValidationError("Question is required")
	}
	if answer == "" {
		return nil, helper.ValidationError("Answer is required")
	}

	original, err := parseLanguage(req.OriginalLanguage)
	if err != nil {
		return nil, err
	}
	targets, err := parseTargets(req.TargetLanguages)
	if err != nil {
		return nil, err
	}
	status, err := parseStatus(req.Status, models.StatusPublished)
	if err != nil {
		return nil, err
	}

	faq := &models.FAQ{
		OriginalLanguage: original,
		Status:           status,
		Category:         normalizeCategory(req.Category),
		TargetLanguages:  targets,
		Translations:     s.translator.BuildTranslations(ctx, question, answer, targets, original),
	}
	if adminID != "" {
		faq.CreatedBy = &adminID
	}

	if err := s.store.CreateFAQ(ctx, faq); err != nil {
		return nil, err
	}

	s.log.Info("faq created", "id", faq.ID, "languages", len(faq.Translations))
	s.publish(models.EventFAQCreated, faq.ID)
	return faq, nil
}

// Get returns the full record, translations included.
func (s *FAQService) Get(ctx context.Context, id string) (*models.FAQ, error) {
	if strings.TrimSpace(id) == "" {
		return nil, helper.ValidationError("Id is required")
	}
	faq, err := s.store.GetFAQ(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return nil, helper.NotFoundError("FAQ not found")
	}
	return faq, err
}

// Update applies the request on top of the stored record. Translations are
// rebuilt, and replaced wholesale, only when question, answer, target
// languages or original language actually change.
func (s *FAQService) Update(ctx context.Context, id string, req models.UpdateFAQRequest) (*models.FAQ, error) {
	existing, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	src, _ := existing.Source()
	question, answer := src.Question, src.Answer
	if req.Question != nil {
		question = strings.TrimSpace(*req.Question)
		if question == "" {
			return nil, helper.ValidationError("Question must not be empty")
		}
	}
	if req.Answer != nil {
		answer = strings.TrimSpace(*req.Answer)
		if answer == "" {
			return nil, helper.ValidationError("Answer must not be empty")
		}
	}

	targets := existing.TargetLanguages
	if req.TargetLanguages != nil {
		if targets, err = parseTargets(*req.TargetLanguages); err != nil {
			return nil, err
		}
	}

	original := existing.OriginalLanguage
	if req.OriginalLanguage != nil && strings.TrimSpace(*req.OriginalLanguage) != "" {
		if original, err = parseLanguage(*req.OriginalLanguage); err != nil {
			return nil, err
		}
	}

	status, err := parseStatus(ptrValue(req.Status), existing.Status)
	if err != nil {
		return nil, err
	}

	updated := *existing
	updated.Status = status
	if req.Category != nil {
		updated.Category = normalizeCategory(req.Category)
	}

	if translate.NeedsRetranslation(question, answer, targets, original, *existing) {
		if question == "" || answer == "" {
			return nil, helper.ValidationError("Question and answer are required")
		}
		updated.OriginalLanguage = original
		updated.TargetLanguages = targets
		updated.Translations = s.translator.BuildTranslations(ctx, question, answer, targets, original)
		s.log.Info("faq retranslated", "id", id, "languages", len(updated.Translations))
	}

	if err := s.store.UpdateFAQ(ctx, &updated); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, helper.NotFoundError("FAQ not found")
		}
		return nil, err
	}

	s.publish(models.EventFAQUpdated, id)
	return &updated, nil
}

// Delete removes the record and returns it as found; an unknown id yields
// (nil, nil).
func (s *FAQService) Delete(ctx context.Context, id string) (*models.FAQ, error) {
	if strings.TrimSpace(id) == "" {
		return nil, helper.ValidationError("Id is required")
	}
	faq, err := s.store.DeleteFAQ(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	s.publish(models.EventFAQDeleted, id)
	return faq, nil
}

// List returns every published FAQ resolved to lang. Results are served
// from the read cache when present; writes do not invalidate it, so a
// listing may be stale for up to the cache TTL.
func (s *FAQService) List(ctx context.Context, rawLang string) ([]models.FAQItem, error) {
	lang, err := parseLanguage(rawLang)
	if err != nil {
		return nil, err
	}
	key := listCacheKey(lang)

	if cached, err := s.cache.Get(ctx, key); err == nil {
		var items []models.FAQItem
		if err := json.Unmarshal(cached, &items); err == nil {
			return items, nil
		}
		s.log.Warn("discarding unreadable cache entry", "key", key)
	} else if !errors.Is(err, cache.ErrCacheMiss) {
		s.log.Warn("cache read failed", "key", key, "error", err)
	}

	faqs, err := s.store.ListFAQsByStatus(ctx, models.StatusPublished)
	if err != nil {
		return nil, err
	}

	items := make([]models.FAQItem, 0, len(faqs))
	for _, f := range faqs {
		if item, ok := ResolveTranslation(f, lang); ok {
			items = append(items, item)
		}
	}

	payload, err := json.Marshal(items)
	if err == nil {
		err = s.cache.Set(ctx, key, payload, s.cacheTTL)
	}
	if err != nil {
		s.log.Warn("cache write failed", "key", key, "error", err)
	}

	return items, nil
}

// ResolveTranslation picks the entry for lang, falling back to English.
// Records with neither are omitted (ok == false).
func ResolveTranslation(f models.FAQ, lang models.LanguageCode) (models.FAQItem, bool) {
	tr, ok := f.Translations[lang]
	if !ok {
		tr, ok = f.Translations[models.FallbackLanguage]
	}
	if !ok {
		return models.FAQItem{}, false
	}
	return models.FAQItem{
		ID:       f.ID,
		Question: tr.Question,
		Answer:   tr.Answer,
		Category: f.Category,
	}, true
}

func ptrValue(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
