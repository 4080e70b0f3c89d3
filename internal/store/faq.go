package store

import (
	"context"
	"database/sql"
	"fmt"

	"faq-service/internal/models"

	"github.com/google/uuid"
)

const faqColumns = "id, original_language, status, category, target_languages, translations, created_by, created_at, updated_at"

type rowScanner interface {
	Scan(dest ...any) error
}

func scanFAQ(row rowScanner) (*models.FAQ, error) {
	var (
		f         models.FAQ
		lang      string
		status    string
		category  sql.NullString
		createdBy sql.NullString
	)

	err := row.Scan(
		&f.ID,
		&lang,
		&status,
		&category,
		&f.TargetLanguages,
		&f.Translations,
		&createdBy,
		&f.CreatedAt,
		&f.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	f.OriginalLanguage = models.LanguageCode(lang)
	f.Status = models.Status(status)
	if category.Valid {
		f.Category = &category.String
	}
	if createdBy.Valid {
		f.CreatedBy = &createdBy.String
	}
	return &f, nil
}

func nullable(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}

// CreateFAQ assigns the id and timestamps and inserts the record.
func (s *Store) CreateFAQ(ctx context.Context, f *models.FAQ) error {
	now := s.now()
	f.ID = uuid.NewString()
	f.CreatedAt = now
	f.UpdatedAt = now
	if f.OriginalLanguage == "" {
		f.OriginalLanguage = models.DefaultLanguage
	}
	if f.Status == "" {
		f.Status = models.StatusDraft
	}

	_, err := s.db.ExecContext(ctx,
		"INSERT INTO faqs ("+faqColumns+") VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)",
		f.ID,
		string(f.OriginalLanguage),
		string(f.Status),
		nullable(f.Category),
		f.TargetLanguages,
		f.Translations,
		nullable(f.CreatedBy),
		f.CreatedAt,
		f.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("inserting faq: %w", err)
	}
	return nil
}

func (s *Store) GetFAQ(ctx context.Context, id string) (*models.FAQ, error) {
	f, err := scanFAQ(s.db.QueryRowContext(ctx,
		"SELECT "+faqColumns+" FROM faqs WHERE id = ?", id))
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	return f, err
}

func (s *Store) ListFAQsByStatus(ctx context.Context, status models.Status) ([]models.FAQ, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT "+faqColumns+" FROM faqs WHERE status = ? ORDER BY created_at ASC, id ASC",
		string(status),
	)
	if err != nil {
		return nil, fmt.Errorf("listing faqs: %w", err)
	}
	defer rows.Close()

	faqs := []models.FAQ{}
	for rows.Next() {
		f, err := scanFAQ(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning faq: %w", err)
		}
		faqs = append(faqs, *f)
	}
	return faqs, rows.Err()
}

// UpdateFAQ overwrites every mutable column of an existing record.
func (s *Store) UpdateFAQ(ctx context.Context, f *models.FAQ) error {
	f.UpdatedAt = s.now()

	res, err := s.db.ExecContext(ctx,
		`UPDATE faqs SET original_language = ?, status = ?, category = ?,
			target_languages = ?, translations = ?, updated_at = ?
		WHERE id = ?`,
		string(f.OriginalLanguage),
		string(f.Status),
		nullable(f.Category),
		f.TargetLanguages,
		f.Translations,
		f.UpdatedAt,
		f.ID,
	)
	if err != nil {
		return fmt.Errorf("updating faq: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteFAQ removes the record and returns it as it was found.
func (s *Store) DeleteFAQ(ctx context.Context, id string) (*models.FAQ, error) {
	f, err := s.GetFAQ(ctx, id)
	if err != nil {
		return nil, err
	}

	if _, err := s.db.ExecContext(ctx, "DELETE FROM faqs WHERE id = ?", id); err != nil {
		return nil, fmt.Errorf("deleting faq: %w", err)
	}
	return f, nil
}
