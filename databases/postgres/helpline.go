package postgres

import (
	"context"
	"database/sql"

	"github.com/stressbuster/stressbuster-api/models"
)

type helplineStore struct {
	db *sql.DB
}

func (s *helplineStore) ListActive(ctx context.Context) ([]models.Helpline, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, phone, description, category, available_hours, language_support,
			is_toll_free, country_code, display_order, is_active
		FROM helpline_numbers
		WHERE is_active = TRUE
		ORDER BY display_order`)
	if err != nil {
		return nil, translateError(err)
	}
	defer rows.Close()

	helplines := []models.Helpline{}
	for rows.Next() {
		var h models.Helpline
		err := rows.Scan(&h.ID, &h.Name, &h.Phone, &h.Description, &h.Category, &h.AvailableHours,
			&h.LanguageSupport, &h.IsTollFree, &h.CountryCode, &h.DisplayOrder, &h.IsActive)
		if err != nil {
			return nil, err
		}
		helplines = append(helplines, h)
	}
	return helplines, rows.Err()
}

func (s *helplineStore) InsertOne(ctx context.Context, h models.Helpline) (*models.Helpline, error) {
	if h.ID == "" {
		h.ID = newID()
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO helpline_numbers (id, name, phone, description, category, available_hours,
			language_support, is_toll_free, country_code, display_order, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		h.ID, h.Name, h.Phone, h.Description, h.Category, h.AvailableHours,
		h.LanguageSupport, h.IsTollFree, h.CountryCode, h.DisplayOrder, h.IsActive,
	)
	if err != nil {
		return nil, translateError(err)
	}
	return &h, nil
}
