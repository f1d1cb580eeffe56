package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/lib/pq"

	"github.com/stressbuster/stressbuster-api/models"
)

const resourceColumns = `r.id, COALESCE(r.category_id, ''), COALESCE(rc.name, ''), r.title, r.description,
	r.resource_type, r.file_url, r.thumbnail_url, r.duration_seconds, r.language, r.tags,
	r.view_count, r.download_count, r.is_featured, r.is_active, r.created_at`

const resourceFrom = ` FROM resources r LEFT JOIN resource_categories rc ON r.category_id = rc.id`

type resourceStore struct {
	db *sql.DB
}

func scanResource(row rowScanner) (*models.Resource, error) {
	r := &models.Resource{}
	err := row.Scan(&r.ID, &r.CategoryID, &r.CategoryName, &r.Title, &r.Description,
		&r.ResourceType, &r.FileURL, &r.ThumbnailURL, &r.DurationSeconds, &r.Language, pq.Array(&r.Tags),
		&r.ViewCount, &r.DownloadCount, &r.IsFeatured, &r.IsActive, &r.CreatedAt)
	if err != nil {
		return nil, err
	}
	if r.Tags == nil {
		r.Tags = []string{}
	}
	return r, nil
}

func (s *resourceStore) ListCategories(ctx context.Context) ([]models.ResourceCategory, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, description, icon, display_order FROM resource_categories ORDER BY display_order`)
	if err != nil {
		return nil, translateError(err)
	}
	defer rows.Close()

	categories := []models.ResourceCategory{}
	for rows.Next() {
		var c models.ResourceCategory
		if err := rows.Scan(&c.ID, &c.Name, &c.Description, &c.Icon, &c.DisplayOrder); err != nil {
			return nil, err
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

func (s *resourceStore) InsertCategory(ctx context.Context, c models.ResourceCategory) (*models.ResourceCategory, error) {
	if c.ID == "" {
		c.ID = newID()
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO resource_categories (id, name, description, icon, display_order) VALUES ($1, $2, $3, $4, $5)`,
		c.ID, c.Name, c.Description, c.Icon, c.DisplayOrder,
	)
	if err != nil {
		return nil, translateError(err)
	}
	return &c, nil
}

// whereClause builds the filter predicates and their positional args
func whereClause(f models.ResourceFilter) (string, []interface{}) {
	conds := []string{"r.is_active = TRUE"}
	var args []interface{}
	add := func(cond string, v interface{}) {
		args = append(args, v)
		conds = append(conds, fmt.Sprintf(cond, len(args)))
	}
	if f.CategoryID != "" {
		add("r.category_id = $%d", f.CategoryID)
	}
	if f.ResourceType != "" {
		add("r.resource_type = $%d", f.ResourceType)
	}
	if f.Language != "" {
		add("r.language = $%d", f.Language)
	}
	if f.FeaturedOnly {
		conds = append(conds, "r.is_featured = TRUE")
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

func (s *resourceStore) List(ctx context.Context, f models.ResourceFilter) ([]models.Resource, int64, error) {
	where, args := whereClause(f)

	var total int64
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM resources r`+where, args...).Scan(&total); err != nil {
		return nil, 0, translateError(err)
	}

	limit, page := f.Limit, f.Page
	if limit < 1 {
		limit = 1
	}
	if page < 1 {
		page = 1
	}
	args = append(args, limit, (page-1)*limit)
	query := `SELECT ` + resourceColumns + resourceFrom + where +
		fmt.Sprintf(` ORDER BY r.is_featured DESC, r.view_count DESC, r.created_at DESC LIMIT $%d OFFSET $%d`, len(args)-1, len(args))

	resources, err := s.query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	return resources, total, nil
}

func (s *resourceStore) Featured(ctx context.Context, limit int64) ([]models.Resource, error) {
	return s.query(ctx, `SELECT `+resourceColumns+resourceFrom+`
		WHERE r.is_featured = TRUE AND r.is_active = TRUE
		ORDER BY r.is_featured DESC, r.view_count DESC, r.created_at DESC LIMIT $1`, limit)
}

func (s *resourceStore) query(ctx context.Context, query string, args ...interface{}) ([]models.Resource, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, translateError(err)
	}
	defer rows.Close()

	resources := []models.Resource{}
	for rows.Next() {
		r, err := scanResource(rows)
		if err != nil {
			return nil, err
		}
		resources = append(resources, *r)
	}
	return resources, rows.Err()
}

func (s *resourceStore) FindActiveByID(ctx context.Context, id string) (*models.Resource, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+resourceColumns+resourceFrom+` WHERE r.id = $1 AND r.is_active = TRUE`, id)
	r, err := scanResource(row)
	if err != nil {
		return nil, translateError(err)
	}
	return r, nil
}

func (s *resourceStore) IncrementViews(ctx context.Context, id string) error {
	_, err := s.db.ExecContext(ctx, `UPDATE resources SET view_count = view_count + 1 WHERE id = $1`, id)
	return translateError(err)
}

func (s *resourceStore) InsertOne(ctx context.Context, r models.Resource) (*models.Resource, error) {
	if r.ID == "" {
		r.ID = newID()
	}
	if r.Tags == nil {
		r.Tags = []string{}
	}
	if r.Language == "" {
		r.Language = "en"
	}
	err := s.db.QueryRowContext(ctx, `
		INSERT INTO resources (id, category_id, title, description, resource_type, file_url, thumbnail_url,
			duration_seconds, language, tags, is_featured, is_active)
		VALUES ($1, NULLIF($2, ''), $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING created_at`,
		r.ID, r.CategoryID, r.Title, r.Description, r.ResourceType, r.FileURL, r.ThumbnailURL,
		r.DurationSeconds, r.Language, pq.Array(r.Tags), r.IsFeatured, r.IsActive,
	).Scan(&r.CreatedAt)
	if err != nil {
		return nil, translateError(err)
	}
	return &r, nil
}
