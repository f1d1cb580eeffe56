package handlers

import (
	"net/http"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/stressbuster/stressbuster-api/databases"
	"github.com/stressbuster/stressbuster-api/models"
)

const (
	defaultResourceLimit = 10
	maxResourceLimit     = 100
	featuredLimit        = 6
)

// Resource exists for handling psychoeducation resource requests
type Resource struct {
	Base
	DB databases.ResourceDatabase
}

// CategoriesHandler lists the resource categories in display order
func (rs Resource) CategoriesHandler(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := rs.queryContext(r)
	defer cancel()

	categories, err := rs.DB.ListCategories(ctx)
	if err != nil {
		rs.Render.Error(w, r, err)
		return
	}
	rs.Render.Success(w, http.StatusOK, "Categories retrieved successfully", categories)
}

// ListHandler lists active resources filtered by category, type, language and featured
func (rs Resource) ListHandler(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	f := models.ResourceFilter{
		CategoryID:   q.Get("category"),
		ResourceType: q.Get("type"),
		Language:     q.Get("language"),
		FeaturedOnly: q.Get("featured") == "true",
		Page:         queryInt(r, "page", 1),
		Limit:        queryInt(r, "limit", defaultResourceLimit),
	}
	if f.Limit > maxResourceLimit {
		f.Limit = maxResourceLimit
	}

	ctx, cancel := rs.queryContext(r)
	defer cancel()

	resources, total, err := rs.DB.List(ctx, f)
	if err != nil {
		rs.Render.Error(w, r, err)
		return
	}
	rs.Render.Paginated(w, "Resources retrieved successfully", resources, models.NewPagination(f.Page, f.Limit, total))
}

// FeaturedHandler lists the most viewed featured resources
func (rs Resource) FeaturedHandler(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := rs.queryContext(r)
	defer cancel()

	resources, err := rs.DB.Featured(ctx, featuredLimit)
	if err != nil {
		rs.Render.Error(w, r, err)
		return
	}
	rs.Render.Success(w, http.StatusOK, "Featured resources retrieved successfully", resources)
}

// ResourceHandler returns a single active resource and counts the view
func (rs Resource) ResourceHandler(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	ctx, cancel := rs.queryContext(r)
	defer cancel()

	res, err := rs.DB.FindActiveByID(ctx, id)
	if err != nil {
		rs.Render.Error(w, r, notFoundAs(err, "Resource not found"))
		return
	}
	if err := rs.DB.IncrementViews(ctx, id); err != nil {
		zap.S().Warnw("failed to count resource view", "resourceId", id, "error", err)
	}
	rs.Render.Success(w, http.StatusOK, "Resource retrieved successfully", res)
}

type createResourceRequest struct {
	CategoryID      string   `json:"category_id"`
	Title           string   `json:"title"`
	Description     string   `json:"description"`
	ResourceType    string   `json:"resource_type"`
	FileURL         string   `json:"file_url"`
	ThumbnailURL    string   `json:"thumbnail_url"`
	DurationSeconds int      `json:"duration_seconds"`
	Language        string   `json:"language"`
	Tags            []string `json:"tags"`
	IsFeatured      bool     `json:"is_featured"`
}

func (req createResourceRequest) validate() error {
	var fe fieldErrors
	fe.check(req.CategoryID != "", "category_id", "Category is required")
	fe.check(req.Title != "", "title", "Title is required")
	switch req.ResourceType {
	case models.ResourceVideo, models.ResourcePDF, models.ResourceAudio, models.ResourceArticle:
	default:
		fe.check(false, "resource_type", "Resource type must be one of video, pdf, audio, article")
	}
	fe.check(req.DurationSeconds >= 0, "duration_seconds", "Duration cannot be negative")
	return fe.err()
}

// CreateHandler adds a resource, admin only
func (rs Resource) CreateHandler(w http.ResponseWriter, r *http.Request) {
	var req createResourceRequest
	if err := decodeBody(r, &req); err != nil {
		rs.Render.Error(w, r, err)
		return
	}
	if err := req.validate(); err != nil {
		rs.Render.Error(w, r, err)
		return
	}
	if req.Language == "" {
		req.Language = "en"
	}

	ctx, cancel := rs.queryContext(r)
	defer cancel()

	res, err := rs.DB.InsertOne(ctx, models.Resource{
		CategoryID:      req.CategoryID,
		Title:           req.Title,
		Description:     req.Description,
		ResourceType:    req.ResourceType,
		FileURL:         req.FileURL,
		ThumbnailURL:    req.ThumbnailURL,
		DurationSeconds: req.DurationSeconds,
		Language:        req.Language,
		Tags:            req.Tags,
		IsFeatured:      req.IsFeatured,
		IsActive:        true,
	})
	if err != nil {
		rs.Render.Error(w, r, err)
		return
	}
	rs.Render.Success(w, http.StatusCreated, "Resource created successfully", res)
}
