package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/stressbuster/stressbuster-api/databases"
	"github.com/stressbuster/stressbuster-api/models"
)

func TestResource_List(t *testing.T) {
	a := newTestApp(t)
	want := models.ResourceFilter{CategoryID: "c1", ResourceType: models.ResourceVideo, Language: "en", Page: 2, Limit: 100}
	a.resources.On("List", anyCtx, want).Return([]models.Resource{{ID: "r1", Title: "Breathing"}}, int64(101), nil)

	response := a.executeRequest(newRequest("GET", "/api/resources?category=c1&type=video&language=en&page=2&limit=500", nil, ""))

	checkResponseCode(t, http.StatusOK, response.Code)
	e := decode(t, response)
	require.NotNil(t, e.Pagination)
	assert.Equal(t, models.Pagination{Page: 2, Limit: 100, Total: 101, TotalPages: 2}, *e.Pagination)
	var resources []models.Resource
	require.NoError(t, json.Unmarshal(e.Data, &resources))
	assert.Equal(t, "Breathing", resources[0].Title)
}

func TestResource_ListDefaults(t *testing.T) {
	a := newTestApp(t)
	a.resources.On("List", anyCtx, models.ResourceFilter{FeaturedOnly: true, Page: 1, Limit: 10}).Return(nil, int64(0), nil)

	response := a.executeRequest(newRequest("GET", "/api/resources?featured=true&page=-3", nil, ""))

	checkResponseCode(t, http.StatusOK, response.Code)
	assert.Equal(t, int64(0), decode(t, response).Pagination.TotalPages)
}

func TestResource_Featured(t *testing.T) {
	a := newTestApp(t)
	a.resources.On("Featured", anyCtx, int64(featuredLimit)).Return([]models.Resource{{ID: "r1", IsFeatured: true}}, nil)

	response := a.executeRequest(newRequest("GET", "/api/resources/featured/list", nil, ""))

	checkResponseCode(t, http.StatusOK, response.Code)
}

func TestResource_Categories(t *testing.T) {
	a := newTestApp(t)
	a.resources.On("ListCategories", anyCtx).Return(nil, errors.New("connection reset"))

	response := a.executeRequest(newRequest("GET", "/api/resources/categories", nil, ""))

	checkResponseCode(t, http.StatusInternalServerError, response.Code)
	assert.Equal(t, "Internal Server Error", decode(t, response).Message)
}

func TestResource_Get(t *testing.T) {
	a := newTestApp(t)
	a.resources.On("FindActiveByID", anyCtx, "r1").Return(&models.Resource{ID: "r1", ViewCount: 4}, nil)
	a.resources.On("IncrementViews", anyCtx, "r1").Return(errors.New("write conflict"))

	response := a.executeRequest(newRequest("GET", "/api/resources/r1", nil, ""))

	checkResponseCode(t, http.StatusOK, response.Code)
}

func TestResource_GetNotFound(t *testing.T) {
	a := newTestApp(t)
	a.resources.On("FindActiveByID", anyCtx, "gone").Return(nil, databases.ErrNotFound)

	response := a.executeRequest(newRequest("GET", "/api/resources/gone", nil, ""))

	checkResponseCode(t, http.StatusNotFound, response.Code)
	assert.Equal(t, "Resource not found", decode(t, response).Message)
	a.resources.AssertNotCalled(t, "IncrementViews", mock.Anything, mock.Anything)
}

func TestResource_Create(t *testing.T) {
	a := newTestApp(t)
	a.resources.On("InsertOne", anyCtx, mock.MatchedBy(func(r models.Resource) bool {
		return r.Language == "en" && r.IsActive && r.Title == "Sleep hygiene"
	})).Return(&models.Resource{ID: "r9", Title: "Sleep hygiene"}, nil)

	body := map[string]interface{}{"category_id": "c1", "title": "Sleep hygiene", "resource_type": "article"}
	response := a.executeRequest(newRequest("POST", "/api/admin/resources", body, adminToken(t)))

	checkResponseCode(t, http.StatusCreated, response.Code)
	assert.Equal(t, "Resource created successfully", decode(t, response).Message)
}

func TestResource_CreateUnknownCategory(t *testing.T) {
	a := newTestApp(t)
	a.resources.On("InsertOne", anyCtx, mock.Anything).Return(nil, databases.ErrInvalidReference)

	body := map[string]interface{}{"category_id": "nope", "title": "x", "resource_type": "pdf"}
	response := a.executeRequest(newRequest("POST", "/api/admin/resources", body, adminToken(t)))

	checkResponseCode(t, http.StatusBadRequest, response.Code)
}

func TestResource_CreateValidation(t *testing.T) {
	a := newTestApp(t)

	body := map[string]interface{}{"resource_type": "movie", "duration_seconds": -1}
	response := a.executeRequest(newRequest("POST", "/api/admin/resources", body, adminToken(t)))

	checkResponseCode(t, http.StatusBadRequest, response.Code)
	e := decode(t, response)
	assert.Equal(t, "Validation failed", e.Message)
	assert.Len(t, e.Errors, 4)
}

func TestResource_CreateRequiresAdmin(t *testing.T) {
	a := newTestApp(t)

	response := a.executeRequest(newRequest("POST", "/api/admin/resources", map[string]string{}, userToken(t, "u1")))

	checkResponseCode(t, http.StatusForbidden, response.Code)
}

func TestHelplines(t *testing.T) {
	a := newTestApp(t)
	a.helplines.On("ListActive", anyCtx).Return([]models.Helpline{{ID: "h1", Name: "Crisis line", Phone: "988"}}, nil)

	response := a.executeRequest(newRequest("GET", "/api/helplines", nil, ""))

	checkResponseCode(t, http.StatusOK, response.Code)
	assert.Equal(t, "Helpline numbers retrieved successfully", decode(t, response).Message)
}
