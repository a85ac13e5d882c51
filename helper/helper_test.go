package helper

import (
	"errors"
	"fmt"
	"math"
	"net/http"
	"net/http/httptest"
	"testing"

	"blogicum/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/go-playground/validator.v9"
)

func TestUnderscore(t *testing.T) {
	cases := map[string]string{
		"PubDate":    "pub_date",
		"CategoryID": "category_id",
		"ID":         "id",
		"Title":      "title",
		"FirstName":  "first_name",
	}
	for in, want := range cases {
		assert.Equal(t, want, Underscore(in), in)
	}
}

func TestPageNumber(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := map[string]int{
		"":        1,
		"?page=3": 3,
		"?page=0": 0,
		"?page=x": 1,
		"?page=-": 1,

		"?page=99999999999999999999":  math.MaxInt,
		"?page=-99999999999999999999": 1,
	}
	for query, want := range cases {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/"+query, nil)
		assert.Equal(t, want, PageNumber(c), query)
	}
}

func TestValidatorCustomRules(t *testing.T) {
	h := NewHTTPHelper()

	err := h.ValidateStruct(models.CategoryRequest{Title: "Travel", Description: "d", Slug: "bad slug!"})
	require.Error(t, err)
	var verrs validator.ValidationErrors
	require.True(t, errors.As(err, &verrs))
	assert.Equal(t, "slug", verrs[0].Tag())

	assert.NoError(t, h.ValidateStruct(models.CategoryRequest{Title: "Travel", Description: "d", Slug: "travel_2024"}))
	assert.NoError(t, h.ValidateStruct(models.ProfileForm{Username: "jane.doe+blog"}))
	assert.Error(t, h.ValidateStruct(models.ProfileForm{Username: "jane doe"}))
}

func TestGetStatusCode(t *testing.T) {
	h := NewHTTPHelper()

	assert.Equal(t, http.StatusOK, h.GetStatusCode(nil))
	assert.Equal(t, http.StatusNotFound, h.GetStatusCode(models.ErrorNotFound{Resource: "post"}))
	assert.Equal(t, http.StatusNotFound, h.GetStatusCode(fmt.Errorf("wrapped: %w", models.ErrorNotFound{Resource: "post"})))
	assert.Equal(t, http.StatusForbidden, h.GetStatusCode(models.ErrorForbidden{}))
	assert.Equal(t, http.StatusBadRequest, h.GetStatusCode(models.NewValidationError("title", "required")))
	assert.Equal(t, http.StatusInternalServerError, h.GetStatusCode(errors.New("boom")))
}

func TestGeneratePaging(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := NewHTTPHelper()

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "http://example.com/?page=2", nil)

	paging := h.GeneratePaging(c, models.Page{CurrentPage: 2, TotalPages: 3, PerPage: 10, TotalRecords: 25, HasNext: true, HasPrev: true})
	links := paging["links"].(map[string]interface{})
	assert.Equal(t, "http://example.com/?page=1", links["previous"])
	assert.Equal(t, "http://example.com/?page=3", links["next"])
	assert.Equal(t, "http://example.com/?page=3", links["last"])
	assert.Equal(t, 3, paging["total_pages"])
}

func TestSendServiceError(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := NewHTTPHelper()

	tests := []struct {
		err      error
		status   int
		codeType string
	}{
		{models.ErrorNotFound{Resource: "post"}, http.StatusNotFound, "notFound"},
		{models.ErrorUnauthorized{Message: "login"}, http.StatusUnauthorized, "unAuthorized"},
		{models.ErrorForbidden{Message: "no"}, http.StatusForbidden, "forbidden"},
		{models.NewValidationError("slug", "taken"), http.StatusBadRequest, "validationError"},
		{errors.New("boom"), http.StatusInternalServerError, "internalError"},
	}

	for _, tt := range tests {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

		require.NoError(t, h.SendServiceError(c, tt.err))
		assert.Equal(t, tt.status, w.Code, tt.err.Error())
		assert.Contains(t, w.Body.String(), fmt.Sprintf("%q", tt.codeType))
	}

	// Internal causes stay in the log.
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	h.SendServiceError(c, errors.New("pq: password authentication failed"))
	assert.NotContains(t, w.Body.String(), "password")
}

func TestRedirectIsSeeOther(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := NewHTTPHelper()

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/posts/1/edit/", nil)

	h.Redirect(c, "/posts/1/")
	c.Writer.WriteHeaderNow()
	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/posts/1/", w.Header().Get("Location"))
}
