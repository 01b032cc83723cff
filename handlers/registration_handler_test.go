package handlers

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"productcatalog/models"
)

func jsonRequest(method, target, body string) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	return req
}

func TestRegistrationHandler_StoreFormSuccess(t *testing.T) {
	app := newTestApp(t)

	rec := httptest.NewRecorder()
	app.registrations.Store(rec, formRequest(http.MethodPost, "/registrations", url.Values{
		"name":     {"Test User"},
		"email":    {"test@example.com"},
		"password": {"password123"},
	}))

	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/", rec.Header().Get("Location"))

	var count int
	require.NoError(t, app.db.QueryRow("SELECT COUNT(*) FROM registrations WHERE email = ?", "test@example.com").Scan(&count))
	assert.Equal(t, 1, count)

	next := httptest.NewRequest(http.MethodGet, "/", nil)
	carryCookies(rec, next)
	assert.Equal(t, "Registration successful!", app.flashes.Take(httptest.NewRecorder(), next).Success)
}

func TestRegistrationHandler_StoreFormValidationRedirectsBack(t *testing.T) {
	app := newTestApp(t)

	rec := httptest.NewRecorder()
	app.registrations.Store(rec, formRequest(http.MethodPost, "/registrations", url.Values{
		"name":     {"Test User"},
		"email":    {"invalid-email"},
		"password": {"short"},
	}))

	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/registrations/create", rec.Header().Get("Location"))

	next := httptest.NewRequest(http.MethodGet, "/registrations/create", nil)
	next.Header.Set(InertiaHeader, "true")
	carryCookies(rec, next)
	page := httptest.NewRecorder()
	app.registrations.Create(page, next)
	require.Equal(t, http.StatusOK, page.Code)

	var body struct {
		Component string                       `json:"component"`
		Props     models.RegistrationFormProps `json:"props"`
	}
	decodeBody(t, page, &body)
	assert.Equal(t, RegistrationFormComponent, body.Component)
	assert.Contains(t, body.Props.Errors, "email")
	assert.Contains(t, body.Props.Errors, "password")
	assert.Equal(t, "Test User", body.Props.Old["name"])
	assert.NotContains(t, body.Props.Old, "password")
}

func TestRegistrationHandler_StoreJSON(t *testing.T) {
	app := newTestApp(t)

	rec := httptest.NewRecorder()
	app.registrations.Store(rec, jsonRequest(http.MethodPost, "/registrations",
		`{"name":"Jane","email":"jane@example.com","password":"password123"}`))
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.NotContains(t, rec.Body.String(), "password")

	dup := httptest.NewRecorder()
	app.registrations.Store(dup, jsonRequest(http.MethodPost, "/registrations",
		`{"name":"Jane","email":"jane@example.com","password":"password123"}`))
	require.Equal(t, http.StatusUnprocessableEntity, dup.Code)

	var body models.ValidationErrorResponse
	decodeBody(t, dup, &body)
	assert.Equal(t, []string{"The email has already been taken."}, body.Errors["email"])
}

func TestRegistrationHandler_StoreMalformedJSON(t *testing.T) {
	app := newTestApp(t)

	rec := httptest.NewRecorder()
	app.registrations.Store(rec, jsonRequest(http.MethodPost, "/registrations", `{"name":`))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRegistrationHandler_CreateEmptyForm(t *testing.T) {
	app := newTestApp(t)

	req := httptest.NewRequest(http.MethodGet, "/registrations/create", nil)
	req.Header.Set(InertiaHeader, "true")
	rec := httptest.NewRecorder()
	app.registrations.Create(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t,
		`{"component":"Registrations/Create","props":{"flash":{},"errors":{},"old":{}},"url":"/registrations/create","version":"test"}`,
		rec.Body.String())
}

func TestRegistrationHandler_ValidateEmail(t *testing.T) {
	app := newTestApp(t)
	seed := httptest.NewRecorder()
	app.registrations.Store(seed, jsonRequest(http.MethodPost, "/registrations",
		`{"name":"Taken","email":"taken@example.com","password":"password123"}`))
	require.Equal(t, http.StatusCreated, seed.Code)

	t.Run("taken", func(t *testing.T) {
		rec := httptest.NewRecorder()
		app.registrations.ValidateEmail(rec, jsonRequest(http.MethodPost, "/api/validate-email", `{"email":"taken@example.com"}`))
		require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

		var body models.ValidationErrorResponse
		decodeBody(t, rec, &body)
		assert.Equal(t, []string{"This email address is already taken."}, body.Errors["email"])
	})

	t.Run("available", func(t *testing.T) {
		rec := httptest.NewRecorder()
		app.registrations.ValidateEmail(rec, jsonRequest(http.MethodPost, "/api/validate-email", `{"email":"available@example.com"}`))
		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"exists":false}`, rec.Body.String())
	})

	t.Run("missing", func(t *testing.T) {
		rec := httptest.NewRecorder()
		app.registrations.ValidateEmail(rec, jsonRequest(http.MethodPost, "/api/validate-email", ``))
		require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		assert.Contains(t, rec.Body.String(), "The email field is required.")
	})

	t.Run("invalid", func(t *testing.T) {
		rec := httptest.NewRecorder()
		app.registrations.ValidateEmail(rec, jsonRequest(http.MethodPost, "/api/validate-email", `{"email":"not-an-email"}`))
		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	})
}
