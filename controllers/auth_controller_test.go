package controllers

import (
	"net/http"
	"testing"

	"trackventory/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestRegisterValidation(t *testing.T) {
	s := setupTestSrv(t)
	ct := NewAuthController(s)

	w := perform(t, ct.Register, "POST", "/api/register", `{"name": "Sam", "email": "not-an-email", "password": "short"}`, nil)
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	errs := decodeBody(t, w)["errors"].(map[string]interface{})
	assert.Contains(t, errs, "email")
	assert.Contains(t, errs, "password")
	msgs := errs["password"].([]interface{})
	assert.Equal(t, "The password field must be at least 8 characters.", msgs[0])
}

func TestLoginUnknownEmail(t *testing.T) {
	s := setupTestSrv(t)
	ct := NewAuthController(s)

	w := perform(t, ct.Login, "POST", "/api/login", `{"email": "ghost@example.com", "password": "whatever1"}`, nil)
	require.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Invalid credentials", decodeBody(t, w)["message"])
}

func TestLoginWrongPassword(t *testing.T) {
	s := setupTestSrv(t)
	ct := NewAuthController(s)

	hash, err := bcrypt.GenerateFromPassword([]byte("correct-horse"), bcrypt.MinCost)
	require.NoError(t, err)
	user := models.User{Name: "Sam", Email: "sam@example.com", Password: string(hash)}
	require.NoError(t, s.DB.Create(&user).Error)

	w := perform(t, ct.Login, "POST", "/api/login", `{"email": "sam@example.com", "password": "battery-staple"}`, nil)
	require.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Invalid credentials", decodeBody(t, w)["message"])
}
