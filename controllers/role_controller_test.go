package controllers

import (
	"fmt"
	"net/http"
	"testing"

	"trackventory/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoleCreateShowRoundTrip(t *testing.T) {
	s := setupTestSrv(t)
	ct := NewRoleController(s)

	w := perform(t, ct.Store, "POST", "/api/roles", `{"role_name": "Manager", "description": "Department manager role"}`, nil)
	require.Equal(t, http.StatusCreated, w.Code)
	resp := decodeBody(t, w)
	assert.Equal(t, "Role created successfully", resp["message"])
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, "Manager", data["role_name"])
	id := fmt.Sprintf("%.0f", data["id"].(float64))

	w = perform(t, ct.Show, "GET", "/api/roles/"+id, "", idParam(id))
	require.Equal(t, http.StatusOK, w.Code)
	data = decodeBody(t, w)["data"].(map[string]interface{})
	assert.Equal(t, "Manager", data["role_name"])
	assert.Equal(t, "Department manager role", data["description"])
}

func TestRoleStoreMissingName(t *testing.T) {
	s := setupTestSrv(t)
	ct := NewRoleController(s)

	w := perform(t, ct.Store, "POST", "/api/roles", `{"description": "no name"}`, nil)
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	errs := decodeBody(t, w)["errors"].(map[string]interface{})
	msgs := errs["role_name"].([]interface{})
	assert.Equal(t, "The role name field is required.", msgs[0])
}

func TestRoleStoreDuplicateName(t *testing.T) {
	s := setupTestSrv(t)
	ct := NewRoleController(s)

	w := perform(t, ct.Store, "POST", "/api/roles", `{"role_name": "Admin"}`, nil)
	require.Equal(t, http.StatusCreated, w.Code)

	w = perform(t, ct.Store, "POST", "/api/roles", `{"role_name": "Admin"}`, nil)
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	errs := decodeBody(t, w)["errors"].(map[string]interface{})
	msgs := errs["role_name"].([]interface{})
	assert.Equal(t, "The role name has already been taken.", msgs[0])
}

func TestRoleDestroyBlockedByUsers(t *testing.T) {
	s := setupTestSrv(t)
	ct := NewRoleController(s)

	role := models.Role{RoleName: "Admin"}
	require.NoError(t, s.DB.Create(&role).Error)
	user := models.User{Name: "Sam", Email: "sam@example.com", Password: "x", RoleID: &role.ID}
	require.NoError(t, s.DB.Create(&user).Error)

	w := perform(t, ct.Destroy, "DELETE", "/api/roles/1", "", idParam(fmt.Sprint(role.ID)))
	require.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "Cannot delete role with associated users", decodeBody(t, w)["message"])

	// Role and user are untouched.
	var n int64
	s.DB.Model(&models.Role{}).Count(&n)
	assert.Equal(t, int64(1), n)
	s.DB.Model(&models.User{}).Count(&n)
	assert.Equal(t, int64(1), n)
}

func TestRoleDestroyWithoutUsers(t *testing.T) {
	s := setupTestSrv(t)
	ct := NewRoleController(s)

	role := models.Role{RoleName: "Temp"}
	require.NoError(t, s.DB.Create(&role).Error)

	w := perform(t, ct.Destroy, "DELETE", "/api/roles/1", "", idParam(fmt.Sprint(role.ID)))
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = perform(t, ct.Destroy, "DELETE", "/api/roles/1", "", idParam(fmt.Sprint(role.ID)))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRoleShowNonNumericID(t *testing.T) {
	s := setupTestSrv(t)
	ct := NewRoleController(s)

	w := perform(t, ct.Show, "GET", "/api/roles/abc", "", idParam("abc"))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRoleUpdate(t *testing.T) {
	s := setupTestSrv(t)
	ct := NewRoleController(s)

	role := models.Role{RoleName: "Manager"}
	require.NoError(t, s.DB.Create(&role).Error)

	w := perform(t, ct.Update, "PUT", "/api/roles/1", `{"role_name": "Senior Manager"}`, idParam(fmt.Sprint(role.ID)))
	require.Equal(t, http.StatusOK, w.Code)
	data := decodeBody(t, w)["data"].(map[string]interface{})
	assert.Equal(t, "Senior Manager", data["role_name"])
}
