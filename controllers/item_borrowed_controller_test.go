package controllers

import (
	"fmt"
	"net/http"
	"testing"

	"trackventory/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type borrowDeps struct {
	user   models.User
	item   models.Item
	status models.BorrowStatus
}

func createBorrowDeps(t *testing.T, s *Srv) borrowDeps {
	t.Helper()
	role := models.Role{RoleName: "Student"}
	require.NoError(t, s.DB.Create(&role).Error)
	user := models.User{Name: "Alex", Email: "alex@example.com", Password: "x", RoleID: &role.ID}
	require.NoError(t, s.DB.Create(&user).Error)
	cat := models.Category{CategoryName: "Electronics"}
	require.NoError(t, s.DB.Create(&cat).Error)
	item := models.Item{CategoryID: cat.ID, ItemName: "Laptop", Stock: 25}
	require.NoError(t, s.DB.Create(&item).Error)
	status := models.BorrowStatus{StatusName: "Borrowed", BadgeColor: "#007BFF"}
	require.NoError(t, s.DB.Create(&status).Error)
	return borrowDeps{user: user, item: item, status: status}
}

func TestItemBorrowedCreateEchoesDates(t *testing.T) {
	s := setupTestSrv(t)
	ct := NewItemBorrowedController(s)
	deps := createBorrowDeps(t, s)

	body := fmt.Sprintf(
		`{"user_id": %d, "item_id": %d, "borrow_status_id": %d, "quantity": 2, "borrow_date": "2030-12-01", "due_date": "2030-12-15"}`,
		deps.user.ID, deps.item.ID, deps.status.ID)
	w := perform(t, ct.Store, "POST", "/api/item-borroweds", body, nil)
	require.Equal(t, http.StatusCreated, w.Code)

	data := decodeBody(t, w)["data"].(map[string]interface{})
	assert.Equal(t, "2030-12-01", data["borrow_date"])
	assert.Equal(t, "2030-12-15", data["due_date"])
	assert.Nil(t, data["return_date"])
	assert.Equal(t, float64(0), data["fine"])
}

func TestItemBorrowedStoreValidation(t *testing.T) {
	s := setupTestSrv(t)
	ct := NewItemBorrowedController(s)
	deps := createBorrowDeps(t, s)

	// Zero quantity fails the minimum, missing due_date fails required.
	body := fmt.Sprintf(
		`{"user_id": %d, "item_id": %d, "borrow_status_id": %d, "quantity": 0, "borrow_date": "2030-12-01"}`,
		deps.user.ID, deps.item.ID, deps.status.ID)
	w := perform(t, ct.Store, "POST", "/api/item-borroweds", body, nil)
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	errs := decodeBody(t, w)["errors"].(map[string]interface{})
	assert.Contains(t, errs, "quantity")
	assert.Contains(t, errs, "due_date")
}

func TestItemBorrowedBadDateFormat(t *testing.T) {
	s := setupTestSrv(t)
	ct := NewItemBorrowedController(s)
	deps := createBorrowDeps(t, s)

	body := fmt.Sprintf(
		`{"user_id": %d, "item_id": %d, "borrow_status_id": %d, "quantity": 1, "borrow_date": "12/01/2030", "due_date": "2030-12-15"}`,
		deps.user.ID, deps.item.ID, deps.status.ID)
	w := perform(t, ct.Store, "POST", "/api/item-borroweds", body, nil)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestItemBorrowedUpdateReturnDate(t *testing.T) {
	s := setupTestSrv(t)
	ct := NewItemBorrowedController(s)
	deps := createBorrowDeps(t, s)

	b := models.ItemBorrowed{
		UserID:         deps.user.ID,
		ItemID:         deps.item.ID,
		BorrowStatusID: deps.status.ID,
		Quantity:       2,
		BorrowDate:     models.NewDate(2030, 12, 1),
		DueDate:        models.NewDate(2030, 12, 15),
	}
	require.NoError(t, s.DB.Create(&b).Error)

	w := perform(t, ct.Update, "PUT", "/api/item-borroweds/1", `{"return_date": "2030-12-10", "fine": 1.5}`, idParam(fmt.Sprint(b.ID)))
	require.Equal(t, http.StatusOK, w.Code)
	data := decodeBody(t, w)["data"].(map[string]interface{})
	assert.Equal(t, "2030-12-10", data["return_date"])
	assert.Equal(t, 1.5, data["fine"])
	assert.Equal(t, "2030-12-01", data["borrow_date"])
}

func TestItemBorrowedSearchMatchesQuantityAsText(t *testing.T) {
	s := setupTestSrv(t)
	ct := NewItemBorrowedController(s)
	deps := createBorrowDeps(t, s)

	for _, q := range []int{25, 7} {
		b := models.ItemBorrowed{
			UserID:         deps.user.ID,
			ItemID:         deps.item.ID,
			BorrowStatusID: deps.status.ID,
			Quantity:       q,
			BorrowDate:     models.NewDate(2030, 12, 1),
			DueDate:        models.NewDate(2030, 12, 15),
		}
		require.NoError(t, s.DB.Create(&b).Error)
	}

	w := perform(t, ct.Index, "GET", "/api/item-borroweds?search=25", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	data := decodeBody(t, w)["data"].([]interface{})
	require.Len(t, data, 1)
	assert.Equal(t, float64(25), data[0].(map[string]interface{})["quantity"])
}

func TestItemBorrowedSortByDueDate(t *testing.T) {
	s := setupTestSrv(t)
	ct := NewItemBorrowedController(s)
	deps := createBorrowDeps(t, s)

	for _, day := range []int{20, 5, 12} {
		b := models.ItemBorrowed{
			UserID:         deps.user.ID,
			ItemID:         deps.item.ID,
			BorrowStatusID: deps.status.ID,
			Quantity:       1,
			BorrowDate:     models.NewDate(2030, 12, 1),
			DueDate:        models.NewDate(2030, 12, day),
		}
		require.NoError(t, s.DB.Create(&b).Error)
	}

	w := perform(t, ct.Index, "GET", "/api/item-borroweds?sort_by=due_date&sort_order=asc", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	data := decodeBody(t, w)["data"].([]interface{})
	require.Len(t, data, 3)
	prev := data[0].(map[string]interface{})["due_date"].(string)
	for _, d := range data[1:] {
		cur := d.(map[string]interface{})["due_date"].(string)
		assert.LessOrEqual(t, prev, cur)
		prev = cur
	}
}
