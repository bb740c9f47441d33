package controllers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strconv"
	"strings"

	"trackventory/app"
	"trackventory/db"
	"trackventory/session"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

// Srv bundles the dependencies every controller needs.
type Srv struct {
	DB     *gorm.DB
	Tokens *session.TokenStore
	Config app.Config
}

func NewSrv(a *app.App) *Srv {
	return &Srv{DB: a.DB, Tokens: a.Tokens(), Config: a.Config}
}

func init() {
	// Report validation errors under the JSON field names the API speaks.
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
	}
}

// listParams reads the shared list query parameters; clamping happens in
// db.List.
func listParams(c *gin.Context) db.ListParams {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "15"))
	return db.ListParams{
		Search:    c.Query("search"),
		SortBy:    c.Query("sort_by"),
		SortOrder: c.DefaultQuery("sort_order", "asc"),
		Page:      page,
		PerPage:   perPage,
	}
}

// paramID parses the :id path segment. A non-numeric id behaves like a
// missing record.
func paramID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return 0, false
	}
	return uint(id), true
}

func notFound(c *gin.Context, entity string) {
	c.JSON(http.StatusNotFound, app.H{"message": entity + " not found"})
}

func internalError(c *gin.Context, err error) {
	c.JSON(http.StatusInternalServerError, app.H{"message": err.Error()})
}

// validationFailed renders a binding error as 422 with per-field messages.
func validationFailed(c *gin.Context, err error) {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		fields := make(map[string][]string, len(verrs))
		for _, fe := range verrs {
			fields[fe.Field()] = append(fields[fe.Field()], validationMessage(fe))
		}
		c.JSON(http.StatusUnprocessableEntity, app.H{
			"message": "The given data was invalid.",
			"errors":  fields,
		})
		return
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		c.JSON(http.StatusUnprocessableEntity, app.H{
			"message": "The given data was invalid.",
			"errors": map[string][]string{
				typeErr.Field: {fmt.Sprintf("The %s field is invalid.", humanize(typeErr.Field))},
			},
		})
		return
	}

	c.JSON(http.StatusUnprocessableEntity, app.H{"message": "The given data was invalid."})
}

// storeError maps entity-store failures on create/update to a response.
func storeError(c *gin.Context, entity string, err error) {
	switch {
	case errors.Is(err, db.ErrNotFound):
		notFound(c, entity)
	case errors.Is(err, db.ErrConstraint):
		c.JSON(http.StatusUnprocessableEntity, app.H{"message": "Referenced record does not exist."})
	case errors.Is(err, db.ErrDuplicate):
		c.JSON(http.StatusUnprocessableEntity, app.H{"message": "The given data was invalid."})
	default:
		internalError(c, err)
	}
}

func validationMessage(fe validator.FieldError) string {
	name := humanize(fe.Field())
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("The %s field is required.", name)
	case "email":
		return fmt.Sprintf("The %s field must be a valid email address.", name)
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("The %s field must not be greater than %s characters.", name, fe.Param())
		}
		return fmt.Sprintf("The %s field must not be greater than %s.", name, fe.Param())
	case "min", "gte":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("The %s field must be at least %s characters.", name, fe.Param())
		}
		return fmt.Sprintf("The %s field must be at least %s.", name, fe.Param())
	default:
		return fmt.Sprintf("The %s field is invalid.", name)
	}
}

func humanize(field string) string {
	return strings.ReplaceAll(field, "_", " ")
}
