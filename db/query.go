package db

import (
	"context"
	"strings"

	"gorm.io/gorm"
)

const (
	DefaultPerPage = 15
	MaxPerPage     = 100
)

// ListParams carries the raw list query parameters. Zero values fall back
// to the defaults (page 1, 15 per page, natural id order).
type ListParams struct {
	Search    string
	SortBy    string
	SortOrder string
	Page      int
	PerPage   int
}

// ListConfig is the per-entity whitelist configuration for List.
// SearchCasts holds numeric and date columns that are matched as text, so
// a term like "2" matches a quantity of 25; that substring semantics is
// part of the API contract.
type ListConfig struct {
	SearchColumns []string
	SearchCasts   []string
	SortColumns   []string
}

// Pagination mirrors the metadata block every list response carries.
// From/To are 1-based inclusive positions within the filtered set and are
// omitted when the page is empty.
type Pagination struct {
	CurrentPage int   `json:"current_page"`
	LastPage    int   `json:"last_page"`
	PerPage     int   `json:"per_page"`
	Total       int64 `json:"total"`
	From        *int  `json:"from,omitempty"`
	To          *int  `json:"to,omitempty"`
}

// List runs the shared search/sort/paginate query for an entity. A search
// term restricts to rows where any whitelisted column contains it as a
// substring. An unrecognized sort_by is ignored rather than rejected, and
// id is always the final sort key so that repeated calls page through the
// same order.
func List[T any](ctx context.Context, conn *gorm.DB, cfg ListConfig, p ListParams) ([]T, Pagination, error) {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.PerPage <= 0 {
		p.PerPage = DefaultPerPage
	}
	if p.PerPage > MaxPerPage {
		p.PerPage = MaxPerPage
	}

	var model T
	tx := conn.WithContext(ctx).Model(&model)

	if p.Search != "" {
		pattern := "%" + p.Search + "%"
		var conds []string
		var args []interface{}
		for _, col := range cfg.SearchColumns {
			conds = append(conds, col+" LIKE ?")
			args = append(args, pattern)
		}
		for _, col := range cfg.SearchCasts {
			conds = append(conds, "CAST("+col+" AS TEXT) LIKE ?")
			args = append(args, pattern)
		}
		tx = tx.Where(strings.Join(conds, " OR "), args...)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, Pagination{}, err
	}

	if sortable(cfg.SortColumns, p.SortBy) {
		dir := "ASC"
		if strings.EqualFold(p.SortOrder, "desc") {
			dir = "DESC"
		}
		tx = tx.Order(p.SortBy + " " + dir)
	}
	tx = tx.Order("id ASC")

	offset := (p.Page - 1) * p.PerPage
	var rows []T
	if err := tx.Offset(offset).Limit(p.PerPage).Find(&rows).Error; err != nil {
		return nil, Pagination{}, err
	}

	lastPage := int((total + int64(p.PerPage) - 1) / int64(p.PerPage))
	if lastPage < 1 {
		lastPage = 1
	}
	pg := Pagination{
		CurrentPage: p.Page,
		LastPage:    lastPage,
		PerPage:     p.PerPage,
		Total:       total,
	}
	if len(rows) > 0 {
		from := offset + 1
		to := offset + len(rows)
		pg.From = &from
		pg.To = &to
	}
	return rows, pg, nil
}

func sortable(allowed []string, col string) bool {
	for _, a := range allowed {
		if a == col {
			return true
		}
	}
	return false
}
