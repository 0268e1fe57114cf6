package handler

import (
	"net/http"
	"strconv"

	"github.com/nkdbuilders/backend/internal/validate"
)

// listQuery holds the parsed admin listing parameters shared by both
// submission kinds.
type listQuery struct {
	Page   int
	Limit  int
	SortBy string
	Order  string
}

// parseListQuery reads page/limit/sortBy/order from the query string.
// Unparseable page and limit values fall back to defaults; a sort field
// outside the entity's allow-list is rejected as a field error rather than
// silently reaching the database.
func parseListQuery(r *http.Request, sortAllowed func(string) (string, bool)) (listQuery, []validate.FieldError) {
	q := listQuery{Page: 1, Limit: 10, SortBy: "createdAt", Order: "desc"}

	if p := r.URL.Query().Get("page"); p != "" {
		if n, err := strconv.Atoi(p); err == nil && n >= 1 {
			q.Page = n
		}
	}
	if l := r.URL.Query().Get("limit"); l != "" {
		if n, err := strconv.Atoi(l); err == nil && n > 0 && n <= 100 {
			q.Limit = n
		}
	}
	if o := r.URL.Query().Get("order"); o == "asc" {
		q.Order = "asc"
	}

	if s := r.URL.Query().Get("sortBy"); s != "" {
		if _, ok := sortAllowed(s); !ok {
			return q, []validate.FieldError{{Field: "sortBy", Message: "Invalid sort field"}}
		}
		q.SortBy = s
	}
	return q, nil
}
