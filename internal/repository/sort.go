package repository

// Allow-lists mapping API sort fields to columns. Anything outside these
// maps is rejected at the handler layer; the repositories never interpolate
// a caller-supplied field name into SQL.

var contactSortColumns = map[string]string{
	"name":      "name",
	"email":     "email",
	"subject":   "subject",
	"status":    "status",
	"createdAt": "created_at",
	"updatedAt": "updated_at",
}

var quoteSortColumns = map[string]string{
	"name":          "name",
	"email":         "email",
	"package":       "package",
	"area":          "area",
	"estimatedCost": "estimated_cost",
	"status":        "status",
	"createdAt":     "created_at",
	"updatedAt":     "updated_at",
}

// ContactSortColumn resolves an API sort field for contact submissions.
func ContactSortColumn(field string) (string, bool) {
	col, ok := contactSortColumns[field]
	return col, ok
}

// QuoteSortColumn resolves an API sort field for quote requests.
func QuoteSortColumn(field string) (string, bool) {
	col, ok := quoteSortColumns[field]
	return col, ok
}
