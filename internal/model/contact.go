package model

import "time"

// Contact form subjects accepted by the public API.
var ContactSubjects = []string{"Consultation", "Project", "Partnership", "Other"}

// Contact submission statuses. New submissions always start as "new".
var ContactStatuses = []string{"new", "read", "responded", "archived"}

// ContactSubmission represents a message submitted via the public contact form.
type ContactSubmission struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	Phone         string    `json:"phone,omitempty"`
	Subject       string    `json:"subject"`
	Message       string    `json:"message"`
	Status        string    `json:"status"`
	ClientAddress string    `json:"clientAddress,omitempty"`
	ClientAgent   string    `json:"clientAgent,omitempty"`
	Source        string    `json:"source"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// ContactListOptions carries filter, sort and pagination parameters for
// listing contact submissions. SortBy must come from the allow-list in the
// handler layer; the repository never sees a free-form sort field.
type ContactListOptions struct {
	Status string
	Page   int
	Limit  int
	SortBy string
	Order  string // "asc" or "desc"
}

// StatusCount is one row of a per-status aggregation.
type StatusCount struct {
	Status string `json:"status"`
	Count  int    `json:"count"`
}

// SubjectCount is one row of a per-subject aggregation.
type SubjectCount struct {
	Subject string `json:"subject"`
	Count   int    `json:"count"`
}

// ContactStats aggregates contact submissions for the admin endpoints.
type ContactStats struct {
	Total     int            `json:"total"`
	ByStatus  []StatusCount  `json:"byStatus"`
	BySubject []SubjectCount `json:"bySubject"`
}

// ValidContactStatus reports whether s is a member of the contact status enum.
func ValidContactStatus(s string) bool {
	for _, v := range ContactStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// ValidContactSubject reports whether s is a member of the subject enum.
func ValidContactSubject(s string) bool {
	for _, v := range ContactSubjects {
		if s == v {
			return true
		}
	}
	return false
}
