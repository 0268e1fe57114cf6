package model

import "time"

// Package tiers offered for construction quotes.
var QuotePackages = []string{"Silver", "Gold", "Platinum", "Custom Package"}

// Quote request statuses. New requests always start as "pending".
var QuoteStatuses = []string{"pending", "quoted", "accepted", "rejected", "archived"}

// QuoteRequest represents a construction-quote request submitted via the
// public quote form. EstimatedCost is derived from (Package, Area) at
// creation time and never updated afterwards.
type QuoteRequest struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	Phone         string    `json:"phone"`
	Package       string    `json:"package"`
	Area          int       `json:"area"`
	Message       string    `json:"message,omitempty"`
	EstimatedCost int64     `json:"estimatedCost"`
	Status        string    `json:"status"`
	ClientAddress string    `json:"clientAddress,omitempty"`
	ClientAgent   string    `json:"clientAgent,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// QuoteListOptions carries filter, sort and pagination parameters for
// listing quote requests.
type QuoteListOptions struct {
	Status  string
	Package string
	Page    int
	Limit   int
	SortBy  string
	Order   string
}

// PackageGroup is one row of a per-package aggregation.
type PackageGroup struct {
	Package    string `json:"package"`
	Count      int    `json:"count"`
	TotalArea  int64  `json:"totalArea"`
	TotalValue int64  `json:"totalValue"`
}

// QuoteSummary is the trimmed projection used for the recent-quotes list.
type QuoteSummary struct {
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	Package       string    `json:"package"`
	Area          int       `json:"area"`
	EstimatedCost int64     `json:"estimatedCost"`
	CreatedAt     time.Time `json:"createdAt"`
}

// QuoteStats aggregates quote requests for the admin endpoints.
type QuoteStats struct {
	Total     int            `json:"total"`
	ByPackage []PackageGroup `json:"byPackage"`
	ByStatus  []StatusCount  `json:"byStatus"`
	Recent    []QuoteSummary `json:"recent"`
}

// ValidQuoteStatus reports whether s is a member of the quote status enum.
func ValidQuoteStatus(s string) bool {
	for _, v := range QuoteStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// ValidQuotePackage reports whether s is a member of the package enum.
func ValidQuotePackage(s string) bool {
	for _, v := range QuotePackages {
		if s == v {
			return true
		}
	}
	return false
}
