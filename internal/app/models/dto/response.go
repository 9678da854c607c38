package dto

import "time"

// APIResponse is the standard envelope for API endpoints.
type APIResponse struct {
	Data      interface{}  `json:"data,omitempty"`
	Error     *ErrorDetail `json:"error,omitempty"`
	Timestamp time.Time    `json:"timestamp,omitempty"`
}

// SuccessResponse represents a standard success response for API endpoints
type SuccessResponse struct {
	Message string `json:"message"`
}

// RedirectResponse tells the caller where to continue after an operation
// that invalidates the current flow (registration, password change).
type RedirectResponse struct {
	RedirectTo string `json:"redirectTo"`
}

// PaginationInfo describes the page of results being returned.
// Page indexes are 0-based.
type PaginationInfo struct {
	CurrentPage int   `json:"currentPage"`
	TotalPages  int   `json:"totalPages"`
	PageSize    int   `json:"pageSize"`
	TotalItems  int64 `json:"totalItems"`
}
