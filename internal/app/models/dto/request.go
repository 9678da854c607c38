package dto

// PageQuery holds pagination and sorting parameters for list requests.
// Page indexes are 0-based; the sort key is matched against a per-repository
// allowlist before reaching SQL.
type PageQuery struct {
	Page      int    `form:"page"`
	Size      int    `form:"size"`
	SortBy    string `form:"sort"`
	SortOrder string `form:"order"`
}
