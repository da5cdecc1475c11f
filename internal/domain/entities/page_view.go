package entities

// PageView is a daily visit counter for one public page path.
//
// Storage model (DynamoDB):
//   - PK: path
//   - SK: day (YYYY-MM-DD)
//
// The site records a hit per page load; the admin dashboard reads aggregated
// counts. This is intentionally the whole of the analytics surface.

type PageView struct {
	Path  string `json:"path"`
	Day   string `json:"day"`
	Count int64  `json:"count"`
}
