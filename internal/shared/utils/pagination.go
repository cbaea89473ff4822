package utils

// TotalPages calculates the number of pages for a given total count.
// A total of 0 yields 0 pages.
func TotalPages(total int64, limit int) int {
	if total <= 0 || limit <= 0 {
		return 0
	}
	return int((total + int64(limit) - 1) / int64(limit))
}
