package util

// TotalPages returns the number of pages needed to hold total items at the
// given page size, rounding up. Plain integer division under-reports whenever
// total is not a multiple of size.
func TotalPages(total int64, size int) int {
	if size <= 0 {
		return 0
	}
	pages := total / int64(size)
	if total%int64(size) != 0 {
		pages++
	}
	return int(pages)
}

// PageOffset converts a 1-based page number and page size into a row offset.
func PageOffset(page, size int) int {
	if page < 1 {
		page = 1
	}
	return (page - 1) * size
}
