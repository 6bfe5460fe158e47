package algo

import "github.com/huangsam/orderpulse/schema"

// PageItems builds the page selector for the given page out of totalPages:
// the first page, the current page with its neighbours, and the last page,
// with ellipses standing in for skipped runs.
func PageItems(page, totalPages int) []schema.PageItem {
	if totalPages < 1 {
		totalPages = 1
	}
	items := []schema.PageItem{{Page: 1, Current: page == 1}}
	if page > 3 {
		items = append(items, schema.PageItem{Ellipsis: true})
	}
	for i := max(2, page-1); i <= min(totalPages-1, page+1); i++ {
		items = append(items, schema.PageItem{Page: i, Current: page == i})
	}
	if page < totalPages-2 {
		items = append(items, schema.PageItem{Ellipsis: true})
	}
	if totalPages > 1 {
		items = append(items, schema.PageItem{Page: totalPages, Current: page == totalPages})
	}
	return items
}

// ShowingRange returns the 1-based positions of the first and last entries on
// the page. Both are 0 when there are no entries.
func ShowingRange(page, perPage, totalCount int) (from, to int) {
	if totalCount <= 0 || perPage <= 0 {
		return 0, 0
	}
	page = max(page, 1)
	from = (page-1)*perPage + 1
	to = min(page*perPage, totalCount)
	if from > totalCount {
		return totalCount, totalCount
	}
	return from, to
}
