// Package pagination tracks a 1-indexed page over a server-reported total
// count. Navigation clamps at the boundaries instead of erroring.
package pagination

// Controller reconciles the server-paginated base list with the total count.
// Pagination controls are suppressed entirely while a client-side filter is
// active, because filtering only sees the currently fetched page and the page
// count would not reflect the filtered result. That trades correct filtered
// pagination for a bounded page payload, matching the upstream behavior.
type Controller struct {
	page     int
	pageSize int
	total    int
}

func New(pageSize int) *Controller {
	return &Controller{page: 1, pageSize: pageSize}
}

// SetTotal records the server-reported total count and clamps the current
// page into the new range.
func (c *Controller) SetTotal(total int) {
	if total < 0 {
		total = 0
	}
	c.total = total
	c.SetPage(c.page)
}

func (c *Controller) Page() int     { return c.page }
func (c *Controller) PageSize() int { return c.pageSize }
func (c *Controller) Total() int    { return c.total }

// Offset is the item offset of the current page, for the list request.
func (c *Controller) Offset() int {
	return (c.page - 1) * c.pageSize
}

// TotalPages is ceil(total / pageSize), at least 1.
func (c *Controller) TotalPages() int {
	pages := (c.total + c.pageSize - 1) / c.pageSize
	if pages < 1 {
		pages = 1
	}
	return pages
}

// SetPage clamps the requested page into [1, TotalPages].
func (c *Controller) SetPage(page int) {
	if page < 1 {
		page = 1
	}
	if max := c.TotalPages(); page > max {
		page = max
	}
	c.page = page
}

func (c *Controller) Next()     { c.SetPage(c.page + 1) }
func (c *Controller) Previous() { c.SetPage(c.page - 1) }

// HasNext reports whether the next control is enabled.
func (c *Controller) HasNext() bool { return c.page < c.TotalPages() }

// HasPrevious reports whether the previous control is enabled.
func (c *Controller) HasPrevious() bool { return c.page > 1 }

// Visible reports whether pagination controls should be shown at all:
// hidden on a single page and hidden whenever a filter is active.
func (c *Controller) Visible(filtered bool) bool {
	return c.TotalPages() > 1 && !filtered
}
