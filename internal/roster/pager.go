package roster

// RowsPerPageOptions are the accepted page sizes.
var RowsPerPageOptions = []int{5, 10, 20, 50}

const defaultRowsPerPage = 10

// Pager slices a filtered view into pages. Pages are 1-based. The page count
// is derived from the filtered result length, so the controls always agree
// with the table they paginate.
type Pager struct {
	Page        int
	RowsPerPage int
}

// ValidRows reports whether n is an accepted page size.
func ValidRows(n int) bool {
	for _, opt := range RowsPerPageOptions {
		if n == opt {
			return true
		}
	}
	return false
}

func (p Pager) rows() int {
	if ValidRows(p.RowsPerPage) {
		return p.RowsPerPage
	}
	return defaultRowsPerPage
}

// PageCount returns ceil(total/rowsPerPage); zero for an empty view.
func (p Pager) PageCount(total int) int {
	rows := p.rows()
	return (total + rows - 1) / rows
}

// Clamp returns a pager whose page lies within [1, PageCount(total)] (or 1
// when the view is empty).
func (p Pager) Clamp(total int) Pager {
	max := p.PageCount(total)
	if max < 1 {
		max = 1
	}
	page := p.Page
	if page < 1 {
		page = 1
	}
	if page > max {
		page = max
	}
	return Pager{Page: page, RowsPerPage: p.rows()}
}

// Slice returns the entries on the pager's page of the given view.
func (p Pager) Slice(view []Entry) []Entry {
	p = p.Clamp(len(view))
	rows := p.rows()
	start := (p.Page - 1) * rows
	if start >= len(view) {
		return nil
	}
	end := start + rows
	if end > len(view) {
		end = len(view)
	}
	return view[start:end]
}
