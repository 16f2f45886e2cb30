package store

// Default pagination values applied when a request omits page or limit.
// The upstream behavior left these undefined; explicit defaults keep
// skip/limit math meaningful.
const (
	DefaultPage  int64 = 1
	DefaultLimit int64 = 10
)

// SortDir is the direction of a single-field sort.
type SortDir int

const (
	// SortNone leaves results in natural store order.
	SortNone SortDir = 0
	// SortAsc sorts ascending.
	SortAsc SortDir = 1
	// SortDesc sorts descending.
	SortDesc SortDir = -1
)

// ParseSortDir maps a request sort parameter to a direction. Accepts
// the literal tokens the web client sends ("asc"/"desc") plus their
// common spellings; anything else means unsorted.
func ParseSortDir(s string) SortDir {
	switch s {
	case "asc", "ascending", "1":
		return SortAsc
	case "desc", "descending", "-1":
		return SortDesc
	default:
		return SortNone
	}
}

// ListQuery is a storage-agnostic description of a list request:
// equality filters, optional substring searches, a single-field sort
// and skip/limit pagination. Store implementations translate it into
// their native query representation deterministically.
type ListQuery struct {
	// Eq holds field=value equality filters. A value is only added when
	// the corresponding request parameter was present and non-empty.
	Eq map[string]string

	// SearchField/SearchText request a case-insensitive substring match
	// on a single text field.
	SearchField string
	SearchText  string

	// NameEmailSearch requests a case-insensitive substring match
	// against the name OR email fields (admin user/request search).
	NameEmailSearch string

	// SortField/SortDir request a single-field sort. SortNone leaves
	// the natural order.
	SortField string
	SortDir   SortDir

	// Page and Limit drive pagination. Both are at least 1.
	Page  int64
	Limit int64
}

// NewListQuery returns a ListQuery with default pagination and an
// empty filter set.
func NewListQuery() ListQuery {
	return ListQuery{
		Eq:    make(map[string]string),
		Page:  DefaultPage,
		Limit: DefaultLimit,
	}
}

// WithPage sets pagination, clamping non-positive values back to the
// defaults so a malformed request can never produce a negative skip.
func (q ListQuery) WithPage(page, limit int64) ListQuery {
	if page < 1 {
		page = DefaultPage
	}
	if limit < 1 {
		limit = DefaultLimit
	}
	q.Page = page
	q.Limit = limit
	return q
}

// Skip returns the number of documents to skip for the current page.
func (q ListQuery) Skip() int64 {
	return (q.Page - 1) * q.Limit
}

// TotalPages computes the page count for a matching-document total:
// ceiling(total/limit), and 0 when nothing matched.
func TotalPages(total, limit int64) int64 {
	if total <= 0 || limit <= 0 {
		return 0
	}
	return (total + limit - 1) / limit
}
