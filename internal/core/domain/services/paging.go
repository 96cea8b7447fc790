package services

import (
	"cmp"
	"math"
	"slices"

	"deliveryquery/internal/pkg/errs"
)

const (
	// DefaultCountOnPage is the page size used by DefaultPage.
	DefaultCountOnPage = 100

	// FirstPageNumber is the number of the first page; pages are numbered from one.
	FirstPageNumber = 1
)

// Page selects a window of an ordered sequence.
// The zero value is invalid; use DefaultPage or NewPage.
type Page struct {
	CountOnPage int
	PageNumber  int
}

// DefaultPage returns the first page of DefaultCountOnPage elements.
func DefaultPage() Page {
	return Page{CountOnPage: DefaultCountOnPage, PageNumber: FirstPageNumber}
}

// NewPage creates a validated Page.
func NewPage(countOnPage, pageNumber int) (Page, error) {
	page := Page{CountOnPage: countOnPage, PageNumber: pageNumber}
	if err := page.Validate(); err != nil {
		return Page{}, err
	}
	return page, nil
}

// Validate requires a positive page size and a page number of at least one.
func (p Page) Validate() error {
	if p.CountOnPage < 1 {
		return errs.NewValueIsOutOfRangeError("countOnPage", p.CountOnPage, 1, math.MaxInt)
	}
	if p.PageNumber < FirstPageNumber {
		return errs.NewValueIsOutOfRangeError("pageNumber", p.PageNumber, FirstPageNumber, math.MaxInt)
	}
	return nil
}

// offset returns the number of elements preceding the page, saturating at math.MaxInt.
func (p Page) offset() int {
	skipPages := p.PageNumber - 1
	if skipPages > math.MaxInt/p.CountOnPage {
		return math.MaxInt
	}
	return skipPages * p.CountOnPage
}

// Paging filters elements, sorts them ascending by the key returned from ordering
// and returns the requested page. The sort is stable.
//
// A nil filter keeps every element. A page beyond the last element yields an empty,
// non-nil slice. The input slice is not modified.
//
// Errors:
//   - errs.ErrValueIsRequired if ordering is nil
//   - errs.ErrValueIsOutOfRange if page is invalid
//
// Example:
//
//	page, _ := services.NewPage(20, 3)
//	paid, err := services.Paging(deliveries, (*delivery.Delivery).ClientID, (*delivery.Delivery).IsPaid, page)
func Paging[E any, K cmp.Ordered](
	elements []E,
	ordering func(E) K,
	filter func(E) bool,
	page Page,
) ([]E, error) {
	if ordering == nil {
		return nil, errs.NewValueIsRequiredError("ordering")
	}

	return PagingFunc(elements, func(a, b E) int {
		return cmp.Compare(ordering(a), ordering(b))
	}, filter, page)
}

// PagingFunc is Paging for element orders that have no cmp.Ordered key, such as time.Time.
// compare follows the slices.SortFunc convention.
//
// Example:
//
//	page, _ := services.NewPage(20, 3)
//	paid, err := services.PagingFunc(deliveries,
//	    func(a, b *delivery.Delivery) int {
//	        return a.Schedule().StartTime().Compare(b.Schedule().StartTime())
//	    },
//	    (*delivery.Delivery).IsPaid,
//	    page,
//	)
func PagingFunc[E any](
	elements []E,
	compare func(a, b E) int,
	filter func(E) bool,
	page Page,
) ([]E, error) {
	if compare == nil {
		return nil, errs.NewValueIsRequiredError("compare")
	}
	if err := page.Validate(); err != nil {
		return nil, err
	}

	selected := make([]E, 0, len(elements))
	for _, e := range elements {
		if filter == nil || filter(e) {
			selected = append(selected, e)
		}
	}

	slices.SortStableFunc(selected, compare)

	offset := page.offset()
	if offset >= len(selected) {
		return make([]E, 0), nil
	}

	end := offset + min(page.CountOnPage, len(selected)-offset)
	return slices.Clone(selected[offset:end]), nil
}
