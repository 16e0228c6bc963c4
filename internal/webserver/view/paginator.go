package view

import (
	"fmt"

	"github.com/lineup-rsvp/lineup/internal/result"
)

// Page holds the URL of a listing page, and if that page is the current one being shown
type Page struct {
	Number    int
	Link      string
	IsCurrent bool
}

// PagesNavigator contains the links to a window of pages around the current one,
// as well as links to the previous and next pages
type PagesNavigator struct {
	Pages        []Page
	PreviousLink string
	NextLink     string
}

// Pagination builds a navigator showing at most size pages. params are the
// query string parameters to keep in every link.
func Pagination[T any](size int, results result.Paginated[T], params map[string]string) PagesNavigator {
	nav := PagesNavigator{}
	total := results.TotalPages()
	if total <= 1 {
		return nav
	}

	start, end := 1, total
	if total > size {
		start = results.Page() - size/2
		if start < 1 {
			start = 1
		}
		end = start + size - 1
		if end > total {
			end = total
			start = total - size + 1
		}
	}

	link := func(page int) string {
		query := make(map[string]string, len(params)+1)
		for k, v := range params {
			query[k] = v
		}
		query["page"] = fmt.Sprintf("%d", page)
		return fmt.Sprintf("?%s", ToQueryString(query))
	}

	for i := start; i <= end; i++ {
		nav.Pages = append(nav.Pages, Page{Number: i, Link: link(i), IsCurrent: i == results.Page()})
	}
	if results.HasPrevious() {
		nav.PreviousLink = link(results.Page() - 1)
	}
	if results.HasNext() {
		nav.NextLink = link(results.Page() + 1)
	}
	return nav
}
