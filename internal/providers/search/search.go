package search

import "context"

// Result is one posting record returned by the search API, already
// flattened to the fields the extractor stores.
type Result struct {
	JobID       string
	Title       string
	CompanyName string
	Location    string
	ApplyLink   string
	Raw         []byte // full API record, stored as-is
}

// Page is one page of results plus the continuation token, empty when
// this was the last page.
type Page struct {
	Results   []Result
	NextToken string
}

type Provider interface {
	// FetchPage runs one query page. token is empty for the first page.
	FetchPage(ctx context.Context, query, location, token string) (*Page, error)
}
