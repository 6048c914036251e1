package model

// FeedSource is one syndication endpoint the service reads from.
type FeedSource struct {
	Name string
	URL  string
}
