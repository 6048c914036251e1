package model

// Article is a syndication entry as surfaced to callers.
type Article struct {
	Title   string
	Link    string
	Summary string
}
