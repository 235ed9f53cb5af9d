// Package types provides type definitions for structured data used throughout the gator-life system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// DocumentRecord describes one listed document.
// Values are built as literals and never mutated.
type DocumentRecord struct {
	Title  string `json:"title"`
	URL    string `json:"url"`
	Domain string `json:"domain"`
	Mark   int    `json:"mark"`
	Topic  string `json:"topic"`
}

// VoteAction identifies a vote control on a document card.
// Values are rendered as the data-action attribute of each vote button.
type VoteAction int

const (
	VoteUp   VoteAction = 1
	VoteDown VoteAction = 2
)

// SampleDocuments returns the fixed sequence shown on the front page.
// Duplicates are intentional and must be rendered as-is.
func SampleDocuments() []DocumentRecord {
	return []DocumentRecord{
		{Title: "Google releases a new quantum chip", URL: "https://www.google.com", Domain: "google.com", Mark: 12, Topic: "Tech"},
		{Title: "Alligators are older than you think", URL: "https://www.nationalgeographic.com", Domain: "nationalgeographic.com", Mark: 7, Topic: "Science"},
		{Title: "Google releases a new quantum chip", URL: "https://www.google.com", Domain: "google.com", Mark: 12, Topic: "Tech"},
		{Title: "Why Go is boring, and why that is fine", URL: "https://go.dev/blog", Domain: "go.dev", Mark: 4, Topic: "Programming"},
		{Title: "The state of the Everglades", URL: "https://www.nps.gov/ever", Domain: "nps.gov", Mark: 0, Topic: "Nature"},
	}
}
