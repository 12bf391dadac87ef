package domain

import "strings"

// FeedBlock is one named section of the prompt feed.
type FeedBlock struct {
	Name string
	Body string
}

// Feed is the textual description of an event handed to the script model.
type Feed struct {
	EventID  string
	Language Language
	Blocks   []FeedBlock
}

// Text renders the blocks in order.
func (f Feed) Text() string {
	var sb strings.Builder
	for i, b := range f.Blocks {
		if i > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString("### ")
		sb.WriteString(b.Name)
		sb.WriteString("\n")
		sb.WriteString(strings.TrimRight(b.Body, "\n"))
		sb.WriteString("\n")
	}
	return sb.String()
}

// Block returns the body of the named block.
func (f Feed) Block(name string) (string, bool) {
	for _, b := range f.Blocks {
		if b.Name == name {
			return b.Body, true
		}
	}
	return "", false
}
