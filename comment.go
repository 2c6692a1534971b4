package godeck

import "time"

// CommentAuthor identifies one review author. Authors are collected across
// all slides and assigned stable IDs in first-appearance order.
type CommentAuthor struct {
	Name     string
	Initials string
}

// Comment is a review note pinned to a slide position.
type Comment struct {
	Author   CommentAuthor
	Text     string
	Position Position
	Date     time.Time // zero value serializes as the package sentinel time
}

// NewComment pins a note at the given slide position.
func NewComment(author CommentAuthor, text string, pos Position) *Comment {
	return &Comment{Author: author, Text: text, Position: pos}
}
