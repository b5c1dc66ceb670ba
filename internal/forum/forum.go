// Copyright (c) 2026 JVED. All rights reserved.
// Author: jved@contact.fr

/*
Package forum implements the discussion board domain.

It models the three-level content hierarchy of the board:

	Category -> Topic -> Post

Categories are fixed editorial sections managed by administrators. Topics are
opened inside a category by any authenticated member, and posts are the
individual messages inside a topic.

The package also exposes the existence checks other layers rely on before
attaching content to a category or a topic: a write is only accepted when the
referenced parent actually exists.
*/
package forum

import "time"

// Category is a fixed editorial section of the board.
type Category struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Slug        string    `json:"slug"`
	Description string    `json:"description,omitempty"`
	TopicCount  int       `json:"topic_count"`
	CreatedAt   time.Time `json:"created_at"`
}

// Topic is a discussion thread opened inside a [Category].
type Topic struct {
	ID         string    `json:"id"`
	CategoryID string    `json:"category_id"`
	AuthorID   string    `json:"author_id"`
	Name       string    `json:"name"`
	Subject    string    `json:"subject"`
	Slug       string    `json:"slug"`
	IsLocked   bool      `json:"is_locked"` // True while under moderation review.
	PostCount  int       `json:"post_count"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// Post is a single message inside a [Topic].
type Post struct {
	ID        string    `json:"id"`
	TopicID   string    `json:"topic_id"`
	AuthorID  string    `json:"author_id"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Field identifiers shared by handlers and validation results.
const (
	FieldTopic    = "topic"
	FieldCategory = "category"
)
