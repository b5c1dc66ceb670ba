// Copyright (c) 2026 JVED. All rights reserved.
// Author: jved@contact.fr

package forum

import "context"

// # Existence Checks

// LookupRepository answers the reference-count questions validators ask before
// a write is allowed to target a category or a topic.
type LookupRepository interface {

	/*
		CountTopicByID returns how many topics carry the given ID (0 or 1).

		Parameters:
		  - ctx: context.Context
		  - topicID: string

		Returns:
		  - int: Number of matching rows
		  - error: Database retrieval failures
	*/
	CountTopicByID(ctx context.Context, topicID string) (int, error)

	/*
		CountCategoryByID returns how many categories carry the given ID (0 or 1).

		Parameters:
		  - ctx: context.Context
		  - categoryID: string

		Returns:
		  - int: Number of matching rows
		  - error: Database retrieval failures
	*/
	CountCategoryByID(ctx context.Context, categoryID string) (int, error)
}

// # Content Data Access

// ContentRepository defines the data access contract for board content.
// One interface covers categories, topics and posts: the board tables are
// small and always travel together.
type ContentRepository interface {

	/*
		ListCategories returns every category with its topic count, ordered by name.

		Returns:
		  - []Category: All sections
		  - error: Database retrieval failures
	*/
	ListCategories(ctx context.Context) ([]Category, error)

	/*
		CreateTopic persists a brand-new topic.

		Returns:
		  - error: Persistence failures
	*/
	CreateTopic(ctx context.Context, topic *Topic) error

	/*
		FindTopicByID returns the topic with the given ID.

		Returns:
		  - *Topic: Hydrated entity
		  - error: apperr.NotFound or database retrieval failures
	*/
	FindTopicByID(ctx context.Context, topicID string) (*Topic, error)

	/*
		ListTopicsByCategory returns a page of topics plus the total count,
		most recently updated first.

		Returns:
		  - []Topic: Page of threads
		  - int: Total thread count in the category
		  - error: Database retrieval failures
	*/
	ListTopicsByCategory(ctx context.Context, categoryID string, limit, offset int) ([]Topic, int, error)

	/*
		CreatePost persists a brand-new post and refreshes the parent topic's
		activity timestamp.

		Returns:
		  - error: Persistence failures
	*/
	CreatePost(ctx context.Context, post *Post) error

	/*
		SetTopicLocked flips the moderation lock on a thread.

		Returns:
		  - error: apperr.NotFound or persistence failures
	*/
	SetTopicLocked(ctx context.Context, topicID string, locked bool) error

	/*
		ListPostsByTopic returns a page of posts plus the total count, oldest first.

		Returns:
		  - []Post: Page of messages
		  - int: Total message count in the topic
		  - error: Database retrieval failures
	*/
	ListPostsByTopic(ctx context.Context, topicID string, limit, offset int) ([]Post, int, error)
}
