// Copyright (c) 2026 JVED. All rights reserved.
// Author: jved@contact.fr

package forum

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/jved/forum/internal/platform/apperr"
	"github.com/jved/forum/internal/platform/dberr"
	"github.com/jved/forum/internal/platform/postgres"
)

// # Postgres Repository

// PostgresRepository implements the [LookupRepository] and [ContentRepository]
// contracts using pgx.
//
// # Error Mapping
//
// Every database error goes through [dberr.Wrap]: absent rows become
// NotFound, constraint violations become Conflict, and everything else stays
// an infrastructure failure.
type PostgresRepository struct {
	db postgres.DB
}

// NewRepository creates a new PostgreSQL implementation of the forum stores.
func NewRepository(db postgres.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// # Existence Checks

/*
CountTopicByID returns how many topics carry the given ID (0 or 1).

Parameters:
  - ctx: context.Context
  - topicID: string

Returns:
  - int: Number of matching rows
  - error: Database retrieval failures
*/
func (repository *PostgresRepository) CountTopicByID(ctx context.Context, topicID string) (int, error) {
	const query = `SELECT COUNT(id) FROM forum.topic WHERE id = $1`
	return repository.countByID(ctx, query, topicID)
}

/*
CountCategoryByID returns how many categories carry the given ID (0 or 1).

Parameters:
  - ctx: context.Context
  - categoryID: string

Returns:
  - int: Number of matching rows
  - error: Database retrieval failures
*/
func (repository *PostgresRepository) CountCategoryByID(ctx context.Context, categoryID string) (int, error) {
	const query = `SELECT COUNT(id) FROM forum.categorie WHERE id = $1`
	return repository.countByID(ctx, query, categoryID)
}

// countByID runs a single-value count query.
func (repository *PostgresRepository) countByID(ctx context.Context, query, id string) (int, error) {
	var count int
	if err := repository.db.QueryRow(ctx, query, id).Scan(&count); err != nil {
		return 0, dberr.Wrap(err, "count_forum_rows")
	}
	return count, nil
}

// # Categories

/*
ListCategories returns every category with its live topic count, ordered by name.

Returns:
  - []Category: All sections
  - error: Database retrieval failures
*/
func (repository *PostgresRepository) ListCategories(ctx context.Context) ([]Category, error) {
	const query = `
		SELECT c.id, c.name, c.slug, c.description, c.createdat,
			(SELECT COUNT(id) FROM forum.topic t WHERE t.categorie_id = c.id) AS topic_count
		FROM forum.categorie c
		ORDER BY c.name ASC`

	rows, err := repository.db.Query(ctx, query)
	if err != nil {
		return nil, dberr.Wrap(err, "list_categories")
	}
	defer rows.Close()

	var categories []Category
	for rows.Next() {
		var category Category
		if err := rows.Scan(
			&category.ID,
			&category.Name,
			&category.Slug,
			&category.Description,
			&category.CreatedAt,
			&category.TopicCount,
		); err != nil {
			return nil, dberr.Wrap(err, "scan_category")
		}
		categories = append(categories, category)
	}

	if err := rows.Err(); err != nil {
		return nil, dberr.Wrap(err, "list_categories")
	}

	return categories, nil
}

// # Topics

/*
CreateTopic persists a new topic record into the forum.topic table.

Parameters:
  - ctx: context.Context
  - topic: *Topic (Entity to persist)

Returns:
  - error: Database constraint violations or connectivity errors
*/
func (repository *PostgresRepository) CreateTopic(ctx context.Context, topic *Topic) error {
	const query = `
		INSERT INTO forum.topic (
			id, categorie_id, author_id, name, subject, slug, islocked, createdat, updatedat
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	now := time.Now()
	if topic.CreatedAt.IsZero() {
		topic.CreatedAt = now
	}
	topic.UpdatedAt = now

	_, err := repository.db.Exec(ctx, query,
		topic.ID,
		topic.CategoryID,
		topic.AuthorID,
		topic.Name,
		topic.Subject,
		topic.Slug,
		topic.IsLocked,
		topic.CreatedAt,
		topic.UpdatedAt,
	)

	return dberr.Wrap(err, "create_topic")
}

/*
FindTopicByID retrieves a topic record by its primary key.

Parameters:
  - ctx: context.Context
  - topicID: string

Returns:
  - *Topic: Hydrated entity
  - error: apperr.NotFound or database errors
*/
func (repository *PostgresRepository) FindTopicByID(ctx context.Context, topicID string) (*Topic, error) {
	const query = `
		SELECT id, categorie_id, author_id, name, subject, slug, islocked, createdat, updatedat,
			(SELECT COUNT(id) FROM forum.post p WHERE p.topic_id = forum.topic.id) AS post_count
		FROM forum.topic
		WHERE id = $1`

	topic := &Topic{}
	err := repository.db.QueryRow(ctx, query, topicID).Scan(
		&topic.ID,
		&topic.CategoryID,
		&topic.AuthorID,
		&topic.Name,
		&topic.Subject,
		&topic.Slug,
		&topic.IsLocked,
		&topic.CreatedAt,
		&topic.UpdatedAt,
		&topic.PostCount,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("Topic")
		}
		return nil, dberr.Wrap(err, "lookup_topic")
	}

	return topic, nil
}

/*
ListTopicsByCategory returns a page of topics plus the total count, most
recently updated first.

Description: Uses a window function to fetch the total alongside the page in
one round trip.

Parameters:
  - ctx: context.Context
  - categoryID: string
  - limit: int
  - offset: int

Returns:
  - []Topic: Page of threads
  - int: Total thread count in the category
  - error: Database retrieval failures
*/
func (repository *PostgresRepository) ListTopicsByCategory(ctx context.Context, categoryID string, limit, offset int) ([]Topic, int, error) {
	const query = `
		SELECT id, categorie_id, author_id, name, subject, slug, islocked, createdat, updatedat,
			COUNT(*) OVER() AS total_count
		FROM forum.topic
		WHERE categorie_id = $1
		ORDER BY updatedat DESC
		LIMIT $2 OFFSET $3`

	rows, err := repository.db.Query(ctx, query, categoryID, limit, offset)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_topics")
	}
	defer rows.Close()

	var topics []Topic
	var totalCount int
	for rows.Next() {
		var topic Topic
		if err := rows.Scan(
			&topic.ID,
			&topic.CategoryID,
			&topic.AuthorID,
			&topic.Name,
			&topic.Subject,
			&topic.Slug,
			&topic.IsLocked,
			&topic.CreatedAt,
			&topic.UpdatedAt,
			&totalCount,
		); err != nil {
			return nil, 0, dberr.Wrap(err, "scan_topic")
		}
		topics = append(topics, topic)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, dberr.Wrap(err, "list_topics")
	}

	return topics, totalCount, nil
}

/*
SetTopicLocked flips the moderation lock on a thread.

Parameters:
  - ctx: context.Context
  - topicID: string
  - locked: bool

Returns:
  - error: apperr.NotFound or persistence failures
*/
func (repository *PostgresRepository) SetTopicLocked(ctx context.Context, topicID string, locked bool) error {
	const query = `
		UPDATE forum.topic
		SET islocked = $2, updatedat = NOW()
		WHERE id = $1`

	tag, err := repository.db.Exec(ctx, query, topicID, locked)
	if err != nil {
		return dberr.Wrap(err, "set_topic_locked")
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound("Topic")
	}

	return nil
}

// # Posts

/*
CreatePost persists a new post record into the forum.post table and bumps the
parent topic's activity timestamp.

Parameters:
  - ctx: context.Context
  - post: *Post (Entity to persist)

Returns:
  - error: Database constraint violations or connectivity errors
*/
func (repository *PostgresRepository) CreatePost(ctx context.Context, post *Post) error {
	const query = `
		INSERT INTO forum.post (
			id, topic_id, author_id, comment, createdat, updatedat
		) VALUES ($1, $2, $3, $4, $5, $6)`

	now := time.Now()
	if post.CreatedAt.IsZero() {
		post.CreatedAt = now
	}
	post.UpdatedAt = now

	_, err := repository.db.Exec(ctx, query,
		post.ID,
		post.TopicID,
		post.AuthorID,
		post.Comment,
		post.CreatedAt,
		post.UpdatedAt,
	)

	if err != nil {
		return dberr.Wrap(err, "create_post")
	}

	const touch = `UPDATE forum.topic SET updatedat = NOW() WHERE id = $1`
	if _, err := repository.db.Exec(ctx, touch, post.TopicID); err != nil {
		return dberr.Wrap(err, "touch_topic")
	}

	return nil
}

/*
ListPostsByTopic returns a page of posts plus the total count, oldest first.

Parameters:
  - ctx: context.Context
  - topicID: string
  - limit: int
  - offset: int

Returns:
  - []Post: Page of messages
  - int: Total message count in the topic
  - error: Database retrieval failures
*/
func (repository *PostgresRepository) ListPostsByTopic(ctx context.Context, topicID string, limit, offset int) ([]Post, int, error) {
	const query = `
		SELECT id, topic_id, author_id, comment, createdat, updatedat,
			COUNT(*) OVER() AS total_count
		FROM forum.post
		WHERE topic_id = $1
		ORDER BY createdat ASC
		LIMIT $2 OFFSET $3`

	rows, err := repository.db.Query(ctx, query, topicID, limit, offset)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_posts")
	}
	defer rows.Close()

	var posts []Post
	var totalCount int
	for rows.Next() {
		var post Post
		if err := rows.Scan(
			&post.ID,
			&post.TopicID,
			&post.AuthorID,
			&post.Comment,
			&post.CreatedAt,
			&post.UpdatedAt,
			&totalCount,
		); err != nil {
			return nil, 0, dberr.Wrap(err, "scan_post")
		}
		posts = append(posts, post)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, dberr.Wrap(err, "list_posts")
	}

	return posts, totalCount, nil
}
