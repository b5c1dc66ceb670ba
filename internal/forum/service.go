// Copyright (c) 2026 JVED. All rights reserved.
// Author: jved@contact.fr

package forum

import (
	"context"

	"github.com/jved/forum/internal/platform/validate"
	"github.com/jved/forum/pkg/slug"
	"github.com/jved/forum/pkg/uuid"
)

// # Definitions & Constructors

// Service orchestrates forum use cases: reference checks, topic and post
// creation, and board browsing.
type Service struct {
	lookups LookupRepository
	content ContentRepository
}

// NewService wires the forum service with its repositories.
func NewService(lookups LookupRepository, content ContentRepository) *Service {
	return &Service{
		lookups: lookups,
		content: content,
	}
}

// # Existence Checks
//
// Both checks share one shape: the first return value carries the business
// verdict and the second carries plumbing failures. A database outage is
// never reported as "does not exist".

/*
CheckTopicExists verifies that a topic row is present for the given ID.

Parameters:
  - ctx: context.Context
  - topicID: string

Returns:
  - validate.Result: Empty when the topic exists
  - error: Database retrieval failures
*/
func (service *Service) CheckTopicExists(ctx context.Context, topicID string) (validate.Result, error) {
	count, err := service.lookups.CountTopicByID(ctx, topicID)
	if err != nil {
		return nil, err
	}

	v := &validate.Validator{}
	v.Custom(FieldTopic, count == 0, "Topic does not exist")
	return v.Result(), nil
}

/*
CheckCategoryExists verifies that a category row is present for the given ID.

Parameters:
  - ctx: context.Context
  - categoryID: string

Returns:
  - validate.Result: Empty when the category exists
  - error: Database retrieval failures
*/
func (service *Service) CheckCategoryExists(ctx context.Context, categoryID string) (validate.Result, error) {
	count, err := service.lookups.CountCategoryByID(ctx, categoryID)
	if err != nil {
		return nil, err
	}

	v := &validate.Validator{}
	v.Custom(FieldCategory, count == 0, "Category does not exist")
	return v.Result(), nil
}

// # Content Writes

// CreateTopicInput carries the raw form values for opening a thread.
type CreateTopicInput struct {
	CategoryID string
	AuthorID   string
	Name       string
	Subject    string
}

/*
CreateTopic validates and opens a new discussion thread.

Description: Field bounds are checked first, then the target category's
existence. All field problems are reported together so the submitter can fix
the whole form in one pass.

Parameters:
  - ctx: context.Context
  - input: CreateTopicInput

Returns:
  - *Topic: Created thread, nil when validation failed
  - validate.Result: Field problems, empty on success
  - error: Database failures
*/
func (service *Service) CreateTopic(ctx context.Context, input CreateTopicInput) (*Topic, validate.Result, error) {
	result := validate.TopicName(input.Name)
	result = append(result, validate.Subject(input.Subject)...)

	categoryResult, err := service.CheckCategoryExists(ctx, input.CategoryID)
	if err != nil {
		return nil, nil, err
	}
	result = append(result, categoryResult...)

	if !result.Valid() {
		return nil, result, nil
	}

	topic := &Topic{
		ID:         uuid.New(),
		CategoryID: input.CategoryID,
		AuthorID:   input.AuthorID,
		Name:       input.Name,
		Subject:    input.Subject,
		Slug:       slug.From(input.Name),
	}

	if err := service.content.CreateTopic(ctx, topic); err != nil {
		return nil, nil, err
	}

	return topic, nil, nil
}

// CreatePostInput carries the raw form values for replying in a thread.
type CreatePostInput struct {
	TopicID  string
	AuthorID string
	Comment  string
}

/*
CreatePost validates and appends a message to an existing thread.

Parameters:
  - ctx: context.Context
  - input: CreatePostInput

Returns:
  - *Post: Created message, nil when validation failed
  - validate.Result: Field problems, empty on success
  - error: Database failures
*/
func (service *Service) CreatePost(ctx context.Context, input CreatePostInput) (*Post, validate.Result, error) {
	result := validate.Comment(input.Comment)

	topicResult, err := service.CheckTopicExists(ctx, input.TopicID)
	if err != nil {
		return nil, nil, err
	}
	result = append(result, topicResult...)

	if !result.Valid() {
		return nil, result, nil
	}

	topic, err := service.content.FindTopicByID(ctx, input.TopicID)
	if err != nil {
		return nil, nil, err
	}
	if topic.IsLocked {
		v := &validate.Validator{}
		v.Custom(FieldTopic, true, "Topic is locked")
		return nil, v.Result(), nil
	}

	post := &Post{
		ID:       uuid.New(),
		TopicID:  input.TopicID,
		AuthorID: input.AuthorID,
		Comment:  input.Comment,
	}

	if err := service.content.CreatePost(ctx, post); err != nil {
		return nil, nil, err
	}

	return post, nil, nil
}

// # Moderation

// LockTopic freezes a thread so no further posts are accepted.
func (service *Service) LockTopic(ctx context.Context, topicID string) error {
	return service.content.SetTopicLocked(ctx, topicID, true)
}

// UnlockTopic reopens a frozen thread.
func (service *Service) UnlockTopic(ctx context.Context, topicID string) error {
	return service.content.SetTopicLocked(ctx, topicID, false)
}

// # Board Browsing

// ListCategories returns every board section.
func (service *Service) ListCategories(ctx context.Context) ([]Category, error) {
	return service.content.ListCategories(ctx)
}

// GetTopic returns a single thread by ID.
func (service *Service) GetTopic(ctx context.Context, topicID string) (*Topic, error) {
	return service.content.FindTopicByID(ctx, topicID)
}

// ListTopics returns a page of threads in a category plus the total count.
func (service *Service) ListTopics(ctx context.Context, categoryID string, limit, offset int) ([]Topic, int, error) {
	return service.content.ListTopicsByCategory(ctx, categoryID, limit, offset)
}

// ListPosts returns a page of messages in a thread plus the total count.
func (service *Service) ListPosts(ctx context.Context, topicID string, limit, offset int) ([]Post, int, error) {
	return service.content.ListPostsByTopic(ctx, topicID, limit, offset)
}
