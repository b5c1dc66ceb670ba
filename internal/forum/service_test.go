// Copyright (c) 2026 JVED. All rights reserved.
// Author: jved@contact.fr

package forum_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jved/forum/internal/forum"
	"github.com/jved/forum/internal/platform/apperr"
)

// # Test Doubles

// stubLookups answers existence counts from maps. A non-nil failWith makes
// every call fail, simulating an unreachable database.
type stubLookups struct {
	topics     map[string]int
	categories map[string]int
	failWith   error
}

func (s *stubLookups) CountTopicByID(ctx context.Context, topicID string) (int, error) {
	if s.failWith != nil {
		return 0, s.failWith
	}
	return s.topics[topicID], nil
}

func (s *stubLookups) CountCategoryByID(ctx context.Context, categoryID string) (int, error) {
	if s.failWith != nil {
		return 0, s.failWith
	}
	return s.categories[categoryID], nil
}

// stubContent records writes in memory.
type stubContent struct {
	topics map[string]*forum.Topic
	posts  []*forum.Post
}

func newStubContent() *stubContent {
	return &stubContent{topics: map[string]*forum.Topic{}}
}

func (s *stubContent) ListCategories(ctx context.Context) ([]forum.Category, error) {
	return nil, nil
}

func (s *stubContent) CreateTopic(ctx context.Context, topic *forum.Topic) error {
	s.topics[topic.ID] = topic
	return nil
}

func (s *stubContent) FindTopicByID(ctx context.Context, topicID string) (*forum.Topic, error) {
	if topic, ok := s.topics[topicID]; ok {
		return topic, nil
	}
	return nil, apperr.NotFound("Topic")
}

func (s *stubContent) ListTopicsByCategory(ctx context.Context, categoryID string, limit, offset int) ([]forum.Topic, int, error) {
	return nil, 0, nil
}

func (s *stubContent) CreatePost(ctx context.Context, post *forum.Post) error {
	s.posts = append(s.posts, post)
	return nil
}

func (s *stubContent) SetTopicLocked(ctx context.Context, topicID string, locked bool) error {
	topic, ok := s.topics[topicID]
	if !ok {
		return apperr.NotFound("Topic")
	}
	topic.IsLocked = locked
	return nil
}

func (s *stubContent) ListPostsByTopic(ctx context.Context, topicID string, limit, offset int) ([]forum.Post, int, error) {
	return nil, 0, nil
}

func newFixture() (*forum.Service, *stubLookups, *stubContent) {
	lookups := &stubLookups{
		topics:     map[string]int{"topic-1": 1},
		categories: map[string]int{"cat-1": 1},
	}
	content := newStubContent()
	return forum.NewService(lookups, content), lookups, content
}

// # Existence Checks

/*
TestCheckTopicExists separates the business verdict from infrastructure
failure: an outage is never reported as "does not exist".
*/
func TestCheckTopicExists(t *testing.T) {
	t.Run("exists", func(t *testing.T) {
		service, _, _ := newFixture()

		result, err := service.CheckTopicExists(context.Background(), "topic-1")
		require.NoError(t, err)
		assert.True(t, result.Valid())
	})

	t.Run("missing", func(t *testing.T) {
		service, _, _ := newFixture()

		result, err := service.CheckTopicExists(context.Background(), "ghost")
		require.NoError(t, err)
		require.Len(t, result, 1)
		assert.Equal(t, "Topic does not exist", result[0].Message)
	})

	t.Run("infrastructure_failure", func(t *testing.T) {
		service, lookups, _ := newFixture()
		lookups.failWith = errors.New("connection refused")

		result, err := service.CheckTopicExists(context.Background(), "topic-1")
		require.Error(t, err)
		assert.Nil(t, result)
	})
}

/*
TestCheckCategoryExists mirrors the topic check for categories.
*/
func TestCheckCategoryExists(t *testing.T) {
	service, _, _ := newFixture()

	result, err := service.CheckCategoryExists(context.Background(), "cat-1")
	require.NoError(t, err)
	assert.True(t, result.Valid())

	result, err = service.CheckCategoryExists(context.Background(), "ghost")
	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.Equal(t, "Category does not exist", result[0].Message)
}

// # Content Writes

/*
TestCreateTopic verifies field validation, category existence, and the slug
derivation on success.
*/
func TestCreateTopic(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		service, _, content := newFixture()

		topic, result, err := service.CreateTopic(context.Background(), forum.CreateTopicInput{
			CategoryID: "cat-1",
			AuthorID:   "user-1",
			Name:       "Entraide Générale",
			Subject:    "Pour bien débuter",
		})

		require.NoError(t, err)
		require.True(t, result.Valid())
		require.NotNil(t, topic)

		assert.NotEmpty(t, topic.ID)
		assert.Equal(t, "entraide-generale", topic.Slug)
		assert.Contains(t, content.topics, topic.ID)
	})

	t.Run("collects_field_and_reference_errors", func(t *testing.T) {
		service, _, _ := newFixture()

		topic, result, err := service.CreateTopic(context.Background(), forum.CreateTopicInput{
			CategoryID: "ghost",
			AuthorID:   "user-1",
			Name:       "ab", // too short
			Subject:    "ok", // too short
		})

		require.NoError(t, err)
		assert.Nil(t, topic)
		assert.Len(t, result, 3)
	})
}

/*
TestCreatePost verifies comment bounds, topic existence, and the lock gate.
*/
func TestCreatePost(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		service, _, content := newFixture()
		content.topics["topic-1"] = &forum.Topic{ID: "topic-1"}

		post, result, err := service.CreatePost(context.Background(), forum.CreatePostInput{
			TopicID:  "topic-1",
			AuthorID: "user-1",
			Comment:  "Bonjour à tous",
		})

		require.NoError(t, err)
		require.True(t, result.Valid())
		require.NotNil(t, post)
		assert.Len(t, content.posts, 1)
	})

	t.Run("unknown_topic", func(t *testing.T) {
		service, _, _ := newFixture()

		post, result, err := service.CreatePost(context.Background(), forum.CreatePostInput{
			TopicID:  "ghost",
			AuthorID: "user-1",
			Comment:  "Bonjour à tous",
		})

		require.NoError(t, err)
		assert.Nil(t, post)
		require.Len(t, result, 1)
		assert.Equal(t, "Topic does not exist", result[0].Message)
	})

	t.Run("locked_topic_rejected", func(t *testing.T) {
		service, _, content := newFixture()
		content.topics["topic-1"] = &forum.Topic{ID: "topic-1", IsLocked: true}

		post, result, err := service.CreatePost(context.Background(), forum.CreatePostInput{
			TopicID:  "topic-1",
			AuthorID: "user-1",
			Comment:  "Bonjour à tous",
		})

		require.NoError(t, err)
		assert.Nil(t, post)
		require.Len(t, result, 1)
		assert.Equal(t, "Topic is locked", result[0].Message)
		assert.Empty(t, content.posts)
	})

	t.Run("comment_out_of_bounds", func(t *testing.T) {
		service, _, _ := newFixture()

		post, result, err := service.CreatePost(context.Background(), forum.CreatePostInput{
			TopicID:  "topic-1",
			AuthorID: "user-1",
			Comment:  "ab",
		})

		require.NoError(t, err)
		assert.Nil(t, post)
		require.Len(t, result, 1)
		assert.Equal(t, "Must be between 3 and 400 characters", result[0].Message)
	})
}

// # Moderation

/*
TestLockUnlockTopic verifies the moderation toggles.
*/
func TestLockUnlockTopic(t *testing.T) {
	service, _, content := newFixture()
	content.topics["topic-1"] = &forum.Topic{ID: "topic-1"}

	require.NoError(t, service.LockTopic(context.Background(), "topic-1"))
	assert.True(t, content.topics["topic-1"].IsLocked)

	require.NoError(t, service.UnlockTopic(context.Background(), "topic-1"))
	assert.False(t, content.topics["topic-1"].IsLocked)

	err := service.LockTopic(context.Background(), "ghost")
	assert.True(t, apperr.IsNotFound(err))
}
