// Copyright (c) 2026 JVED. All rights reserved.
// Author: jved@contact.fr

package forum

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/jved/forum/internal/platform/request"
	"github.com/jved/forum/internal/platform/respond"
	"github.com/jved/forum/internal/platform/validate"
	"github.com/jved/forum/internal/users/session"
	"github.com/jved/forum/pkg/pagination"
)

// # Definitions & Constructors

// Handler implements the board's HTTP endpoints.
type Handler struct {
	forumService *Service
}

// NewHandler constructs a new [Handler] with its service dependency.
func NewHandler(service *Service) *Handler {
	return &Handler{forumService: service}
}

// Routes returns a [chi.Router] configured with board-specific routes.
//
// # Endpoints
//   - GET  /categories                    : Lists every section.
//   - GET  /categories/{categoryID}/topics: Lists threads in a section.
//   - GET  /topics/{topicID}              : Shows a single thread.
//   - GET  /topics/{topicID}/posts        : Lists messages in a thread.
//   - POST /topics                        : Opens a thread (authenticated only).
//   - POST /topics/{topicID}/posts        : Replies in a thread (authenticated only).
//   - POST /topics/{topicID}/lock,/unlock : Moderation lock (elevated only).
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	// Public browsing
	router.Get("/categories", handler.listCategories)
	router.Get("/categories/{categoryID}/topics", handler.listTopics)
	router.Get("/topics/{topicID}", handler.getTopic)
	router.Get("/topics/{topicID}/posts", handler.listPosts)

	// Writes require an open session
	router.Group(func(r chi.Router) {
		r.Use(session.Guard(session.RequireAuthenticated))
		r.Post("/topics", handler.createTopic)
		r.Post("/topics/{topicID}/posts", handler.createPost)
	})

	// Moderation requires an elevated role
	router.Group(func(r chi.Router) {
		r.Use(session.Guard(session.RequireElevated))
		r.Post("/topics/{topicID}/lock", handler.lockTopic)
		r.Post("/topics/{topicID}/unlock", handler.unlockTopic)
	})

	return router
}

// # Request Payloads

type createTopicRequest struct {
	CategoryID string `json:"category_id"`
	Name       string `json:"name"`
	Subject    string `json:"subject"`
}

type createPostRequest struct {
	Comment string `json:"comment"`
}

// # Browsing Handlers

/*
ListCategories returns every board section.

GET /categories

Response:
  - 200: []Category: All sections with topic counts
*/
func (handler *Handler) listCategories(writer http.ResponseWriter, request *http.Request) {
	categories, err := handler.forumService.ListCategories(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, categories)
}

/*
ListTopics returns a page of threads in a section.

GET /categories/{categoryID}/topics?page=&limit=

Response:
  - 200: Paginated []Topic
*/
func (handler *Handler) listTopics(writer http.ResponseWriter, request *http.Request) {
	categoryID := requestutil.Param(request, "categoryID")
	params := pagination.FromRequest(request)

	topics, total, err := handler.forumService.ListTopics(
		request.Context(), categoryID, params.Limit, params.Offset(),
	)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, topics, pagination.NewMeta(params.Page, params.Limit, total))
}

/*
GetTopic returns a single thread.

GET /topics/{topicID}

Response:
  - 200: Topic
  - 404: ErrNotFound: Unknown topic
*/
func (handler *Handler) getTopic(writer http.ResponseWriter, request *http.Request) {
	topicID := requestutil.Param(request, "topicID")

	topic, err := handler.forumService.GetTopic(request.Context(), topicID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, topic)
}

/*
ListPosts returns a page of messages in a thread, oldest first.

GET /topics/{topicID}/posts?page=&limit=

Response:
  - 200: Paginated []Post
*/
func (handler *Handler) listPosts(writer http.ResponseWriter, request *http.Request) {
	topicID := requestutil.Param(request, "topicID")
	params := pagination.FromRequest(request)

	posts, total, err := handler.forumService.ListPosts(
		request.Context(), topicID, params.Limit, params.Offset(),
	)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, posts, pagination.NewMeta(params.Page, params.Limit, total))
}

// # Write Handlers

/*
CreateTopic opens a new discussion thread.

POST /topics

Request:
  - Body: createTopicRequest (CategoryID, Name, Subject)

Response:
  - 201: Topic: Created thread
  - 400: ErrInvalidJSON: Field bounds or unknown category
  - 401: ErrUnauthorized: No open session
*/
func (handler *Handler) createTopic(writer http.ResponseWriter, request *http.Request) {
	identity, err := requestutil.RequiredIdentity(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input createTopicRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	topic, result, err := handler.forumService.CreateTopic(request.Context(), CreateTopicInput{
		CategoryID: input.CategoryID,
		AuthorID:   identity.ID,
		Name:       input.Name,
		Subject:    input.Subject,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	if !result.Valid() {
		respond.Error(writer, request, result.Err())
		return
	}

	respond.Created(writer, topic)
}

/*
CreatePost appends a message to an existing thread.

POST /topics/{topicID}/posts

Request:
  - Body: createPostRequest (Comment)

Response:
  - 201: Post: Created message
  - 400: ErrInvalidJSON: Comment bounds, unknown or locked topic
  - 401: ErrUnauthorized: No open session
*/
func (handler *Handler) createPost(writer http.ResponseWriter, request *http.Request) {
	identity, err := requestutil.RequiredIdentity(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input createPostRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	post, result, err := handler.forumService.CreatePost(request.Context(), CreatePostInput{
		TopicID:  requestutil.Param(request, "topicID"),
		AuthorID: identity.ID,
		Comment:  input.Comment,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	if !result.Valid() {
		respond.Error(writer, request, result.Err())
		return
	}

	respond.Created(writer, post)
}

// # Moderation Handlers

/*
LockTopic freezes a thread so no further posts are accepted.

POST /topics/{topicID}/lock

Response:
  - 204: No Content: Thread frozen
  - 404: ErrNotFound: Unknown topic
*/
func (handler *Handler) lockTopic(writer http.ResponseWriter, request *http.Request) {
	topicID := requestutil.Param(request, "topicID")

	if err := handler.forumService.LockTopic(request.Context(), topicID); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.NoContent(writer)
}

/*
UnlockTopic reopens a frozen thread.

POST /topics/{topicID}/unlock

Response:
  - 204: No Content: Thread reopened
  - 404: ErrNotFound: Unknown topic
*/
func (handler *Handler) unlockTopic(writer http.ResponseWriter, request *http.Request) {
	topicID := requestutil.Param(request, "topicID")

	if err := handler.forumService.UnlockTopic(request.Context(), topicID); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.NoContent(writer)
}
