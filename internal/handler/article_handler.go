package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"editorial-workflow/internal/domain"
	"editorial-workflow/internal/middleware"
	"editorial-workflow/internal/service"
	"editorial-workflow/internal/validator"
)

// ArticleHandler handles article lifecycle HTTP requests.
type ArticleHandler struct {
	workflow service.WorkflowService
}

// NewArticleHandler creates a new ArticleHandler.
func NewArticleHandler(workflow service.WorkflowService) *ArticleHandler {
	return &ArticleHandler{workflow: workflow}
}

// ArticleResponse represents an article in the API response.
type ArticleResponse struct {
	ID          string   `json:"id"`
	Slug        string   `json:"slug"`
	Title       string   `json:"title"`
	Body        string   `json:"body"`
	Excerpt     *string  `json:"excerpt,omitempty"`
	Tags        []string `json:"tags,omitempty"`
	AuthorID    string   `json:"author_id"`
	Status      string   `json:"status"`
	ReviewerID  *string  `json:"reviewer_id,omitempty"`
	ReviewNotes *string  `json:"review_notes,omitempty"`
	PublishedAt *string  `json:"published_at,omitempty"`
	CreatedAt   string   `json:"created_at"`
	UpdatedAt   string   `json:"updated_at"`
	Warning     string   `json:"warning,omitempty"`
}

// toArticleResponse converts a domain.Article to an ArticleResponse.
func toArticleResponse(a *domain.Article, warning string) ArticleResponse {
	response := ArticleResponse{
		ID:          a.ID,
		Slug:        a.Slug,
		Title:       a.Title,
		Body:        a.Body,
		Excerpt:     a.Excerpt,
		Tags:        a.Tags,
		AuthorID:    a.AuthorID,
		Status:      string(a.Status),
		ReviewerID:  a.ReviewerID,
		ReviewNotes: a.ReviewNotes,
		CreatedAt:   a.CreatedAt.Format(TimeFormat),
		UpdatedAt:   a.UpdatedAt.Format(TimeFormat),
		Warning:     warning,
	}
	if a.PublishedAt != nil {
		publishedAt := a.PublishedAt.Format(TimeFormat)
		response.PublishedAt = &publishedAt
	}
	return response
}

// CreateArticleRequest is the body for POST /api/v1/articles.
type CreateArticleRequest struct {
	Title   string   `json:"title"`
	Body    string   `json:"body"`
	Excerpt *string  `json:"excerpt"`
	Tags    []string `json:"tags"`
}

// UpdateArticleRequest is the body for PATCH /api/v1/articles/:id.
// Absent fields are left untouched.
type UpdateArticleRequest struct {
	Title   *string   `json:"title"`
	Body    *string   `json:"body"`
	Excerpt *string   `json:"excerpt"`
	Tags    *[]string `json:"tags"`
}

// ReviewArticleRequest is the body for POST /api/v1/articles/:id/review.
type ReviewArticleRequest struct {
	Decision string  `json:"decision"`
	Notes    *string `json:"notes"`
}

// CreateArticle handles POST /api/v1/articles
func (h *ArticleHandler) CreateArticle(c *gin.Context) {
	var req CreateArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	article, err := h.workflow.CreateArticle(c.Request.Context(), middleware.GetActorID(c), validator.CreateArticleInput{
		Title:   req.Title,
		Body:    req.Body,
		Excerpt: req.Excerpt,
		Tags:    req.Tags,
	})
	warning, ok := auditWarning(err)
	if err != nil && !ok {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, toArticleResponse(article, warning))
}

// GetArticle handles GET /api/v1/articles/:id
func (h *ArticleHandler) GetArticle(c *gin.Context) {
	id, ok := articleID(c)
	if !ok {
		return
	}

	article, err := h.workflow.GetArticle(c.Request.Context(), middleware.GetActorID(c), id)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, toArticleResponse(article, ""))
}

// ListArticles handles GET /api/v1/articles
func (h *ArticleHandler) ListArticles(c *gin.Context) {
	var filter domain.ArticleFilter
	if authorID := c.Query("author_id"); authorID != "" {
		if _, err := uuid.Parse(authorID); err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "author_id must be a valid UUID"})
			return
		}
		filter.AuthorID = &authorID
	}
	if status := c.Query("status"); status != "" {
		s := domain.Status(status)
		if !domain.IsValidStatus(s) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid status filter"})
			return
		}
		filter.Status = &s
	}

	articles, err := h.workflow.ListArticles(c.Request.Context(), middleware.GetActorID(c), filter)
	if err != nil {
		writeError(c, err)
		return
	}

	responses := make([]ArticleResponse, 0, len(articles))
	for i := range articles {
		responses = append(responses, toArticleResponse(&articles[i], ""))
	}
	c.JSON(http.StatusOK, gin.H{"articles": responses, "count": len(responses)})
}

// UpdateArticle handles PATCH /api/v1/articles/:id
func (h *ArticleHandler) UpdateArticle(c *gin.Context) {
	id, ok := articleID(c)
	if !ok {
		return
	}

	var req UpdateArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	article, err := h.workflow.UpdateArticle(c.Request.Context(), middleware.GetActorID(c), id, domain.ArticlePatch{
		Title:   req.Title,
		Body:    req.Body,
		Excerpt: req.Excerpt,
		Tags:    req.Tags,
	})
	warning, ok := auditWarning(err)
	if err != nil && !ok {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, toArticleResponse(article, warning))
}

// DeleteArticle handles DELETE /api/v1/articles/:id
func (h *ArticleHandler) DeleteArticle(c *gin.Context) {
	id, ok := articleID(c)
	if !ok {
		return
	}

	err := h.workflow.DeleteArticle(c.Request.Context(), middleware.GetActorID(c), id)
	warning, ok := auditWarning(err)
	if err != nil && !ok {
		writeError(c, err)
		return
	}

	if warning != "" {
		c.JSON(http.StatusOK, gin.H{"warning": warning})
		return
	}
	c.Status(http.StatusNoContent)
}

// SubmitArticle handles POST /api/v1/articles/:id/submit
func (h *ArticleHandler) SubmitArticle(c *gin.Context) {
	id, ok := articleID(c)
	if !ok {
		return
	}

	article, err := h.workflow.SubmitArticle(c.Request.Context(), middleware.GetActorID(c), id)
	warning, ok := auditWarning(err)
	if err != nil && !ok {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, toArticleResponse(article, warning))
}

// ReviewArticle handles POST /api/v1/articles/:id/review
func (h *ArticleHandler) ReviewArticle(c *gin.Context) {
	id, ok := articleID(c)
	if !ok {
		return
	}

	var req ReviewArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	article, err := h.workflow.ReviewArticle(c.Request.Context(), middleware.GetActorID(c), id, service.ReviewInput{
		Decision: domain.Status(req.Decision),
		Notes:    req.Notes,
	})
	warning, ok := auditWarning(err)
	if err != nil && !ok {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, toArticleResponse(article, warning))
}

// PublishArticle handles POST /api/v1/articles/:id/publish
func (h *ArticleHandler) PublishArticle(c *gin.Context) {
	id, ok := articleID(c)
	if !ok {
		return
	}

	article, err := h.workflow.PublishArticle(c.Request.Context(), middleware.GetActorID(c), id)
	warning, ok := auditWarning(err)
	if err != nil && !ok {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, toArticleResponse(article, warning))
}

// articleID validates the :id path parameter. A malformed id is rejected
// before the service is consulted.
func articleID(c *gin.Context) (string, bool) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "id must be a valid UUID"})
		return "", false
	}
	return id, true
}
