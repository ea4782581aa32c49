package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nitinmeharia/rule-engine/internal/auth"
	"github.com/nitinmeharia/rule-engine/internal/domain"
	"github.com/nitinmeharia/rule-engine/internal/repository"
)

// NamespaceHandler handles HTTP requests for namespaces.
type NamespaceHandler struct {
	store repository.NamespaceStore
}

// NewNamespaceHandler creates a new namespace handler.
func NewNamespaceHandler(store repository.NamespaceStore) *NamespaceHandler {
	return &NamespaceHandler{store: store}
}

// List handles GET /v1/namespaces.
func (h *NamespaceHandler) List(c *gin.Context) {
	namespaces, err := h.store.List(c.Request.Context())
	if err != nil {
		abortWithDomainError(c, err)
		return
	}
	if namespaces == nil {
		namespaces = []*domain.Namespace{}
	}
	c.JSON(http.StatusOK, gin.H{"namespaces": namespaces})
}

// Get handles GET /v1/namespaces/:id.
func (h *NamespaceHandler) Get(c *gin.Context) {
	id := c.Param("id")
	namespace, err := h.store.GetByID(c.Request.Context(), id)
	if err != nil {
		abortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, namespace)
}

// Create handles POST /v1/namespaces.
func (h *NamespaceHandler) Create(c *gin.Context) {
	var req domain.CreateNamespaceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"code":    "INVALID_REQUEST",
			"message": "Invalid request body",
		})
		return
	}

	namespace := &domain.Namespace{
		ID:          req.ID,
		Description: req.Description,
		CreatedBy:   auth.GetClientID(c),
	}
	if err := namespace.Validate(); err != nil {
		abortWithDomainError(c, err)
		return
	}

	if err := h.store.Create(c.Request.Context(), namespace); err != nil {
		abortWithDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, namespace)
}

// abortWithDomainError maps domain errors to HTTP responses.
func abortWithDomainError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"code":    "NOT_FOUND",
			"message": "Namespace not found",
		})
	case errors.Is(err, domain.ErrAlreadyExists):
		c.JSON(http.StatusConflict, gin.H{
			"code":    "ALREADY_EXISTS",
			"message": "Namespace already exists",
		})
	case errors.Is(err, domain.ErrInvalidNamespaceID), errors.Is(err, domain.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{
			"code":    "INVALID_REQUEST",
			"message": err.Error(),
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"code":    "INTERNAL_ERROR",
			"message": "Internal server error",
		})
	}
}
