package domain

import (
	"errors"
	"regexp"
	"strings"
	"time"
)

// Domain errors mapped to HTTP responses by the handlers.
var (
	ErrNotFound           = errors.New("resource not found")
	ErrAlreadyExists      = errors.New("resource already exists")
	ErrInvalidNamespaceID = errors.New("invalid namespace id")
	ErrValidation         = errors.New("validation error")
)

var namespaceIDPattern = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)

// Namespace is a logical grouping of rules, workflows, and configurations
// in the rule engine.
type Namespace struct {
	ID          string    `json:"id"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
	CreatedBy   string    `json:"createdBy"`
}

// Validate checks the namespace fields before persistence.
func (n *Namespace) Validate() error {
	if n == nil {
		return ErrValidation
	}
	if strings.TrimSpace(n.ID) == "" || len(n.ID) > 50 {
		return ErrInvalidNamespaceID
	}
	if !namespaceIDPattern.MatchString(n.ID) {
		return ErrInvalidNamespaceID
	}
	if strings.HasPrefix(n.ID, "-") || strings.HasPrefix(n.ID, "_") ||
		strings.HasSuffix(n.ID, "-") || strings.HasSuffix(n.ID, "_") {
		return ErrInvalidNamespaceID
	}
	if strings.TrimSpace(n.CreatedBy) == "" {
		return ErrValidation
	}
	if len(n.Description) > 500 {
		return ErrValidation
	}
	return nil
}

// CreateNamespaceRequest is the request body for POST /v1/namespaces.
type CreateNamespaceRequest struct {
	ID          string `json:"id" binding:"required"`
	Description string `json:"description"`
}
