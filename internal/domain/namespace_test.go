package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNamespaceValidate(t *testing.T) {
	tests := []struct {
		name      string
		namespace Namespace
		wantErr   error
	}{
		{
			name:      "valid",
			namespace: Namespace{ID: "payments", Description: "Payment rules", CreatedBy: "test-client"},
		},
		{
			name:      "valid_with_underscores",
			namespace: Namespace{ID: "fraud_checks-v2", CreatedBy: "test-client"},
		},
		{
			name:      "empty_id",
			namespace: Namespace{ID: "", CreatedBy: "test-client"},
			wantErr:   ErrInvalidNamespaceID,
		},
		{
			name:      "id_too_long",
			namespace: Namespace{ID: strings.Repeat("a", 51), CreatedBy: "test-client"},
			wantErr:   ErrInvalidNamespaceID,
		},
		{
			name:      "id_with_spaces",
			namespace: Namespace{ID: "my namespace", CreatedBy: "test-client"},
			wantErr:   ErrInvalidNamespaceID,
		},
		{
			name:      "id_leading_hyphen",
			namespace: Namespace{ID: "-payments", CreatedBy: "test-client"},
			wantErr:   ErrInvalidNamespaceID,
		},
		{
			name:      "missing_created_by",
			namespace: Namespace{ID: "payments"},
			wantErr:   ErrValidation,
		},
		{
			name:      "description_too_long",
			namespace: Namespace{ID: "payments", Description: strings.Repeat("x", 501), CreatedBy: "test-client"},
			wantErr:   ErrValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.namespace.Validate()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
