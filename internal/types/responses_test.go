//nolint:revive // types is a standard Go package name pattern
package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUserResponse_Validate(t *testing.T) {
	tests := []struct {
		name    string
		resp    UserResponse
		wantErr bool
	}{
		{name: "valid email", resp: UserResponse{Email: "a@b.com"}, wantErr: false},
		{name: "placeholder value", resp: UserResponse{Email: "test_API HELLO"}, wantErr: false},
		{name: "missing email", resp: UserResponse{}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.resp.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestDocumentsResponse_Validate(t *testing.T) {
	tests := []struct {
		name    string
		resp    DocumentsResponse
		wantErr bool
	}{
		{
			name:    "two documents",
			resp:    DocumentsResponse{Documents: []DocumentSummary{{Title: "First Doc"}, {Title: "Second"}}},
			wantErr: false,
		},
		{name: "empty list", resp: DocumentsResponse{Documents: []DocumentSummary{}}, wantErr: true},
		{name: "nil list", resp: DocumentsResponse{}, wantErr: true},
		{
			name:    "element without title",
			resp:    DocumentsResponse{Documents: []DocumentSummary{{Title: "ok"}, {}}},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.resp.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestDocumentsResponse_FirstTitle(t *testing.T) {
	resp := DocumentsResponse{Documents: []DocumentSummary{{Title: "First Doc"}, {Title: "Second"}}}
	assert.Equal(t, "First Doc", resp.FirstTitle())
}
