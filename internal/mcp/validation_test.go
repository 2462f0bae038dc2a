package mcp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateListDocumentsInput(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   *ListDocumentsInput
		wantErr bool
	}{
		{name: "valid empty", input: &ListDocumentsInput{}},
		{name: "valid owner", input: &ListDocumentsInput{Owner: "argocd"}},
		{name: "uppercase", input: &ListDocumentsInput{Owner: "Helm"}, wantErr: true},
		{name: "path", input: &ListDocumentsInput{Owner: "a/b"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := ValidateListDocumentsInput(tt.input)
			if tt.wantErr {
				assert.ErrorContains(t, err, "invalid owner")
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestValidateGetDocumentInput(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		input  *GetDocumentInput
		errMsg string
	}{
		{name: "valid", input: &GetDocumentInput{Owner: "node", ID: "app"}},
		{name: "valid default tab", input: &GetDocumentInput{Owner: "kubernetes"}},
		{name: "missing owner", input: &GetDocumentInput{}, errMsg: "invalid owner"},
		{name: "owner too long", input: &GetDocumentInput{Owner: "a123456789012345678901234567890123"}, errMsg: "invalid owner"},
		{name: "bad id", input: &GetDocumentInput{Owner: "node", ID: "app; rm"}, errMsg: "invalid id"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := ValidateGetDocumentInput(tt.input)
			if tt.errMsg == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tt.errMsg)
		})
	}
}
