package errors_test

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/muhammadheryan/roadside-assistance/constant"
	cerr "github.com/muhammadheryan/roadside-assistance/utils/errors"
	"github.com/stretchr/testify/assert"
)

func TestCustomError(t *testing.T) {
	tests := []struct {
		name     string
		err      cerr.CustomError
		wantMsg  string
		wantHTTP int
		wantKind constant.ErrorKind
	}{
		{
			name:     "default message",
			err:      cerr.SetCustomError(constant.ErrNotFound),
			wantMsg:  "data not found",
			wantHTTP: http.StatusNotFound,
			wantKind: constant.KindNotFound,
		},
		{
			name:     "override message",
			err:      cerr.SetCustomErrorMessage(constant.ErrInvalidTransition, "request is no longer pending"),
			wantMsg:  "request is no longer pending",
			wantHTTP: http.StatusConflict,
			wantKind: constant.KindInvalidTransition,
		},
		{
			name:     "blocked account is an authentication failure",
			err:      cerr.SetCustomError(constant.ErrAccountBlocked),
			wantMsg:  "Your account has been blocked by admin",
			wantHTTP: http.StatusForbidden,
			wantKind: constant.KindNotAuthenticated,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantMsg, tt.err.Error())
			assert.Equal(t, tt.wantHTTP, tt.err.ErrorHTTPCode())
			assert.Equal(t, tt.wantKind, tt.err.Kind())
		})
	}
}

func TestCustomError_Is(t *testing.T) {
	wrapped := fmt.Errorf("accept: %w", cerr.SetCustomErrorMessage(constant.ErrInvalidTransition, "request is no longer pending"))

	assert.True(t, stderrors.Is(wrapped, cerr.SetCustomError(constant.ErrInvalidTransition)))
	assert.False(t, stderrors.Is(wrapped, cerr.SetCustomError(constant.ErrForbidden)))
}
