package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromStatus(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		message  string
		wantType ErrorType
		wantMsg  string
	}{
		{"unauthorized with message", 401, "token expired", ErrorTypeUnauthorized, "token expired"},
		{"unauthorized fallback", 401, "", ErrorTypeUnauthorized, "Session expired, please log in again"},
		{"forbidden", 403, "", ErrorTypeForbidden, "You do not have permission to do that"},
		{"not found", 404, "", ErrorTypeNotFound, "Resource not found"},
		{"bad request keeps backend message", 400, "titre is required", ErrorTypeValidation, "titre is required"},
		{"server error", 500, "", ErrorTypeExternal, "The server could not process the request"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := FromStatus(tt.status, tt.message)
			assert.Equal(t, tt.wantType, err.Type)
			assert.Equal(t, tt.wantMsg, err.Message)
			assert.Equal(t, tt.status, err.HTTPStatus)
		})
	}
}

func TestWrapPreservesType(t *testing.T) {
	err := Wrap(NewUnauthorized("bad credentials"), "login")
	assert.True(t, IsUnauthorized(err))
	assert.Contains(t, err.Error(), "login")

	plain := Wrap(fmt.Errorf("boom"), "load page")
	assert.False(t, IsUnauthorized(plain))
	assert.Contains(t, plain.Error(), "boom")
}

func TestUserMessageHidesInternalDetail(t *testing.T) {
	assert.Equal(t, "titre is required", UserMessage(NewValidation("titre is required")))
	assert.Equal(t, "Something went wrong, please try again", UserMessage(fmt.Errorf("nil pointer")))
	assert.Equal(t, "Something went wrong, please try again", UserMessage(NewInternal("decode failed", nil)))
	assert.Equal(t, "", UserMessage(nil))
}
