package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructors(t *testing.T) {
	cases := []struct {
		err    *Error
		status int
		code   string
	}{
		{Validation("bad input"), http.StatusBadRequest, CodeValidation},
		{Conflict("duplicate"), http.StatusConflict, CodeConflict},
		{Capacity("full"), http.StatusBadRequest, CodeCapacity},
		{NotFound("missing"), http.StatusNotFound, CodeNotFound},
		{Storage("disk"), http.StatusInternalServerError, CodeStorage},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.status, tc.err.Status)
		assert.Equal(t, tc.code, tc.err.Code)
	}
}

func TestMessageFormatting(t *testing.T) {
	err := Conflict("이미 존재하는 고정 확장자입니다: %s", "exe")
	assert.Equal(t, "이미 존재하는 고정 확장자입니다: exe", err.Error())
}

func TestErrorsAsThroughWrapping(t *testing.T) {
	wrapped := fmt.Errorf("context: %w", NotFound("gone"))

	var appErr *Error
	require.True(t, errors.As(wrapped, &appErr))
	assert.Equal(t, CodeNotFound, appErr.Code)
}
