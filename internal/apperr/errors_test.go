package apperr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestKindOf_WrappedError(t *testing.T) {
	err := fmt.Errorf("delete category: %w", Referential("category is in use by 3 products", 3))

	assert.Equal(t, KindReferential, KindOf(err))
	assert.True(t, IsReferential(err))
	assert.Equal(t, 3, ReferenceCount(err))
	assert.False(t, IsNotFound(err))
}

func TestKindOf_PlainError(t *testing.T) {
	assert.Equal(t, KindInternal, KindOf(errors.New("boom")))
	assert.False(t, IsValidation(nil))
}

func TestToStatus(t *testing.T) {
	cases := []struct {
		err  error
		code codes.Code
	}{
		{Validation("quantity must be positive"), codes.InvalidArgument},
		{Conflictf("insufficient stock for %s", "Widget"), codes.FailedPrecondition},
		{Referential("in use", 1), codes.FailedPrecondition},
		{NotFound("product", 7), codes.NotFound},
		{Unauthenticated("login required"), codes.Unauthenticated},
		{Internal("redis get", errors.New("conn refused")), codes.Internal},
		{errors.New("raw"), codes.Internal},
	}
	for _, tc := range cases {
		st, ok := status.FromError(ToStatus(tc.err))
		assert.True(t, ok)
		assert.Equal(t, tc.code, st.Code(), tc.err.Error())
	}
	assert.NoError(t, ToStatus(nil))
}

func TestNotFoundMessage(t *testing.T) {
	assert.Equal(t, "product 7 not found", NotFound("product", 7).Error())
}
