package validation

import (
	"testing"

	"github.com/fekuna/omnipos-warehouse-service/internal/apperr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Name     string `json:"name" validate:"required"`
	Quantity int    `json:"quantity" validate:"gt=0"`
	Password string `json:"new_password" validate:"min=6"`
	Confirm  string `json:"confirm_password" validate:"eqfield=Password"`
}

type change struct {
	NewPassword     string `json:"new_password"`
	ConfirmPassword string `json:"confirm_password" validate:"eqfield=NewPassword"`
}

func TestStruct(t *testing.T) {
	cases := []struct {
		in   sample
		want string
	}{
		{sample{Quantity: 1, Password: "secret", Confirm: "secret"}, "name is required"},
		{sample{Name: "a", Password: "secret", Confirm: "secret"}, "quantity must be greater than 0"},
		{sample{Name: "a", Quantity: 1, Password: "abc", Confirm: "abc"}, "new_password must be at least 6 characters"},
		{sample{Name: "a", Quantity: 1, Password: "secret", Confirm: "other1"}, "confirm_password must match password"},
	}
	for _, tc := range cases {
		err := Struct(tc.in)
		require.Error(t, err)
		assert.True(t, apperr.IsValidation(err))
		assert.Equal(t, tc.want, err.Error())
	}

	assert.NoError(t, Struct(sample{Name: "a", Quantity: 1, Password: "secret", Confirm: "secret"}))
}

func TestStruct_CrossFieldUsesSnakeCase(t *testing.T) {
	err := Struct(change{NewPassword: "secret", ConfirmPassword: "secreT"})
	require.Error(t, err)
	assert.Equal(t, "confirm_password must match new_password", err.Error())
}
