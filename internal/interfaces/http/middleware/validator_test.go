package middleware

import (
	"testing"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupValidator(t *testing.T) {
	SetupValidator()

	v, ok := binding.Validator.Engine().(*validator.Validate)
	require.True(t, ok)

	type payload struct {
		Type string `binding:"fieldtype"`
	}

	assert.NoError(t, v.Struct(payload{Type: "email"}))
	assert.Error(t, v.Struct(payload{Type: "money"}))
}
