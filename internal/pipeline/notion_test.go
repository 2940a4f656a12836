package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewNotionClipper_Validation(t *testing.T) {
	_, err := NewNotionClipper("", "db-id")
	assert.Error(t, err)

	_, err = NewNotionClipper("secret-token", "")
	assert.Error(t, err)

	nc, err := NewNotionClipper("secret-token", "db-id")
	require.NoError(t, err)
	assert.NotNil(t, nc)
}
