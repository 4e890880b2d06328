package types

import (
	"testing"

	"github.com/rxtech-lab/argo-market-strategy/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOutcomeConstructors(t *testing.T) {
	ok := Succeeded("AAPL", 3)
	assert.True(t, ok.Success)
	assert.Equal(t, 3, ok.Value.Unwrap())
	assert.Nil(t, ok.Error)

	failed := Failed[int]("MSFT", errors.New(errors.ErrCodeRemoteNotFound, "unknown symbol"))
	assert.False(t, failed.Success)
	assert.True(t, failed.Value.IsNone())
	require.NotNil(t, failed.Error)
	assert.Equal(t, errors.ErrCodeRemoteNotFound, failed.Error.Code)

	partial := Partial("TSLA", []int{1, 2}, errors.New(errors.ErrCodeRemoteRequestFailed, "page 2 failed"))
	assert.False(t, partial.Success)
	require.True(t, partial.Value.IsSome())
	assert.Equal(t, []int{1, 2}, partial.Value.Unwrap())
	require.NotNil(t, partial.Error)
	assert.Equal(t, errors.ErrCodeRemoteRequestFailed, partial.Error.Code)
}
