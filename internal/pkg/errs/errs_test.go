//go:build unit

package errs_test

import (
	"errors"
	"testing"

	"login-clean-starter/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrap(t *testing.T) {
	assert.NoError(t, errs.Wrap(nil, "context"))
	assert.NoError(t, errs.Wrapf(nil, "context %d", 1))

	base := errs.New("base")
	err := errs.Wrapf(base, "layer %d", 2)
	require.ErrorIs(t, err, base)
	assert.Equal(t, "layer 2: base", err.Error())
}

func TestMark(t *testing.T) {
	marker := errors.New("marker")

	assert.Equal(t, marker, errs.Mark(nil, marker))

	err := errs.Mark(errors.New("cause"), marker)
	assert.True(t, errs.Is(err, marker))
	assert.Equal(t, "cause", err.Error())
}

func TestExtractStackLines(t *testing.T) {
	assert.Nil(t, errs.ExtractStackLines(nil, 3))

	lines := errs.ExtractStackLines(errs.New("boom"), 3)
	require.Len(t, lines, 3)
	assert.Contains(t, lines[0], "boom")

	all := errs.ExtractStackLines(errs.New("boom"), 0)
	assert.Greater(t, len(all), 3)
}
