package appshell

import (
	"context"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMain_EmptyArgvAsksForHelp(t *testing.T) {
	var got []string
	code := execute(func(_ context.Context, argv []string, _, _ io.Writer) int {
		got = argv
		return 0
	}, nil, io.Discard, io.Discard)
	assert.Equal(t, 0, code)
	assert.Equal(t, []string{"-h"}, got)
}

func TestMain_PassesCode(t *testing.T) {
	code := execute(func(context.Context, []string, io.Writer, io.Writer) int { return 3 },
		[]string{"calc"}, io.Discard, io.Discard)
	assert.Equal(t, 3, code)
}
