package confirm

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrompt_Confirm(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"yes", "y\n", true},
		{"yes full word", "YES\n", true},
		{"no", "n\n", false},
		{"empty defaults to no", "\n", false},
		{"eof defaults to no", "", false},
		{"other text", "sure\n", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var out bytes.Buffer
			p := NewPrompt(strings.NewReader(tt.input), &out)

			got, err := p.Confirm(context.Background(), "削除しますか？")
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, "削除しますか？ [y/N]: ", out.String())
		})
	}
}

func TestPrompt_CancelledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewPrompt(strings.NewReader("y\n"), &bytes.Buffer{}).Confirm(ctx, "削除しますか？")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestAlwaysAndFunc(t *testing.T) {
	t.Parallel()

	ok, err := Always(true).Confirm(context.Background(), "")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = Always(false).Confirm(context.Background(), "")
	require.NoError(t, err)
	assert.False(t, ok)

	var asked string
	f := Func(func(_ context.Context, prompt string) (bool, error) {
		asked = prompt
		return true, nil
	})
	ok, err = f.Confirm(context.Background(), "続行しますか？")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "続行しますか？", asked)
}
