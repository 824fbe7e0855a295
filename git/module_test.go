package git_test

import (
	"context"
	"errors"
	"testing"

	"github.com/fwojciec/promptline"
	"github.com/fwojciec/promptline/git"
	"github.com/fwojciec/promptline/mock"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func branchRunner(branch string, err error) *mock.GitRunner {
	return &mock.GitRunner{
		BranchFn: func(ctx context.Context, dir string) (string, error) {
			return branch, err
		},
	}
}

func moduleConfig(values map[string]any) promptline.ModuleConfig {
	return promptline.ModuleConfig{Name: git.Name, Values: values}
}

func TestModule_Segments(t *testing.T) {
	t.Parallel()

	wd := git.WithGetwd(func() (string, error) { return "/src/app", nil })

	t.Run("shows branch with defaults", func(t *testing.T) {
		t.Parallel()

		var queried string
		runner := &mock.GitRunner{
			BranchFn: func(ctx context.Context, dir string) (string, error) {
				queried = dir
				return "main", nil
			},
		}
		m := git.NewModule(zerolog.Nop(), runner, wd)

		segs, err := m.Segments(context.Background(), moduleConfig(nil))

		require.NoError(t, err)
		assert.Equal(t, "/src/app", queried, "runner should receive working directory")
		def := git.DefaultStyle
		assert.Equal(t, []promptline.Segment{
			{Text: "on "},
			{Text: "main", Style: &def},
		}, segs)
	})

	t.Run("hidden outside a repository", func(t *testing.T) {
		t.Parallel()

		m := git.NewModule(zerolog.Nop(), branchRunner("", errors.New("not a git repository")), wd)

		segs, err := m.Segments(context.Background(), moduleConfig(nil))

		require.NoError(t, err)
		assert.Nil(t, segs)
	})

	t.Run("disabled skips git", func(t *testing.T) {
		t.Parallel()

		runner := &mock.GitRunner{
			BranchFn: func(ctx context.Context, dir string) (string, error) {
				t.Fatal("runner should not be called")
				return "", nil
			},
		}
		m := git.NewModule(zerolog.Nop(), runner, wd)

		segs, err := m.Segments(context.Background(), moduleConfig(map[string]any{"disabled": true}))

		require.NoError(t, err)
		assert.Nil(t, segs)
	})

	t.Run("configured style and prefix", func(t *testing.T) {
		t.Parallel()

		m := git.NewModule(zerolog.Nop(), branchRunner("feature", nil), wd)

		segs, err := m.Segments(context.Background(), moduleConfig(map[string]any{
			"style":  "italic bright-purple",
			"prefix": map[string]any{"value": "⎇ ", "style": "none"},
		}))

		require.NoError(t, err)
		assert.Equal(t, []promptline.Segment{
			{Text: "⎇ "},
			{Text: "feature", Style: &promptline.Style{Italic: true, Foreground: promptline.Fixed(13)}},
		}, segs)
	})

	t.Run("invalid prefix is an error", func(t *testing.T) {
		t.Parallel()

		m := git.NewModule(zerolog.Nop(), branchRunner("main", nil), wd)

		_, err := m.Segments(context.Background(), moduleConfig(map[string]any{
			"prefix": map[string]any{"value": "on ", "style": "bold", "symbol": "x"},
		}))

		var de *promptline.DecodeError
		require.True(t, errors.As(err, &de))
		assert.Equal(t, promptline.UnknownField, de.Kind)
		assert.Equal(t, "git_branch.prefix", de.Path)
	})
}
