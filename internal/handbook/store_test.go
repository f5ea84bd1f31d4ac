package handbook

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"
)

func catalogYAML(title string) string {
	return fmt.Sprintf(`
chapters:
  - id: ch1
    title: %q
    section: Introduction
    resources:
      - id: r1
        title: Primer
        url: https://example.com/primer
`, title)
}

func TestOpen(t *testing.T) {
	s, err := Open("", zap.NewNop())
	require.NoError(t, err)
	assert.Len(t, s.ChapterIDs(), 14)

	path := filepath.Join(t.TempDir(), "handbook.yaml")
	require.NoError(t, os.WriteFile(path, []byte(catalogYAML("Custom")), 0o644))

	s, err = Open(path, zap.NewNop())
	require.NoError(t, err)
	ch, err := s.Chapter("ch1")
	require.NoError(t, err)
	assert.Equal(t, "Custom", ch.Title)

	_, err = Open(filepath.Join(t.TempDir(), "absent.yaml"), zap.NewNop())
	assert.Error(t, err)
}

func TestStore_ReloadKeepsPreviousOnError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "handbook.yaml")
	require.NoError(t, os.WriteFile(path, []byte(catalogYAML("Before")), 0o644))

	s, err := Open(path, zap.NewNop())
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(path, []byte("chapters: []"), 0o644))
	assert.Error(t, s.Reload(path))

	ch, err := s.Chapter("ch1")
	require.NoError(t, err)
	assert.Equal(t, "Before", ch.Title)
}

func TestStore_Watch(t *testing.T) {
	defer goleak.VerifyNone(t)

	path := filepath.Join(t.TempDir(), "handbook.yaml")
	require.NoError(t, os.WriteFile(path, []byte(catalogYAML("Before")), 0o644))

	s, err := Open(path, zap.NewNop())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Watch(ctx, path) }()

	// Rewrite until the watcher has picked it up; the first write may land
	// before the watch is registered.
	require.Eventually(t, func() bool {
		_ = os.WriteFile(path, []byte(catalogYAML("After")), 0o644)
		ch, err := s.Chapter("ch1")
		return err == nil && ch.Title == "After"
	}, 5*time.Second, 50*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("watcher did not stop")
	}
}
