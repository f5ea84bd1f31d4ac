package handbook

import (
	"context"
	"fmt"
	"path/filepath"
	"sync/atomic"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// Repository is the read contract the rest of the application depends on.
type Repository interface {
	Chapter(id string) (Chapter, error)
	Chapters() []ChapterSummary
	Resources(chapterID string) ([]Resource, error)
	Resource(id string) (Resource, error)
	ResourceChapter(resourceID string) (Chapter, error)
	ChapterIDs() []string
	ChaptersBySection(section string) []Chapter
	Sections() []string
}

var _ Repository = (*Catalog)(nil)
var _ Repository = (*Store)(nil)

// Store serves reads from the current catalog and lets a watcher replace it
// without blocking readers.
type Store struct {
	current atomic.Pointer[Catalog]
	logger  *zap.Logger
}

func NewStore(c *Catalog, logger *zap.Logger) *Store {
	s := &Store{logger: logger}
	s.current.Store(c)
	return s
}

// Open loads the catalog at path, or the embedded catalog when path is empty.
func Open(path string, logger *zap.Logger) (*Store, error) {
	var (
		c   *Catalog
		err error
	)
	if path == "" {
		c, err = Embedded()
	} else {
		c, err = LoadFile(path)
	}
	if err != nil {
		return nil, err
	}
	logger.Info("handbook catalog loaded",
		zap.String("path", path),
		zap.Int("chapters", len(c.chapters)),
		zap.Int("resources", len(c.resources)))
	return NewStore(c, logger), nil
}

func (s *Store) Catalog() *Catalog { return s.current.Load() }

func (s *Store) Swap(c *Catalog) { s.current.Store(c) }

func (s *Store) Chapter(id string) (Chapter, error) { return s.Catalog().Chapter(id) }

func (s *Store) Chapters() []ChapterSummary { return s.Catalog().Chapters() }

func (s *Store) Resources(chapterID string) ([]Resource, error) {
	return s.Catalog().Resources(chapterID)
}

func (s *Store) Resource(id string) (Resource, error) { return s.Catalog().Resource(id) }

func (s *Store) ResourceChapter(resourceID string) (Chapter, error) {
	return s.Catalog().ResourceChapter(resourceID)
}

func (s *Store) ChapterIDs() []string { return s.Catalog().ChapterIDs() }

func (s *Store) ChaptersBySection(section string) []Chapter {
	return s.Catalog().ChaptersBySection(section)
}

func (s *Store) Sections() []string { return s.Catalog().Sections() }

// Reload replaces the catalog with the file at path. On failure the current
// catalog stays in place.
func (s *Store) Reload(path string) error {
	c, err := LoadFile(path)
	if err != nil {
		return err
	}
	s.Swap(c)
	return nil
}

// Watch reloads the catalog whenever the file at path is written or
// recreated. It blocks until ctx is done.
func (s *Store) Watch(ctx context.Context, path string) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create catalog watcher: %w", err)
	}
	defer watcher.Close()

	// Editors often replace the file, so watch the directory.
	dir := filepath.Dir(path)
	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("failed to watch %s: %w", dir, err)
	}
	target := filepath.Clean(path)
	s.logger.Info("watching handbook catalog", zap.String("path", target))

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			if err := s.Reload(target); err != nil {
				s.logger.Warn("catalog reload failed, keeping previous catalog",
					zap.String("path", target), zap.Error(err))
				continue
			}
			s.logger.Info("handbook catalog reloaded",
				zap.String("path", target), zap.Int("chapters", len(s.Catalog().chapters)))
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			s.logger.Warn("catalog watcher error", zap.Error(err))
		}
	}
}
