package handbook

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/hashicorp/go-multierror"
	"gopkg.in/yaml.v3"
)

// PathPrefix is the route under which chapters are served to readers.
const PathPrefix = "/handbook/"

var (
	ErrChapterNotFound  = errors.New("chapter not found")
	ErrResourceNotFound = errors.New("resource not found")
)

//go:embed data/handbook.yaml
var embeddedCatalog []byte

type catalogFile struct {
	Chapters []Chapter `yaml:"chapters"`
}

type resourceRef struct {
	chapter int
	index   int
}

// Catalog is an immutable, validated set of chapters in reading order.
type Catalog struct {
	chapters  []Chapter
	byID      map[string]int
	resources map[string]resourceRef
}

// Embedded returns the catalog compiled into the binary.
func Embedded() (*Catalog, error) {
	return Parse(embeddedCatalog)
}

// LoadFile reads and validates a catalog from disk.
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog %s: %w", path, err)
	}
	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("catalog %s: %w", path, err)
	}
	return c, nil
}

func Parse(data []byte) (*Catalog, error) {
	var f catalogFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}
	return newCatalog(f.Chapters)
}

func newCatalog(chapters []Chapter) (*Catalog, error) {
	c := &Catalog{
		chapters:  chapters,
		byID:      make(map[string]int, len(chapters)),
		resources: make(map[string]resourceRef),
	}

	var result *multierror.Error
	if len(chapters) == 0 {
		result = multierror.Append(result, errors.New("catalog has no chapters"))
	}
	for i, ch := range chapters {
		if strings.TrimSpace(ch.ID) == "" {
			result = multierror.Append(result, fmt.Errorf("chapter #%d: missing id", i+1))
			continue
		}
		if _, dup := c.byID[ch.ID]; dup {
			result = multierror.Append(result, fmt.Errorf("chapter %s: duplicate id", ch.ID))
			continue
		}
		if strings.TrimSpace(ch.Title) == "" {
			result = multierror.Append(result, fmt.Errorf("chapter %s: missing title", ch.ID))
		}
		c.byID[ch.ID] = i

		for j, res := range ch.Resources {
			switch {
			case strings.TrimSpace(res.ID) == "":
				result = multierror.Append(result, fmt.Errorf("chapter %s resource #%d: missing id", ch.ID, j+1))
				continue
			case strings.TrimSpace(res.Title) == "":
				result = multierror.Append(result, fmt.Errorf("resource %s: missing title", res.ID))
			case strings.TrimSpace(res.URL) == "":
				result = multierror.Append(result, fmt.Errorf("resource %s: missing url", res.ID))
			}
			if _, dup := c.resources[res.ID]; dup {
				result = multierror.Append(result, fmt.Errorf("resource %s: duplicate id", res.ID))
				continue
			}
			c.resources[res.ID] = resourceRef{chapter: i, index: j}
		}
	}

	if err := result.ErrorOrNil(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Catalog) Chapter(id string) (Chapter, error) {
	i, ok := c.byID[id]
	if !ok {
		return Chapter{}, fmt.Errorf("%w: %s", ErrChapterNotFound, id)
	}
	return c.chapters[i], nil
}

func (c *Catalog) Resources(chapterID string) ([]Resource, error) {
	ch, err := c.Chapter(chapterID)
	if err != nil {
		return nil, err
	}
	return append([]Resource(nil), ch.Resources...), nil
}

func (c *Catalog) Resource(id string) (Resource, error) {
	ref, ok := c.resources[id]
	if !ok {
		return Resource{}, fmt.Errorf("%w: %s", ErrResourceNotFound, id)
	}
	return c.chapters[ref.chapter].Resources[ref.index], nil
}

// ResourceChapter returns the chapter a resource belongs to.
func (c *Catalog) ResourceChapter(resourceID string) (Chapter, error) {
	ref, ok := c.resources[resourceID]
	if !ok {
		return Chapter{}, fmt.Errorf("%w: %s", ErrResourceNotFound, resourceID)
	}
	return c.chapters[ref.chapter], nil
}

func (c *Catalog) ChapterIDs() []string {
	ids := make([]string, len(c.chapters))
	for i, ch := range c.chapters {
		ids[i] = ch.ID
	}
	return ids
}

func (c *Catalog) Chapters() []ChapterSummary {
	out := make([]ChapterSummary, len(c.chapters))
	for i, ch := range c.chapters {
		out[i] = ch.Summary()
	}
	return out
}

func (c *Catalog) ChaptersBySection(section string) []Chapter {
	var out []Chapter
	for _, ch := range c.chapters {
		if ch.Section == section {
			out = append(out, ch)
		}
	}
	return out
}

// Sections lists section titles in the order they first appear.
func (c *Catalog) Sections() []string {
	seen := make(map[string]struct{})
	var out []string
	for _, ch := range c.chapters {
		if _, ok := seen[ch.Section]; ok {
			continue
		}
		seen[ch.Section] = struct{}{}
		out = append(out, ch.Section)
	}
	return out
}

// ChapterIDFromPath extracts "ch3" from "/handbook/ch3". It returns false for
// anything that is not a handbook path.
func ChapterIDFromPath(path string) (string, bool) {
	if !strings.HasPrefix(path, PathPrefix) {
		return "", false
	}
	id := strings.TrimPrefix(path, PathPrefix)
	if i := strings.IndexAny(id, "/?#"); i >= 0 {
		id = id[:i]
	}
	return id, id != ""
}
