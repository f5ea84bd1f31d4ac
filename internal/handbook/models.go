package handbook

type Resource struct {
	ID          string   `yaml:"id" json:"id"`
	Title       string   `yaml:"title" json:"title"`
	URL         string   `yaml:"url" json:"url"`
	Source      string   `yaml:"source" json:"source"`
	Summary     string   `yaml:"summary" json:"summary"`
	ContentType string   `yaml:"content_type" json:"content_type"`
	Difficulty  string   `yaml:"difficulty" json:"difficulty"`
	Keywords    []string `yaml:"keywords" json:"keywords"`
	Access      string   `yaml:"access" json:"access"`
}

type Chapter struct {
	ID                 string     `yaml:"id" json:"id"`
	Title              string     `yaml:"title" json:"title"`
	Section            string     `yaml:"section" json:"section"`
	Introduction       string     `yaml:"introduction" json:"introduction"`
	KeyTopics          []string   `yaml:"key_topics" json:"key_topics"`
	LearningObjectives []string   `yaml:"learning_objectives" json:"learning_objectives"`
	Resources          []Resource `yaml:"resources" json:"resources"`
}

// ChapterSummary is the listing form of a chapter, without its body.
type ChapterSummary struct {
	ID            string `json:"id"`
	Title         string `json:"title"`
	Section       string `json:"section"`
	ResourceCount int    `json:"resource_count"`
}

func (c Chapter) Summary() ChapterSummary {
	return ChapterSummary{
		ID:            c.ID,
		Title:         c.Title,
		Section:       c.Section,
		ResourceCount: len(c.Resources),
	}
}

// Path is the handbook route for the chapter, e.g. /handbook/ch3.
func (c Chapter) Path() string {
	return PathPrefix + c.ID
}
