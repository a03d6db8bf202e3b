package integrations

import (
	"fmt"
	"html"
	"os"
	"path/filepath"
	"strings"

	"github.com/danivela/storyfeed/pkg/data"
	"github.com/go-shiori/go-epub"
)

type EPubBuilder struct {
	outputDir string
}

func NewEPubBuilder(outputDir string) *EPubBuilder {
	if outputDir == "" {
		outputDir, _ = os.MkdirTemp("", "storyfeed-epub-*")
	}
	return &EPubBuilder{outputDir: outputDir}
}

// CreateEPub compiles stories into a single EPub, one section per story with
// its excerpt and a link back to the full article.
func (p *EPubBuilder) CreateEPub(title string, stories []data.Story) (string, error) {
	if len(stories) == 0 {
		return "", fmt.Errorf("no stories to compile")
	}

	if err := os.MkdirAll(p.outputDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}

	e, err := epub.NewEpub(title)
	if err != nil {
		return "", fmt.Errorf("failed to create EPub: %w", err)
	}

	e.SetAuthor("Pocket")
	e.SetDescription(fmt.Sprintf("%d recommended stories", len(stories)))
	e.SetLang("en")

	for _, story := range stories {
		if err := p.addStorySection(e, story); err != nil {
			return "", fmt.Errorf("failed to add story %q: %w", story.Title, err)
		}
	}

	safeTitle := sanitizeFilename(title)
	outputPath := filepath.Join(p.outputDir, safeTitle+".epub")

	if err := e.Write(outputPath); err != nil {
		return "", fmt.Errorf("failed to write EPub: %w", err)
	}

	return outputPath, nil
}

func (p *EPubBuilder) addStorySection(e *epub.Epub, story data.Story) error {
	var body strings.Builder
	body.WriteString(fmt.Sprintf("<h1>%s</h1>\n", html.EscapeString(story.Title)))

	meta := html.EscapeString(story.Publisher)
	if story.TimeToRead > 0 {
		meta = fmt.Sprintf("%s · %d min read", meta, story.TimeToRead)
	}
	body.WriteString(fmt.Sprintf("<p><em>%s</em></p>\n", meta))

	if story.Excerpt != "" {
		body.WriteString(fmt.Sprintf("<p>%s</p>\n", html.EscapeString(story.Excerpt)))
	}

	body.WriteString(fmt.Sprintf(
		`<p><a href="%s">Read the full story</a></p>%s`,
		html.EscapeString(story.URL), "\n",
	))

	_, err := e.AddSection(body.String(), story.Title, "", "")
	return err
}

// sanitizeFilename removes characters that are invalid in filenames
func sanitizeFilename(name string) string {
	invalid := []string{"/", "\\", ":", "*", "?", "\"", "<", ">", "|"}
	result := name
	for _, char := range invalid {
		result = strings.ReplaceAll(result, char, "_")
	}
	result = strings.TrimSpace(result)
	result = strings.Trim(result, ".")
	return result
}
