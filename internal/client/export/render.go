// Package export writes generated kits out of the client: one text file per
// artifact tab, to a local directory or an S3-compatible bucket.
package export

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/thronos/careerforge/internal/client/models"
	"github.com/thronos/careerforge/internal/filex"
)

// File is one rendered artifact.
type File struct {
	Name string
	Body []byte
}

// Exporter stores the rendered files of a kit and returns where they went.
type Exporter interface {
	Export(ctx context.Context, kitID string, files []File) (string, error)
}

// Render turns the artifacts of a kit into files, in tab order.
func Render(res *models.KitResult) []File {
	a := &res.Artifacts
	files := make([]File, 0, 5)
	for _, tab := range a.Tabs() {
		var b strings.Builder
		switch tab {
		case models.TabCV:
			renderCV(&b, a.CV)
		case models.TabCoverLetter:
			b.WriteString(a.CoverLetter)
		case models.TabInterview:
			renderInterview(&b, a.InterviewPack)
		case models.TabOutreach:
			renderOutreach(&b, a.OutreachPack)
		case models.TabATS:
			renderATS(&b, a)
		}
		if !strings.HasSuffix(b.String(), "\n") {
			b.WriteByte('\n')
		}
		files = append(files, File{Name: filex.SafeName(string(tab)) + ".txt", Body: []byte(b.String())})
	}
	return files
}

func renderCV(b *strings.Builder, cv *models.CVArtifact) {
	b.WriteString(cv.Summary)
	b.WriteString("\n\n")
	list(b, "", cv.Bullets)
	if len(cv.ATSNotes) > 0 {
		list(b, "ATS notes", cv.ATSNotes)
	}
}

func renderInterview(b *strings.Builder, p *models.InterviewPack) {
	list(b, "Technical topics", p.TechnicalTopics)
	list(b, "Behavioral questions", p.BehavioralQuestions)
	if len(p.StarStories) > 0 {
		b.WriteString("STAR stories\n")
		for _, s := range p.StarStories {
			fmt.Fprintf(b, "\n%s\n  Situation: %s\n  Task: %s\n  Action: %s\n  Result: %s\n",
				s.Title, s.Situation, s.Task, s.Action, s.Result)
		}
		b.WriteByte('\n')
	}
	list(b, "Questions to ask", p.QuestionsToAsk)
}

func renderOutreach(b *strings.Builder, msgs map[string]string) {
	keys := make([]string, 0, len(msgs))
	for k := range msgs {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	for _, k := range keys {
		fmt.Fprintf(b, "## %s\n\n%s\n\n", k, msgs[k])
	}
}

func renderATS(b *strings.Builder, a *models.Artifacts) {
	fmt.Fprintf(b, "ATS score: %.0f\n\n", *a.ATSScore)
	list(b, "Missing keywords", a.MissingKeywords)
	list(b, "Recommendations", a.Recommendations)
}

func list(b *strings.Builder, title string, items []string) {
	if len(items) == 0 {
		return
	}
	if title != "" {
		b.WriteString(title)
		b.WriteByte('\n')
	}
	for _, it := range items {
		fmt.Fprintf(b, "- %s\n", it)
	}
	b.WriteByte('\n')
}
