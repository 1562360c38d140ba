package export

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thronos/careerforge/internal/client/models"
)

func sampleKit() *models.KitResult {
	score := 78.0
	return &models.KitResult{
		KitID: "kit-1",
		Artifacts: models.Artifacts{
			CV:          &models.CVArtifact{Summary: "Go engineer", Bullets: []string{"Built APIs"}},
			CoverLetter: "Dear team,",
			InterviewPack: &models.InterviewPack{
				TechnicalTopics: []string{"Concurrency"},
				StarStories:     []models.StarStory{{Title: "Outage", Result: "Fixed"}},
			},
			OutreachPack:    map[string]string{"recruiter": "Hi!", "linkedin": "Hello"},
			ATSScore:        &score,
			MissingKeywords: []string{"kubernetes"},
		},
	}
}

func names(files []File) []string {
	out := make([]string, 0, len(files))
	for _, f := range files {
		out = append(out, f.Name)
	}
	return out
}

func TestRender(t *testing.T) {
	files := Render(sampleKit())
	assert.Equal(t, []string{"cv.txt", "cover-letter.txt", "interview-prep.txt", "outreach.txt", "ats-score.txt"}, names(files))

	assert.Equal(t, "Go engineer\n\n- Built APIs\n\n", string(files[0].Body))
	assert.Equal(t, "Dear team,\n", string(files[1].Body))
	assert.Contains(t, string(files[2].Body), "Technical topics\n- Concurrency\n")
	assert.Contains(t, string(files[2].Body), "Outage\n")
	assert.Equal(t, "## linkedin\n\nHello\n\n## recruiter\n\nHi!\n\n", string(files[3].Body))
	assert.Equal(t, "ATS score: 78\n\nMissing keywords\n- kubernetes\n\n", string(files[4].Body))
}

func TestRender_OnlyPresentTabs(t *testing.T) {
	files := Render(&models.KitResult{KitID: "k", Artifacts: models.Artifacts{CoverLetter: "x"}})
	assert.Equal(t, []string{"cover-letter.txt"}, names(files))
}

func TestDirExporter(t *testing.T) {
	root := t.TempDir()
	loc, err := NewDirExporter(root).Export(context.Background(), "Kit 42", Render(sampleKit()))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "kit-42"), loc)

	b, err := os.ReadFile(filepath.Join(loc, "cover-letter.txt"))
	require.NoError(t, err)
	assert.Equal(t, "Dear team,\n", string(b))
}

func TestDirExporter_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := NewDirExporter(t.TempDir()).Export(ctx, "k", Render(sampleKit()))
	require.ErrorIs(t, err, context.Canceled)
}

type fakePutter struct {
	keys   []string
	bodies map[string]string
	err    error
}

func (f *fakePutter) PutObject(_ context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	b, _ := io.ReadAll(in.Body)
	if f.bodies == nil {
		f.bodies = map[string]string{}
	}
	key := aws.ToString(in.Key)
	f.keys = append(f.keys, key)
	f.bodies[key] = string(b)
	return &s3.PutObjectOutput{}, nil
}

func TestS3Exporter(t *testing.T) {
	p := &fakePutter{}
	e := &S3Exporter{bucket: "kits", prefix: "exports", client: p}

	loc, err := e.Export(context.Background(), "kit-1", Render(sampleKit()))
	require.NoError(t, err)
	assert.Equal(t, "s3://kits/exports/kit-1/", loc)
	assert.Len(t, p.keys, 5)
	assert.Equal(t, "Dear team,\n", p.bodies["exports/kit-1/cover-letter.txt"])
}

func TestS3Exporter_PutError(t *testing.T) {
	boom := errors.New("access denied")
	e := &S3Exporter{bucket: "kits", client: &fakePutter{err: boom}}
	_, err := e.Export(context.Background(), "kit-1", Render(sampleKit()))
	require.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "s3://kits/kit-1/cv.txt")
}

func TestNewS3Exporter(t *testing.T) {
	_, err := NewS3Exporter(context.Background(), S3Config{})
	require.Error(t, err)

	orig := loadDefaultAWSConfig
	t.Cleanup(func() { loadDefaultAWSConfig = orig })

	var gotOpts int
	loadDefaultAWSConfig = func(ctx context.Context, optFns ...func(*config.LoadOptions) error) (aws.Config, error) {
		gotOpts = len(optFns)
		return aws.Config{Region: "eu-central-1"}, nil
	}
	e, err := NewS3Exporter(context.Background(), S3Config{
		Bucket: "kits", Region: "eu-central-1", Endpoint: "http://localhost:9000",
		AccessKey: "minio", SecretKey: "minio123",
	})
	require.NoError(t, err)
	assert.Equal(t, 2, gotOpts)
	assert.NotNil(t, e.client)

	loadDefaultAWSConfig = func(context.Context, ...func(*config.LoadOptions) error) (aws.Config, error) {
		return aws.Config{}, errors.New("no creds")
	}
	_, err = NewS3Exporter(context.Background(), S3Config{Bucket: "kits"})
	require.Error(t, err)
}
