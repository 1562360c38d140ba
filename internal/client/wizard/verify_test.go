package wizard

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thronos/careerforge/internal/client/api"
	"github.com/thronos/careerforge/internal/client/models"
	"github.com/thronos/careerforge/internal/common"
	"github.com/thronos/careerforge/internal/logging"
)

type fakeVerifyAPI struct {
	start    *models.VerifySession
	startErr error

	upload    *models.VerifySession
	uploadErr error
	uploads   []models.VerifyUploadRequest
}

func (f *fakeVerifyAPI) VerifyStart(context.Context) (*models.VerifySession, error) {
	if f.startErr != nil {
		return nil, f.startErr
	}
	s := *f.start
	return &s, nil
}

func (f *fakeVerifyAPI) VerifyUpload(_ context.Context, req models.VerifyUploadRequest) (*models.VerifySession, error) {
	f.uploads = append(f.uploads, req)
	if f.uploadErr != nil {
		return nil, f.uploadErr
	}
	return f.upload, nil
}

func (f *fakeVerifyAPI) VerifyStatus(context.Context) (*models.VerifyStatusResponse, error) {
	return &models.VerifyStatusResponse{Status: models.VerifyPending}, nil
}

func TestVerification_ApprovedSkipsToResult(t *testing.T) {
	f := &fakeVerifyAPI{start: &models.VerifySession{SessionID: "s1", Status: models.VerifyApproved}}
	v := NewVerification(f, logging.Discard())

	require.NoError(t, v.Start(context.Background()))
	assert.Equal(t, StepResult, v.Step())
}

func TestVerification_StartError(t *testing.T) {
	f := &fakeVerifyAPI{startErr: &api.Error{Status: 429, Message: "Too many sessions"}}
	v := NewVerification(f, logging.Discard())

	require.Error(t, v.Start(context.Background()))
	assert.Equal(t, StepIntro, v.Step())
	assert.Equal(t, "Too many sessions", v.Err)
}

func TestVerification_SubmitWithoutFront(t *testing.T) {
	f := &fakeVerifyAPI{start: &models.VerifySession{SessionID: "s1", Status: models.VerifyPending}}
	v := NewVerification(f, logging.Discard())
	require.NoError(t, v.Start(context.Background()))
	require.NoError(t, v.AttachBack(strings.NewReader("back"), "image/png"))

	err := v.Submit(context.Background())
	require.ErrorIs(t, err, common.ErrValidation)
	assert.Equal(t, "Please upload the front of your ID document.", v.Err)
	assert.Equal(t, StepUpload, v.Step())
	assert.Empty(t, f.uploads)
}

func TestVerification_UploadFailureReturnsToUpload(t *testing.T) {
	f := &fakeVerifyAPI{
		start:     &models.VerifySession{SessionID: "s1", Status: models.VerifyPending},
		uploadErr: &api.Error{Status: 413, Message: "Payload too large"},
	}
	v := NewVerification(f, logging.Discard())
	require.NoError(t, v.Start(context.Background()))
	require.NoError(t, v.AttachFront(strings.NewReader("front"), "image/jpeg"))

	require.Error(t, v.Submit(context.Background()))
	assert.Equal(t, StepUpload, v.Step())
	assert.Equal(t, "Payload too large", v.Err)
}

func TestVerification_SubmitMergesAndRetry(t *testing.T) {
	score := 0.91
	f := &fakeVerifyAPI{
		start: &models.VerifySession{SessionID: "s1", Channel: models.ChannelAgent, Status: models.VerifyPending},
		upload: &models.VerifySession{
			SessionID:  "s1",
			Status:     models.VerifyRejected,
			FraudScore: &score,
			Flags:      []string{"blurry"},
		},
	}
	v := NewVerification(f, logging.Discard())
	require.NoError(t, v.Start(context.Background()))
	require.NoError(t, v.AttachFront(strings.NewReader("front"), "image/jpeg"))
	require.NoError(t, v.AttachVideo(strings.NewReader("vid"), "video/mp4", 4.6))

	require.NoError(t, v.Submit(context.Background()))
	assert.Equal(t, StepResult, v.Step())

	s := v.Session()
	assert.Equal(t, models.ChannelAgent, s.Channel, "fields absent from the upload reply are kept")
	assert.Equal(t, models.VerifyRejected, s.Status)
	assert.Equal(t, []string{"blurry"}, s.Flags)

	require.Len(t, f.uploads, 1)
	req := f.uploads[0]
	assert.Equal(t, "s1", req.SessionID)
	assert.Equal(t, "data:image/jpeg;base64,ZnJvbnQ=", req.DocFront)
	assert.Empty(t, req.DocBack)
	assert.Equal(t, 5, req.VideoDurationS)

	require.NoError(t, v.Retry())
	assert.Equal(t, StepIntro, v.Step())
	assert.Nil(t, v.Session())
	assert.Error(t, v.Retry(), "retry only from a rejected result")
}

func TestVerification_RetryNotAllowedWhenPending(t *testing.T) {
	f := &fakeVerifyAPI{
		start:  &models.VerifySession{SessionID: "s1", Status: models.VerifyPending},
		upload: &models.VerifySession{SessionID: "s1", Status: models.VerifyManagerReview},
	}
	v := NewVerification(f, logging.Discard())
	require.NoError(t, v.Start(context.Background()))
	require.NoError(t, v.AttachFront(strings.NewReader("f"), ""))
	require.NoError(t, v.Submit(context.Background()))

	require.Error(t, v.Retry())
	assert.Equal(t, StepResult, v.Step())
}

func TestVerification_SizeCap(t *testing.T) {
	f := &fakeVerifyAPI{start: &models.VerifySession{SessionID: "s1", Status: models.VerifyPending}}
	v := NewVerification(f, logging.Discard())
	require.NoError(t, v.Start(context.Background()))

	big := bytes.NewReader(make([]byte, MaxDocumentBytes+1))
	err := v.AttachFront(big, "image/png")
	require.ErrorIs(t, err, common.ErrValidation)
	assert.Contains(t, v.Err, "10 MB")
}

func TestVerification_AttachOutsideUpload(t *testing.T) {
	v := NewVerification(&fakeVerifyAPI{}, logging.Discard())
	require.Error(t, v.AttachFront(strings.NewReader("x"), ""))
}
