package errors

import (
	"fmt"
	"testing"

	"video-downloader/pkg/errors/i18n"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	if err := i18n.Load("en"); err != nil {
		panic(err)
	}
	m.Run()
}

func TestClassifyEngineError_Table(t *testing.T) {
	tests := []struct {
		name     string
		engine   string
		wantCode string
	}{
		{"unsupported", "ERROR: Unsupported URL: https://example.com", CodeUnsupportedURL},
		{"unavailable", "ERROR: Video unavailable", CodeVideoUnavailable},
		{"private", "ERROR: Private video. Sign in if you've been granted access", CodePrivateVideo},
		{"age", "ERROR: Sign in to confirm your age", CodeAgeRestricted},
		{"premiere", "ERROR: Premiere will begin shortly", CodeLiveNotFinished},
		{"live event", "ERROR: this live event will begin in a few hours", CodeLiveNotFinished},
		{"http 429", "ERROR: HTTP Error 429: Too Many Requests", CodeRateLimited},
		{"bot check", "ERROR: Sign in to confirm you're not a bot", CodeVerificationRequired},
		{"unmatched", "ERROR: something completely new", CodeUpstreamFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fe := ClassifyEngineError(fmt.Errorf("yt-dlp metadata error: exit status 1 | %s", tt.engine))
			require.NotNil(t, fe)
			assert.Equal(t, tt.wantCode, fe.Code)
		})
	}
}

func TestClassifyEngineError_NeverLeaksEngineText(t *testing.T) {
	fe := ClassifyEngineError(fmt.Errorf("yt-dlp download error: exit status 1 | Traceback (most recent call last)"))
	assert.Equal(t, CodeUpstreamFailed, fe.Code)
	assert.Equal(t, "Could not fetch video data (may be region locked, deleted, etc).", fe.Message)
	assert.NotContains(t, fe.Message, "Traceback")
}

func TestClassifyEngineError_PassesThroughFetchError(t *testing.T) {
	orig := ErrNoFormats(nil)
	assert.Same(t, orig, ClassifyEngineError(orig))
}

func TestClassifyEngineError_Nil(t *testing.T) {
	assert.Nil(t, ClassifyEngineError(nil))
}

func TestIsVerificationError(t *testing.T) {
	assert.True(t, IsVerificationError(fmt.Errorf("ERROR: Sign in to confirm you're not a bot")))
	assert.False(t, IsVerificationError(fmt.Errorf("ERROR: Video unavailable")))
	assert.False(t, IsVerificationError(nil))
}

func TestIsFFmpegError(t *testing.T) {
	assert.True(t, IsFFmpegError(fmt.Errorf("ERROR: ffmpeg not found. Please install or provide the path")))
	assert.True(t, IsFFmpegError(fmt.Errorf("ERROR: FFprobe exited with code 1")))
	assert.False(t, IsFFmpegError(fmt.Errorf("ERROR: network timeout")))
	assert.False(t, IsFFmpegError(nil))
}

func TestFetchError_MessagesFromTable(t *testing.T) {
	assert.Equal(t, "Missing 'url' parameter", ErrMissingURL(nil).Message)
	assert.Equal(t, "Invalid or unsupported URL.", ErrUnsupportedURL(nil).Message)
	assert.Equal(t, "No downloadable video or audio formats found for this video.", ErrNoFormats(nil).Message)
}

func TestFetchError_Unwrap(t *testing.T) {
	cause := fmt.Errorf("boom")
	fe := ErrInternal(cause)
	assert.ErrorIs(t, fe, cause)
}
