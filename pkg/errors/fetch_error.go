package errors

import (
	"fmt"

	"video-downloader/pkg/errors/i18n"
)

// Hata kodları; kullanıcıya dönen mesajlar i18n tablosundan gelir
const (
	CodeMissingURL           = "missing_url"
	CodeMissingParam         = "missing_param"
	CodeUnsupportedURL       = "unsupported_url"
	CodeVideoUnavailable     = "video_unavailable"
	CodePrivateVideo         = "private_video"
	CodeAgeRestricted        = "age_restricted"
	CodeLiveNotFinished      = "live_not_finished"
	CodeRateLimited          = "rate_limited"
	CodeVerificationRequired = "verification_required"
	CodeFormatNotFound       = "format_not_found"
	CodeNoFormats            = "no_formats"
	CodeUpstreamFailed       = "upstream_failed"
	CodeFFmpegMissing        = "ffmpeg_missing"
	CodeOutputMissing        = "output_missing"
	CodeRenameFailed         = "rename_failed"
	CodeDownloadFailed       = "download_failed"
	CodeInternal             = "internal_error"
)

type FetchError struct {
	Code    string
	Message string
	Err     error
}

func (e *FetchError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

func newFetchError(code string, err error) *FetchError {
	return &FetchError{Code: code, Message: i18n.T(code), Err: err}
}

var (
	ErrMissingURL = func(err error) *FetchError {
		return newFetchError(CodeMissingURL, err)
	}
	ErrMissingParam = func(err error) *FetchError {
		return newFetchError(CodeMissingParam, err)
	}
	ErrUnsupportedURL = func(err error) *FetchError {
		return newFetchError(CodeUnsupportedURL, err)
	}
	ErrLiveNotFinished = func(err error) *FetchError {
		return newFetchError(CodeLiveNotFinished, err)
	}
	ErrVerificationRequired = func(err error) *FetchError {
		return newFetchError(CodeVerificationRequired, err)
	}
	ErrFormatNotFound = func(err error) *FetchError {
		return newFetchError(CodeFormatNotFound, err)
	}
	ErrNoFormats = func(err error) *FetchError {
		return newFetchError(CodeNoFormats, err)
	}
	ErrFFmpegMissing = func(err error) *FetchError {
		return newFetchError(CodeFFmpegMissing, err)
	}
	ErrOutputMissing = func(err error) *FetchError {
		return newFetchError(CodeOutputMissing, err)
	}
	ErrRenameFailed = func(err error) *FetchError {
		return newFetchError(CodeRenameFailed, err)
	}
	ErrDownloadFailed = func(err error) *FetchError {
		return newFetchError(CodeDownloadFailed, err)
	}
	ErrInternal = func(err error) *FetchError {
		return newFetchError(CodeInternal, err)
	}
)
