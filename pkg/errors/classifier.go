package errors

import "strings"

// Motor (yt-dlp) hata metni → hata kodu tablosu. Üçüncü parti aracın insan
// tarafından okunabilir çıktısına substring match yapıyoruz; liste sıralı
// işlenir ve eşleşmeyen her şey upstream_failed'e düşer. Tablonun eksiksiz
// olduğu varsayılmamalı.
var engineErrorTable = []struct {
	substrings []string
	code       string
}{
	{[]string{"Unsupported URL"}, CodeUnsupportedURL},
	{[]string{"Video unavailable"}, CodeVideoUnavailable},
	{[]string{"Private video"}, CodePrivateVideo},
	{[]string{"confirm your age"}, CodeAgeRestricted},
	{[]string{"Premiere", "live event"}, CodeLiveNotFinished},
	{[]string{"429", "Too Many Requests"}, CodeRateLimited},
	{[]string{"Sign in to confirm you're not a bot"}, CodeVerificationRequired},
}

// ClassifyEngineError converts raw engine output into a stable FetchError so
// that engine internals never reach the client.
func ClassifyEngineError(err error) *FetchError {
	if err == nil {
		return nil
	}
	if fe, ok := err.(*FetchError); ok {
		return fe
	}

	msg := err.Error()
	for _, entry := range engineErrorTable {
		for _, sub := range entry.substrings {
			if strings.Contains(msg, sub) {
				return newFetchError(entry.code, err)
			}
		}
	}
	return newFetchError(CodeUpstreamFailed, err)
}

// IsVerificationError reports whether the engine failed because the platform
// demanded an interactive bot check.
func IsVerificationError(err error) bool {
	if err == nil {
		return false
	}
	return strings.Contains(err.Error(), "Sign in to confirm you're not a bot")
}

// IsFFmpegError reports whether the engine output points at a missing or
// failing ffmpeg/ffprobe binary.
func IsFFmpegError(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "ffmpeg") || strings.Contains(msg, "ffprobe")
}
