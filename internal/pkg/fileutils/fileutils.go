// fileutils.go
package fileutils

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"
)

const (
	// DefaultBaseName, sanitize sonrası boş kalan isimler için
	DefaultBaseName = "downloaded_video"
	maxFilenameLen  = 150
)

var (
	invalidChars   = regexp.MustCompile(`[\\/*?:"<>|]`)
	underscoreRuns = regexp.MustCompile(`[\s_]+`)
)

// SanitizeFilename strips characters that are unsafe in filenames, collapses
// whitespace/underscore runs into single underscores and caps the length.
// Sanitizing an already-sanitized name returns it unchanged.
func SanitizeFilename(name string) string {
	sanitized := invalidChars.ReplaceAllString(name, "")
	sanitized = underscoreRuns.ReplaceAllString(sanitized, "_")
	sanitized = strings.Trim(sanitized, "_ ")

	if runes := []rune(sanitized); len(runes) > maxFilenameLen {
		sanitized = strings.Trim(string(runes[:maxFilenameLen]), "_ ")
	}

	if sanitized == "" {
		return DefaultBaseName
	}
	return sanitized
}

// StripExtension removes a trailing extension from a client-suggested name.
func StripExtension(name string) string {
	return strings.TrimSuffix(name, filepath.Ext(name))
}

// LocateOutput finds the file the engine produced under dir. The engine picks
// its own extension, so we match on the template prefix instead of assuming
// one. İlk eşleşme kazanır.
func LocateOutput(dir, prefix string) (string, error) {
	matches, err := filepath.Glob(filepath.Join(dir, prefix+".*"))
	if err != nil {
		return "", err
	}
	if len(matches) == 0 {
		return "", fmt.Errorf("no output matching %q in %s", prefix+".*", dir)
	}
	return matches[0], nil
}
