package engine

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"video-downloader/internal/domain/entities"
	"video-downloader/internal/domain/repositories"

	"github.com/lrstanley/go-ytdlp"
)

// YtdlpClient drives yt-dlp through go-ytdlp. Merge gerektiğinde yt-dlp kendi
// içinde ffmpeg'i çağırır; ffmpeg'in PATH'te olması gerekir.
type YtdlpClient struct {
	binary string
}

func NewYtdlpClient(binary string) *YtdlpClient {
	if binary == "" {
		binary = "yt-dlp"
	}
	return &YtdlpClient{binary: binary}
}

var _ repositories.MediaExtractor = (*YtdlpClient)(nil)

// ExtractInfo runs a metadata-only extraction and parses the JSON dump.
func (c *YtdlpClient) ExtractInfo(ctx context.Context, url string) (*entities.MediaInfo, error) {
	cmd := c.newCommand().
		DumpSingleJSON().
		SkipDownload()

	result, err := cmd.Run(ctx, url)
	if err != nil {
		return nil, engineError("metadata", err, stderrOf(result))
	}
	return decodeMediaInfo([]byte(result.Stdout))
}

// Download fetches the selected stream(s) into the given output template and
// merges them when a merge container is set.
func (c *YtdlpClient) Download(ctx context.Context, url string, opts repositories.DownloadOptions) error {
	cmd := c.newCommand().
		Format(opts.FormatSelector).
		Output(opts.OutputTemplate)
	if opts.MergeFormat != "" {
		cmd = cmd.MergeOutputFormat(opts.MergeFormat)
	}
	if opts.SocketTimeout > 0 {
		cmd = cmd.SocketTimeout(float64(opts.SocketTimeout))
	}

	result, err := cmd.Run(ctx, url)
	if err != nil {
		return engineError("download", err, stderrOf(result))
	}
	return nil
}

// newCommand: her çağrıya ortak bayraklar; playlist URL'lerinden tek video alınır
func (c *YtdlpClient) newCommand() *ytdlp.Command {
	cmd := ytdlp.New().
		NoPlaylist().
		NoWarnings()
	if c.binary != "" {
		cmd.SetExecutable(c.binary)
	}
	return cmd
}

func decodeMediaInfo(data []byte) (*entities.MediaInfo, error) {
	var info entities.MediaInfo
	if err := json.Unmarshal(data, &info); err != nil {
		return nil, fmt.Errorf("yt-dlp metadata parse error: %w", err)
	}
	return &info, nil
}

// stderrOf: Run hata dönse bile Result gelebilir; stderr oradadır
func stderrOf(result *ytdlp.Result) string {
	if result == nil {
		return ""
	}
	return strings.TrimSpace(result.Stderr)
}

// engineError keeps the subprocess stderr in the error text; sınıflandırma
// pkg/errors tarafında substring match ile yapılır.
func engineError(op string, err error, stderr string) error {
	if stderr != "" {
		return fmt.Errorf("yt-dlp %s error: %v | %s", op, err, stderr)
	}
	return fmt.Errorf("yt-dlp %s error: %w", op, err)
}
