package repositories

import (
	"context"

	"video-downloader/internal/domain/entities"
)

// DownloadOptions carries the engine flags for one download invocation.
type DownloadOptions struct {
	FormatSelector string // örn. "137+bestaudio/bestaudio" veya düz format id
	OutputTemplate string // temp klasör içindeki çıktı şablonu
	MergeFormat    string // merge hedef container; boşsa merge yok
	SocketTimeout  int    // saniye
}

// MediaExtractor abstracts the external extraction/download engine. Metadata
// çağrısı indirme yapmaz; Download çağrısı dosyayı şablona yazar.
type MediaExtractor interface {
	ExtractInfo(ctx context.Context, url string) (*entities.MediaInfo, error)
	Download(ctx context.Context, url string, opts DownloadOptions) error
}
