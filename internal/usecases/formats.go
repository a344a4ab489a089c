package usecases

import (
	"context"
	"log"

	"video-downloader/internal/domain/dto"
	"video-downloader/internal/domain/mapper"
	"video-downloader/internal/domain/repositories"
	"video-downloader/pkg/errors"
)

const (
	defaultTitle    = "Untitled Video"
	defaultUploader = "Unknown"
)

type FormatService interface {
	GetFormats(ctx context.Context, url string) (*dto.GetFormatsResponse, error)
}

type formatService struct {
	extractor repositories.MediaExtractor
}

func NewFormatService(extractor repositories.MediaExtractor) FormatService {
	return &formatService{extractor: extractor}
}

func (s *formatService) GetFormats(ctx context.Context, url string) (*dto.GetFormatsResponse, error) {
	info, err := s.extractor.ExtractInfo(ctx, url)
	if err != nil {
		log.Printf("Metadata extraction failed for %s: %v", url, err)
		return nil, errors.ClassifyEngineError(err)
	}

	video, audio, bestAudio := mapper.ExtractFormats(info.Formats)

	// İki liste de boşsa başarı dönmüyoruz; canlı yayın ayrı mesaj alır
	if len(video) == 0 && len(audio) == 0 {
		if info.IsLive {
			return nil, errors.ErrLiveNotFinished(nil)
		}
		return nil, errors.ErrNoFormats(nil)
	}

	title := info.Title
	if title == "" {
		title = defaultTitle
	}
	uploader := info.Uploader
	if uploader == "" {
		uploader = defaultUploader
	}

	return &dto.GetFormatsResponse{
		Success:      true,
		VideoTitle:   title,
		ThumbnailURL: info.BestThumbnailURL(),
		Duration:     info.Duration,
		Uploader:     uploader,
		ViewCount:    info.ViewCount,
		Formats: dto.FormatsPayload{
			Video:     video,
			Audio:     audio,
			BestAudio: bestAudio,
		},
	}, nil
}
