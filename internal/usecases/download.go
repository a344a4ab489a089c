package usecases

import (
	"context"
	"log"
	"os"
	"path/filepath"

	"video-downloader/internal/domain/dto"
	"video-downloader/internal/domain/entities"
	"video-downloader/internal/domain/repositories"
	"video-downloader/internal/pkg/fileutils"
	consts "video-downloader/pkg/constants"
	"video-downloader/pkg/errors"

	"github.com/google/uuid"
)

const (
	// Motor çıktı dosyasının şablon prefixi; uzantıyı motor kendisi seçer
	outputPrefix = "download_temp"
	// Merge çıktısı için container; mp4'ten daha geniş codec kabul eder
	mergeContainerExt = "mkv"
	defaultTargetExt  = "mp4"
)

// DownloadResult is a prepared file ready to be streamed to the client.
// Cleanup, response gönderildikten sonra çağrılmalı; temp klasörün tamamını
// kaldırır ve hatayı asla yükseltmez.
type DownloadResult struct {
	FilePath string
	Filename string
	Cleanup  func()
}

type DownloadService interface {
	PrepareDownload(ctx context.Context, req *dto.DownloadRequestDTO) (*DownloadResult, error)
}

type downloadService struct {
	extractor     repositories.MediaExtractor
	tempBase      string
	socketTimeout int
}

func NewDownloadService(extractor repositories.MediaExtractor, tempBase string, socketTimeout int) DownloadService {
	return &downloadService{
		extractor:     extractor,
		tempBase:      tempBase,
		socketTimeout: socketTimeout,
	}
}

// PrepareDownload runs the job state machine up to the point where the file
// can be sent: resolve format → decide merge → download → locate → rename.
// Başarısız her yolda temp klasör dönmeden önce kaldırılır; başarıda
// sorumluluk DownloadResult.Cleanup'a geçer.
func (s *downloadService) PrepareDownload(ctx context.Context, req *dto.DownloadRequestDTO) (res *DownloadResult, err error) {
	jobID := uuid.NewString()

	log.Printf("[job %s] %s: url=%s format=%s", jobID, consts.StageResolving, req.URL, req.FormatID)
	info, exErr := s.extractor.ExtractInfo(ctx, req.URL)
	if exErr != nil {
		return nil, errors.ClassifyEngineError(exErr)
	}

	// Keşif ile indirme arasında format listesi bayatlamış olabilir
	selected := findFormat(info.Formats, req.FormatID)
	if selected == nil {
		return nil, errors.ErrFormatNotFound(nil)
	}

	selector := req.FormatID
	targetExt := selected.Ext
	if targetExt == "" {
		targetExt = defaultTargetExt
	}
	mergeFormat := ""
	if needsAudioMerge(selected) {
		// Video-only stream: seçilen id + en iyi bağımsız ses; id artık
		// seçilemiyorsa yalnız en iyi sese düşülür
		selector = req.FormatID + "+bestaudio/bestaudio"
		targetExt = mergeContainerExt
		mergeFormat = mergeContainerExt
		log.Printf("[job %s] format %s needs merge, target ext .%s", jobID, req.FormatID, targetExt)
	}

	base := fileutils.SanitizeFilename(fileutils.StripExtension(req.Filename))
	finalName := base + "." + targetExt

	tempDir, mkErr := os.MkdirTemp(s.tempBase, "job-")
	if mkErr != nil {
		return nil, errors.ErrInternal(mkErr)
	}
	cleanup := func() { removeJobDir(jobID, tempDir) }
	defer func() {
		if err != nil {
			cleanup()
		}
	}()

	log.Printf("[job %s] %s: selector=%q dir=%s", jobID, consts.StageDownloading, selector, tempDir)
	dlErr := s.extractor.Download(ctx, req.URL, repositories.DownloadOptions{
		FormatSelector: selector,
		OutputTemplate: filepath.Join(tempDir, outputPrefix+".%(ext)s"),
		MergeFormat:    mergeFormat,
		SocketTimeout:  s.socketTimeout,
	})
	if dlErr != nil {
		log.Printf("[job %s] engine failed: %v", jobID, dlErr)
		switch {
		case errors.IsVerificationError(dlErr):
			// Kullanıcı aksiyonu gerektirir, sunucu hatası değil
			return nil, errors.ErrVerificationRequired(dlErr)
		case mergeFormat != "" && errors.IsFFmpegError(dlErr):
			return nil, errors.ErrFFmpegMissing(dlErr)
		default:
			return nil, errors.ErrDownloadFailed(dlErr)
		}
	}

	log.Printf("[job %s] %s", jobID, consts.StageLocating)
	produced, locErr := fileutils.LocateOutput(tempDir, outputPrefix)
	if locErr != nil {
		return nil, errors.ErrOutputMissing(locErr)
	}

	log.Printf("[job %s] %s: %s -> %s", jobID, consts.StageRenaming, filepath.Base(produced), finalName)
	finalPath := filepath.Join(tempDir, finalName)
	if rnErr := os.Rename(produced, finalPath); rnErr != nil {
		return nil, errors.ErrRenameFailed(rnErr)
	}

	return &DownloadResult{
		FilePath: finalPath,
		Filename: finalName,
		Cleanup:  cleanup,
	}, nil
}

func findFormat(formats []entities.RawFormat, formatID string) *entities.RawFormat {
	for i := range formats {
		if formats[i].FormatID == formatID {
			return &formats[i]
		}
	}
	return nil
}

// needsAudioMerge: gerçek video codec'i var ama ses yok → bestaudio merge
func needsAudioMerge(f *entities.RawFormat) bool {
	return f.VCodec != "" && f.VCodec != "none" && f.ACodec == "none"
}

// removeJobDir never escalates; cleanup hatası responsu etkilemez
func removeJobDir(jobID, dir string) {
	if dir == "" {
		return
	}
	log.Printf("[job %s] %s: %s", jobID, consts.StageCleaningUp, dir)
	if err := os.RemoveAll(dir); err != nil {
		log.Printf("[job %s] temp dir cleanup failed: %v", jobID, err)
	}
}
