package handlers

import (
	"log"
	"time"

	"video-downloader/internal/domain/dto"
	"video-downloader/internal/usecases"
	consts "video-downloader/pkg/constants"
	"video-downloader/pkg/errors"
	"video-downloader/pkg/helper"
	"video-downloader/pkg/metrics"

	"github.com/gofiber/fiber/v2"
)

type DownloadHandler struct {
	downloadService usecases.DownloadService
}

func NewDownloadHandler(downloadService usecases.DownloadService) *DownloadHandler {
	return &DownloadHandler{downloadService: downloadService}
}

// Download
//
// @Summary      Download Video
// @Description  Downloads (and merges if needed) the chosen format server-side and streams the file back
// @Tags         Download
// @Produce      octet-stream
// @Param        url        query     string true  "Video URL"
// @Param        format_id  query     string true  "Format ID from get-formats"
// @Param        filename   query     string false "Suggested base filename" default(video)
// @Success      200  {file}    file
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /download [get]
func (h *DownloadHandler) Download(c *fiber.Ctx) error {
	req := &dto.DownloadRequestDTO{
		URL:      c.Query("url"),
		FormatID: c.Query("format_id"),
		Filename: c.Query("filename", "video"),
	}

	if req.URL == "" || req.FormatID == "" {
		metrics.Downloads.WithLabelValues(consts.StatusFailed).Inc()
		return errors.HandleError(c, errors.ErrMissingParam(nil))
	}
	// get-formats bu URL için çalıştıysa host zaten doğrulanmıştır, burada
	// yalnızca şema tamamlanır
	req.URL = helper.NormalizeURL(req.URL)

	log.Printf("API: Download request - URL: %s, Format: %s, Filename: %q", req.URL, req.FormatID, req.Filename)

	started := time.Now()
	result, err := h.downloadService.PrepareDownload(c.Context(), req)
	if err != nil {
		metrics.Downloads.WithLabelValues(consts.StatusFailed).Inc()
		return errors.HandleError(c, err)
	}
	metrics.DownloadDuration.Observe(time.Since(started).Seconds())

	// SendFile dosyayı handler içinde açar; Unix'te açık dosyanın klasörünü
	// silmek güvenlidir, bu yüzden cleanup defer ile bağlanabilir
	defer result.Cleanup()

	log.Printf("API: %s: %s", consts.StageSending, result.Filename)
	// Proxy'lerin (örn. nginx) response buffering'ini kapat
	c.Set("X-Accel-Buffering", "no")

	if err := c.Download(result.FilePath, result.Filename); err != nil {
		metrics.Downloads.WithLabelValues(consts.StatusFailed).Inc()
		return errors.HandleError(c, errors.ErrInternal(err))
	}

	metrics.Downloads.WithLabelValues(consts.StatusOK).Inc()
	return nil
}
