package handlers

import (
	"log"

	"video-downloader/internal/usecases"
	consts "video-downloader/pkg/constants"
	"video-downloader/pkg/errors"
	"video-downloader/pkg/helper"
	"video-downloader/pkg/metrics"

	"github.com/gofiber/fiber/v2"
)

type FormatHandler struct {
	formatService usecases.FormatService
}

func NewFormatHandler(formatService usecases.FormatService) *FormatHandler {
	return &FormatHandler{formatService: formatService}
}

// GetFormats
//
// @Summary      Get Video Formats
// @Description  Returns the available video and audio formats for a video URL
// @Tags         Formats
// @Produce      json
// @Param        url  query     string true "Video URL"
// @Success      200  {object}  dto.GetFormatsResponse
// @Failure      400  {object}  dto.ErrorResponse "Bad or unsupported URL, no formats"
// @Failure      500  {object}  dto.ErrorResponse "Internal server error"
// @Router       /get-formats [get]
func (h *FormatHandler) GetFormats(c *fiber.Ctx) error {
	rawURL := c.Query("url")
	if rawURL == "" {
		metrics.FormatRequests.WithLabelValues(consts.StatusFailed).Inc()
		return errors.HandleError(c, errors.ErrMissingURL(nil))
	}

	videoURL := helper.NormalizeURL(rawURL)
	// Host kontrolü motor çağrısından önce yapılır
	if !helper.IsSupportedURL(videoURL) {
		metrics.FormatRequests.WithLabelValues(consts.StatusFailed).Inc()
		return errors.HandleError(c, errors.ErrUnsupportedURL(nil))
	}

	log.Printf("API: Fetching formats for URL: %s", videoURL)
	response, err := h.formatService.GetFormats(c.Context(), videoURL)
	if err != nil {
		metrics.FormatRequests.WithLabelValues(consts.StatusFailed).Inc()
		return errors.HandleError(c, err)
	}

	metrics.FormatRequests.WithLabelValues(consts.StatusOK).Inc()
	return c.JSON(response)
}
