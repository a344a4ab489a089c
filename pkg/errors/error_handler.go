package errors

import (
	"log"

	"github.com/gofiber/fiber/v2"
)

func HandleError(c *fiber.Ctx, err error) error {
	if err == nil {
		return nil
	}

	if fe, ok := err.(*FetchError); ok {
		// Orijinal hatayı logla (debug için)
		if fe.Err != nil {
			log.Printf("Fetch error [%s]: %v", fe.Code, fe.Err)
		}

		// Status kodunu seç
		var status int
		switch fe.Code {
		case CodeMissingURL, CodeMissingParam, CodeUnsupportedURL,
			CodeVideoUnavailable, CodePrivateVideo, CodeAgeRestricted,
			CodeLiveNotFinished, CodeRateLimited, CodeVerificationRequired,
			CodeFormatNotFound, CodeNoFormats, CodeUpstreamFailed:
			status = fiber.StatusBadRequest
		default:
			status = fiber.StatusInternalServerError
		}

		// Client'a sadece sabit mesaj gönder, motor çıktısı sızmaz
		return c.Status(status).JSON(fiber.Map{
			"success": false,
			"error":   fe.Message,
		})
	}

	// Fiber'in kendi hataları (404, 405, body limit...) status kodunu korur
	if httpErr, ok := err.(*fiber.Error); ok {
		return c.Status(httpErr.Code).JSON(fiber.Map{
			"success": false,
			"error":   httpErr.Message,
		})
	}

	// Yakalanmayan hatalar için fallback (recover middleware'den gelen
	// panic'ler dahil)
	log.Printf("Unexpected error: %v", err)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"success": false,
		"error":   "An unexpected server error occurred.",
	})
}
