package handlers

import (
	"path/filepath"

	"github.com/gofiber/fiber/v2"
)

// StaticHandler serves the fixed front-end assets. Core'un parçası değil,
// pass-through.
type StaticHandler struct {
	assetsDir string
}

func NewStaticHandler(assetsDir string) *StaticHandler {
	return &StaticHandler{assetsDir: assetsDir}
}

func (h *StaticHandler) Index(c *fiber.Ctx) error {
	return c.SendFile(filepath.Join(h.assetsDir, "index.html"))
}

func (h *StaticHandler) AppJS(c *fiber.Ctx) error {
	return c.SendFile(filepath.Join(h.assetsDir, "app.js"))
}

func (h *StaticHandler) StyleCSS(c *fiber.Ctx) error {
	return c.SendFile(filepath.Join(h.assetsDir, "style.css"))
}
