package handler

import (
	"net/http"

	"career-passport/internal/content"
	"career-passport/internal/domain"
	"career-passport/internal/dto"

	"github.com/gofiber/fiber/v2"
)

// DataPrefix is the path the content documents are served under.
const DataPrefix = "/data"

// ContentHandler serves the static content documents read by the pages.
type ContentHandler struct {
	loader  *content.Loader
	version string
}

// NewContentHandler creates a new ContentHandler instance
func NewContentHandler(loader *content.Loader, version string) *ContentHandler {
	return &ContentHandler{loader: loader, version: version}
}

// Register mounts the content routes on r.
func (h *ContentHandler) Register(r fiber.Router) {
	r.Get("/healthz", h.Health)
	r.Get(DataPrefix, h.Index)
	r.Get(DataPrefix+"/:file", h.Document)
}

// Index lists every document with its path.
func (h *ContentHandler) Index(c *fiber.Ctx) error {
	resources := domain.AllResources()
	entries := make([]dto.ResourceEntry, len(resources))
	for i, r := range resources {
		entries[i] = dto.ResourceEntry{
			Resource: r,
			File:     r.FileName(),
			Path:     DataPrefix + "/" + r.FileName(),
		}
	}
	return c.JSON(dto.ResourceIndex{Source: h.loader.Source().String(), Resources: entries})
}

// Document serves one document after validating it against its schema.
// The parameter may be the file name or the resource name.
func (h *ContentHandler) Document(c *fiber.Ctx) error {
	r, err := domain.ParseResource(c.Params("file"))
	if err != nil {
		return err
	}

	data, err := h.loader.Load(c.UserContext(), r)
	if err != nil {
		return err
	}

	c.Set(fiber.HeaderCacheControl, "no-cache")
	c.Type("json", "utf-8")
	return c.Send(data)
}

// Health loads every document and reports 503 when any of them fails.
func (h *ContentHandler) Health(c *fiber.Ctx) error {
	results := h.loader.Check(c.UserContext())

	resp := dto.HealthResponse{
		Status:    "ok",
		Version:   h.version,
		Source:    h.loader.Source().String(),
		Resources: make([]dto.ResourceHealth, len(results)),
	}
	for i, r := range results {
		resp.Resources[i] = dto.ResourceHealth{
			Resource: r.Resource,
			File:     r.File,
			Bytes:    r.Bytes,
			OK:       r.OK(),
			Error:    r.Error,
		}
		if !r.OK() {
			resp.Status = "degraded"
		}
	}

	status := http.StatusOK
	if resp.Status != "ok" {
		status = http.StatusServiceUnavailable
	}
	return c.Status(status).JSON(resp)
}
