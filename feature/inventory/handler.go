package inventory

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"

	"inventory-viewer/core/logger"
	"inventory-viewer/feature/inventory/models"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for the inventory.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the inventory and mapping routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	inv := app.Group("/inventory")
	inv.Post("/ingest", h.HandleIngest)
	inv.Get("/", h.HandleSummary)
	inv.Get("/:category", h.HandleCategory)
	inv.Delete("/", h.HandleReset)
	inv.Delete("/:category", h.HandleResetCategory)

	mp := app.Group("/mapping")
	mp.Get("/", h.HandleMappingStatus)
	mp.Post("/", h.HandleMappingUpload)
	mp.Post("/reload", h.HandleMappingReload)
}

// HandleIngest ingests the multipart "files" of the request as one batch.
// @Summary Ingest Export Files
// @Description Decodes every uploaded export file, detects its category and appends the normalized records. Files that fail to parse are reported and skipped.
// @Tags inventory
// @Accept multipart/form-data
// @Produce json
// @Param files formData file true "Export files (JSON)"
// @Success 200 {object} IngestReport "Ingest Report"
// @Failure 400 {object} map[string]string "Bad Request"
// @Router /inventory/ingest [post]
func (h *Handler) HandleIngest(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	files, err := formFiles(c)
	if err != nil {
		l.Warn("Invalid ingest request", zap.Error(err))
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	l.Info("Ingesting files", zap.Int("files", len(files)))
	return c.JSON(h.service.IngestFiles(c.Context(), files))
}

// HandleSummary returns the collection counts and the registry status.
// @Summary Inventory Summary
// @Description Returns the number of stored records per category and the mapping registry status.
// @Tags inventory
// @Produce json
// @Success 200 {object} map[string]interface{} "Counts and mapping status"
// @Router /inventory [get]
func (h *Handler) HandleSummary(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"counts":  h.service.Counts(),
		"mapping": h.service.MappingStatus(),
	})
}

// HandleCategory returns the records of one category, filtered by ?q=.
// @Summary List Records
// @Description Returns the records of one category. The optional query filters by name or id (case-insensitive substring).
// @Tags inventory
// @Produce json
// @Param category path string true "Category (characters, weapons, echoes, items)"
// @Param q query string false "Name or id filter"
// @Success 200 {object} map[string]interface{} "Records"
// @Failure 400 {object} map[string]string "Unknown category"
// @Router /inventory/{category} [get]
func (h *Handler) HandleCategory(c *fiber.Ctx) error {
	cat, err := models.ParseCategory(c.Params("category"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	records, err := h.service.Records(cat, c.Query("q"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{
		"category": cat,
		"records":  records,
	})
}

// HandleReset clears every collection.
// @Summary Reset Inventory
// @Description Removes every stored record.
// @Tags inventory
// @Produce json
// @Success 200 {object} map[string]interface{} "Reset Status"
// @Router /inventory [delete]
func (h *Handler) HandleReset(c *fiber.Ctx) error {
	logger.WithRayID(h.service.logger, c).Info("Resetting inventory")
	h.service.Reset()
	return c.JSON(fiber.Map{"status": "reset", "counts": h.service.Counts()})
}

// HandleResetCategory clears one collection.
// @Summary Reset Category
// @Description Removes the stored records of one category.
// @Tags inventory
// @Produce json
// @Param category path string true "Category (characters, weapons, echoes, items)"
// @Success 200 {object} map[string]interface{} "Reset Status"
// @Failure 400 {object} map[string]string "Unknown category"
// @Router /inventory/{category} [delete]
func (h *Handler) HandleResetCategory(c *fiber.Ctx) error {
	cat, err := models.ParseCategory(c.Params("category"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if err := h.service.ResetCategory(cat); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	logger.WithRayID(h.service.logger, c).Info("Reset category", zap.String("category", string(cat)))
	return c.JSON(fiber.Map{"status": "reset", "category": cat, "counts": h.service.Counts()})
}

// HandleMappingStatus returns the registry status.
// @Summary Mapping Status
// @Description Returns registry readiness and the size of every dictionary.
// @Tags mapping
// @Produce json
// @Success 200 {object} mapping.Status "Mapping Status"
// @Router /mapping [get]
func (h *Handler) HandleMappingStatus(c *fiber.Ctx) error {
	return c.JSON(h.service.MappingStatus())
}

// HandleMappingUpload builds the registry from uploaded mapping files.
// @Summary Upload Mapping Files
// @Description Classifies the uploaded mapping files by name (characters.json, weapons.json, ...) and merges them into the registry.
// @Tags mapping
// @Accept multipart/form-data
// @Produce json
// @Param files formData file true "Mapping files (JSON)"
// @Success 200 {object} MappingReport "Mapping Report"
// @Failure 400 {object} map[string]string "Bad Request"
// @Router /mapping [post]
func (h *Handler) HandleMappingUpload(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	files, err := formFiles(c)
	if err != nil {
		l.Warn("Invalid mapping upload", zap.Error(err))
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(h.service.UploadMapping(c.Context(), files))
}

// HandleMappingReload reloads the registry from the configured source.
// @Summary Reload Mapping
// @Description Reloads the mapping dictionaries from the configured folder or bucket. Concurrent reloads share one load.
// @Tags mapping
// @Produce json
// @Success 200 {object} MappingReport "Mapping Report"
// @Failure 400 {object} map[string]string "No mapping source configured"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /mapping/reload [post]
func (h *Handler) HandleMappingReload(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	report, err := h.service.LoadMapping(c.Context())
	if errors.Is(err, ErrNoMappingSource) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if err != nil {
		l.Error("Mapping reload failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(report)
}

// formFiles reads every multipart part named "files".
func formFiles(c *fiber.Ctx) ([]File, error) {
	form, err := c.MultipartForm()
	if err != nil {
		return nil, fmt.Errorf("expected multipart form: %w", err)
	}
	headers := form.File["files"]
	if len(headers) == 0 {
		return nil, errors.New("no files uploaded")
	}

	files := make([]File, 0, len(headers))
	for _, fh := range headers {
		data, err := readPart(fh)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", fh.Filename, err)
		}
		files = append(files, File{Name: fh.Filename, Data: data})
	}
	return files, nil
}

func readPart(fh *multipart.FileHeader) ([]byte, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return io.ReadAll(f)
}
