package preflight

import (
	"finaid-preflight/core/logger"
	"finaid-preflight/feature/preflight/checks"

	"github.com/gofiber/fiber/v2"
)

// Handler handles HTTP requests for verification reports.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the preflight routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/preflight")
	group.Get("/", h.HandleReport)
	group.Get("/structure", h.HandleStructure)
	group.Get("/database", h.HandleDatabase)
	group.Get("/storage", h.HandleStorage)
}

// HandleReport runs every configured check and returns the full report.
// @Summary Run Full Verification
// @Description Runs the directory, file and data-file checks plus any configured advisory probes and returns the aggregated report.
// @Tags preflight
// @Produce json
// @Success 200 {object} preflight.Report "Verification Report"
// @Router /preflight [get]
func (h *Handler) HandleReport(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	l.Info("Running full verification")

	report := h.service.Run(c.Context())
	return c.JSON(report)
}

// HandleStructure runs the directory and file checks only.
// @Summary Run Structure Checks
// @Description Tests the required directories and files under the configured base directory.
// @Tags preflight
// @Produce json
// @Success 200 {object} map[string]interface{} "Structure Results"
// @Router /preflight/structure [get]
func (h *Handler) HandleStructure(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	l.Info("Running structure checks")

	dirs := h.service.CheckDirectories()
	files := h.service.CheckFiles()
	return c.JSON(fiber.Map{
		"base_dir":       h.service.BaseDir(),
		"directories":    dirs,
		"files":          files,
		"directories_ok": checks.AllPresent(dirs),
		"files_ok":       checks.AllPresent(files),
	})
}

// HandleDatabase returns the advisory data-file check and, when configured,
// the connectivity probe.
// @Summary Run Database Checks
// @Description Tests the local data store presence and, when enabled, probes the application database.
// @Tags preflight
// @Produce json
// @Success 200 {object} map[string]interface{} "Database Results"
// @Router /preflight/database [get]
func (h *Handler) HandleDatabase(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	l.Info("Running database checks")

	resp := fiber.Map{"file": h.service.CheckDatabaseFile()}
	if probe := h.service.ProbeDatabase(); probe != nil {
		resp["probe"] = probe
	}
	return c.JSON(resp)
}

// HandleStorage runs the advisory document bucket probe.
// @Summary Run Storage Probe
// @Description Probes the document bucket and its required prefixes. Returns status disabled when no storage client is configured.
// @Tags preflight
// @Produce json
// @Success 200 {object} map[string]interface{} "Storage Results"
// @Router /preflight/storage [get]
func (h *Handler) HandleStorage(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	l.Info("Running storage probe")

	probe := h.service.ProbeStorage(c.Context())
	if probe == nil {
		return c.JSON(fiber.Map{"status": "disabled"})
	}
	return c.JSON(fiber.Map{"status": "checked", "probe": probe})
}
