package handlers

import (
	"github.com/equipe-centaurus/achados-backend/internal/dto"
	"github.com/equipe-centaurus/achados-backend/internal/services"
	"github.com/gofiber/fiber/v2"
)

type ReportHandler struct {
	reportService *services.ReportService
}

func NewReportHandler(reportService *services.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

func (h *ReportHandler) Create(c *fiber.Ctx) error {
	itemID, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid item ID",
		})
	}

	var req dto.CreateReportRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	report, err := h.reportService.Create(itemID, &req)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(report)
}

func (h *ReportHandler) ListPending(c *fiber.Ctx) error {
	reports, err := h.reportService.ListPending()
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(fiber.Map{
		"reports": reports,
		"total":   len(reports),
	})
}

func (h *ReportHandler) Resolve(c *fiber.Ctx) error {
	reportID, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid report ID",
		})
	}

	var req dto.ResolveReportRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	if err := h.reportService.Resolve(reportID, &req); err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Report resolved"})
}
