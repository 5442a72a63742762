package handlers

import (
	"strconv"

	"github.com/equipe-centaurus/achados-backend/internal/dto"
	"github.com/equipe-centaurus/achados-backend/internal/lifecycle"
	"github.com/equipe-centaurus/achados-backend/internal/services"
	"github.com/gofiber/fiber/v2"
)

type ItemHandler struct {
	itemService *services.ItemService
}

func NewItemHandler(itemService *services.ItemService) *ItemHandler {
	return &ItemHandler{itemService: itemService}
}

func (h *ItemHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateItemRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	item, err := h.itemService.Create(&req)
	if err != nil {
		return writeServiceError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(dto.NewItemResponse(*item, h.itemService.Now()))
}

// List serves the public search page. Query params q, category and location
// map onto the filter criteria; absent params are wildcards.
func (h *ItemHandler) List(c *fiber.Ctx) error {
	criteria := lifecycle.Criteria{
		Text:     c.Query("q"),
		Category: c.Query("category"),
		Location: c.Query("location"),
	}

	items, err := h.itemService.Search(criteria)
	if err != nil {
		return writeServiceError(c, err)
	}

	return c.JSON(fiber.Map{
		"items": dto.NewItemResponses(items, h.itemService.Now()),
		"total": len(items),
	})
}

func (h *ItemHandler) Recent(c *fiber.Ctx) error {
	items, err := h.itemService.Recent()
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(dto.NewItemResponses(items, h.itemService.Now()))
}

func (h *ItemHandler) Get(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid item ID",
		})
	}

	item, err := h.itemService.Get(id)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(dto.NewItemResponse(*item, h.itemService.Now()))
}

func (h *ItemHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid item ID",
		})
	}

	var req dto.UpdateItemRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	item, err := h.itemService.Update(id, &req)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(dto.NewItemResponse(*item, h.itemService.Now()))
}

func (h *ItemHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid item ID",
		})
	}

	var req dto.DeleteItemRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	if err := h.itemService.Delete(id, req.DeletionPassword); err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Item deleted successfully"})
}

// AdminList shows every item with its derived status; supports the status
// filter the public listing does not.
func (h *ItemHandler) AdminList(c *fiber.Ctx) error {
	criteria := lifecycle.Criteria{
		Text:     c.Query("q"),
		Category: c.Query("category"),
		Location: c.Query("location"),
		Status:   lifecycle.Status(c.Query("status")),
	}

	items, err := h.itemService.AdminList(criteria)
	if err != nil {
		return writeServiceError(c, err)
	}

	return c.JSON(fiber.Map{
		"items": dto.NewItemResponses(items, h.itemService.Now()),
		"total": len(items),
	})
}

func (h *ItemHandler) AdminDelete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid item ID",
		})
	}

	if err := h.itemService.AdminDelete(id); err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Item deleted by administrator"})
}

func parseID(c *fiber.Ctx) (uint, error) {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	return uint(id), err
}
