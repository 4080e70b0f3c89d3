package handler

import (
	"faq-service/internal/http/middleware"
	"faq-service/internal/models"
	"faq-service/internal/service"

	"github.com/gofiber/fiber/v2"
)

type FAQHandler struct {
	faqs *service.FAQService
}

func NewFAQHandler(faqs *service.FAQService) *FAQHandler {
	return &FAQHandler{faqs: faqs}
}

// GetAllFAQs - public listing of published FAQs in ?lang (default en)
func (h *FAQHandler) GetAllFAQs(c *fiber.Ctx) error {
	items, err := h.faqs.List(c.UserContext(), c.Query("lang"))
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"message": "All FAQ fetched successfully",
		"faqs":    items,
	})
}

func (h *FAQHandler) GetFAQByID(c *fiber.Ctx) error {
	faq, err := h.faqs.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"message": "FAQ fetched successfully",
		"faq":     faq,
	})
}

func (h *FAQHandler) CreateFAQ(c *fiber.Ctx) error {
	var req models.CreateFAQRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	faq, err := h.faqs.Create(c.UserContext(), middleware.AdminID(c), req)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "FAQ created successfully",
		"faq":     faq,
	})
}

func (h *FAQHandler) UpdateFAQ(c *fiber.Ctx) error {
	var req models.UpdateFAQRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	faq, err := h.faqs.Update(c.UserContext(), c.Params("id"), req)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"message": "FAQ updated successfully",
		"faq":     faq,
	})
}

// DeleteFAQ answers 200 even when nothing was deleted; faq is then null.
func (h *FAQHandler) DeleteFAQ(c *fiber.Ctx) error {
	faq, err := h.faqs.Delete(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"message": "FAQ deleted successfully",
		"faq":     faq,
	})
}
