package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/i-ankit-here/scrap-con-backend/internal/auth"
	"github.com/i-ankit-here/scrap-con-backend/internal/dto"
	"github.com/i-ankit-here/scrap-con-backend/internal/services"
)

type PickupHandler struct {
	pickupService *services.PickupService
}

func NewPickupHandler(pickupService *services.PickupService) *PickupHandler {
	return &PickupHandler{pickupService: pickupService}
}

func (h *PickupHandler) RequestPickup(c *fiber.Ctx) error {
	customerID, err := auth.GetPrincipalID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Error: true, Message: "Unauthorized"})
	}

	var req dto.RequestPickupRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: true, Message: "Invalid request body"})
	}

	pickup, err := h.pickupService.RequestPickup(customerID, &req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrCustomerNotFound), errors.Is(err, services.ErrVendorNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: true, Message: err.Error()})
		case errors.Is(err, services.ErrNoCustomerAddress),
			errors.Is(err, services.ErrNoItems),
			errors.Is(err, services.ErrScheduleInPast):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: true, Message: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: true, Message: "Failed to create pickup"})
	}

	return c.Status(fiber.StatusCreated).JSON(dto.PickupResponse{
		Message: "Pickup request created successfully",
		Pickup:  pickup,
	})
}

func (h *PickupHandler) GetVendorPickups(c *fiber.Ctx) error {
	vendorID, err := auth.GetPrincipalID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Error: true, Message: "Unauthorized"})
	}

	pickups, err := h.pickupService.ListVendorPickups(vendorID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: true, Message: "Failed to fetch pickups"})
	}
	return c.JSON(pickups)
}

func (h *PickupHandler) GetCustomerPickups(c *fiber.Ctx) error {
	customerID, err := auth.GetPrincipalID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Error: true, Message: "Unauthorized"})
	}

	pickups, err := h.pickupService.ListCustomerPickups(customerID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: true, Message: "Failed to fetch pickups"})
	}
	return c.JSON(pickups)
}

func (h *PickupHandler) UpdatePickupStatus(c *fiber.Ctx) error {
	vendorID, err := auth.GetPrincipalID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Error: true, Message: "Unauthorized"})
	}

	pickupID, err := uuid.Parse(c.Params("pickupId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: true, Message: "Invalid pickup ID"})
	}

	var req dto.UpdatePickupStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: true, Message: "Invalid request body"})
	}

	pickup, err := h.pickupService.UpdateStatus(pickupID, vendorID, req.Status)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrPickupNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: true, Message: err.Error()})
		case errors.Is(err, services.ErrNotPickupVendor):
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Error: true, Message: err.Error()})
		case errors.Is(err, services.ErrInvalidStatus), errors.Is(err, services.ErrTerminalPickup):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: true, Message: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: true, Message: "Failed to update pickup status"})
	}

	return c.JSON(dto.PickupResponse{
		Message: "Pickup status updated successfully",
		Pickup:  pickup,
	})
}
