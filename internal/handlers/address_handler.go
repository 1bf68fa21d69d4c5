package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/i-ankit-here/scrap-con-backend/internal/auth"
	"github.com/i-ankit-here/scrap-con-backend/internal/dto"
	"github.com/i-ankit-here/scrap-con-backend/internal/services"
)

type AddressHandler struct {
	addressService *services.AddressService
}

func NewAddressHandler(addressService *services.AddressService) *AddressHandler {
	return &AddressHandler{addressService: addressService}
}

func (h *AddressHandler) CreateAddress(c *fiber.Ctx) error {
	userID, err := auth.GetPrincipalID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Error: true, Message: "Unauthorized"})
	}

	var req dto.CreateAddressRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: true, Message: "Invalid request body"})
	}

	address, err := h.addressService.Create(c.Context(), userID, &req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrCustomerNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: true, Message: err.Error()})
		case errors.Is(err, services.ErrAddressInput), errors.Is(err, services.ErrGeocodingFailed):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: true, Message: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: true, Message: "Failed to create address"})
	}

	return c.Status(fiber.StatusCreated).JSON(address)
}

func (h *AddressHandler) ListAddresses(c *fiber.Ctx) error {
	userID, err := auth.GetPrincipalID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Error: true, Message: "Unauthorized"})
	}

	addresses, err := h.addressService.List(userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: true, Message: "Failed to fetch addresses"})
	}
	return c.JSON(addresses)
}

func (h *AddressHandler) DeleteAddress(c *fiber.Ctx) error {
	userID, err := auth.GetPrincipalID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Error: true, Message: "Unauthorized"})
	}

	addressID, err := uuid.Parse(c.Params("addressId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: true, Message: "Invalid address ID"})
	}

	if err := h.addressService.Delete(userID, addressID); err != nil {
		if errors.Is(err, services.ErrAddressNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: true, Message: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: true, Message: "Failed to delete address"})
	}
	return c.JSON(fiber.Map{"message": "Address deleted successfully"})
}
