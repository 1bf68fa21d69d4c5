package handlers

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/i-ankit-here/scrap-con-backend/internal/auth"
	"github.com/i-ankit-here/scrap-con-backend/internal/dto"
	"github.com/i-ankit-here/scrap-con-backend/internal/services"
)

const defaultNearbyRadiusMeters = 5000.0

type VendorHandler struct {
	vendorService *services.VendorService
}

func NewVendorHandler(vendorService *services.VendorService) *VendorHandler {
	return &VendorHandler{vendorService: vendorService}
}

func (h *VendorHandler) GetProfile(c *fiber.Ctx) error {
	vendorID, err := auth.GetPrincipalID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Error: true, Message: "Unauthorized"})
	}

	vendor, err := h.vendorService.GetProfile(vendorID)
	if err != nil {
		if errors.Is(err, services.ErrVendorNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: true, Message: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: true, Message: "Failed to fetch profile"})
	}
	return c.JSON(vendor)
}

func (h *VendorHandler) UpdateProfile(c *fiber.Ctx) error {
	vendorID, err := auth.GetPrincipalID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Error: true, Message: "Unauthorized"})
	}

	var req dto.UpdateVendorProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: true, Message: "Invalid request body"})
	}

	vendor, err := h.vendorService.UpdateProfile(vendorID, &req)
	if err != nil {
		if errors.Is(err, services.ErrVendorNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: true, Message: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: true, Message: "Failed to update profile"})
	}
	return c.JSON(vendor)
}

func (h *VendorHandler) UpdateAvailability(c *fiber.Ctx) error {
	vendorID, err := auth.GetPrincipalID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Error: true, Message: "Unauthorized"})
	}

	var req dto.UpdateAvailabilityRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: true, Message: "Invalid request body"})
	}

	if err := h.vendorService.UpdateAvailability(vendorID, req.IsAvailable); err != nil {
		if errors.Is(err, services.ErrVendorNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: true, Message: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: true, Message: "Failed to update availability"})
	}
	return c.JSON(fiber.Map{"message": "Availability updated successfully", "is_available": req.IsAvailable})
}

func (h *VendorHandler) UpdateServiceArea(c *fiber.Ctx) error {
	vendorID, err := auth.GetPrincipalID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Error: true, Message: "Unauthorized"})
	}

	var req dto.UpdateServiceAreaRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: true, Message: "Invalid request body"})
	}

	area, err := h.vendorService.UpdateServiceArea(vendorID, &req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrVendorNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: true, Message: err.Error()})
		case errors.Is(err, services.ErrServiceAreaInput), errors.Is(err, services.ErrLocationNotSet):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: true, Message: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: true, Message: "Failed to update service area"})
	}

	return c.JSON(fiber.Map{
		"message":      "Service area updated successfully",
		"service_area": area,
	})
}

func (h *VendorHandler) GetServiceArea(c *fiber.Ctx) error {
	vendorID, err := auth.GetPrincipalID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Error: true, Message: "Unauthorized"})
	}

	area, err := h.vendorService.GetServiceArea(vendorID)
	if err != nil {
		if errors.Is(err, services.ErrServiceAreaNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: true, Message: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: true, Message: "Failed to fetch service area"})
	}
	return c.JSON(area)
}

func (h *VendorHandler) UpdateLocation(c *fiber.Ctx) error {
	vendorID, err := auth.GetPrincipalID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Error: true, Message: "Unauthorized"})
	}

	var req dto.UpdateLocationRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: true, Message: "Invalid request body"})
	}

	loc, err := h.vendorService.UpdateLocation(c.Context(), vendorID, &req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrVendorNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: true, Message: err.Error()})
		case errors.Is(err, services.ErrLocationInput), errors.Is(err, services.ErrGeocodingFailed):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: true, Message: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: true, Message: "Failed to update location"})
	}

	return c.JSON(dto.LocationResponse{
		Message:   "Vendor location updated successfully",
		Latitude:  loc.Latitude,
		Longitude: loc.Longitude,
		City:      loc.City,
		State:     loc.State,
		Pincode:   loc.Pincode,
	})
}

func (h *VendorHandler) GetNearbyVendors(c *fiber.Ctx) error {
	lat, err := strconv.ParseFloat(c.Query("latitude"), 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: true, Message: "Invalid latitude"})
	}
	lon, err := strconv.ParseFloat(c.Query("longitude"), 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: true, Message: "Invalid longitude"})
	}
	radius, err := strconv.ParseFloat(c.Query("radius", "5000"), 64)
	if err != nil {
		radius = defaultNearbyRadiusMeters
	}

	vendors, err := h.vendorService.FindNearby(lat, lon, radius)
	if err != nil {
		if errors.Is(err, services.ErrInvalidSearchRadius) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: true, Message: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: true, Message: "Failed to search nearby vendors"})
	}
	return c.JSON(vendors)
}

func (h *VendorHandler) GetNearbyVendorsForUser(c *fiber.Ctx) error {
	userID, err := auth.GetPrincipalID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Error: true, Message: "Unauthorized"})
	}

	radius, err := strconv.ParseFloat(c.Query("radius", "5000"), 64)
	if err != nil {
		radius = defaultNearbyRadiusMeters
	}

	vendors, err := h.vendorService.FindNearbyForUser(userID, radius)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNoGeocodedAddress):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: true, Message: err.Error()})
		case errors.Is(err, services.ErrInvalidSearchRadius):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: true, Message: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: true, Message: "Failed to search nearby vendors"})
	}
	return c.JSON(vendors)
}
