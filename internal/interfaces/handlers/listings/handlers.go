package listings

import (
	"errors"

	listsvc "roost-backend/internal/application/listings"
	"roost-backend/internal/domain"
	"roost-backend/internal/middleware"
	"roost-backend/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Handlers holds dependencies for the listings endpoints.
type Handlers struct {
	Service *listsvc.Service
}

// CreateListing POST /api/v1/listings — 201 with the created listing.
// The session actor becomes the host; any host in the body is ignored.
func (h *Handlers) CreateListing(c *fiber.Ctx) error {
	var req CreateListingRequest
	if err := c.BodyParser(&req); err != nil {
		return response.Error(c, "Invalid request body", fiber.StatusBadRequest, nil)
	}

	actor := middleware.GetActor(c)
	listing, err := h.Service.Create(c.Context(), actor, listsvc.CreateListingInput{
		Title:         req.Title,
		Description:   req.Description,
		Location:      req.Location,
		PricePerNight: req.PricePerNight,
		MaxGuests:     req.MaxGuests,
		Amenities:     req.Amenities,
		Available:     req.Available,
	})
	if err != nil {
		return writeError(c, err)
	}
	return response.SuccessCreated(c, "Listing created successfully", toResponse(listing), nil)
}

// GetListing GET /api/v1/listings/:id — open read.
func (h *Handlers) GetListing(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return response.Error(c, "Invalid listing id", fiber.StatusBadRequest, nil)
	}
	listing, err := h.Service.Get(c.Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return response.Success(c, "Listing fetched successfully", toResponse(listing), nil)
}

// ListListings GET /api/v1/listings — open read, newest first.
// Optional query filters: host, location, min_price, max_price.
func (h *Handlers) ListListings(c *fiber.Ctx) error {
	var f listsvc.Filter
	if hostStr := c.Query("host"); hostStr != "" {
		hostID, err := uuid.Parse(hostStr)
		if err != nil {
			return response.Error(c, "Invalid host filter", fiber.StatusBadRequest, nil)
		}
		f.HostID = hostID
	}
	f.Location = c.Query("location")
	if s := c.Query("min_price"); s != "" {
		p, err := decimal.NewFromString(s)
		if err != nil {
			return response.Error(c, "Invalid min_price filter", fiber.StatusBadRequest, nil)
		}
		f.MinPrice = &p
	}
	if s := c.Query("max_price"); s != "" {
		p, err := decimal.NewFromString(s)
		if err != nil {
			return response.Error(c, "Invalid max_price filter", fiber.StatusBadRequest, nil)
		}
		f.MaxPrice = &p
	}

	ls, err := h.Service.List(c.Context(), f)
	if err != nil {
		return writeError(c, err)
	}
	return response.Success(c, "Listings fetched successfully", toResponseList(ls), nil)
}

// UpdateListing PUT /api/v1/listings/:id — host only.
func (h *Handlers) UpdateListing(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return response.Error(c, "Invalid listing id", fiber.StatusBadRequest, nil)
	}
	var req UpdateListingRequest
	if err := c.BodyParser(&req); err != nil {
		return response.Error(c, "Invalid request body", fiber.StatusBadRequest, nil)
	}

	actor := middleware.GetActor(c)
	listing, err := h.Service.Update(c.Context(), actor, id, listsvc.UpdateListingInput{
		Title:         req.Title,
		Description:   req.Description,
		Location:      req.Location,
		PricePerNight: req.PricePerNight,
		MaxGuests:     req.MaxGuests,
		Amenities:     req.Amenities,
		Available:     req.Available,
	})
	if err != nil {
		return writeError(c, err)
	}
	return response.Success(c, "Listing updated successfully", toResponse(listing), nil)
}

// DeleteListing DELETE /api/v1/listings/:id — host only.
func (h *Handlers) DeleteListing(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return response.Error(c, "Invalid listing id", fiber.StatusBadRequest, nil)
	}
	actor := middleware.GetActor(c)
	if err := h.Service.Delete(c.Context(), actor, id); err != nil {
		return writeError(c, err)
	}
	return response.Success(c, "Listing deleted successfully", nil, nil)
}

// writeError maps each domain error kind to its stable status code.
func writeError(c *fiber.Ctx, err error) error {
	if ve, ok := domain.IsValidation(err); ok {
		return response.Error(c, ve.Error(), fiber.StatusBadRequest, fiber.Map{"field": ve.Field})
	}
	switch {
	case errors.Is(err, domain.ErrAuthenticationRequired):
		return response.Error(c, err.Error(), fiber.StatusUnauthorized, nil)
	case errors.Is(err, domain.ErrPermissionDenied):
		return response.Error(c, err.Error(), fiber.StatusForbidden, nil)
	case errors.Is(err, domain.ErrListingNotFound):
		return response.Error(c, err.Error(), fiber.StatusNotFound, nil)
	default:
		return response.Error(c, "Internal Server Error", fiber.StatusInternalServerError, nil)
	}
}
