package handlers

import (
	"fmt"

	"wishlists/internal/models"
	"wishlists/internal/services"

	"github.com/gofiber/fiber/v2"
)

// WishlistHandler handles HTTP requests for wishlists.
type WishlistHandler struct {
	service *services.WishlistService
}

// NewWishlistHandler creates a new WishlistHandler.
func NewWishlistHandler(service *services.WishlistService) *WishlistHandler {
	return &WishlistHandler{
		service: service,
	}
}

// RegisterRoutes registers the wishlist routes with the Fiber app.
// The customer bulk-delete route is registered before the id routes so
// the "customers" segment is not captured as a wishlist id.
func (h *WishlistHandler) RegisterRoutes(router fiber.Router) {
	wishlistRoutes := router.Group("/wishlists")
	wishlistRoutes.Get("/", h.HandleListWishlists)
	wishlistRoutes.Post("/", h.HandleCreateWishlist)
	wishlistRoutes.Delete("/customers/:customer_id", h.HandleDeleteCustomerWishlists)
	wishlistRoutes.Get("/:wishlist_id", h.HandleGetWishlist)
	wishlistRoutes.Put("/:wishlist_id", h.HandleUpdateWishlist)
	wishlistRoutes.Delete("/:wishlist_id", h.HandleDeleteWishlist)
	wishlistRoutes.Put("/:wishlist_id/items/:item_id/move-to/:target_wishlist_id", h.HandleMoveItem)
}

// HandleListWishlists lists wishlists, optionally filtered by
// customer_id or name (customer_id wins when both are present).
func (h *WishlistHandler) HandleListWishlists(c *fiber.Ctx) error {
	wishlists, err := h.service.ListWishlists(c.Query("customer_id"), c.Query("name"))
	if err != nil {
		return respondError(c, err)
	}
	body := make([]map[string]interface{}, 0, len(wishlists))
	for i := range wishlists {
		body = append(body, wishlists[i].Serialize())
	}
	return c.JSON(body)
}

// HandleCreateWishlist creates a new wishlist, optionally with nested items.
func (h *WishlistHandler) HandleCreateWishlist(c *fiber.Ctx) error {
	var data map[string]interface{}
	if err := c.BodyParser(&data); err != nil {
		return respondError(c, models.NewValidationError("Invalid Wishlist: body of request contained bad or no data: %v", err))
	}

	var wishlist models.Wishlist
	if err := wishlist.Deserialize(data); err != nil {
		return respondError(c, err)
	}
	if err := h.service.CreateWishlist(&wishlist); err != nil {
		return respondError(c, err)
	}

	c.Set("Location", fmt.Sprintf("/api/v1/wishlists/%s", wishlist.ID))
	return c.Status(fiber.StatusCreated).JSON(wishlist.Serialize())
}

// HandleGetWishlist reads a single wishlist.
func (h *WishlistHandler) HandleGetWishlist(c *fiber.Ctx) error {
	wishlist, err := h.service.GetWishlist(c.Params("wishlist_id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(wishlist.Serialize())
}

// HandleUpdateWishlist updates the customer_id and name of a wishlist.
func (h *WishlistHandler) HandleUpdateWishlist(c *fiber.Ctx) error {
	wishlist, err := h.service.GetWishlist(c.Params("wishlist_id"))
	if err != nil {
		return respondError(c, err)
	}

	var data map[string]interface{}
	if err := c.BodyParser(&data); err != nil {
		return respondError(c, models.NewValidationError("Invalid Wishlist: body of request contained bad or no data: %v", err))
	}
	var incoming models.Wishlist
	if err := incoming.Deserialize(data); err != nil {
		return respondError(c, err)
	}

	wishlist.CustomerID = incoming.CustomerID
	wishlist.Name = incoming.Name
	if err := h.service.UpdateWishlist(wishlist); err != nil {
		return respondError(c, err)
	}
	return c.JSON(wishlist.Serialize())
}

// HandleDeleteWishlist deletes a wishlist and its items. Deleting an
// absent wishlist still returns 204.
func (h *WishlistHandler) HandleDeleteWishlist(c *fiber.Ctx) error {
	if err := h.service.DeleteWishlist(c.Params("wishlist_id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// HandleDeleteCustomerWishlists deletes every wishlist of a customer.
func (h *WishlistHandler) HandleDeleteCustomerWishlists(c *fiber.Ctx) error {
	if err := h.service.DeleteCustomerWishlists(c.Params("customer_id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// HandleMoveItem moves an item between two wishlists of the same customer.
func (h *WishlistHandler) HandleMoveItem(c *fiber.Ctx) error {
	item, err := h.service.MoveItem(
		c.Params("wishlist_id"),
		c.Params("item_id"),
		c.Params("target_wishlist_id"),
	)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(item.Serialize())
}
