package handlers

import (
	"fmt"
	"strconv"

	"wishlists/internal/models"
	"wishlists/internal/services"

	"github.com/gofiber/fiber/v2"
)

// WishlistItemHandler handles HTTP requests for items within a wishlist.
type WishlistItemHandler struct {
	service *services.WishlistItemService
}

// NewWishlistItemHandler creates a new WishlistItemHandler.
func NewWishlistItemHandler(service *services.WishlistItemService) *WishlistItemHandler {
	return &WishlistItemHandler{
		service: service,
	}
}

// RegisterRoutes registers the item routes with the Fiber app.
func (h *WishlistItemHandler) RegisterRoutes(router fiber.Router) {
	itemRoutes := router.Group("/wishlists/:wishlist_id/items")
	itemRoutes.Get("/", h.HandleListItems)
	itemRoutes.Post("/", h.HandleAddItem)
	itemRoutes.Delete("/", h.HandleClearItems)
	itemRoutes.Get("/:item_id", h.HandleGetItem)
	itemRoutes.Put("/:item_id", h.HandleUpdateItem)
	itemRoutes.Delete("/:item_id", h.HandleDeleteItem)
}

// HandleListItems lists the items of a wishlist. Supports price
// filtering (items priced at or below the given value), lookup by
// product_id, and sorting by price or added_date in either order.
func (h *WishlistItemHandler) HandleListItems(c *fiber.Ctx) error {
	query := services.ItemQuery{
		ProductID: c.Query("product_id"),
		SortBy:    c.Query("sort_by"),
		Order:     c.Query("order"),
	}
	if raw := c.Query("price"); raw != "" {
		price, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return respondError(c, models.NewValidationError("Invalid query: price must be a number, got '%s'", raw))
		}
		query.MaxPrice = &price
	}

	items, err := h.service.ListItems(c.Params("wishlist_id"), query)
	if err != nil {
		return respondError(c, err)
	}
	body := make([]map[string]interface{}, 0, len(items))
	for i := range items {
		body = append(body, items[i].Serialize())
	}
	return c.JSON(body)
}

// HandleAddItem adds a new item to a wishlist. The owning wishlist id
// comes from the path, overriding any wishlist_id in the body.
func (h *WishlistItemHandler) HandleAddItem(c *fiber.Ctx) error {
	wishlistID := c.Params("wishlist_id")

	var data map[string]interface{}
	if err := c.BodyParser(&data); err != nil {
		return respondError(c, models.NewValidationError("Invalid WishlistItem: body of request contained bad or no data: %v", err))
	}
	if data != nil {
		data["wishlist_id"] = wishlistID
	}

	var item models.WishlistItem
	if err := item.Deserialize(data); err != nil {
		return respondError(c, err)
	}
	if err := h.service.AddItem(wishlistID, &item); err != nil {
		return respondError(c, err)
	}

	c.Set("Location", fmt.Sprintf("/api/v1/wishlists/%s/items/%s", wishlistID, item.ID))
	return c.Status(fiber.StatusCreated).JSON(item.Serialize())
}

// HandleGetItem reads a single item of a wishlist.
func (h *WishlistItemHandler) HandleGetItem(c *fiber.Ctx) error {
	item, err := h.service.GetItem(c.Params("wishlist_id"), c.Params("item_id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(item.Serialize())
}

// HandleUpdateItem updates the product_id, description and price of an
// item in place.
func (h *WishlistItemHandler) HandleUpdateItem(c *fiber.Ctx) error {
	wishlistID := c.Params("wishlist_id")
	item, err := h.service.GetItem(wishlistID, c.Params("item_id"))
	if err != nil {
		return respondError(c, err)
	}

	var data map[string]interface{}
	if err := c.BodyParser(&data); err != nil {
		return respondError(c, models.NewValidationError("Invalid WishlistItem: body of request contained bad or no data: %v", err))
	}
	if data != nil {
		data["wishlist_id"] = wishlistID
	}

	var incoming models.WishlistItem
	if err := incoming.Deserialize(data); err != nil {
		return respondError(c, err)
	}

	item.ProductID = incoming.ProductID
	item.Description = incoming.Description
	item.Price = incoming.Price
	if err := h.service.UpdateItem(item); err != nil {
		return respondError(c, err)
	}
	return c.JSON(item.Serialize())
}

// HandleDeleteItem deletes an item. Deleting an absent item still
// returns 204.
func (h *WishlistItemHandler) HandleDeleteItem(c *fiber.Ctx) error {
	if err := h.service.DeleteItem(c.Params("wishlist_id"), c.Params("item_id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// HandleClearItems deletes every item of a wishlist.
func (h *WishlistItemHandler) HandleClearItems(c *fiber.Ctx) error {
	if err := h.service.ClearItems(c.Params("wishlist_id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
