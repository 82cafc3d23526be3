package services

import (
	"log"
	"sort"

	"wishlists/internal/models"
	"wishlists/internal/repositories"
	"wishlists/pkg/rabbitmq"

	"github.com/go-playground/validator/v10"
)

// Sort keys and orders accepted by the item listing.
const (
	SortByPrice     = "price"
	SortByAddedDate = "added_date"
	OrderAsc        = "asc"
	OrderDesc       = "desc"
)

// ItemQuery carries the optional listing parameters of the item
// collection endpoint.
type ItemQuery struct {
	ProductID string
	MaxPrice  *float64
	SortBy    string
	Order     string
}

// WishlistItemService handles business logic for items within a wishlist.
type WishlistItemService struct {
	items     repositories.WishlistItemRepository
	wishlists repositories.WishlistRepository
	validate  *validator.Validate
	mqClient  *rabbitmq.Client
}

// NewWishlistItemService creates a new WishlistItemService. mqClient may
// be nil, in which case event publication is skipped.
func NewWishlistItemService(items repositories.WishlistItemRepository, wishlists repositories.WishlistRepository, mqClient *rabbitmq.Client) *WishlistItemService {
	return &WishlistItemService{
		items:     items,
		wishlists: wishlists,
		validate:  validator.New(),
		mqClient:  mqClient,
	}
}

// ListItems returns the items of a wishlist, optionally filtered by
// product_id or by maximum price, and sorted by price or added_date.
// The price filter keeps items priced at or below the given value.
func (s *WishlistItemService) ListItems(wishlistID string, query ItemQuery) ([]models.WishlistItem, error) {
	if err := s.requireWishlist(wishlistID); err != nil {
		return nil, err
	}

	var items []models.WishlistItem
	var err error
	switch {
	case query.ProductID != "":
		var item *models.WishlistItem
		item, err = s.items.FindByProductIDWishlistID(query.ProductID, wishlistID)
		if item != nil {
			items = []models.WishlistItem{*item}
		}
	case query.MaxPrice != nil:
		items, err = s.items.FindByPrice(wishlistID, models.RoundPrice(*query.MaxPrice))
	default:
		items, err = s.items.FindByWishlistID(wishlistID)
	}
	if err != nil {
		return nil, err
	}

	if err := sortItems(items, query.SortBy, query.Order); err != nil {
		return nil, err
	}
	return items, nil
}

// GetItem retrieves an item by id, scoped to a wishlist. An item that
// exists but belongs to another wishlist reads as not found.
func (s *WishlistItemService) GetItem(wishlistID, itemID string) (*models.WishlistItem, error) {
	if err := s.requireWishlist(wishlistID); err != nil {
		return nil, err
	}
	item, err := s.items.GetByID(itemID)
	if err != nil {
		return nil, err
	}
	if item == nil || item.WishlistID != wishlistID {
		return nil, models.NewNotFoundError("Item with id '%s' was not found in wishlist '%s'.", itemID, wishlistID)
	}
	return item, nil
}

// AddItem validates and persists a new item in a wishlist, refreshing
// the wishlist's modified date.
func (s *WishlistItemService) AddItem(wishlistID string, item *models.WishlistItem) error {
	wishlist, err := s.wishlists.GetByID(wishlistID)
	if err != nil {
		return err
	}
	if wishlist == nil {
		return models.NewNotFoundError("Wishlist with id '%s' was not found.", wishlistID)
	}

	item.WishlistID = wishlistID
	if err := s.validateStruct(item); err != nil {
		return err
	}
	today := models.Today()
	item.AddedDate = today
	item.ModifiedDate = today
	if err := s.items.Create(item); err != nil {
		return models.NewValidationError("Error creating wishlist item: %v", err)
	}

	wishlist.ModifiedDate = today
	if err := s.wishlists.Update(wishlist); err != nil {
		log.Printf("Warning: failed to refresh modified date of wishlist %s: %v", wishlistID, err)
	}

	s.publishEvent("item.added", map[string]interface{}{
		"item_id":     item.ID,
		"wishlist_id": wishlistID,
		"product_id":  item.ProductID,
	})
	return nil
}

// UpdateItem refreshes the modified date and persists changes to an
// existing item.
func (s *WishlistItemService) UpdateItem(item *models.WishlistItem) error {
	if item.ID == "" {
		return models.NewValidationError("Update called with empty ID field")
	}
	if err := s.validateStruct(item); err != nil {
		return err
	}
	item.ModifiedDate = models.Today()
	if err := s.items.Update(item); err != nil {
		return models.NewValidationError("Error updating wishlist item: %v", err)
	}
	return nil
}

// DeleteItem removes an item from a wishlist. Deleting an item that is
// absent or belongs to another wishlist is a no-op.
func (s *WishlistItemService) DeleteItem(wishlistID, itemID string) error {
	item, err := s.items.GetByID(itemID)
	if err != nil {
		return err
	}
	if item == nil || item.WishlistID != wishlistID {
		return nil
	}
	if err := s.items.Delete(itemID); err != nil {
		return models.NewValidationError("Error deleting wishlist item: %v", err)
	}
	if wishlist, err := s.wishlists.GetByID(wishlistID); err == nil && wishlist != nil {
		wishlist.ModifiedDate = models.Today()
		if err := s.wishlists.Update(wishlist); err != nil {
			log.Printf("Warning: failed to refresh modified date of wishlist %s: %v", wishlistID, err)
		}
	}
	return nil
}

// ClearItems removes every item of a wishlist.
func (s *WishlistItemService) ClearItems(wishlistID string) error {
	if err := s.requireWishlist(wishlistID); err != nil {
		return err
	}
	removed, err := s.items.DeleteByWishlistID(wishlistID)
	if err != nil {
		return models.NewValidationError("Error deleting items of wishlist %s: %v", wishlistID, err)
	}
	if removed > 0 {
		log.Printf("Deleted %d items from wishlist %s", removed, wishlistID)
	}
	return nil
}

func (s *WishlistItemService) requireWishlist(wishlistID string) error {
	wishlist, err := s.wishlists.GetByID(wishlistID)
	if err != nil {
		return err
	}
	if wishlist == nil {
		return models.NewNotFoundError("Wishlist with id '%s' was not found.", wishlistID)
	}
	return nil
}

func (s *WishlistItemService) validateStruct(item *models.WishlistItem) error {
	if err := s.validate.Struct(item); err != nil {
		validationErrors, ok := err.(validator.ValidationErrors)
		if !ok || len(validationErrors) == 0 {
			return models.NewValidationError("Invalid WishlistItem: %v", err)
		}
		first := validationErrors[0]
		return models.NewValidationError("Invalid WishlistItem: field '%s' failed on the '%s' tag", first.Field(), first.Tag())
	}
	return nil
}

func (s *WishlistItemService) publishEvent(event string, payload map[string]interface{}) {
	if s.mqClient == nil {
		return
	}
	if err := s.mqClient.PublishEvent(event, payload); err != nil {
		log.Printf("Warning: failed to publish %s event: %v", event, err)
	}
}

// sortItems orders items in place by the requested key. Both keys
// default to ascending order; an unknown key or order is rejected
// rather than silently ignored.
func sortItems(items []models.WishlistItem, sortBy, order string) error {
	if sortBy == "" {
		if order != "" && order != OrderAsc && order != OrderDesc {
			return models.NewValidationError("Unknown order value '%s': must be 'asc' or 'desc'", order)
		}
		return nil
	}

	var less func(a, b *models.WishlistItem) bool
	switch sortBy {
	case SortByPrice:
		less = func(a, b *models.WishlistItem) bool { return a.Price < b.Price }
	case SortByAddedDate:
		less = func(a, b *models.WishlistItem) bool { return a.AddedDate.Before(b.AddedDate.Time) }
	default:
		return models.NewValidationError("Unknown sort_by value '%s': must be 'price' or 'added_date'", sortBy)
	}

	switch order {
	case "", OrderAsc:
	case OrderDesc:
		inner := less
		less = func(a, b *models.WishlistItem) bool { return inner(b, a) }
	default:
		return models.NewValidationError("Unknown order value '%s': must be 'asc' or 'desc'", order)
	}

	sort.SliceStable(items, func(i, j int) bool {
		return less(&items[i], &items[j])
	})
	return nil
}
