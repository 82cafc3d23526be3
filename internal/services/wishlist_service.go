package services

import (
	"log"

	"wishlists/internal/models"
	"wishlists/internal/repositories"
	"wishlists/pkg/rabbitmq"

	"github.com/go-playground/validator/v10"
)

// WishlistService handles business logic for wishlist aggregates,
// including the cross-wishlist move protocol.
type WishlistService struct {
	wishlists repositories.WishlistRepository
	items     repositories.WishlistItemRepository
	validate  *validator.Validate
	mqClient  *rabbitmq.Client
}

// NewWishlistService creates a new WishlistService. mqClient may be nil,
// in which case event publication is skipped.
func NewWishlistService(wishlists repositories.WishlistRepository, items repositories.WishlistItemRepository, mqClient *rabbitmq.Client) *WishlistService {
	return &WishlistService{
		wishlists: wishlists,
		items:     items,
		validate:  validator.New(),
		mqClient:  mqClient,
	}
}

// ListWishlists returns wishlists filtered by customer_id or name.
// customer_id takes precedence when both are given; with neither, all
// wishlists are returned.
func (s *WishlistService) ListWishlists(customerID, name string) ([]models.Wishlist, error) {
	switch {
	case customerID != "":
		return s.wishlists.FindByCustomerID(customerID)
	case name != "":
		return s.wishlists.FindByName(name)
	default:
		return s.wishlists.GetAll()
	}
}

// GetWishlist retrieves a wishlist by id.
func (s *WishlistService) GetWishlist(id string) (*models.Wishlist, error) {
	wishlist, err := s.wishlists.GetByID(id)
	if err != nil {
		return nil, err
	}
	if wishlist == nil {
		return nil, models.NewNotFoundError("Wishlist with id '%s' was not found.", id)
	}
	return wishlist, nil
}

// CreateWishlist validates and persists a new wishlist together with any
// attached items, stamping creation and modification dates.
func (s *WishlistService) CreateWishlist(wishlist *models.Wishlist) error {
	if err := s.validateStruct(wishlist, "Wishlist"); err != nil {
		return err
	}
	today := models.Today()
	wishlist.CreatedDate = today
	wishlist.ModifiedDate = today
	for i := range wishlist.Items {
		wishlist.Items[i].AddedDate = today
		wishlist.Items[i].ModifiedDate = today
	}
	if err := s.wishlists.Create(wishlist); err != nil {
		return models.NewValidationError("Error creating wishlist: %v", err)
	}
	s.publishEvent("wishlist.created", map[string]interface{}{
		"wishlist_id": wishlist.ID,
		"customer_id": wishlist.CustomerID,
	})
	return nil
}

// UpdateWishlist refreshes the modified date and persists changes to an
// existing wishlist's own fields.
func (s *WishlistService) UpdateWishlist(wishlist *models.Wishlist) error {
	if wishlist.ID == "" {
		return models.NewValidationError("Update called with empty ID field")
	}
	if err := s.validateStruct(wishlist, "Wishlist"); err != nil {
		return err
	}
	wishlist.ModifiedDate = models.Today()
	if err := s.wishlists.Update(wishlist); err != nil {
		return models.NewValidationError("Error updating wishlist: %v", err)
	}
	return nil
}

// DeleteWishlist removes a wishlist and all of its items. Deleting a
// nonexistent wishlist is a no-op.
func (s *WishlistService) DeleteWishlist(id string) error {
	if err := s.wishlists.Delete(id); err != nil {
		return models.NewValidationError("Error deleting wishlist: %v", err)
	}
	s.publishEvent("wishlist.deleted", map[string]interface{}{
		"wishlist_id": id,
	})
	return nil
}

// DeleteCustomerWishlists removes every wishlist owned by a customer,
// cascading to their items. A customer with no wishlists is a no-op.
func (s *WishlistService) DeleteCustomerWishlists(customerID string) error {
	removed, err := s.wishlists.DeleteByCustomerID(customerID)
	if err != nil {
		return models.NewValidationError("Error deleting wishlists for customer %s: %v", customerID, err)
	}
	if removed > 0 {
		log.Printf("Deleted %d wishlists for customer %s", removed, customerID)
	}
	return nil
}

// MoveItem transfers an item between two wishlists of the same customer.
// Every precondition is checked before any write: the source wishlist
// must exist, the target wishlist must exist, the item must exist and
// belong to the source, and both wishlists must share a customer. The
// writes then run in a single transaction.
func (s *WishlistService) MoveItem(sourceID, itemID, targetID string) (*models.WishlistItem, error) {
	source, err := s.wishlists.GetByID(sourceID)
	if err != nil {
		return nil, err
	}
	if source == nil {
		return nil, models.NewNotFoundError("Source wishlist with id '%s' could not be found.", sourceID)
	}

	target, err := s.wishlists.GetByID(targetID)
	if err != nil {
		return nil, err
	}
	if target == nil {
		return nil, models.NewNotFoundError("Target wishlist with id '%s' could not be found.", targetID)
	}

	item, err := s.items.GetByID(itemID)
	if err != nil {
		return nil, err
	}
	if item == nil || item.WishlistID != sourceID {
		return nil, models.NewNotFoundError("Item with id '%s' was not found in wishlist '%s'.", itemID, sourceID)
	}

	if source.CustomerID != target.CustomerID {
		return nil, models.NewForbiddenError("Wishlists belong to different customers.")
	}

	if err := s.items.Transfer(item, source, target); err != nil {
		return nil, models.NewValidationError("Error moving item: %v", err)
	}

	// Keep the loaded aggregates consistent with the reassignment.
	for i := range source.Items {
		if source.Items[i].ID == item.ID {
			source.Items = append(source.Items[:i], source.Items[i+1:]...)
			break
		}
	}
	target.Items = append(target.Items, *item)

	s.publishEvent("item.moved", map[string]interface{}{
		"item_id":            item.ID,
		"source_wishlist_id": sourceID,
		"target_wishlist_id": targetID,
	})
	return item, nil
}

// validateStruct translates validator failures into the error taxonomy,
// naming the first offending field.
func (s *WishlistService) validateStruct(value interface{}, entity string) error {
	if err := s.validate.Struct(value); err != nil {
		validationErrors, ok := err.(validator.ValidationErrors)
		if !ok || len(validationErrors) == 0 {
			return models.NewValidationError("Invalid %s: %v", entity, err)
		}
		first := validationErrors[0]
		return models.NewValidationError("Invalid %s: field '%s' failed on the '%s' tag", entity, first.Field(), first.Tag())
	}
	return nil
}

func (s *WishlistService) publishEvent(event string, payload map[string]interface{}) {
	if s.mqClient == nil {
		return
	}
	if err := s.mqClient.PublishEvent(event, payload); err != nil {
		log.Printf("Warning: failed to publish %s event: %v", event, err)
	}
}
