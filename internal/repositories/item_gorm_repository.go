package repositories

import (
	"fmt"

	"wishlists/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMWishlistItemRepository is a GORM implementation of WishlistItemRepository.
type GORMWishlistItemRepository struct {
	db *gorm.DB
}

// NewGORMWishlistItemRepository creates a new instance of GORMWishlistItemRepository.
func NewGORMWishlistItemRepository(db *gorm.DB) *GORMWishlistItemRepository {
	return &GORMWishlistItemRepository{
		db: db,
	}
}

// GetByID retrieves a single item. Returns (nil, nil) when no item has
// the given id.
func (r *GORMWishlistItemRepository) GetByID(id string) (*models.WishlistItem, error) {
	var item models.WishlistItem
	if err := r.db.First(&item, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get wishlist item by ID %s: %w", id, err)
	}
	return &item, nil
}

// FindByWishlistID retrieves all items of a wishlist in insertion order.
func (r *GORMWishlistItemRepository) FindByWishlistID(wishlistID string) ([]models.WishlistItem, error) {
	var items []models.WishlistItem
	if err := r.db.Order(itemOrder).Find(&items, "wishlist_id = ?", wishlistID).Error; err != nil {
		return nil, fmt.Errorf("failed to find items by wishlist ID %s: %w", wishlistID, err)
	}
	return items, nil
}

// FindByPrice retrieves the items in a wishlist priced at or below maxPrice.
func (r *GORMWishlistItemRepository) FindByPrice(wishlistID string, maxPrice float64) ([]models.WishlistItem, error) {
	var items []models.WishlistItem
	if err := r.db.Order(itemOrder).Find(&items, "wishlist_id = ? AND price <= ?", wishlistID, maxPrice).Error; err != nil {
		return nil, fmt.Errorf("failed to find items by price in wishlist %s: %w", wishlistID, err)
	}
	return items, nil
}

// FindByProductIDWishlistID retrieves the item referencing a product
// within a wishlist. Returns (nil, nil) when there is no such item.
func (r *GORMWishlistItemRepository) FindByProductIDWishlistID(productID, wishlistID string) (*models.WishlistItem, error) {
	var item models.WishlistItem
	err := r.db.First(&item, "product_id = ? AND wishlist_id = ?", productID, wishlistID).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find item by product ID %s in wishlist %s: %w", productID, wishlistID, err)
	}
	return &item, nil
}

// Create persists a new item.
func (r *GORMWishlistItemRepository) Create(item *models.WishlistItem) error {
	if item.ID == "" {
		item.ID = uuid.New().String()
	}
	if err := r.db.Create(item).Error; err != nil {
		return fmt.Errorf("failed to create wishlist item: %w", err)
	}
	return nil
}

// Update saves all columns of an existing item.
func (r *GORMWishlistItemRepository) Update(item *models.WishlistItem) error {
	res := r.db.Save(item)
	if res.Error != nil {
		return fmt.Errorf("failed to update wishlist item: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("wishlist item with ID %s not found for update", item.ID)
	}
	return nil
}

// Delete removes an item. Deleting an absent item is a no-op.
func (r *GORMWishlistItemRepository) Delete(id string) error {
	if err := r.db.Delete(&models.WishlistItem{}, "id = ?", id).Error; err != nil {
		return fmt.Errorf("failed to delete wishlist item %s: %w", id, err)
	}
	return nil
}

// DeleteByWishlistID removes every item of a wishlist. Returns the
// number of items removed.
func (r *GORMWishlistItemRepository) DeleteByWishlistID(wishlistID string) (int64, error) {
	res := r.db.Delete(&models.WishlistItem{}, "wishlist_id = ?", wishlistID)
	if res.Error != nil {
		return 0, fmt.Errorf("failed to delete items of wishlist %s: %w", wishlistID, res.Error)
	}
	return res.RowsAffected, nil
}

// Transfer reassigns an item to the target wishlist and refreshes the
// modified date on the item and both wishlists in a single transaction.
// Callers must have verified every precondition before this runs.
func (r *GORMWishlistItemRepository) Transfer(item *models.WishlistItem, source, target *models.Wishlist) error {
	today := models.Today()
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.WishlistItem{}).Where("id = ?", item.ID).
			Updates(map[string]interface{}{"wishlist_id": target.ID, "modified_date": today}).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.Wishlist{}).Where("id = ?", source.ID).
			Update("modified_date", today).Error; err != nil {
			return err
		}
		return tx.Model(&models.Wishlist{}).Where("id = ?", target.ID).
			Update("modified_date", today).Error
	})
	if err != nil {
		return fmt.Errorf("failed to move item %s to wishlist %s: %w", item.ID, target.ID, err)
	}
	item.WishlistID = target.ID
	item.ModifiedDate = today
	source.ModifiedDate = today
	target.ModifiedDate = today
	return nil
}
