package repositories

import (
	"fmt"

	"wishlists/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMWishlistRepository is a GORM implementation of WishlistRepository.
type GORMWishlistRepository struct {
	db *gorm.DB
}

// NewGORMWishlistRepository creates a new instance of GORMWishlistRepository.
func NewGORMWishlistRepository(db *gorm.DB) *GORMWishlistRepository {
	return &GORMWishlistRepository{
		db: db,
	}
}

// itemOrder keeps a wishlist's items in insertion order across reloads.
const itemOrder = "added_date, id"

// GetAll retrieves all wishlists with their items.
func (r *GORMWishlistRepository) GetAll() ([]models.Wishlist, error) {
	var wishlists []models.Wishlist
	if err := r.db.Preload("Items", func(db *gorm.DB) *gorm.DB {
		return db.Order(itemOrder)
	}).Find(&wishlists).Error; err != nil {
		return nil, fmt.Errorf("failed to get all wishlists: %w", err)
	}
	return wishlists, nil
}

// GetByID retrieves a single wishlist with its items. Returns (nil, nil)
// when no wishlist has the given id.
func (r *GORMWishlistRepository) GetByID(id string) (*models.Wishlist, error) {
	var wishlist models.Wishlist
	err := r.db.Preload("Items", func(db *gorm.DB) *gorm.DB {
		return db.Order(itemOrder)
	}).First(&wishlist, "id = ?", id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get wishlist by ID %s: %w", id, err)
	}
	return &wishlist, nil
}

// FindByName retrieves all wishlists with the given name.
func (r *GORMWishlistRepository) FindByName(name string) ([]models.Wishlist, error) {
	var wishlists []models.Wishlist
	if err := r.db.Preload("Items", func(db *gorm.DB) *gorm.DB {
		return db.Order(itemOrder)
	}).Find(&wishlists, "name = ?", name).Error; err != nil {
		return nil, fmt.Errorf("failed to find wishlists by name %s: %w", name, err)
	}
	return wishlists, nil
}

// FindByCustomerID retrieves all wishlists owned by the given customer.
func (r *GORMWishlistRepository) FindByCustomerID(customerID string) ([]models.Wishlist, error) {
	var wishlists []models.Wishlist
	if err := r.db.Preload("Items", func(db *gorm.DB) *gorm.DB {
		return db.Order(itemOrder)
	}).Find(&wishlists, "customer_id = ?", customerID).Error; err != nil {
		return nil, fmt.Errorf("failed to find wishlists by customer ID %s: %w", customerID, err)
	}
	return wishlists, nil
}

// Create persists a wishlist and any attached items in one transaction.
func (r *GORMWishlistRepository) Create(wishlist *models.Wishlist) error {
	if wishlist.ID == "" {
		wishlist.ID = uuid.New().String()
	}
	for i := range wishlist.Items {
		if wishlist.Items[i].ID == "" {
			wishlist.Items[i].ID = uuid.New().String()
		}
		wishlist.Items[i].WishlistID = wishlist.ID
	}
	if err := r.db.Create(wishlist).Error; err != nil {
		return fmt.Errorf("failed to create wishlist: %w", err)
	}
	return nil
}

// Update saves the wishlist's own columns. Items are managed through the
// item repository, so the association is left untouched here.
func (r *GORMWishlistRepository) Update(wishlist *models.Wishlist) error {
	res := r.db.Omit("Items").Save(wishlist)
	if res.Error != nil {
		return fmt.Errorf("failed to update wishlist: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("wishlist with ID %s not found for update", wishlist.ID)
	}
	return nil
}

// Delete removes a wishlist and all of its items. Deleting an absent
// wishlist is a no-op.
func (r *GORMWishlistRepository) Delete(id string) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&models.WishlistItem{}, "wishlist_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Wishlist{}, "id = ?", id).Error
	})
	if err != nil {
		return fmt.Errorf("failed to delete wishlist %s: %w", id, err)
	}
	return nil
}

// DeleteByCustomerID removes every wishlist owned by the customer,
// cascading to their items. Returns the number of wishlists removed.
func (r *GORMWishlistRepository) DeleteByCustomerID(customerID string) (int64, error) {
	var removed int64
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var ids []string
		if err := tx.Model(&models.Wishlist{}).Where("customer_id = ?", customerID).Pluck("id", &ids).Error; err != nil {
			return err
		}
		if len(ids) == 0 {
			return nil
		}
		if err := tx.Delete(&models.WishlistItem{}, "wishlist_id IN ?", ids).Error; err != nil {
			return err
		}
		res := tx.Delete(&models.Wishlist{}, "id IN ?", ids)
		if res.Error != nil {
			return res.Error
		}
		removed = res.RowsAffected
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("failed to delete wishlists for customer %s: %w", customerID, err)
	}
	return removed, nil
}
