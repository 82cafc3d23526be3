package repositories

import (
	"wishlists/internal/models"
)

// WishlistItemRepository defines the interface for wishlist item data
// access. Lookups return (nil, nil) or an empty slice when nothing
// matches.
type WishlistItemRepository interface {
	GetByID(id string) (*models.WishlistItem, error)
	FindByWishlistID(wishlistID string) ([]models.WishlistItem, error)
	// FindByPrice returns the items in a wishlist priced at or below maxPrice.
	FindByPrice(wishlistID string, maxPrice float64) ([]models.WishlistItem, error)
	FindByProductIDWishlistID(productID, wishlistID string) (*models.WishlistItem, error)
	Create(item *models.WishlistItem) error
	Update(item *models.WishlistItem) error
	Delete(id string) error
	DeleteByWishlistID(wishlistID string) (int64, error)
	// Transfer reassigns an item to the target wishlist and refreshes the
	// modified date of both wishlists, all in a single transaction.
	Transfer(item *models.WishlistItem, source, target *models.Wishlist) error
}
