package repositories

import (
	"wishlists/internal/models"
)

// WishlistRepository defines the interface for wishlist data access.
// Lookups return (nil, nil) or an empty slice when nothing matches;
// deciding that absence is an error is the caller's job.
type WishlistRepository interface {
	GetAll() ([]models.Wishlist, error)
	GetByID(id string) (*models.Wishlist, error)
	FindByName(name string) ([]models.Wishlist, error)
	FindByCustomerID(customerID string) ([]models.Wishlist, error)
	Create(wishlist *models.Wishlist) error
	Update(wishlist *models.Wishlist) error
	Delete(id string) error
	DeleteByCustomerID(customerID string) (int64, error)
}
