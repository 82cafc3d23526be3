package services_test

import (
	"wishlists/internal/models"

	"github.com/stretchr/testify/mock"
)

// MockWishlistRepository is a mock implementation of repositories.WishlistRepository
type MockWishlistRepository struct {
	mock.Mock
}

func (m *MockWishlistRepository) GetAll() ([]models.Wishlist, error) {
	args := m.Called()
	return args.Get(0).([]models.Wishlist), args.Error(1)
}

func (m *MockWishlistRepository) GetByID(id string) (*models.Wishlist, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Wishlist), args.Error(1)
}

func (m *MockWishlistRepository) FindByName(name string) ([]models.Wishlist, error) {
	args := m.Called(name)
	return args.Get(0).([]models.Wishlist), args.Error(1)
}

func (m *MockWishlistRepository) FindByCustomerID(customerID string) ([]models.Wishlist, error) {
	args := m.Called(customerID)
	return args.Get(0).([]models.Wishlist), args.Error(1)
}

func (m *MockWishlistRepository) Create(wishlist *models.Wishlist) error {
	args := m.Called(wishlist)
	return args.Error(0)
}

func (m *MockWishlistRepository) Update(wishlist *models.Wishlist) error {
	args := m.Called(wishlist)
	return args.Error(0)
}

func (m *MockWishlistRepository) Delete(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockWishlistRepository) DeleteByCustomerID(customerID string) (int64, error) {
	args := m.Called(customerID)
	return args.Get(0).(int64), args.Error(1)
}

// MockWishlistItemRepository is a mock implementation of repositories.WishlistItemRepository
type MockWishlistItemRepository struct {
	mock.Mock
}

func (m *MockWishlistItemRepository) GetByID(id string) (*models.WishlistItem, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.WishlistItem), args.Error(1)
}

func (m *MockWishlistItemRepository) FindByWishlistID(wishlistID string) ([]models.WishlistItem, error) {
	args := m.Called(wishlistID)
	return args.Get(0).([]models.WishlistItem), args.Error(1)
}

func (m *MockWishlistItemRepository) FindByPrice(wishlistID string, maxPrice float64) ([]models.WishlistItem, error) {
	args := m.Called(wishlistID, maxPrice)
	return args.Get(0).([]models.WishlistItem), args.Error(1)
}

func (m *MockWishlistItemRepository) FindByProductIDWishlistID(productID, wishlistID string) (*models.WishlistItem, error) {
	args := m.Called(productID, wishlistID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.WishlistItem), args.Error(1)
}

func (m *MockWishlistItemRepository) Create(item *models.WishlistItem) error {
	args := m.Called(item)
	return args.Error(0)
}

func (m *MockWishlistItemRepository) Update(item *models.WishlistItem) error {
	args := m.Called(item)
	return args.Error(0)
}

func (m *MockWishlistItemRepository) Delete(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockWishlistItemRepository) DeleteByWishlistID(wishlistID string) (int64, error) {
	args := m.Called(wishlistID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockWishlistItemRepository) Transfer(item *models.WishlistItem, source, target *models.Wishlist) error {
	args := m.Called(item, source, target)
	return args.Error(0)
}
