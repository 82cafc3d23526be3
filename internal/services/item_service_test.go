package services_test

import (
	"testing"
	"time"

	"wishlists/internal/models"
	"wishlists/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newItemService() (*services.WishlistItemService, *MockWishlistItemRepository, *MockWishlistRepository) {
	mockItems := new(MockWishlistItemRepository)
	mockWishlists := new(MockWishlistRepository)
	service := services.NewWishlistItemService(mockItems, mockWishlists, nil)
	return service, mockItems, mockWishlists
}

func existingWishlist(id string) *models.Wishlist {
	return &models.Wishlist{ID: id, CustomerID: "c1", Name: "Gifts"}
}

func TestListItems(t *testing.T) {
	service, mockItems, mockWishlists := newItemService()

	expected := []models.WishlistItem{
		{ID: "i1", WishlistID: "w1", ProductID: "p1", Price: 10},
		{ID: "i2", WishlistID: "w1", ProductID: "p2", Price: 30},
	}
	mockWishlists.On("GetByID", "w1").Return(existingWishlist("w1"), nil).Once()
	mockItems.On("FindByWishlistID", "w1").Return(expected, nil).Once()

	items, err := service.ListItems("w1", services.ItemQuery{})

	assert.NoError(t, err)
	assert.Equal(t, expected, items)
	mockWishlists.AssertExpectations(t)
	mockItems.AssertExpectations(t)
}

func TestListItemsWishlistNotFound(t *testing.T) {
	service, mockItems, mockWishlists := newItemService()

	mockWishlists.On("GetByID", "missing").Return(nil, nil).Once()

	var notFoundErr *models.NotFoundError
	items, err := service.ListItems("missing", services.ItemQuery{})

	assert.Nil(t, items)
	assert.ErrorAs(t, err, &notFoundErr)
	mockItems.AssertNotCalled(t, "FindByWishlistID", mock.Anything)
}

func TestListItemsPriceFilter(t *testing.T) {
	service, mockItems, mockWishlists := newItemService()

	cheap := []models.WishlistItem{
		{ID: "i1", WishlistID: "w1", ProductID: "p1", Price: 10},
		{ID: "i3", WishlistID: "w1", ProductID: "p3", Price: 20},
	}
	mockWishlists.On("GetByID", "w1").Return(existingWishlist("w1"), nil).Once()
	mockItems.On("FindByPrice", "w1", 20.0).Return(cheap, nil).Once()

	maxPrice := 20.0
	items, err := service.ListItems("w1", services.ItemQuery{MaxPrice: &maxPrice})

	assert.NoError(t, err)
	assert.Equal(t, cheap, items)
	mockItems.AssertExpectations(t)
}

func TestListItemsPriceFilterRoundsComparison(t *testing.T) {
	service, mockItems, mockWishlists := newItemService()

	mockWishlists.On("GetByID", "w1").Return(existingWishlist("w1"), nil).Once()
	mockItems.On("FindByPrice", "w1", 20.0).Return([]models.WishlistItem{}, nil).Once()

	maxPrice := 19.999
	_, err := service.ListItems("w1", services.ItemQuery{MaxPrice: &maxPrice})

	assert.NoError(t, err)
	mockItems.AssertExpectations(t)
}

func TestListItemsByProductID(t *testing.T) {
	service, mockItems, mockWishlists := newItemService()

	item := &models.WishlistItem{ID: "i1", WishlistID: "w1", ProductID: "p1", Price: 10}
	mockWishlists.On("GetByID", "w1").Return(existingWishlist("w1"), nil).Twice()
	mockItems.On("FindByProductIDWishlistID", "p1", "w1").Return(item, nil).Once()

	items, err := service.ListItems("w1", services.ItemQuery{ProductID: "p1"})
	assert.NoError(t, err)
	assert.Len(t, items, 1)
	assert.Equal(t, "i1", items[0].ID)

	mockItems.On("FindByProductIDWishlistID", "p9", "w1").Return(nil, nil).Once()
	items, err = service.ListItems("w1", services.ItemQuery{ProductID: "p9"})
	assert.NoError(t, err)
	assert.Empty(t, items)
	mockItems.AssertExpectations(t)
}

func sortFixture() []models.WishlistItem {
	day := func(offset int) models.Date {
		return models.DateOf(time.Date(2024, 3, 1+offset, 0, 0, 0, 0, time.UTC))
	}
	return []models.WishlistItem{
		{ID: "i1", WishlistID: "w1", ProductID: "p1", Price: 10, AddedDate: day(2)},
		{ID: "i2", WishlistID: "w1", ProductID: "p2", Price: 30, AddedDate: day(0)},
		{ID: "i3", WishlistID: "w1", ProductID: "p3", Price: 20, AddedDate: day(1)},
	}
}

func TestListItemsSortByPrice(t *testing.T) {
	service, mockItems, mockWishlists := newItemService()

	mockWishlists.On("GetByID", "w1").Return(existingWishlist("w1"), nil)
	mockItems.On("FindByWishlistID", "w1").Return(sortFixture(), nil)

	items, err := service.ListItems("w1", services.ItemQuery{SortBy: services.SortByPrice, Order: services.OrderAsc})
	assert.NoError(t, err)
	assert.Equal(t, []float64{10, 20, 30}, prices(items))

	items, err = service.ListItems("w1", services.ItemQuery{SortBy: services.SortByPrice, Order: services.OrderDesc})
	assert.NoError(t, err)
	assert.Equal(t, []float64{30, 20, 10}, prices(items))

	// Order defaults to ascending.
	items, err = service.ListItems("w1", services.ItemQuery{SortBy: services.SortByPrice})
	assert.NoError(t, err)
	assert.Equal(t, []float64{10, 20, 30}, prices(items))
}

func TestListItemsSortByAddedDate(t *testing.T) {
	service, mockItems, mockWishlists := newItemService()

	mockWishlists.On("GetByID", "w1").Return(existingWishlist("w1"), nil)
	mockItems.On("FindByWishlistID", "w1").Return(sortFixture(), nil)

	items, err := service.ListItems("w1", services.ItemQuery{SortBy: services.SortByAddedDate, Order: services.OrderAsc})
	assert.NoError(t, err)
	assert.Equal(t, []string{"i2", "i3", "i1"}, ids(items))

	items, err = service.ListItems("w1", services.ItemQuery{SortBy: services.SortByAddedDate, Order: services.OrderDesc})
	assert.NoError(t, err)
	assert.Equal(t, []string{"i1", "i3", "i2"}, ids(items))

	// Order defaults to ascending.
	items, err = service.ListItems("w1", services.ItemQuery{SortBy: services.SortByAddedDate})
	assert.NoError(t, err)
	assert.Equal(t, []string{"i2", "i3", "i1"}, ids(items))
}

func TestListItemsRejectsUnknownSort(t *testing.T) {
	service, mockItems, mockWishlists := newItemService()

	mockWishlists.On("GetByID", "w1").Return(existingWishlist("w1"), nil)
	mockItems.On("FindByWishlistID", "w1").Return(sortFixture(), nil)

	var validationErr *models.ValidationError
	_, err := service.ListItems("w1", services.ItemQuery{SortBy: "description"})
	assert.ErrorAs(t, err, &validationErr)
	assert.Contains(t, err.Error(), "sort_by")

	_, err = service.ListItems("w1", services.ItemQuery{SortBy: services.SortByPrice, Order: "sideways"})
	assert.ErrorAs(t, err, &validationErr)
	assert.Contains(t, err.Error(), "order")
}

func TestGetItem(t *testing.T) {
	service, mockItems, mockWishlists := newItemService()

	item := &models.WishlistItem{ID: "i1", WishlistID: "w1", ProductID: "p1", Price: 10}
	mockWishlists.On("GetByID", "w1").Return(existingWishlist("w1"), nil)
	mockItems.On("GetByID", "i1").Return(item, nil).Once()

	found, err := service.GetItem("w1", "i1")
	assert.NoError(t, err)
	assert.Equal(t, item, found)

	var notFoundErr *models.NotFoundError
	mockItems.On("GetByID", "missing").Return(nil, nil).Once()
	found, err = service.GetItem("w1", "missing")
	assert.Nil(t, found)
	assert.ErrorAs(t, err, &notFoundErr)

	// An item in another wishlist reads as not found.
	other := &models.WishlistItem{ID: "i2", WishlistID: "other", ProductID: "p2", Price: 5}
	mockItems.On("GetByID", "i2").Return(other, nil).Once()
	found, err = service.GetItem("w1", "i2")
	assert.Nil(t, found)
	assert.ErrorAs(t, err, &notFoundErr)
	mockItems.AssertExpectations(t)
}

func TestAddItem(t *testing.T) {
	service, mockItems, mockWishlists := newItemService()

	wishlist := existingWishlist("w1")
	mockWishlists.On("GetByID", "w1").Return(wishlist, nil).Once()
	item := &models.WishlistItem{ProductID: "p1", Price: 9.99}
	mockItems.On("Create", item).Return(nil).Once()
	mockWishlists.On("Update", wishlist).Return(nil).Once()

	err := service.AddItem("w1", item)

	assert.NoError(t, err)
	assert.Equal(t, "w1", item.WishlistID)
	assert.False(t, item.AddedDate.IsZero())
	assert.Equal(t, item.AddedDate, item.ModifiedDate)
	assert.False(t, wishlist.ModifiedDate.IsZero())
	mockWishlists.AssertExpectations(t)
	mockItems.AssertExpectations(t)
}

func TestAddItemWishlistNotFound(t *testing.T) {
	service, mockItems, mockWishlists := newItemService()

	mockWishlists.On("GetByID", "missing").Return(nil, nil).Once()

	var notFoundErr *models.NotFoundError
	err := service.AddItem("missing", &models.WishlistItem{ProductID: "p1", Price: 1})

	assert.ErrorAs(t, err, &notFoundErr)
	mockItems.AssertNotCalled(t, "Create", mock.Anything)
}

func TestAddItemValidationFailure(t *testing.T) {
	service, mockItems, mockWishlists := newItemService()

	mockWishlists.On("GetByID", "w1").Return(existingWishlist("w1"), nil).Once()

	var validationErr *models.ValidationError
	err := service.AddItem("w1", &models.WishlistItem{Price: 1})

	assert.ErrorAs(t, err, &validationErr)
	assert.Contains(t, err.Error(), "ProductID")
	mockItems.AssertNotCalled(t, "Create", mock.Anything)
}

func TestUpdateItem(t *testing.T) {
	service, mockItems, _ := newItemService()

	item := &models.WishlistItem{ID: "i1", WishlistID: "w1", ProductID: "p1", Price: 12.5}
	mockItems.On("Update", item).Return(nil).Once()

	err := service.UpdateItem(item)

	assert.NoError(t, err)
	assert.False(t, item.ModifiedDate.IsZero())
	mockItems.AssertExpectations(t)
}

func TestUpdateItemEmptyID(t *testing.T) {
	service, mockItems, _ := newItemService()

	var validationErr *models.ValidationError
	err := service.UpdateItem(&models.WishlistItem{WishlistID: "w1", ProductID: "p1", Price: 1})

	assert.ErrorAs(t, err, &validationErr)
	assert.Contains(t, err.Error(), "empty ID field")
	mockItems.AssertNotCalled(t, "Update", mock.Anything)
}

func TestDeleteItem(t *testing.T) {
	service, mockItems, mockWishlists := newItemService()

	item := &models.WishlistItem{ID: "i1", WishlistID: "w1", ProductID: "p1", Price: 10}
	wishlist := existingWishlist("w1")
	mockItems.On("GetByID", "i1").Return(item, nil).Once()
	mockItems.On("Delete", "i1").Return(nil).Once()
	mockWishlists.On("GetByID", "w1").Return(wishlist, nil).Once()
	mockWishlists.On("Update", wishlist).Return(nil).Once()

	assert.NoError(t, service.DeleteItem("w1", "i1"))
	mockItems.AssertExpectations(t)
	mockWishlists.AssertExpectations(t)
}

func TestDeleteItemIsIdempotent(t *testing.T) {
	service, mockItems, _ := newItemService()

	mockItems.On("GetByID", "missing").Return(nil, nil).Once()

	assert.NoError(t, service.DeleteItem("w1", "missing"))
	mockItems.AssertNotCalled(t, "Delete", mock.Anything)
}

func TestDeleteItemInOtherWishlistIsNoOp(t *testing.T) {
	service, mockItems, _ := newItemService()

	other := &models.WishlistItem{ID: "i1", WishlistID: "other", ProductID: "p1", Price: 10}
	mockItems.On("GetByID", "i1").Return(other, nil).Once()

	assert.NoError(t, service.DeleteItem("w1", "i1"))
	mockItems.AssertNotCalled(t, "Delete", mock.Anything)
}

func TestClearItems(t *testing.T) {
	service, mockItems, mockWishlists := newItemService()

	mockWishlists.On("GetByID", "w1").Return(existingWishlist("w1"), nil).Once()
	mockItems.On("DeleteByWishlistID", "w1").Return(int64(3), nil).Once()

	assert.NoError(t, service.ClearItems("w1"))
	mockItems.AssertExpectations(t)

	var notFoundErr *models.NotFoundError
	mockWishlists.On("GetByID", "missing").Return(nil, nil).Once()
	err := service.ClearItems("missing")
	assert.ErrorAs(t, err, &notFoundErr)
	mockItems.AssertNotCalled(t, "DeleteByWishlistID", "missing")
}

func prices(items []models.WishlistItem) []float64 {
	out := make([]float64, 0, len(items))
	for i := range items {
		out = append(out, items[i].Price)
	}
	return out
}

func ids(items []models.WishlistItem) []string {
	out := make([]string, 0, len(items))
	for i := range items {
		out = append(out, items[i].ID)
	}
	return out
}
