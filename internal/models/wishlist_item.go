package models

import "math"

// WishlistItem represents a single product reference inside a wishlist.
type WishlistItem struct {
	ID           string  `json:"id" gorm:"primaryKey;type:varchar(36)"`
	WishlistID   string  `json:"wishlist_id" gorm:"type:varchar(36);not null;index" validate:"required"`
	ProductID    string  `json:"product_id" gorm:"type:varchar(36);not null" validate:"required"`
	Description  string  `json:"description" gorm:"type:varchar(256)" validate:"omitempty,max=256"`
	Price        float64 `json:"price" gorm:"type:decimal(10,2);not null" validate:"gte=0"`
	AddedDate    Date    `json:"added_date" gorm:"type:date"`
	ModifiedDate Date    `json:"modified_date" gorm:"type:date"`
}

// RoundPrice rounds a monetary amount half-up to two decimal places.
// Prices are rounded at write time, so 9.999 is stored as 10.00.
func RoundPrice(price float64) float64 {
	return math.Round(price*100) / 100
}

// Serialize converts a WishlistItem into its wire representation.
func (i *WishlistItem) Serialize() map[string]interface{} {
	return map[string]interface{}{
		"id":            i.ID,
		"wishlist_id":   i.WishlistID,
		"product_id":    i.ProductID,
		"description":   i.Description,
		"price":         i.Price,
		"added_date":    i.AddedDate,
		"modified_date": i.ModifiedDate,
	}
}

// Deserialize populates a WishlistItem from a parsed JSON body.
//
// product_id is required and non-empty; price is required and must be a
// JSON number (string prices are rejected, never coerced) and is rounded
// to two decimals on assignment; description defaults to the empty
// string. wishlist_id is taken from the body when present, otherwise the
// owning operation supplies it (item routes inject the path parameter,
// nested creation assigns the parent's id).
func (i *WishlistItem) Deserialize(data map[string]interface{}) error {
	if data == nil {
		return NewValidationError("Invalid WishlistItem: body of request contained bad or no data")
	}

	wishlistID, err := optionalString(data, "WishlistItem", "wishlist_id")
	if err != nil {
		return err
	}
	productID, err := requiredString(data, "WishlistItem", "product_id")
	if err != nil {
		return err
	}
	description, err := optionalString(data, "WishlistItem", "description")
	if err != nil {
		return err
	}
	price, err := numericField(data, "WishlistItem", "price")
	if err != nil {
		return err
	}
	if price < 0 {
		return NewValidationError("Invalid WishlistItem: field price must not be negative")
	}

	if wishlistID != "" {
		i.WishlistID = wishlistID
	}
	i.ProductID = productID
	i.Description = description
	i.Price = RoundPrice(price)
	return nil
}
