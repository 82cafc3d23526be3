package models

// Wishlist is the aggregate root: a named collection of items belonging
// to one customer. Deleting a wishlist cascades to its items.
type Wishlist struct {
	ID           string         `json:"id" gorm:"primaryKey;type:varchar(36)"`
	CustomerID   string         `json:"customer_id" gorm:"type:varchar(36);not null;index" validate:"required"`
	Name         string         `json:"name" gorm:"type:varchar(64);not null" validate:"required,max=64"`
	CreatedDate  Date           `json:"created_date" gorm:"type:date"`
	ModifiedDate Date           `json:"modified_date" gorm:"type:date"`
	Items        []WishlistItem `json:"items" gorm:"foreignKey:WishlistID;references:ID;constraint:OnDelete:CASCADE"`
}

// Serialize converts a Wishlist into its wire representation, with items
// in insertion order.
func (w *Wishlist) Serialize() map[string]interface{} {
	items := make([]interface{}, 0, len(w.Items))
	for idx := range w.Items {
		items = append(items, w.Items[idx].Serialize())
	}
	return map[string]interface{}{
		"id":            w.ID,
		"customer_id":   w.CustomerID,
		"name":          w.Name,
		"created_date":  w.CreatedDate,
		"modified_date": w.ModifiedDate,
		"items":         items,
	}
}

// Deserialize populates a Wishlist from a parsed JSON body. customer_id
// and name are required and non-empty. When the body carries an items
// list, each element is deserialized into a new WishlistItem and
// appended; a malformed element fails the whole body.
func (w *Wishlist) Deserialize(data map[string]interface{}) error {
	if data == nil {
		return NewValidationError("Invalid Wishlist: body of request contained bad or no data")
	}

	customerID, err := requiredString(data, "Wishlist", "customer_id")
	if err != nil {
		return err
	}
	name, err := requiredString(data, "Wishlist", "name")
	if err != nil {
		return err
	}
	w.CustomerID = customerID
	w.Name = name

	raw, ok := data["items"]
	if !ok || raw == nil {
		return nil
	}
	list, ok := raw.([]interface{})
	if !ok {
		return NewValidationError("Invalid Wishlist: field items must be a list")
	}
	for _, element := range list {
		body, ok := element.(map[string]interface{})
		if !ok {
			return NewValidationError("Invalid WishlistItem: body of request contained bad or no data")
		}
		var item WishlistItem
		if err := item.Deserialize(body); err != nil {
			return err
		}
		w.Items = append(w.Items, item)
	}
	return nil
}
