package employee

import "github.com/wichananm65/shopping-mall-backend/internal/user"

// ShopRef is the write-only shop reference accepted on save, e.g.
// {"shop": {"id": 3}}.
type ShopRef struct {
	ID int64 `json:"id"`
}

// Employee is a user row of kind EMPLOYEE, optionally assigned to a shop.
type Employee struct {
	user.User
	Position    string   `json:"position" gorm:"size:128;index"`
	PhoneNumber string   `json:"phoneNumber" gorm:"column:phone_number;size:32"`
	ShopID      *int64   `json:"-" gorm:"column:shop_id;index"`
	Shop        *ShopRef `json:"shop,omitempty" gorm:"-"`
}

// bindShop moves the incoming shop reference onto the shop_id column.
func (e *Employee) bindShop() {
	if e.Shop != nil {
		id := e.Shop.ID
		e.ShopID = &id
	} else {
		e.ShopID = nil
	}
	e.Shop = nil
	e.Kind = user.KindEmployee
}
