package order

import (
	"github.com/wichananm65/shopping-mall-backend/internal/customer"
	"github.com/wichananm65/shopping-mall-backend/internal/shopowner"
)

// OrderDetails is a single purchased line: one product bought by a customer
// from a shop owner.
type OrderDetails struct {
	ID          int64                `json:"id" gorm:"primaryKey;autoIncrement"`
	CustomerID  *int64               `json:"-" gorm:"column:customer_id;index"`
	Customer    *customer.Customer   `json:"customer" gorm:"-"`
	ShopOwnerID *int64               `json:"-" gorm:"column:shop_owner_id;index"`
	ShopOwner   *shopowner.ShopOwner `json:"shopOwner" gorm:"-"`
	ProductName string               `json:"productName" gorm:"column:product_name;size:255"`
	Quantity    int                  `json:"quantity"`
	Price       float64              `json:"price"`
}

func (OrderDetails) TableName() string {
	return "order_details"
}

// bindParties copies the nested customer and owner ids onto the foreign
// key columns and drops the nested values.
func (o *OrderDetails) bindParties() {
	if o.Customer != nil {
		id := o.Customer.ID
		o.CustomerID = &id
	}
	if o.ShopOwner != nil {
		id := o.ShopOwner.ID
		o.ShopOwnerID = &id
	}
	o.Customer = nil
	o.ShopOwner = nil
}
