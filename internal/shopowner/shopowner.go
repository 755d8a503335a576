package shopowner

import "github.com/wichananm65/shopping-mall-backend/internal/user"

// ShopOwner is a user row of kind SHOP_OWNER.
type ShopOwner struct {
	user.User
	ShopName string `json:"shopName" gorm:"column:shop_name;size:255;index"`
}
