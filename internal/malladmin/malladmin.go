package malladmin

import "github.com/wichananm65/shopping-mall-backend/internal/user"

// MallAdmin is a user row of kind MALL_ADMIN. It adds no columns.
type MallAdmin struct {
	user.User
}
