package customer

import "github.com/wichananm65/shopping-mall-backend/internal/user"

// Customer is a user row of kind CUSTOMER.
type Customer struct {
	user.User
	PhoneNumber string `json:"phoneNumber" gorm:"column:phone_number;size:32"`
	Address     string `json:"address" gorm:"size:512"`
}
