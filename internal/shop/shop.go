package shop

import (
	"github.com/wichananm65/shopping-mall-backend/internal/employee"
	"github.com/wichananm65/shopping-mall-backend/internal/shopowner"
)

// Shop is a mall tenant. Its owner and employees are stored on their own
// rows and joined in by the service.
type Shop struct {
	ID        int64                `json:"id" gorm:"primaryKey;autoIncrement"`
	Name      string               `json:"name" gorm:"size:255"`
	Location  string               `json:"location" gorm:"size:255;index"`
	Category  string               `json:"category" gorm:"size:128;index"`
	OwnerID   *int64               `json:"-" gorm:"column:owner_id;index"`
	Employees []employee.Employee  `json:"employees" gorm:"-"`
	ShopOwner *shopowner.ShopOwner `json:"shopOwner" gorm:"-"`
}

func (Shop) TableName() string {
	return "shops"
}
