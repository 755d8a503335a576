package user

import (
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Kind is the users.user_type discriminant selecting which subtype a row
// belongs to.
type Kind string

const (
	KindUser      Kind = "USER"
	KindCustomer  Kind = "CUSTOMER"
	KindEmployee  Kind = "EMPLOYEE"
	KindMallAdmin Kind = "MALL_ADMIN"
	KindShopOwner Kind = "SHOP_OWNER"
)

// User is the base record shared by customers, employees, mall admins and
// shop owners. Subtypes embed it and live in the same users table.
type User struct {
	ID       int64  `json:"id" gorm:"primaryKey;autoIncrement"`
	Username string `json:"username" gorm:"size:255"`
	Password string `json:"password" gorm:"size:255"`
	Role     string `json:"role" gorm:"size:64;index"`
	Kind     Kind   `json:"-" gorm:"column:user_type;size:32;index;not null;default:USER"`
}

func (User) TableName() string {
	return "users"
}

// OfKind scopes a query to rows of the given subtype.
func OfKind(kind Kind) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("user_type = ?", kind)
	}
}

// HashPassword bcrypt-hashes a plaintext password. Empty values and values
// that are already bcrypt hashes are returned unchanged.
func HashPassword(password string) (string, error) {
	if password == "" || looksLikeBcrypt(password) {
		return password, nil
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

func looksLikeBcrypt(value string) bool {
	_, err := bcrypt.Cost([]byte(value))
	return err == nil
}
