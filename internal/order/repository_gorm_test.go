package order

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wichananm65/shopping-mall-backend/internal/cascade"
	"github.com/wichananm65/shopping-mall-backend/internal/customer"
	"github.com/wichananm65/shopping-mall-backend/internal/employee"
	"github.com/wichananm65/shopping-mall-backend/internal/infrastructure/database/dbtest"
	"github.com/wichananm65/shopping-mall-backend/internal/malladmin"
	"github.com/wichananm65/shopping-mall-backend/internal/shopowner"
	"github.com/wichananm65/shopping-mall-backend/internal/user"
)

func TestGormFindByPriceBetween(t *testing.T) {
	db, mock := dbtest.NewMock(t)
	repo := NewGormRepository(db)

	mock.ExpectQuery(`SELECT \* FROM "order_details" WHERE price BETWEEN \$1 AND \$2 ORDER BY id`).
		WithArgs(10.0, 100.0).
		WillReturnRows(sqlmock.NewRows([]string{"id", "customer_id", "shop_owner_id", "product_name", "quantity", "price"}).
			AddRow(2, 1, 10, "Laptop Bag", 3, 80.0))

	orders, err := repo.FindByPriceBetween(context.Background(), 10, 100)
	require.NoError(t, err)
	require.Len(t, orders, 1)
	require.NotNil(t, orders[0].ShopOwnerID)
	assert.Equal(t, int64(10), *orders[0].ShopOwnerID)
}

func TestGormFindByProductNameContaining_Escapes(t *testing.T) {
	db, mock := dbtest.NewMock(t)
	repo := NewGormRepository(db)

	mock.ExpectQuery(`SELECT \* FROM "order_details" WHERE product_name LIKE \$1 ORDER BY id`).
		WithArgs(`%100\%%`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	orders, err := repo.FindByProductNameContaining(context.Background(), "100%")
	require.NoError(t, err)
	assert.Empty(t, orders)
}

func TestGormSave_StoresForeignKeys(t *testing.T) {
	db, mock := dbtest.NewMock(t)
	repo := NewGormRepository(db)

	mock.ExpectQuery(`INSERT INTO "order_details" \("customer_id","shop_owner_id","product_name","quantity","price"\)`).
		WithArgs(1, 10, "Desk", 1, 300.0).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(9))

	saved, err := repo.Save(context.Background(), OrderDetails{
		CustomerID:  ptr(1),
		ShopOwnerID: ptr(10),
		ProductName: "Desk",
		Quantity:    1,
		Price:       300,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(9), saved.ID)
}

func TestGormSaveThenFetch_HydratesParties(t *testing.T) {
	db := dbtest.NewSQLite(t,
		&user.User{},
		&customer.Customer{},
		&employee.Employee{},
		&malladmin.MallAdmin{},
		&shopowner.ShopOwner{},
		&OrderDetails{},
	)
	ctx := context.Background()

	customers := customer.NewService(customer.NewGormRepository(db))
	owners := shopowner.NewService(shopowner.NewGormRepository(db), cascade.NewGormStore(db))
	svc := NewService(NewGormRepository(db), customers, owners)

	buyer, err := customers.Save(ctx, customer.Customer{User: user.User{Username: "bob"}, PhoneNumber: "9372571406", Address: "Pune"})
	require.NoError(t, err)
	seller, err := owners.Save(ctx, shopowner.ShopOwner{User: user.User{Username: "carol"}, ShopName: "Tech Mart"})
	require.NoError(t, err)

	saved, err := svc.Save(ctx, OrderDetails{
		Customer:    &customer.Customer{User: user.User{ID: buyer.ID}},
		ShopOwner:   &shopowner.ShopOwner{User: user.User{ID: seller.ID}},
		ProductName: "Desk",
		Quantity:    2,
		Price:       300,
	})
	require.NoError(t, err)
	require.NotZero(t, saved.ID)

	fetched, err := svc.FindByID(ctx, saved.ID)
	require.NoError(t, err)
	assert.Equal(t, saved, fetched)
	require.NotNil(t, fetched.Customer)
	assert.Equal(t, "9372571406", fetched.Customer.PhoneNumber)
	require.NotNil(t, fetched.ShopOwner)
	assert.Equal(t, "Tech Mart", fetched.ShopOwner.ShopName)

	byCustomer, err := svc.FindByCustomer(ctx, buyer.ID)
	require.NoError(t, err)
	require.Len(t, byCustomer, 1)
	assert.Equal(t, saved.ID, byCustomer[0].ID)

	byOwner, err := svc.FindByShopOwner(ctx, seller.ID)
	require.NoError(t, err)
	require.Len(t, byOwner, 1)
	assert.Equal(t, 2, byOwner[0].Quantity)
}
