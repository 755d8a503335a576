package main

import (
	"context"
	"fmt"
	"log"

	"github.com/joho/godotenv"
	"github.com/wichananm65/shopping-mall-backend/internal/cascade"
	"github.com/wichananm65/shopping-mall-backend/internal/config"
	"github.com/wichananm65/shopping-mall-backend/internal/customer"
	"github.com/wichananm65/shopping-mall-backend/internal/employee"
	"github.com/wichananm65/shopping-mall-backend/internal/infrastructure/database"
	"github.com/wichananm65/shopping-mall-backend/internal/interface/http/router"
	"github.com/wichananm65/shopping-mall-backend/internal/item"
	"github.com/wichananm65/shopping-mall-backend/internal/malladmin"
	"github.com/wichananm65/shopping-mall-backend/internal/order"
	"github.com/wichananm65/shopping-mall-backend/internal/shop"
	"github.com/wichananm65/shopping-mall-backend/internal/shopowner"
	"github.com/wichananm65/shopping-mall-backend/internal/user"
	"gorm.io/gorm"
)

// repositories groups the relational stores so either backend can be
// swapped in behind the same services.
type repositories struct {
	users      user.Repository
	customers  customer.Repository
	employees  employee.Repository
	admins     malladmin.Repository
	shopOwners shopowner.Repository
	shops      shop.Repository
	orders     order.Repository
	cascade    cascade.Store
}

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	repos, db, err := openRelational(cfg)
	if err != nil {
		log.Fatalf("open database: %v", err)
	}
	if db != nil {
		defer database.Close(db)
	}

	ctx := context.Background()
	items, closeItems, err := openItems(ctx, cfg)
	if err != nil {
		log.Fatalf("open item store: %v", err)
	}
	defer closeItems()

	userService := user.NewService(repos.users, repos.cascade)
	customerService := customer.NewService(repos.customers)
	employeeService := employee.NewService(repos.employees)
	adminService := malladmin.NewService(repos.admins)
	ownerService := shopowner.NewService(repos.shopOwners, repos.cascade)
	shopService := shop.NewService(repos.shops, ownerService, employeeService, repos.cascade)
	orderService := order.NewService(repos.orders, customerService, ownerService)
	itemService := item.NewService(items)

	app := router.New(
		user.NewHandler(userService),
		customer.NewHandler(customerService),
		employee.NewHandler(employeeService, shopService),
		malladmin.NewHandler(adminService),
		shopowner.NewHandler(ownerService),
		shop.NewHandler(shopService, ownerService),
		item.NewHandler(itemService),
		order.NewHandler(orderService, customerService, ownerService),
	)

	log.Printf("listening on %s (database=%s, items=%s)", cfg.Server.Addr, cfg.Database.Driver, cfg.Item.Backend)
	log.Fatal(app.Listen(cfg.Server.Addr))
}

func openRelational(cfg *config.Config) (*repositories, *gorm.DB, error) {
	var (
		db  *gorm.DB
		err error
	)
	switch cfg.Database.Driver {
	case "postgres":
		db, err = database.OpenPostgres(cfg.PostgresDSN(), cfg.Database.LogLevel)
	case "mysql":
		db, err = database.OpenMySQL(cfg.MySQLDSN(), cfg.Database.LogLevel)
	case "memory":
		return inMemory(), nil, nil
	default:
		return nil, nil, fmt.Errorf("unknown database driver %q", cfg.Database.Driver)
	}
	if err != nil {
		return nil, nil, err
	}

	// Subtype structs share the users table; Migrate runs them one by one so
	// each adds its own columns.
	err = database.Migrate(db,
		&user.User{},
		&customer.Customer{},
		&employee.Employee{},
		&malladmin.MallAdmin{},
		&shopowner.ShopOwner{},
		&shop.Shop{},
		&order.OrderDetails{},
	)
	if err != nil {
		return nil, nil, err
	}

	return &repositories{
		users:      user.NewGormRepository(db),
		customers:  customer.NewGormRepository(db),
		employees:  employee.NewGormRepository(db),
		admins:     malladmin.NewGormRepository(db),
		shopOwners: shopowner.NewGormRepository(db),
		shops:      shop.NewGormRepository(db),
		orders:     order.NewGormRepository(db),
		cascade:    cascade.NewGormStore(db),
	}, db, nil
}

func inMemory() *repositories {
	employees := employee.NewInMemoryRepository(nil)
	shops := shop.NewInMemoryRepository(nil)
	owners := shopowner.NewInMemoryRepository(nil)
	return &repositories{
		users:      user.NewInMemoryRepository(nil),
		customers:  customer.NewInMemoryRepository(nil),
		employees:  employees,
		admins:     malladmin.NewInMemoryRepository(nil),
		shopOwners: owners,
		shops:      shops,
		orders:     order.NewInMemoryRepository(nil),
		cascade:    &cascade.RepoStore{Employees: employees, Shops: shops, Owners: owners},
	}
}

func openItems(ctx context.Context, cfg *config.Config) (item.Repository, func(), error) {
	switch cfg.Item.Backend {
	case "mongo":
		client, coll, err := database.OpenMongo(ctx, cfg.Mongo.URI, cfg.Mongo.Database, cfg.Mongo.Collection)
		if err != nil {
			return nil, nil, err
		}
		closeFn := func() {
			if err := client.Disconnect(context.Background()); err != nil {
				log.Printf("disconnect mongo: %v", err)
			}
		}
		return item.NewMongoRepository(coll), closeFn, nil
	case "dynamodb":
		client, err := database.OpenDynamo(ctx, cfg.DynamoDB.Region, cfg.DynamoDB.Endpoint)
		if err != nil {
			return nil, nil, err
		}
		return item.NewDynamoRepository(client, cfg.DynamoDB.Table), func() {}, nil
	case "memory":
		return item.NewInMemoryRepository(nil), func() {}, nil
	default:
		return nil, nil, fmt.Errorf("unknown item backend %q", cfg.Item.Backend)
	}
}
