package malladmin

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wichananm65/shopping-mall-backend/internal/infrastructure/database/dbtest"
	"github.com/wichananm65/shopping-mall-backend/internal/user"
)

func TestGormDelete_ChecksExistenceFirst(t *testing.T) {
	db, mock := dbtest.NewMock(t)
	svc := NewService(NewGormRepository(db))

	mock.ExpectQuery(`SELECT \* FROM "users" WHERE user_type = \$1 AND "users"."id" = \$2`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "username", "password", "role", "user_type"}))

	err := svc.Delete(context.Background(), 8)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGormUsernameSuffix(t *testing.T) {
	db, mock := dbtest.NewMock(t)
	repo := NewGormRepository(db)

	mock.ExpectQuery(`WHERE user_type = \$1 AND username LIKE \$2`).
		WithArgs("MALL_ADMIN", "%Admin").
		WillReturnRows(sqlmock.NewRows([]string{"id", "username", "password", "role", "user_type"}).
			AddRow(1, "RootAdmin", "pw", "ADMIN", "MALL_ADMIN"))

	admins, err := repo.FindByUsernameEndingWith(context.Background(), "Admin")
	require.NoError(t, err)
	require.Len(t, admins, 1)
	assert.Equal(t, "RootAdmin", admins[0].Username)
}

func TestGormSaveThenFetch(t *testing.T) {
	db := dbtest.NewSQLite(t, &user.User{}, &MallAdmin{})
	svc := NewService(NewGormRepository(db))
	ctx := context.Background()

	saved, err := svc.Save(ctx, MallAdmin{User: user.User{Username: "RootAdmin", Password: "secret", Role: "ADMIN"}})
	require.NoError(t, err)
	require.NotZero(t, saved.ID)

	fetched, err := svc.FindByID(ctx, saved.ID)
	require.NoError(t, err)
	assert.Equal(t, saved, fetched)
	assert.Equal(t, user.KindMallAdmin, fetched.Kind)

	require.NoError(t, svc.Delete(ctx, saved.ID))
	_, err = svc.FindByID(ctx, saved.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}
