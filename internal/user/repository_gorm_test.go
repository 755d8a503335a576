package user

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/wichananm65/shopping-mall-backend/internal/infrastructure/database/dbtest"
)

var userColumns = []string{"id", "username", "password", "role", "user_type"}

func TestGormFindByID(t *testing.T) {
	db, mock := dbtest.NewMock(t)
	repo := NewGormRepository(db)

	mock.ExpectQuery(`SELECT \* FROM "users" WHERE "users"."id" = \$1`).
		WillReturnRows(sqlmock.NewRows(userColumns).AddRow(3, "alice", "pw", "staff", "CUSTOMER"))

	u, err := repo.FindByID(context.Background(), 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if u.Username != "alice" || u.Kind != KindCustomer {
		t.Fatalf("unexpected user %+v", u)
	}
}

func TestGormFindByID_NotFound(t *testing.T) {
	db, mock := dbtest.NewMock(t)
	repo := NewGormRepository(db)

	mock.ExpectQuery(`SELECT \* FROM "users"`).WillReturnRows(sqlmock.NewRows(userColumns))

	if _, err := repo.FindByID(context.Background(), 99); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestGormFindByUsernameContaining_EscapesWildcards(t *testing.T) {
	db, mock := dbtest.NewMock(t)
	repo := NewGormRepository(db)

	mock.ExpectQuery(`SELECT \* FROM "users" WHERE username LIKE \$1 ORDER BY id`).
		WithArgs(`%50\%%`).
		WillReturnRows(sqlmock.NewRows(userColumns).AddRow(1, "50%off", "pw", "user", "USER"))

	users, err := repo.FindByUsernameContaining(context.Background(), "50%")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(users) != 1 {
		t.Fatalf("expected 1 user, got %d", len(users))
	}
}

func TestGormFindByUsernameIgnoreCase(t *testing.T) {
	db, mock := dbtest.NewMock(t)
	repo := NewGormRepository(db)

	mock.ExpectQuery(`WHERE LOWER\(username\) = LOWER\(\$1\)`).
		WithArgs("ALICE").
		WillReturnRows(sqlmock.NewRows(userColumns).AddRow(1, "alice", "pw", "user", "USER"))

	users, err := repo.FindByUsernameIgnoreCase(context.Background(), "ALICE")
	if err != nil || len(users) != 1 {
		t.Fatalf("expected one user, got %v (%v)", users, err)
	}
}

func TestGormSave_InsertsNewUser(t *testing.T) {
	db, mock := dbtest.NewMock(t)
	repo := NewGormRepository(db)

	mock.ExpectQuery(`INSERT INTO "users"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(7))

	saved, err := repo.Save(context.Background(), User{Username: "bob", Password: "pw", Role: "user"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if saved.ID != 7 || saved.Kind != KindUser {
		t.Fatalf("unexpected saved user %+v", saved)
	}
}

func TestGormSave_UpdateKeepsDiscriminant(t *testing.T) {
	db, mock := dbtest.NewMock(t)
	repo := NewGormRepository(db)

	mock.ExpectExec(`UPDATE "users" SET "username"=\$1,"password"=\$2,"role"=\$3 WHERE`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if _, err := repo.Save(context.Background(), User{ID: 4, Username: "bob", Password: "pw", Role: "user"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestGormDelete(t *testing.T) {
	db, mock := dbtest.NewMock(t)
	repo := NewGormRepository(db)

	mock.ExpectExec(`DELETE FROM "users" WHERE "users"."id" = \$1`).
		WithArgs(5).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.Delete(context.Background(), 5); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestGormSaveThenFetch_KeepsDiscriminantOnUpdate(t *testing.T) {
	db := dbtest.NewSQLite(t, &User{})
	repo := NewGormRepository(db)
	ctx := context.Background()

	if err := db.Create(&User{Username: "carol", Kind: KindCustomer}).Error; err != nil {
		t.Fatalf("seed: %v", err)
	}
	seeded, err := repo.FindByUsername(ctx, "carol")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := repo.Save(ctx, User{ID: seeded.ID, Username: "caroline", Role: "vip"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	updated, err := repo.FindByID(ctx, seeded.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Username != "caroline" || updated.Role != "vip" || updated.Kind != KindCustomer {
		t.Fatalf("unexpected user after update %+v", updated)
	}

	saved, err := repo.Save(ctx, User{Username: "dave", Password: "pw"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	fetched, err := repo.FindByID(ctx, saved.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if fetched != saved {
		t.Fatalf("fetched %+v, saved %+v", fetched, saved)
	}
}
