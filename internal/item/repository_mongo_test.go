package item

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func TestMongoRepository(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("find by id", func(mt *mtest.T) {
		repo := NewMongoRepository(mt.Coll)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "mall.items", mtest.FirstBatch, bson.D{
			{Key: "_id", Value: "65f0c0ffee"},
			{Key: "name", Value: "Laptop"},
			{Key: "price", Value: 1200.0},
			{Key: "quantity", Value: 3},
		}))

		it, err := repo.FindByID(context.Background(), "65f0c0ffee")
		require.NoError(t, err)
		assert.Equal(t, "Laptop", it.Name)
		assert.Equal(t, 1200.0, it.Price)
	})

	mt.Run("find by id missing", func(mt *mtest.T) {
		repo := NewMongoRepository(mt.Coll)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "mall.items", mtest.FirstBatch))

		_, err := repo.FindByID(context.Background(), "nope")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	mt.Run("price filter is inclusive", func(mt *mtest.T) {
		repo := NewMongoRepository(mt.Coll)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "mall.items", mtest.FirstBatch,
			bson.D{{Key: "_id", Value: "1"}, {Key: "name", Value: "Bag"}, {Key: "price", Value: 1000.0}},
		))

		items, err := repo.FindByPriceLessThanEqual(context.Background(), 1000)
		require.NoError(t, err)
		require.Len(t, items, 1)

		filter := mt.GetStartedEvent().Command.Lookup("filter").Document()
		assert.Equal(t, 1000.0, filter.Lookup("price", "$lte").Double())
	})

	mt.Run("name search quotes the keyword", func(mt *mtest.T) {
		repo := NewMongoRepository(mt.Coll)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "mall.items", mtest.FirstBatch))

		items, err := repo.FindByNameContaining(context.Background(), "C++")
		require.NoError(t, err)
		assert.Empty(t, items)

		filter := mt.GetStartedEvent().Command.Lookup("filter").Document()
		pattern, _ := filter.Lookup("name").Regex()
		assert.Equal(t, `C\+\+`, pattern)
	})

	mt.Run("save mints an id and upserts", func(mt *mtest.T) {
		repo := NewMongoRepository(mt.Coll)
		mt.AddMockResponses(mtest.CreateSuccessResponse(
			bson.E{Key: "n", Value: 1},
			bson.E{Key: "nModified", Value: 0},
		))

		saved, err := repo.Save(context.Background(), Item{Name: "Desk", Price: 300})
		require.NoError(t, err)
		assert.Len(t, saved.ID, 24)

		evt := mt.GetStartedEvent()
		assert.Equal(t, "update", evt.CommandName)
		update := evt.Command.Lookup("updates").Array().Index(0).Value().Document()
		assert.True(t, update.Lookup("upsert").Boolean())
	})

	mt.Run("delete", func(mt *mtest.T) {
		repo := NewMongoRepository(mt.Coll)
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 1}))

		require.NoError(t, repo.Delete(context.Background(), "65f0c0ffee"))
	})
}
