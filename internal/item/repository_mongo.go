package item

import (
	"context"
	"errors"
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoRepository stores items as documents keyed by a hex ObjectID string.
type MongoRepository struct {
	coll *mongo.Collection
}

func NewMongoRepository(coll *mongo.Collection) *MongoRepository {
	return &MongoRepository{coll: coll}
}

func (r *MongoRepository) List(ctx context.Context) ([]Item, error) {
	return r.find(ctx, bson.M{})
}

func (r *MongoRepository) FindByID(ctx context.Context, id string) (Item, error) {
	var it Item
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&it); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return Item{}, ErrNotFound
		}
		return Item{}, err
	}
	return it, nil
}

func (r *MongoRepository) FindByNameContaining(ctx context.Context, keyword string) ([]Item, error) {
	return r.find(ctx, bson.M{"name": primitive.Regex{Pattern: regexp.QuoteMeta(keyword)}})
}

func (r *MongoRepository) FindByPriceLessThanEqual(ctx context.Context, price float64) ([]Item, error) {
	return r.find(ctx, bson.M{"price": bson.M{"$lte": price}})
}

func (r *MongoRepository) Save(ctx context.Context, it Item) (Item, error) {
	if it.ID == "" {
		it.ID = primitive.NewObjectID().Hex()
	}
	_, err := r.coll.ReplaceOne(ctx, bson.M{"_id": it.ID}, it, options.Replace().SetUpsert(true))
	if err != nil {
		return Item{}, err
	}
	return it, nil
}

func (r *MongoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	return err
}

func (r *MongoRepository) find(ctx context.Context, filter bson.M) ([]Item, error) {
	cur, err := r.coll.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	items := make([]Item, 0)
	if err := cur.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}
