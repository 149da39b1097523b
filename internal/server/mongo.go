package server

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/anchorlayer/anchorage/pkg/cache"
	"github.com/anchorlayer/anchorage/pkg/scene"
)

// MongoStore is a MongoDB-backed scene store for multi-instance
// deployments. Scenes are stored as BSON documents keyed by their ID.
type MongoStore struct {
	client *mongo.Client
	coll   *mongo.Collection
}

// NewMongoStore connects to MongoDB at the given URI and uses the
// "scenes" collection in the given database.
func NewMongoStore(ctx context.Context, uri, database string) (*MongoStore, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("connect mongodb: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("ping mongodb: %w", err)
	}
	return &MongoStore{
		client: client,
		coll:   client.Database(database).Collection("scenes"),
	}, nil
}

func (s *MongoStore) Get(ctx context.Context, id string) (*scene.Scene, error) {
	var sc scene.Scene
	err := cache.RetryWithBackoff(ctx, func() error {
		err := s.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&sc)
		if errors.Is(err, mongo.ErrNoDocuments) {
			return cache.ErrNotFound
		}
		if err != nil {
			return cache.Retryable(fmt.Errorf("find scene: %w", cache.ErrNetwork))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &sc, nil
}

func (s *MongoStore) List(ctx context.Context) ([]*scene.Scene, error) {
	var scenes []*scene.Scene
	err := cache.RetryWithBackoff(ctx, func() error {
		cursor, err := s.coll.Find(ctx, bson.M{}, options.Find().SetSort(bson.M{"_id": 1}))
		if err != nil {
			return cache.Retryable(fmt.Errorf("list scenes: %w", cache.ErrNetwork))
		}
		defer cursor.Close(ctx)

		scenes = nil
		if err := cursor.All(ctx, &scenes); err != nil {
			return cache.Retryable(fmt.Errorf("decode scenes: %w", cache.ErrNetwork))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return scenes, nil
}

func (s *MongoStore) Put(ctx context.Context, sc *scene.Scene) error {
	return cache.RetryWithBackoff(ctx, func() error {
		_, err := s.coll.ReplaceOne(ctx, bson.M{"_id": sc.ID}, sc,
			options.Replace().SetUpsert(true))
		if err != nil {
			return cache.Retryable(fmt.Errorf("store scene: %w", cache.ErrNetwork))
		}
		return nil
	})
}

func (s *MongoStore) Delete(ctx context.Context, id string) error {
	return cache.RetryWithBackoff(ctx, func() error {
		if _, err := s.coll.DeleteOne(ctx, bson.M{"_id": id}); err != nil {
			return cache.Retryable(fmt.Errorf("delete scene: %w", cache.ErrNetwork))
		}
		return nil
	})
}

func (s *MongoStore) Close() error {
	return s.client.Disconnect(context.Background())
}

var _ SceneStore = (*MongoStore)(nil)
