package history

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoStore implements TurnStore on top of a MongoDB collection.
type MongoStore struct {
	client     *mongo.Client
	collection *mongo.Collection
}

const mongoCloseTimeout = 5 * time.Second

func NewMongoStore(ctx context.Context, uri, database, collection string) (*MongoStore, error) {
	if uri == "" {
		return nil, errors.New("mongo uri is required")
	}
	if database == "" {
		return nil, errors.New("mongo database name is required")
	}
	if collection == "" {
		return nil, errors.New("mongo collection name is required")
	}
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, err
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, err
	}
	return &MongoStore{
		client:     client,
		collection: client.Database(database).Collection(collection),
	}, nil
}

func (ms *MongoStore) AppendTurns(ctx context.Context, sessionID string, turns []Turn) error {
	if ms == nil || ms.collection == nil || len(turns) == 0 {
		return nil
	}
	now := time.Now().UTC()
	docs := make([]any, 0, len(turns))
	for i, turn := range turns {
		docs = append(docs, bson.M{
			"session_id": sessionID,
			"role":       turn.Role,
			"content":    turn.Content,
			"created_at": now.Add(time.Duration(i) * time.Microsecond),
		})
	}
	_, err := ms.collection.InsertMany(ctx, docs)
	return err
}

func (ms *MongoStore) Turns(ctx context.Context, sessionID string, limit int) ([]Turn, error) {
	if ms == nil || ms.collection == nil {
		return nil, nil
	}
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}, {Key: "_id", Value: -1}})
	if limit > 0 {
		opts.SetLimit(int64(limit))
	}
	cursor, err := ms.collection.Find(ctx, bson.M{"session_id": sessionID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var turns []Turn
	for cursor.Next(ctx) {
		var doc struct {
			Role    string `bson:"role"`
			Content string `bson:"content"`
		}
		if err := cursor.Decode(&doc); err != nil {
			return nil, err
		}
		turns = append(turns, Turn{Role: doc.Role, Content: doc.Content})
	}
	if err := cursor.Err(); err != nil {
		return nil, err
	}
	// The query sorted newest first so the limit keeps the most recent
	// turns; restore append order for callers.
	for i, j := 0, len(turns)-1; i < j; i, j = i+1, j-1 {
		turns[i], turns[j] = turns[j], turns[i]
	}
	return turns, nil
}

func (ms *MongoStore) Count(ctx context.Context, sessionID string) (int, error) {
	if ms == nil || ms.collection == nil {
		return 0, nil
	}
	n, err := ms.collection.CountDocuments(ctx, bson.M{"session_id": sessionID})
	return int(n), err
}

// Close disconnects the underlying client.
func (ms *MongoStore) Close(ctx context.Context) error {
	if ms == nil || ms.client == nil {
		return nil
	}
	if ctx == nil {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(context.Background(), mongoCloseTimeout)
		defer cancel()
	}
	return ms.client.Disconnect(ctx)
}

var _ TurnStore = (*MongoStore)(nil)
