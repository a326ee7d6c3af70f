// Package mongodb provides a MongoDB-backed implementation of the storage.Store interface.
package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.mongodb.org/mongo-driver/x/mongo/driver/connstring"

	"github.com/mmynk/marklist/internal/models"
	"github.com/mmynk/marklist/internal/storage"
)

const (
	// DefaultDatabase is used when neither the URI nor the caller names one.
	DefaultDatabase = "test"

	// Collection holds one document per item.
	Collection = "todos"
)

// Ensure MongoStore implements storage.Store
var _ storage.Store = (*MongoStore)(nil)

// MongoStore implements storage.Store using a MongoDB collection.
type MongoStore struct {
	client *mongo.Client
	items  *mongo.Collection
}

// itemDocument is the persisted layout: {_id, text, isMarked}.
type itemDocument struct {
	ID       primitive.ObjectID `bson:"_id,omitempty"`
	Text     string             `bson:"text"`
	IsMarked *bool              `bson:"isMarked,omitempty"`
}

func (d itemDocument) toItem() models.Item {
	return models.Item{
		ID:       d.ID.Hex(),
		Text:     d.Text,
		IsMarked: d.IsMarked,
	}
}

// New connects to the MongoDB deployment at uri.
// The driver connects lazily, so a reachable server is not required here;
// use Ping to check readiness. database overrides the name carried by the URI.
func New(ctx context.Context, uri, database string) (*MongoStore, error) {
	dbName, err := DatabaseName(uri, database)
	if err != nil {
		return nil, err
	}

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}

	return &MongoStore{
		client: client,
		items:  client.Database(dbName).Collection(Collection),
	}, nil
}

// DatabaseName resolves the database to use: an explicit name wins, then the
// path component of uri, then DefaultDatabase.
func DatabaseName(uri, explicit string) (string, error) {
	if explicit != "" {
		return explicit, nil
	}
	cs, err := connstring.ParseAndValidate(uri)
	if err != nil {
		return "", fmt.Errorf("failed to parse mongodb uri: %w", err)
	}
	if cs.Database != "" {
		return cs.Database, nil
	}
	return DefaultDatabase, nil
}

// Close disconnects the client.
func (s *MongoStore) Close() error {
	return s.client.Disconnect(context.Background())
}

// Ping checks that the primary is reachable.
func (s *MongoStore) Ping(ctx context.Context) error {
	if err := s.client.Ping(ctx, readpref.Primary()); err != nil {
		return fmt.Errorf("failed to ping mongodb: %w", err)
	}
	return nil
}

// ListItems returns every document in natural order.
func (s *MongoStore) ListItems(ctx context.Context) ([]models.Item, error) {
	cursor, err := s.items.Find(ctx, bson.D{})
	if err != nil {
		return nil, fmt.Errorf("failed to find items: %w", err)
	}

	var docs []itemDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode items: %w", err)
	}

	items := make([]models.Item, 0, len(docs))
	for _, doc := range docs {
		items = append(items, doc.toItem())
	}
	return items, nil
}

// CreateItem inserts a document and assigns the generated ObjectID.
func (s *MongoStore) CreateItem(ctx context.Context, item *models.Item) error {
	doc := itemDocument{
		ID:       primitive.NewObjectID(),
		Text:     item.Text,
		IsMarked: item.IsMarked,
	}

	if _, err := s.items.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("failed to insert item: %w", err)
	}

	item.ID = doc.ID.Hex()
	return nil
}

// DeleteItems removes documents whose _id is in ids with one DeleteMany.
// Strings that are not valid ObjectIDs cannot match a document and are skipped.
func (s *MongoStore) DeleteItems(ctx context.Context, ids []string) (int64, error) {
	// Malformed ids are dropped rather than failing the call: they name no
	// stored item, and ids that match nothing are not an error.
	oids := ObjectIDs(ids)
	if len(oids) == 0 {
		return 0, nil
	}

	res, err := s.items.DeleteMany(ctx, bson.M{"_id": bson.M{"$in": oids}})
	if err != nil {
		return 0, fmt.Errorf("failed to delete items: %w", err)
	}
	return res.DeletedCount, nil
}

// ObjectIDs parses the hex ids that are valid ObjectIDs and drops the rest.
func ObjectIDs(ids []string) []primitive.ObjectID {
	oids := make([]primitive.ObjectID, 0, len(ids))
	for _, id := range ids {
		oid, err := primitive.ObjectIDFromHex(id)
		if err != nil {
			continue
		}
		oids = append(oids, oid)
	}
	return oids
}
