package mongodb

import (
	"context"
	"os"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/mmynk/marklist/internal/models"
)

func TestDatabaseName(t *testing.T) {
	tests := []struct {
		uri      string
		explicit string
		want     string
	}{
		{"mongodb://localhost:27017", "", DefaultDatabase},
		{"mongodb://localhost:27017/todolist", "", "todolist"},
		{"mongodb://localhost:27017/todolist?retryWrites=true", "", "todolist"},
		{"mongodb://localhost:27017/todolist", "override", "override"},
	}

	for _, tt := range tests {
		t.Run(tt.uri+"|"+tt.explicit, func(t *testing.T) {
			got, err := DatabaseName(tt.uri, tt.explicit)
			if err != nil {
				t.Fatalf("DatabaseName failed: %v", err)
			}
			if got != tt.want {
				t.Errorf("DatabaseName(%q, %q) = %q, want %q", tt.uri, tt.explicit, got, tt.want)
			}
		})
	}

	if _, err := DatabaseName("not-a-uri", ""); err == nil {
		t.Error("Expected error for invalid uri")
	}
}

func TestObjectIDs(t *testing.T) {
	valid := primitive.NewObjectID()

	got := ObjectIDs([]string{valid.Hex(), "not-hex", "", "123"})
	if len(got) != 1 || got[0] != valid {
		t.Errorf("ObjectIDs = %v, want [%s]", got, valid.Hex())
	}

	if got := ObjectIDs(nil); len(got) != 0 {
		t.Errorf("Expected no ids, got %v", got)
	}
}

func TestItemDocumentLayout(t *testing.T) {
	doc := itemDocument{ID: primitive.NewObjectID(), Text: "buy milk"}

	raw, err := bson.Marshal(doc)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}

	var m bson.M
	if err := bson.Unmarshal(raw, &m); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if _, ok := m["_id"]; !ok {
		t.Error("Expected _id field")
	}
	if m["text"] != "buy milk" {
		t.Errorf("text = %v", m["text"])
	}
	if _, ok := m["isMarked"]; ok {
		t.Error("Expected isMarked to be absent when unset")
	}

	item := doc.toItem()
	if item.ID != doc.ID.Hex() || item.IsMarked != nil {
		t.Errorf("Unexpected item: %+v", item)
	}
}

// TestMongoStore runs against a live server named by MONGO_TEST_URI.
func TestMongoStore(t *testing.T) {
	uri := os.Getenv("MONGO_TEST_URI")
	if uri == "" {
		t.Skip("MONGO_TEST_URI not set")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	store, err := New(ctx, uri, "marklist_test_"+primitive.NewObjectID().Hex())
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	defer func() {
		store.items.Database().Drop(context.Background())
		store.Close()
	}()

	if err := store.Ping(ctx); err != nil {
		t.Fatalf("Ping failed: %v", err)
	}

	items, err := store.ListItems(ctx)
	if err != nil {
		t.Fatalf("ListItems failed: %v", err)
	}
	if len(items) != 0 {
		t.Fatalf("Expected empty collection, got %d", len(items))
	}

	marked := false
	first := &models.Item{Text: "buy milk", IsMarked: &marked}
	second := &models.Item{Text: "walk dog"}
	for _, it := range []*models.Item{first, second} {
		if err := store.CreateItem(ctx, it); err != nil {
			t.Fatalf("CreateItem failed: %v", err)
		}
	}
	if first.ID == "" || first.ID == second.ID {
		t.Fatalf("Expected distinct IDs, got %q and %q", first.ID, second.ID)
	}

	n, err := store.DeleteItems(ctx, []string{first.ID, "not-hex", primitive.NewObjectID().Hex()})
	if err != nil {
		t.Fatalf("DeleteItems failed: %v", err)
	}
	if n != 1 {
		t.Errorf("Expected 1 deleted, got %d", n)
	}

	remaining, err := store.ListItems(ctx)
	if err != nil {
		t.Fatalf("ListItems failed: %v", err)
	}
	if len(remaining) != 1 || remaining[0].ID != second.ID || remaining[0].IsMarked != nil {
		t.Errorf("Unexpected remaining items: %+v", remaining)
	}
}
