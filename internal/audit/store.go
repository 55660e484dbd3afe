package audit

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/BruksfildServices01/table-reservations/internal/models"
)

// ======================================================
// QUERY
// ======================================================

// Query selects audit entries. Empty strings and nil times do not filter.
// From is inclusive, To exclusive. Page starts at 1.
type Query struct {
	Action string
	Entity string
	From   *time.Time
	To     *time.Time
	Page   int
	Limit  int
}

func (q Query) skip() int {
	if q.Page <= 1 {
		return 0
	}
	return (q.Page - 1) * q.Limit
}

func (q Query) matches(e models.AuditLog) bool {
	if q.Action != "" && e.Action != q.Action {
		return false
	}
	if q.Entity != "" && e.Entity != q.Entity {
		return false
	}
	if q.From != nil && e.CreatedAt.Before(*q.From) {
		return false
	}
	if q.To != nil && !e.CreatedAt.Before(*q.To) {
		return false
	}
	return true
}

// Result is one page of entries, newest first, with the total match count.
type Result struct {
	Total int64
	Logs  []models.AuditLog
}

// Store reads back what a Sink wrote.
type Store interface {
	Sink
	List(ctx context.Context, q Query) (Result, error)
}

// ======================================================
// MONGO
// ======================================================

type MongoStore struct {
	coll *mongo.Collection
}

func NewMongoStore(coll *mongo.Collection) *MongoStore {
	return &MongoStore{coll: coll}
}

func (s *MongoStore) Write(ctx context.Context, entry models.AuditLog) error {
	if _, err := s.coll.InsertOne(ctx, entry); err != nil {
		return errors.Wrap(err, "insert audit log")
	}
	return nil
}

func (s *MongoStore) List(ctx context.Context, q Query) (Result, error) {
	filter := BuildFilter(q)

	total, err := s.coll.CountDocuments(ctx, filter)
	if err != nil {
		return Result{}, errors.Wrap(err, "count audit logs")
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetSkip(int64(q.skip()))
	if q.Limit > 0 {
		opts.SetLimit(int64(q.Limit))
	}

	cur, err := s.coll.Find(ctx, filter, opts)
	if err != nil {
		return Result{}, errors.Wrap(err, "list audit logs")
	}

	logs := make([]models.AuditLog, 0)
	if err := cur.All(ctx, &logs); err != nil {
		return Result{}, errors.Wrap(err, "decode audit logs")
	}
	return Result{Total: total, Logs: logs}, nil
}

// BuildFilter translates q into a Mongo query document.
func BuildFilter(q Query) bson.M {
	filter := bson.M{}
	if q.Action != "" {
		filter["action"] = q.Action
	}
	if q.Entity != "" {
		filter["entity"] = q.Entity
	}

	created := bson.M{}
	if q.From != nil {
		created["$gte"] = *q.From
	}
	if q.To != nil {
		created["$lt"] = *q.To
	}
	if len(created) > 0 {
		filter["createdAt"] = created
	}
	return filter
}

// ======================================================
// MEMORY
// ======================================================

type MemoryStore struct {
	mu      sync.RWMutex
	entries []models.AuditLog
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Write(_ context.Context, entry models.AuditLog) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = append(s.entries, entry)
	return nil
}

func (s *MemoryStore) List(_ context.Context, q Query) (Result, error) {
	s.mu.RLock()
	matched := make([]models.AuditLog, 0, len(s.entries))
	for _, e := range s.entries {
		if q.matches(e) {
			matched = append(matched, e)
		}
	}
	s.mu.RUnlock()

	// newest first
	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})

	total := int64(len(matched))
	start := q.skip()
	if start > len(matched) {
		start = len(matched)
	}
	end := len(matched)
	if q.Limit > 0 && start+q.Limit < end {
		end = start + q.Limit
	}
	return Result{Total: total, Logs: matched[start:end]}, nil
}
