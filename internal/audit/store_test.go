package audit

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"

	"github.com/BruksfildServices01/table-reservations/internal/models"
)

var base = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func seedMemory(t *testing.T) *MemoryStore {
	t.Helper()
	s := NewMemoryStore()
	entries := []models.AuditLog{
		{Action: "reservation_created", Entity: "reservation", EntityID: "a", CreatedAt: base},
		{Action: "reservation_status_changed", Entity: "reservation", EntityID: "a", CreatedAt: base.Add(time.Hour)},
		{Action: "reservation_created", Entity: "reservation", EntityID: "b", CreatedAt: base.AddDate(0, 0, 1)},
		{Action: "reservation_cancelled", Entity: "reservation", EntityID: "b", CreatedAt: base.AddDate(0, 0, 2)},
	}
	for _, e := range entries {
		require.NoError(t, s.Write(context.Background(), e))
	}
	return s
}

func entityIDs(logs []models.AuditLog) []string {
	out := make([]string, 0, len(logs))
	for _, l := range logs {
		out = append(out, l.Action+":"+l.EntityID)
	}
	return out
}

func TestMemoryStoreList(t *testing.T) {
	s := seedMemory(t)
	from := base.Add(30 * time.Minute)
	to := base.AddDate(0, 0, 2)

	cases := []struct {
		name  string
		q     Query
		total int64
		want  []string
	}{
		{"all newest first", Query{}, 4, []string{
			"reservation_cancelled:b", "reservation_created:b",
			"reservation_status_changed:a", "reservation_created:a",
		}},
		{"by action", Query{Action: "reservation_created"}, 2, []string{"reservation_created:b", "reservation_created:a"}},
		{"by entity", Query{Entity: "barber"}, 0, []string{}},
		{"from inclusive to exclusive", Query{From: &from, To: &to}, 2, []string{"reservation_created:b", "reservation_status_changed:a"}},
		{"first page", Query{Page: 1, Limit: 3}, 4, []string{
			"reservation_cancelled:b", "reservation_created:b", "reservation_status_changed:a",
		}},
		{"second page", Query{Page: 2, Limit: 3}, 4, []string{"reservation_created:a"}},
		{"past the end", Query{Page: 5, Limit: 3}, 4, []string{}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res, err := s.List(context.Background(), tc.q)
			require.NoError(t, err)
			assert.Equal(t, tc.total, res.Total)
			assert.Equal(t, tc.want, entityIDs(res.Logs))
		})
	}
}

func TestBuildFilter(t *testing.T) {
	assert.Empty(t, BuildFilter(Query{}))

	to := base.AddDate(0, 0, 1)
	assert.Equal(t, bson.M{
		"action":    "reservation_created",
		"entity":    "reservation",
		"createdAt": bson.M{"$gte": base, "$lt": to},
	}, BuildFilter(Query{Action: "reservation_created", Entity: "reservation", From: &base, To: &to}))
}

type failingSink struct{ err error }

func (f failingSink) Write(context.Context, models.AuditLog) error { return f.err }

func TestMultiSinkWritesAll(t *testing.T) {
	mem := NewMemoryStore()
	boom := errors.New("boom")

	err := MultiSink{failingSink{err: boom}, mem}.Write(context.Background(), models.AuditLog{Action: "reservation_created"})
	assert.ErrorIs(t, err, boom)

	res, err := mem.List(context.Background(), Query{})
	require.NoError(t, err)
	assert.Equal(t, int64(1), res.Total)
}

func TestMongoStore(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
	ctx := context.Background()

	mt.Run("write inserts the entry", func(mt *mtest.T) {
		s := NewMongoStore(mt.Coll)
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		require.NoError(mt, s.Write(ctx, models.AuditLog{Actor: "Admin", Action: "reservation_cancelled", Entity: "reservation", EntityID: "r1", CreatedAt: base}))

		cmd := mt.GetStartedEvent().Command
		assert.Equal(mt, "reservation_cancelled", cmd.Lookup("documents", "0", "action").StringValue())
		assert.Equal(mt, "r1", cmd.Lookup("documents", "0", "entityId").StringValue())
	})

	mt.Run("list counts then pages newest first", func(mt *mtest.T) {
		s := NewMongoStore(mt.Coll)
		ns := mt.Coll.Database().Name() + "." + mt.Coll.Name()

		mt.AddMockResponses(
			mtest.CreateCursorResponse(0, ns, mtest.FirstBatch, bson.D{{Key: "_id", Value: 1}, {Key: "n", Value: int32(7)}}),
			mtest.CreateCursorResponse(0, ns, mtest.FirstBatch,
				bson.D{{Key: "action", Value: "reservation_cancelled"}, {Key: "entity", Value: "reservation"}, {Key: "createdAt", Value: base}},
			),
		)

		res, err := s.List(ctx, Query{Action: "reservation_cancelled", Page: 2, Limit: 5})
		require.NoError(mt, err)
		assert.Equal(mt, int64(7), res.Total)
		require.Len(mt, res.Logs, 1)
		assert.Equal(mt, "reservation_cancelled", res.Logs[0].Action)
		assert.True(mt, base.Equal(res.Logs[0].CreatedAt))

		events := mt.GetAllStartedEvents()
		require.Len(mt, events, 2)
		assert.Equal(mt, "aggregate", events[0].CommandName)

		find := events[1].Command
		assert.Equal(mt, "find", events[1].CommandName)
		assert.Equal(mt, "reservation_cancelled", find.Lookup("filter", "action").StringValue())
		assert.Equal(mt, int32(-1), find.Lookup("sort", "createdAt").AsInt32())
		assert.Equal(mt, int64(5), find.Lookup("skip").AsInt64())
		assert.Equal(mt, int64(5), find.Lookup("limit").AsInt64())
	})

	mt.Run("list wraps count errors", func(mt *mtest.T) {
		s := NewMongoStore(mt.Coll)
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{Code: 2, Name: "BadValue", Message: "bad"}))

		_, err := s.List(ctx, Query{})
		require.Error(mt, err)
		assert.Contains(mt, err.Error(), "count audit logs")
	})
}
