package repository

import (
	"context"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	domain "github.com/BruksfildServices01/table-reservations/internal/domain/reservation"
	"github.com/BruksfildServices01/table-reservations/internal/models"
	"github.com/BruksfildServices01/table-reservations/internal/timezone"
)

type ReservationMongoRepository struct {
	coll *mongo.Collection
	log  logrus.FieldLogger
}

// NewReservationMongoRepository wraps an already connected collection. A nil
// collection yields a repository whose every operation fails with
// ErrNotConnected.
func NewReservationMongoRepository(coll *mongo.Collection, log logrus.FieldLogger) *ReservationMongoRepository {
	return &ReservationMongoRepository{coll: coll, log: log}
}

// --------------------------------------------------
// Write
// --------------------------------------------------

func (r *ReservationMongoRepository) Upsert(
	ctx context.Context,
	id string,
	res *models.Reservation,
) (*models.Reservation, error) {

	if r.coll == nil {
		return nil, domain.ErrNotConnected
	}

	doc := *res
	doc.ID = id

	_, err := r.coll.ReplaceOne(
		ctx,
		bson.M{"_id": id},
		doc,
		options.Replace().SetUpsert(true),
	)
	if err != nil {
		return nil, errors.Wrapf(err, "upsert reservation %s", id)
	}
	return &doc, nil
}

// --------------------------------------------------
// Read
// --------------------------------------------------

func (r *ReservationMongoRepository) GetByID(
	ctx context.Context,
	id string,
) (*models.Reservation, error) {

	if r.coll == nil {
		return nil, domain.ErrNotConnected
	}

	var res models.Reservation
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&res)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrapf(err, "get reservation %s", id)
	}
	return &res, nil
}

func (r *ReservationMongoRepository) Query(
	ctx context.Context,
	f domain.Filter,
) ([]models.Reservation, error) {

	if r.coll == nil {
		return nil, domain.ErrNotConnected
	}

	query, err := BuildQuery(f)
	if err != nil {
		return nil, err
	}

	cur, err := r.coll.Find(
		ctx,
		query,
		options.Find().SetSort(bson.D{{Key: "arrivalTime", Value: 1}}),
	)
	if err != nil {
		return nil, errors.Wrap(err, "query reservations")
	}

	out := make([]models.Reservation, 0)
	if err := cur.All(ctx, &out); err != nil {
		return nil, errors.Wrap(err, "decode reservations")
	}
	return out, nil
}

// BuildQuery translates a filter into a Mongo query document. The date bound
// is half-open: [day 00:00:00.000Z, next day 00:00:00.000Z).
func BuildQuery(f domain.Filter) (bson.M, error) {
	query := bson.M{}

	if f.Date != nil {
		start, end, err := timezone.DayBounds(*f.Date)
		if err != nil {
			return nil, domain.ErrInvalidDate
		}
		query["arrivalTime"] = bson.M{"$gte": start, "$lt": end}
	}
	if f.Status != nil {
		query["status"] = string(*f.Status)
	}
	if f.GuestName != nil {
		query["guestName"] = *f.GuestName
	}

	return query, nil
}

// --------------------------------------------------
// Maintenance
// --------------------------------------------------

// EnsureIndexes creates the lookup indexes. Failures are logged and not
// returned; a missing index only slows queries down.
func (r *ReservationMongoRepository) EnsureIndexes(ctx context.Context) error {
	if r.coll == nil {
		return domain.ErrNotConnected
	}

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "arrivalTime", Value: 1}}},
		{Keys: bson.D{{Key: "status", Value: 1}}},
		{Keys: bson.D{{Key: "guestName", Value: 1}}},
	}
	if _, err := r.coll.Indexes().CreateMany(ctx, indexes); err != nil {
		r.log.WithError(err).Warn("failed to create reservation indexes")
		return nil
	}

	r.log.Info("ensured reservation indexes")
	return nil
}

func (r *ReservationMongoRepository) Ping(ctx context.Context) error {
	if r.coll == nil {
		return domain.ErrNotConnected
	}
	if err := r.coll.Database().Client().Ping(ctx, readpref.Primary()); err != nil {
		return domain.ErrNotConnected
	}
	return nil
}
