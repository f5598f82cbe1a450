package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/miramar/hotel-api/internal/core/domain"
)

const reservationsCollection = "reservations"

type ReservationRepository struct {
	coll *mongo.Collection
}

func NewReservationRepository(db *mongo.Database) *ReservationRepository {
	return &ReservationRepository{coll: db.Collection(reservationsCollection)}
}

type mongoReservation struct {
	ID              primitive.ObjectID   `bson:"_id,omitempty"`
	User            domain.GuestSnapshot `bson:"user"`
	RoomNumber      int                  `bson:"room_number"`
	CheckInDate     time.Time            `bson:"check_in_date"`
	CheckOutDate    time.Time            `bson:"check_out_date"`
	PricePerNight   float64              `bson:"price_per_night"`
	Extras          []domain.Extra       `bson:"extras"`
	CancelationDate *time.Time           `bson:"cancelation_date,omitempty"`
}

func toMongoReservation(r *domain.Reservation) mongoReservation {
	return mongoReservation{
		User:            r.User,
		RoomNumber:      r.RoomNumber,
		CheckInDate:     r.CheckInDate,
		CheckOutDate:    r.CheckOutDate,
		PricePerNight:   r.PricePerNight,
		Extras:          r.Extras,
		CancelationDate: r.CancelationDate,
	}
}

func (mr *mongoReservation) toDomain() *domain.Reservation {
	return &domain.Reservation{
		ID:              mr.ID.Hex(),
		User:            mr.User,
		RoomNumber:      mr.RoomNumber,
		CheckInDate:     mr.CheckInDate,
		CheckOutDate:    mr.CheckOutDate,
		PricePerNight:   mr.PricePerNight,
		Extras:          mr.Extras,
		CancelationDate: mr.CancelationDate,
	}
}

func (r *ReservationRepository) Create(ctx context.Context, res *domain.Reservation) (*domain.Reservation, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	inserted, err := r.coll.InsertOne(ctx, toMongoReservation(res))
	if err != nil {
		return nil, fmt.Errorf("insert reservation: %w", err)
	}

	created := *res
	if oid, ok := inserted.InsertedID.(primitive.ObjectID); ok {
		created.ID = oid.Hex()
	}
	return &created, nil
}

func (r *ReservationRepository) FindAll(ctx context.Context) ([]domain.Reservation, error) {
	return r.findMany(ctx, bson.M{})
}

func (r *ReservationRepository) FindByUserEmail(ctx context.Context, email string) ([]domain.Reservation, error) {
	return r.findMany(ctx, bson.M{"user.email": email})
}

func (r *ReservationRepository) findMany(ctx context.Context, filter bson.M) ([]domain.Reservation, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("find reservations: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []mongoReservation
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode reservations: %w", err)
	}

	out := make([]domain.Reservation, len(docs))
	for i := range docs {
		out[i] = *docs[i].toDomain()
	}
	return out, nil
}

func (r *ReservationRepository) FindByID(ctx context.Context, id string) (*domain.Reservation, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrReservationNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var mr mongoReservation
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&mr); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrReservationNotFound
		}
		return nil, fmt.Errorf("find reservation: %w", err)
	}
	return mr.toDomain(), nil
}

func (r *ReservationRepository) Update(ctx context.Context, id string, res *domain.Reservation) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrReservationNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := toMongoReservation(res)
	result, err := r.coll.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": bson.M{
		"user":            doc.User,
		"room_number":     doc.RoomNumber,
		"check_in_date":   doc.CheckInDate,
		"check_out_date":  doc.CheckOutDate,
		"price_per_night": doc.PricePerNight,
		"extras":          doc.Extras,
	}})
	if err != nil {
		return fmt.Errorf("update reservation: %w", err)
	}
	if result.MatchedCount == 0 {
		return domain.ErrReservationNotFound
	}
	return nil
}

func (r *ReservationRepository) SetCancelationDate(ctx context.Context, id string, when time.Time) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrReservationNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	result, err := r.coll.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": bson.M{
		"cancelation_date": when,
	}})
	if err != nil {
		return fmt.Errorf("cancel reservation: %w", err)
	}
	if result.MatchedCount == 0 {
		return domain.ErrReservationNotFound
	}
	return nil
}

// EnsureIndexes creates the lookup index on the reservations collection.
func (r *ReservationRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "user.email", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexes)
	return err
}
