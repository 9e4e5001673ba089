package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/swiftcargo/tracking-api/internal/core/domain"
)

const shipmentsCollection = "shipments"

// ShipmentRepository implements ports.ShipmentRepository on MongoDB.
type ShipmentRepository struct {
	coll *mongo.Collection
}

func NewShipmentRepository(db *mongo.Database) *ShipmentRepository {
	return &ShipmentRepository{coll: db.Collection(shipmentsCollection)}
}

type eventDoc struct {
	ID       string    `bson:"id"`
	Time     time.Time `bson:"time"`
	Status   string    `bson:"status"`
	Location string    `bson:"location"`
	Note     string    `bson:"note"`
}

type shipmentDoc struct {
	ID             primitive.ObjectID `bson:"_id,omitempty"`
	TrackingNumber string             `bson:"tracking_number"`
	Customer       string             `bson:"customer"`
	Email          string             `bson:"email"`
	Origin         string             `bson:"origin"`
	Destination    string             `bson:"destination"`
	Service        string             `bson:"service"`
	Weight         string             `bson:"weight"`
	Status         string             `bson:"status"`
	Events         []eventDoc         `bson:"events"`
	CreatedAt      time.Time          `bson:"created_at"`
	UpdatedAt      time.Time          `bson:"updated_at"`
}

func (r *ShipmentRepository) Insert(ctx context.Context, s *domain.Shipment) (*domain.Shipment, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.InsertOne(ctx, toShipmentDoc(s))
	if err != nil {
		return nil, fmt.Errorf("insert shipment: %w", err)
	}

	created := *s
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

func (r *ShipmentRepository) FindByID(ctx context.Context, id string) (*domain.Shipment, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		// A malformed id can never match a stored record.
		return nil, domain.ErrShipmentNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc shipmentDoc
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrShipmentNotFound
		}
		return nil, fmt.Errorf("find shipment: %w", err)
	}
	return fromShipmentDoc(&doc), nil
}

func (r *ShipmentRepository) FindByTrackingNumber(ctx context.Context, trackingNumber string) (*domain.Shipment, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc shipmentDoc
	if err := r.coll.FindOne(ctx, bson.M{"tracking_number": trackingNumber}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrShipmentNotFound
		}
		return nil, fmt.Errorf("find shipment by tracking number: %w", err)
	}
	return fromShipmentDoc(&doc), nil
}

func (r *ShipmentRepository) FindAll(ctx context.Context) ([]*domain.Shipment, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("list shipments: %w", err)
	}

	var docs []shipmentDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode shipments: %w", err)
	}

	out := make([]*domain.Shipment, len(docs))
	for i := range docs {
		out[i] = fromShipmentDoc(&docs[i])
	}
	return out, nil
}

func (r *ShipmentRepository) Replace(ctx context.Context, s *domain.Shipment) error {
	oid, err := primitive.ObjectIDFromHex(s.ID)
	if err != nil {
		return domain.ErrShipmentNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := toShipmentDoc(s)
	doc.ID = oid
	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": oid}, doc)
	if err != nil {
		return fmt.Errorf("replace shipment: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrShipmentNotFound
	}
	return nil
}

func (r *ShipmentRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if _, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid}); err != nil {
		return fmt.Errorf("delete shipment: %w", err)
	}
	return nil
}

// EnsureIndexes creates lookup indexes on the shipments collection. The
// tracking_number index is deliberately non-unique: collision avoidance
// relies on generation entropy, not store enforcement.
func (r *ShipmentRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "tracking_number", Value: 1}}},
		{Keys: bson.D{{Key: "created_at", Value: -1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexes)
	return err
}

func toShipmentDoc(s *domain.Shipment) *shipmentDoc {
	events := make([]eventDoc, len(s.Events))
	for i, e := range s.Events {
		events[i] = eventDoc{ID: e.ID, Time: e.Time, Status: e.Status, Location: e.Location, Note: e.Note}
	}
	return &shipmentDoc{
		TrackingNumber: s.TrackingNumber,
		Customer:       s.Customer,
		Email:          s.Email,
		Origin:         s.Origin,
		Destination:    s.Destination,
		Service:        s.Service,
		Weight:         s.Weight,
		Status:         s.Status,
		Events:         events,
		CreatedAt:      s.CreatedAt,
		UpdatedAt:      s.UpdatedAt,
	}
}

func fromShipmentDoc(doc *shipmentDoc) *domain.Shipment {
	events := make([]domain.Event, len(doc.Events))
	for i, e := range doc.Events {
		events[i] = domain.Event{ID: e.ID, Time: e.Time.UTC(), Status: e.Status, Location: e.Location, Note: e.Note}
	}
	return &domain.Shipment{
		ID:             doc.ID.Hex(),
		TrackingNumber: doc.TrackingNumber,
		Customer:       doc.Customer,
		Email:          doc.Email,
		Origin:         doc.Origin,
		Destination:    doc.Destination,
		Service:        doc.Service,
		Weight:         doc.Weight,
		Status:         doc.Status,
		Events:         events,
		CreatedAt:      doc.CreatedAt.UTC(),
		UpdatedAt:      doc.UpdatedAt.UTC(),
	}
}
