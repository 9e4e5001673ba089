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

const quotesCollection = "quotes"

// QuoteRepository implements ports.QuoteRepository on MongoDB.
type QuoteRepository struct {
	coll *mongo.Collection
}

func NewQuoteRepository(db *mongo.Database) *QuoteRepository {
	return &QuoteRepository{coll: db.Collection(quotesCollection)}
}

type quoteDoc struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Name        string             `bson:"name"`
	Email       string             `bson:"email"`
	Phone       string             `bson:"phone"`
	Origin      string             `bson:"origin"`
	Destination string             `bson:"destination"`
	Service     string             `bson:"service"`
	Weight      string             `bson:"weight"`
	Details     string             `bson:"details"`
	Status      string             `bson:"status"`
	CreatedAt   time.Time          `bson:"created_at"`
}

func (r *QuoteRepository) Insert(ctx context.Context, q *domain.Quote) (*domain.Quote, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.InsertOne(ctx, toQuoteDoc(q))
	if err != nil {
		return nil, fmt.Errorf("insert quote: %w", err)
	}

	created := *q
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

func (r *QuoteRepository) FindByID(ctx context.Context, id string) (*domain.Quote, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrQuoteNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc quoteDoc
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrQuoteNotFound
		}
		return nil, fmt.Errorf("find quote: %w", err)
	}
	return fromQuoteDoc(&doc), nil
}

func (r *QuoteRepository) FindAll(ctx context.Context) ([]*domain.Quote, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("list quotes: %w", err)
	}

	var docs []quoteDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode quotes: %w", err)
	}

	out := make([]*domain.Quote, len(docs))
	for i := range docs {
		out[i] = fromQuoteDoc(&docs[i])
	}
	return out, nil
}

func (r *QuoteRepository) Replace(ctx context.Context, q *domain.Quote) error {
	oid, err := primitive.ObjectIDFromHex(q.ID)
	if err != nil {
		return domain.ErrQuoteNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := toQuoteDoc(q)
	doc.ID = oid
	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": oid}, doc)
	if err != nil {
		return fmt.Errorf("replace quote: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrQuoteNotFound
	}
	return nil
}

func (r *QuoteRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if _, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid}); err != nil {
		return fmt.Errorf("delete quote: %w", err)
	}
	return nil
}

func toQuoteDoc(q *domain.Quote) *quoteDoc {
	return &quoteDoc{
		Name:        q.Name,
		Email:       q.Email,
		Phone:       q.Phone,
		Origin:      q.Origin,
		Destination: q.Destination,
		Service:     q.Service,
		Weight:      q.Weight,
		Details:     q.Details,
		Status:      q.Status,
		CreatedAt:   q.CreatedAt,
	}
}

func fromQuoteDoc(doc *quoteDoc) *domain.Quote {
	return &domain.Quote{
		ID:          doc.ID.Hex(),
		Name:        doc.Name,
		Email:       doc.Email,
		Phone:       doc.Phone,
		Origin:      doc.Origin,
		Destination: doc.Destination,
		Service:     doc.Service,
		Weight:      doc.Weight,
		Details:     doc.Details,
		Status:      doc.Status,
		CreatedAt:   doc.CreatedAt.UTC(),
	}
}
