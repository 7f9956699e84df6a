package mongo

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/SyedUsman-Dev/Biz-directory/internal/core/domain"
	"github.com/SyedUsman-Dev/Biz-directory/internal/core/ports"
)

const collectionBusinesses = "businesses"

type BusinessRepository struct {
	col *mongo.Collection
}

func NewBusinessRepository(db *mongo.Database) *BusinessRepository {
	return &BusinessRepository{col: db.Collection(collectionBusinesses)}
}

type businessDoc struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Name        string             `bson:"name"`
	City        string             `bson:"city"`
	State       string             `bson:"state"`
	Address     string             `bson:"address"`
	Category    string             `bson:"category"`
	Phone       string             `bson:"phone"`
	Rating      float64            `bson:"rating"`
	ReviewCount int64              `bson:"reviewCount"`
	CreatedAt   time.Time          `bson:"createdAt"`
}

func (d *businessDoc) toDomain() *domain.Business {
	return &domain.Business{
		ID:          d.ID.Hex(),
		Name:        d.Name,
		City:        d.City,
		State:       d.State,
		Address:     d.Address,
		Category:    d.Category,
		Phone:       d.Phone,
		Rating:      d.Rating,
		ReviewCount: d.ReviewCount,
		CreatedAt:   d.CreatedAt.UTC(),
	}
}

func businessID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, domain.ErrInvalidBusinessID
	}
	return oid, nil
}

// substringMatch builds a case-insensitive substring condition. The user
// input is quoted so regex metacharacters match literally.
func substringMatch(value string) primitive.Regex {
	return primitive.Regex{Pattern: regexp.QuoteMeta(value), Options: "i"}
}

func buildFilter(f ports.BusinessFilter) bson.M {
	filter := bson.M{}
	if f.Name != "" {
		filter["name"] = substringMatch(f.Name)
	}
	if f.City != "" {
		filter["city"] = substringMatch(f.City)
	}
	if f.State != "" {
		filter["state"] = substringMatch(f.State)
	}
	if f.Category != "" {
		filter["category"] = substringMatch(f.Category)
	}
	if f.MinRating != nil {
		filter["rating"] = bson.M{"$gte": *f.MinRating}
	}
	return filter
}

func (r *BusinessRepository) Insert(ctx context.Context, b *domain.Business) (*domain.Business, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := businessDoc{
		Name:        b.Name,
		City:        b.City,
		State:       b.State,
		Address:     b.Address,
		Category:    b.Category,
		Phone:       b.Phone,
		Rating:      b.Rating,
		ReviewCount: b.ReviewCount,
		CreatedAt:   b.CreatedAt,
	}

	res, err := r.col.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert business: %w", err)
	}

	doc.ID = res.InsertedID.(primitive.ObjectID)
	return doc.toDomain(), nil
}

func (r *BusinessRepository) FindByID(ctx context.Context, id string) (*domain.Business, error) {
	oid, err := businessID(id)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc businessDoc
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrBusinessNotFound
		}
		return nil, fmt.Errorf("find business: %w", err)
	}
	return doc.toDomain(), nil
}

// List returns one page of businesses matching filter and the total count.
func (r *BusinessRepository) List(ctx context.Context, f ports.BusinessFilter, page, limit int) ([]*domain.Business, int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := buildFilter(f)

	total, err := r.col.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("count businesses: %w", err)
	}

	skip := int64(page-1) * int64(limit)
	opts := options.Find().SetSkip(skip).SetLimit(int64(limit))

	cur, err := r.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("find businesses: %w", err)
	}
	defer cur.Close(ctx)

	items := make([]*domain.Business, 0, limit)
	for cur.Next(ctx) {
		var doc businessDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, 0, fmt.Errorf("decode business: %w", err)
		}
		items = append(items, doc.toDomain())
	}
	if err := cur.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate businesses: %w", err)
	}

	return items, total, nil
}

// UpdateFields applies the non-nil allow-listed fields. A fully empty update
// is a no-op, not an error.
func (r *BusinessRepository) UpdateFields(ctx context.Context, id string, upd ports.BusinessUpdate) error {
	oid, err := businessID(id)
	if err != nil {
		return err
	}

	set := bson.M{}
	if upd.Name != nil {
		set["name"] = *upd.Name
	}
	if upd.City != nil {
		set["city"] = *upd.City
	}
	if upd.State != nil {
		set["state"] = *upd.State
	}
	if upd.Address != nil {
		set["address"] = *upd.Address
	}
	if upd.Category != nil {
		set["category"] = *upd.Category
	}
	if upd.Phone != nil {
		set["phone"] = *upd.Phone
	}
	if len(set) == 0 {
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": set})
	if err != nil {
		return fmt.Errorf("update business: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrBusinessNotFound
	}
	return nil
}

// SetRatingSummary writes the derived rating fields. Callers other than the
// rating aggregator must not use this.
func (r *BusinessRepository) SetRatingSummary(ctx context.Context, id string, rating float64, reviewCount int64) error {
	oid, err := businessID(id)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{
		"$set": bson.M{"rating": rating, "reviewCount": reviewCount},
	})
	if err != nil {
		return fmt.Errorf("set rating summary: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrBusinessNotFound
	}
	return nil
}

func (r *BusinessRepository) Delete(ctx context.Context, id string) error {
	oid, err := businessID(id)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete business: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrBusinessNotFound
	}
	return nil
}

// EnsureIndexes creates the supporting indexes for listing and search.
func (r *BusinessRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "rating", Value: 1}}},
		{Keys: bson.D{{Key: "city", Value: 1}}},
		{Keys: bson.D{{Key: "category", Value: 1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
