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

	"github.com/SyedUsman-Dev/Biz-directory/internal/core/domain"
	"github.com/SyedUsman-Dev/Biz-directory/internal/core/ports"
)

const collectionReviews = "reviews"

type ReviewRepository struct {
	col *mongo.Collection
}

func NewReviewRepository(db *mongo.Database) *ReviewRepository {
	return &ReviewRepository{col: db.Collection(collectionReviews)}
}

type reviewDoc struct {
	ID         primitive.ObjectID `bson:"_id,omitempty"`
	BusinessID primitive.ObjectID `bson:"businessId"`
	UserID     primitive.ObjectID `bson:"userId"`
	Rating     int                `bson:"rating"`
	Text       string             `bson:"text"`
	CreatedAt  time.Time          `bson:"createdAt"`
}

func (d *reviewDoc) toDomain() *domain.Review {
	return &domain.Review{
		ID:         d.ID.Hex(),
		BusinessID: d.BusinessID.Hex(),
		UserID:     d.UserID.Hex(),
		Rating:     d.Rating,
		Text:       d.Text,
		CreatedAt:  d.CreatedAt.UTC(),
	}
}

func reviewID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, domain.ErrInvalidReviewID
	}
	return oid, nil
}

func (r *ReviewRepository) Insert(ctx context.Context, rev *domain.Review) (*domain.Review, error) {
	bid, err := businessID(rev.BusinessID)
	if err != nil {
		return nil, err
	}
	uid, err := primitive.ObjectIDFromHex(rev.UserID)
	if err != nil {
		return nil, domain.ErrUserNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := reviewDoc{
		BusinessID: bid,
		UserID:     uid,
		Rating:     rev.Rating,
		Text:       rev.Text,
		CreatedAt:  rev.CreatedAt,
	}

	res, err := r.col.InsertOne(ctx, doc)
	if err != nil {
		// Unique (businessId, userId) index: a concurrent double-submit can
		// slip past the service pre-check and land here.
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrDuplicateReview
		}
		return nil, fmt.Errorf("insert review: %w", err)
	}

	doc.ID = res.InsertedID.(primitive.ObjectID)
	return doc.toDomain(), nil
}

func (r *ReviewRepository) FindByID(ctx context.Context, id string) (*domain.Review, error) {
	oid, err := reviewID(id)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc reviewDoc
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrReviewNotFound
		}
		return nil, fmt.Errorf("find review: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *ReviewRepository) FindByBusinessAndAuthor(ctx context.Context, businessIDHex, userID string) (*domain.Review, error) {
	bid, err := businessID(businessIDHex)
	if err != nil {
		return nil, err
	}
	uid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, domain.ErrReviewNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc reviewDoc
	if err := r.col.FindOne(ctx, bson.M{"businessId": bid, "userId": uid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrReviewNotFound
		}
		return nil, fmt.Errorf("find review: %w", err)
	}
	return doc.toDomain(), nil
}

// ListByBusiness returns one page of reviews, most recent first, plus the
// total count for the business.
func (r *ReviewRepository) ListByBusiness(ctx context.Context, businessIDHex string, page, limit int) ([]*domain.Review, int64, error) {
	bid, err := businessID(businessIDHex)
	if err != nil {
		return nil, 0, err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := bson.M{"businessId": bid}

	total, err := r.col.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("count reviews: %w", err)
	}

	skip := int64(page-1) * int64(limit)
	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetSkip(skip).
		SetLimit(int64(limit))

	cur, err := r.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("find reviews: %w", err)
	}
	defer cur.Close(ctx)

	items := make([]*domain.Review, 0, limit)
	for cur.Next(ctx) {
		var doc reviewDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, 0, fmt.Errorf("decode review: %w", err)
		}
		items = append(items, doc.toDomain())
	}
	if err := cur.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate reviews: %w", err)
	}

	return items, total, nil
}

func (r *ReviewRepository) UpdateFields(ctx context.Context, id string, upd ports.ReviewUpdate) error {
	oid, err := reviewID(id)
	if err != nil {
		return err
	}

	set := bson.M{}
	if upd.Rating != nil {
		set["rating"] = *upd.Rating
	}
	if upd.Text != nil {
		set["text"] = *upd.Text
	}
	if len(set) == 0 {
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": set})
	if err != nil {
		return fmt.Errorf("update review: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrReviewNotFound
	}
	return nil
}

func (r *ReviewRepository) Delete(ctx context.Context, id string) error {
	oid, err := reviewID(id)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete review: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrReviewNotFound
	}
	return nil
}

// DeleteByBusiness removes every review referencing the business. Used by the
// business cascade delete; no per-review recompute follows because the parent
// business is removed as well.
func (r *ReviewRepository) DeleteByBusiness(ctx context.Context, businessIDHex string) (int64, error) {
	bid, err := businessID(businessIDHex)
	if err != nil {
		return 0, err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteMany(ctx, bson.M{"businessId": bid})
	if err != nil {
		return 0, fmt.Errorf("delete reviews: %w", err)
	}
	return res.DeletedCount, nil
}

// RatingSummary aggregates the business's reviews into (mean rating, count).
// A count of zero signals an empty review set.
func (r *ReviewRepository) RatingSummary(ctx context.Context, businessIDHex string) (float64, int64, error) {
	bid, err := businessID(businessIDHex)
	if err != nil {
		return 0, 0, err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"businessId": bid}}},
		{{Key: "$group", Value: bson.M{
			"_id":           "$businessId",
			"averageRating": bson.M{"$avg": "$rating"},
			"count":         bson.M{"$sum": 1},
		}}},
	}

	cur, err := r.col.Aggregate(ctx, pipeline)
	if err != nil {
		return 0, 0, fmt.Errorf("aggregate reviews: %w", err)
	}
	defer cur.Close(ctx)

	if !cur.Next(ctx) {
		if err := cur.Err(); err != nil {
			return 0, 0, fmt.Errorf("aggregate reviews: %w", err)
		}
		return 0, 0, nil
	}

	var result struct {
		AverageRating float64 `bson:"averageRating"`
		Count         int64   `bson:"count"`
	}
	if err := cur.Decode(&result); err != nil {
		return 0, 0, fmt.Errorf("decode rating summary: %w", err)
	}

	return result.AverageRating, result.Count, nil
}

// EnsureIndexes creates the unique one-review-per-user constraint and the
// listing index.
func (r *ReviewRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "businessId", Value: 1}, {Key: "userId", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{Keys: bson.D{{Key: "businessId", Value: 1}, {Key: "createdAt", Value: -1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
