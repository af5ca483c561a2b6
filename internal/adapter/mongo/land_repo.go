package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/landsetu/landsetu/internal/domain/entity"
	"github.com/landsetu/landsetu/internal/platform/logger"
	"github.com/landsetu/landsetu/internal/repository"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const landCollectionName = "lands"

type landRepository struct {
	collection *mongo.Collection
	users      *mongo.Collection
}

func NewLandRepository(db *mongo.Database, log logger.Logger) repository.LandRepository {
	collection := db.Collection(landCollectionName)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "location.city", Value: 1}, {Key: "location.state", Value: 1}}},
		{Keys: bson.D{{Key: "price", Value: 1}}},
		{Keys: bson.D{{Key: "area", Value: 1}}},
		{Keys: bson.D{{Key: "land_type", Value: 1}}},
	}
	if _, err := collection.Indexes().CreateMany(ctx, indexes); err != nil {
		log.Warnf("Failed to ensure indexes for %s collection: %v", landCollectionName, err)
	}

	return &landRepository{
		collection: collection,
		users:      db.Collection(userCollectionName),
	}
}

func (r *landRepository) Create(ctx context.Context, land *entity.Land) (string, error) {
	doc, err := toLandDocument(land)
	if err != nil {
		return "", err
	}

	res, err := r.collection.InsertOne(ctx, doc)
	if err != nil {
		return "", fmt.Errorf("failed to create land: %w", err)
	}

	objectID, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", fmt.Errorf("failed to convert inserted ID to ObjectID")
	}
	return objectID.Hex(), nil
}

func (r *landRepository) Update(ctx context.Context, land *entity.Land) error {
	doc, err := toLandDocument(land)
	if err != nil {
		return err
	}
	if doc.ID.IsZero() {
		return fmt.Errorf("land ID is required for update")
	}

	update := bson.M{
		"$set": bson.M{
			"title":       doc.Title,
			"description": doc.Description,
			"price":       doc.Price,
			"area":        doc.Area,
			"location":    doc.Location,
			"images":      doc.Images,
			"land_type":   doc.LandType,
			"features":    doc.Features,
			"updated_at":  doc.UpdatedAt,
		},
	}

	res, err := r.collection.UpdateOne(ctx, bson.M{"_id": doc.ID}, update)
	if err != nil {
		return fmt.Errorf("failed to update land %s: %w", land.ID, err)
	}
	if res.MatchedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *landRepository) Delete(ctx context.Context, id string) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return repository.ErrNotFound
	}

	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": objID})
	if err != nil {
		return fmt.Errorf("failed to delete land %s: %w", id, err)
	}
	if res.DeletedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *landRepository) GetByID(ctx context.Context, id string) (*entity.Land, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, repository.ErrNotFound
	}

	var doc landDocument
	err = r.collection.FindOne(ctx, bson.M{"_id": objID}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get land by ID %s: %w", id, err)
	}
	return toLandEntity(&doc), nil
}

func (r *landRepository) GetByIDWithOwner(ctx context.Context, id string) (*entity.LandWithOwner, error) {
	land, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	result := &entity.LandWithOwner{Land: *land}

	ownerID, err := primitive.ObjectIDFromHex(land.OwnerID)
	if err != nil {
		return nil, fmt.Errorf("invalid owner ID on land %s: %w", id, err)
	}

	var owner userDocument
	err = r.users.FindOne(ctx, bson.M{"_id": ownerID}).Decode(&owner)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			// Orphaned listing; the land itself is still returned.
			return result, nil
		}
		return nil, fmt.Errorf("failed to get owner of land %s: %w", id, err)
	}

	result.Owner = entity.LandOwner{
		ID:    owner.ID.Hex(),
		Name:  owner.Name,
		Email: owner.Email,
		Phone: owner.Phone,
	}
	return result, nil
}

func (r *landRepository) Search(ctx context.Context, filter repository.LandFilter) ([]*entity.Land, error) {
	findOptions := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(repository.SearchLimit)

	return r.find(ctx, buildSearchQuery(filter), findOptions)
}

func (r *landRepository) FindFeatured(ctx context.Context, limit int64) ([]*entity.Land, error) {
	findOptions := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(limit)

	return r.find(ctx, bson.M{"is_active": true, "is_featured": true}, findOptions)
}

func (r *landRepository) FindActiveExcluding(ctx context.Context, excludeIDs []string, limit int64) ([]*entity.Land, error) {
	objIDs := make([]primitive.ObjectID, 0, len(excludeIDs))
	for _, id := range excludeIDs {
		objID, err := primitive.ObjectIDFromHex(id)
		if err != nil {
			return nil, fmt.Errorf("invalid land ID %q in exclusion list: %w", id, err)
		}
		objIDs = append(objIDs, objID)
	}

	query := bson.M{"is_active": true, "_id": bson.M{"$nin": objIDs}}
	findOptions := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(limit)

	return r.find(ctx, query, findOptions)
}

func (r *landRepository) FindByOwner(ctx context.Context, ownerID string) ([]*entity.Land, error) {
	objID, err := primitive.ObjectIDFromHex(ownerID)
	if err != nil {
		return nil, fmt.Errorf("invalid owner ID format: %w", err)
	}

	findOptions := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	return r.find(ctx, bson.M{"owner_id": objID}, findOptions)
}

func (r *landRepository) AppendImage(ctx context.Context, id, imageURL string) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return repository.ErrNotFound
	}

	update := bson.M{
		"$push": bson.M{"images": imageURL},
		"$set":  bson.M{"updated_at": time.Now().UTC()},
	}
	res, err := r.collection.UpdateOne(ctx, bson.M{"_id": objID}, update)
	if err != nil {
		return fmt.Errorf("failed to append image to land %s: %w", id, err)
	}
	if res.MatchedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *landRepository) find(ctx context.Context, query bson.M, findOptions *options.FindOptions) ([]*entity.Land, error) {
	cursor, err := r.collection.Find(ctx, query, findOptions)
	if err != nil {
		return nil, fmt.Errorf("failed to query lands: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []landDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode lands: %w", err)
	}

	lands := make([]*entity.Land, len(docs))
	for i := range docs {
		lands[i] = toLandEntity(&docs[i])
	}
	return lands, nil
}
