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

const contactCollectionName = "contact_requests"

type contactRepository struct {
	collection *mongo.Collection
	lands      *mongo.Collection
}

func NewContactRepository(db *mongo.Database, log logger.Logger) repository.ContactRepository {
	collection := db.Collection(contactCollectionName)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "seller_id", Value: 1}, {Key: "status", Value: 1}}},
		{Keys: bson.D{{Key: "land_id", Value: 1}}},
	}
	if _, err := collection.Indexes().CreateMany(ctx, indexes); err != nil {
		log.Warnf("Failed to ensure indexes for %s collection: %v", contactCollectionName, err)
	}

	return &contactRepository{
		collection: collection,
		lands:      db.Collection(landCollectionName),
	}
}

func (r *contactRepository) Create(ctx context.Context, request *entity.ContactRequest) (string, error) {
	doc, err := toContactDocument(request)
	if err != nil {
		return "", err
	}

	res, err := r.collection.InsertOne(ctx, doc)
	if err != nil {
		return "", fmt.Errorf("failed to create contact request: %w", err)
	}

	objectID, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", fmt.Errorf("failed to convert inserted ID to ObjectID")
	}
	return objectID.Hex(), nil
}

func (r *contactRepository) GetByID(ctx context.Context, id string) (*entity.ContactRequest, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, repository.ErrNotFound
	}

	var doc contactDocument
	err = r.collection.FindOne(ctx, bson.M{"_id": objID}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get contact request by ID %s: %w", id, err)
	}
	return toContactEntity(&doc), nil
}

// FindBySeller returns the seller's inquiries newest-first, each joined with
// the referenced land's title and location for display.
func (r *contactRepository) FindBySeller(ctx context.Context, sellerID string) ([]*entity.ContactRequestWithLand, error) {
	objID, err := primitive.ObjectIDFromHex(sellerID)
	if err != nil {
		return nil, fmt.Errorf("invalid seller ID format: %w", err)
	}

	findOptions := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.collection.Find(ctx, bson.M{"seller_id": objID}, findOptions)
	if err != nil {
		return nil, fmt.Errorf("failed to query contact requests: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []contactDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode contact requests: %w", err)
	}

	lands, err := r.landSummaries(ctx, docs)
	if err != nil {
		return nil, err
	}

	requests := make([]*entity.ContactRequestWithLand, len(docs))
	for i := range docs {
		req := &entity.ContactRequestWithLand{ContactRequest: *toContactEntity(&docs[i])}
		if land, ok := lands[docs[i].LandID]; ok {
			req.LandTitle = land.Title
			req.LandLocation = entity.Location{
				Address: land.Location.Address,
				City:    land.Location.City,
				State:   land.Location.State,
				Pincode: land.Location.Pincode,
			}
		}
		requests[i] = req
	}
	return requests, nil
}

func (r *contactRepository) UpdateStatus(ctx context.Context, id string, status entity.ContactStatus) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return repository.ErrNotFound
	}

	update := bson.M{
		"$set": bson.M{
			"status":     string(status),
			"updated_at": time.Now().UTC(),
		},
	}
	res, err := r.collection.UpdateOne(ctx, bson.M{"_id": objID}, update)
	if err != nil {
		return fmt.Errorf("failed to update contact request status for ID %s: %w", id, err)
	}
	if res.MatchedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// landSummaries fetches the lands referenced by the given requests in a
// single query, keyed by land ObjectID. Deleted lands simply drop out of the
// map and the request is returned without a land summary.
func (r *contactRepository) landSummaries(ctx context.Context, docs []contactDocument) (map[primitive.ObjectID]landDocument, error) {
	if len(docs) == 0 {
		return map[primitive.ObjectID]landDocument{}, nil
	}

	seen := make(map[primitive.ObjectID]struct{}, len(docs))
	ids := make([]primitive.ObjectID, 0, len(docs))
	for _, doc := range docs {
		if _, ok := seen[doc.LandID]; ok {
			continue
		}
		seen[doc.LandID] = struct{}{}
		ids = append(ids, doc.LandID)
	}

	cursor, err := r.lands.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, fmt.Errorf("failed to query lands for contact requests: %w", err)
	}
	defer cursor.Close(ctx)

	var landDocs []landDocument
	if err := cursor.All(ctx, &landDocs); err != nil {
		return nil, fmt.Errorf("failed to decode lands for contact requests: %w", err)
	}

	result := make(map[primitive.ObjectID]landDocument, len(landDocs))
	for _, land := range landDocs {
		result[land.ID] = land
	}
	return result, nil
}
