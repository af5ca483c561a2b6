package mongo

import (
	"fmt"
	"time"

	"github.com/landsetu/landsetu/internal/domain/entity"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type locationDocument struct {
	Address string `bson:"address"`
	City    string `bson:"city"`
	State   string `bson:"state"`
	Pincode string `bson:"pincode"`
}

type landDocument struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Title       string             `bson:"title"`
	Description string             `bson:"description"`
	Price       float64            `bson:"price"`
	Area        float64            `bson:"area"`
	Location    locationDocument   `bson:"location"`
	Images      []string           `bson:"images"`
	LandType    string             `bson:"land_type"`
	Features    []string           `bson:"features"`
	OwnerID     primitive.ObjectID `bson:"owner_id"`
	IsFeatured  bool               `bson:"is_featured"`
	IsActive    bool               `bson:"is_active"`
	CreatedAt   time.Time          `bson:"created_at"`
	UpdatedAt   time.Time          `bson:"updated_at"`
}

func toLandDocument(l *entity.Land) (*landDocument, error) {
	ownerID, err := primitive.ObjectIDFromHex(l.OwnerID)
	if err != nil {
		return nil, fmt.Errorf("invalid owner ID format: %w", err)
	}

	doc := &landDocument{
		Title:       l.Title,
		Description: l.Description,
		Price:       l.Price,
		Area:        l.Area,
		Location: locationDocument{
			Address: l.Location.Address,
			City:    l.Location.City,
			State:   l.Location.State,
			Pincode: l.Location.Pincode,
		},
		Images:     l.Images,
		LandType:   string(l.LandType),
		Features:   l.Features,
		OwnerID:    ownerID,
		IsFeatured: l.IsFeatured,
		IsActive:   l.IsActive,
		CreatedAt:  l.CreatedAt,
		UpdatedAt:  l.UpdatedAt,
	}
	if l.ID != "" {
		objID, err := primitive.ObjectIDFromHex(l.ID)
		if err != nil {
			return nil, fmt.Errorf("invalid land ID format: %w", err)
		}
		doc.ID = objID
	}
	return doc, nil
}

func toLandEntity(doc *landDocument) *entity.Land {
	images := doc.Images
	if images == nil {
		images = []string{}
	}
	features := doc.Features
	if features == nil {
		features = []string{}
	}
	return &entity.Land{
		ID:          doc.ID.Hex(),
		Title:       doc.Title,
		Description: doc.Description,
		Price:       doc.Price,
		Area:        doc.Area,
		Location: entity.Location{
			Address: doc.Location.Address,
			City:    doc.Location.City,
			State:   doc.Location.State,
			Pincode: doc.Location.Pincode,
		},
		Images:     images,
		LandType:   entity.LandType(doc.LandType),
		Features:   features,
		OwnerID:    doc.OwnerID.Hex(),
		IsFeatured: doc.IsFeatured,
		IsActive:   doc.IsActive,
		CreatedAt:  doc.CreatedAt,
		UpdatedAt:  doc.UpdatedAt,
	}
}

type contactDocument struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	LandID    primitive.ObjectID `bson:"land_id"`
	SellerID  primitive.ObjectID `bson:"seller_id"`
	Name      string             `bson:"name"`
	Email     string             `bson:"email"`
	Phone     string             `bson:"phone"`
	Message   string             `bson:"message"`
	Status    string             `bson:"status"`
	CreatedAt time.Time          `bson:"created_at"`
	UpdatedAt time.Time          `bson:"updated_at"`
}

func toContactDocument(r *entity.ContactRequest) (*contactDocument, error) {
	landID, err := primitive.ObjectIDFromHex(r.LandID)
	if err != nil {
		return nil, fmt.Errorf("invalid land ID format: %w", err)
	}
	sellerID, err := primitive.ObjectIDFromHex(r.SellerID)
	if err != nil {
		return nil, fmt.Errorf("invalid seller ID format: %w", err)
	}

	doc := &contactDocument{
		LandID:    landID,
		SellerID:  sellerID,
		Name:      r.Name,
		Email:     r.Email,
		Phone:     r.Phone,
		Message:   r.Message,
		Status:    string(r.Status),
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
	if r.ID != "" {
		objID, err := primitive.ObjectIDFromHex(r.ID)
		if err != nil {
			return nil, fmt.Errorf("invalid contact request ID format: %w", err)
		}
		doc.ID = objID
	}
	return doc, nil
}

func toContactEntity(doc *contactDocument) *entity.ContactRequest {
	return &entity.ContactRequest{
		ID:        doc.ID.Hex(),
		LandID:    doc.LandID.Hex(),
		SellerID:  doc.SellerID.Hex(),
		Name:      doc.Name,
		Email:     doc.Email,
		Phone:     doc.Phone,
		Message:   doc.Message,
		Status:    entity.ContactStatus(doc.Status),
		CreatedAt: doc.CreatedAt,
		UpdatedAt: doc.UpdatedAt,
	}
}

type userDocument struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	Name         string             `bson:"name"`
	Email        string             `bson:"email"`
	PasswordHash string             `bson:"password"`
	Phone        string             `bson:"phone,omitempty"`
	CreatedAt    time.Time          `bson:"created_at"`
	UpdatedAt    time.Time          `bson:"updated_at"`
}

func toUserEntity(doc *userDocument) *entity.User {
	return &entity.User{
		ID:           doc.ID.Hex(),
		Name:         doc.Name,
		Email:        doc.Email,
		PasswordHash: doc.PasswordHash,
		Phone:        doc.Phone,
		CreatedAt:    doc.CreatedAt,
		UpdatedAt:    doc.UpdatedAt,
	}
}
