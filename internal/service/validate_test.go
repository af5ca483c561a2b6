package service

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/landsetu/landsetu/internal/domain/entity"
)

func validLand() *entity.Land {
	return &entity.Land{
		Title:       "Corner plot near highway",
		Description: "Level corner plot with road access on two sides and clear title.",
		Price:       2500000,
		Area:        2400,
		Location: entity.Location{
			Address: "Survey No. 42, Ring Road",
			City:    "Pune",
			State:   "Maharashtra",
			Pincode: "411001",
		},
		LandType: entity.LandTypeResidential,
		OwnerID:  "owner-1",
	}
}

func TestValidateLand_Valid(t *testing.T) {
	assert.Nil(t, validateLand(validLand()))
}

func TestValidateLand_TitleBounds(t *testing.T) {
	land := validLand()
	land.Title = "Plot"
	errs := validateLand(land)
	assert.Equal(t, "Title must be at least 5 characters", errs["title"])

	land.Title = strings.Repeat("a", 101)
	errs = validateLand(land)
	assert.Equal(t, "Title cannot exceed 100 characters", errs["title"])

	land.Title = "   "
	errs = validateLand(land)
	assert.Equal(t, "Title is required", errs["title"])
}

func TestValidateLand_LengthsCountCharactersNotBytes(t *testing.T) {
	land := validLand()
	land.Title = "भूमि" // 4 characters, 12 bytes
	errs := validateLand(land)
	assert.Equal(t, "Title must be at least 5 characters", errs["title"])

	land.Title = strings.Repeat("भू", 40) // 80 characters, 240 bytes
	assert.Nil(t, validateLand(land))

	land = validLand()
	land.Description = strings.Repeat("क", 19)
	errs = validateLand(land)
	assert.Equal(t, "Description must be at least 20 characters", errs["description"])

	land.Description = strings.Repeat("क", 20)
	assert.Nil(t, validateLand(land))
}

func TestValidateLand_DescriptionMinimum(t *testing.T) {
	land := validLand()
	land.Description = "Too short"
	errs := validateLand(land)
	assert.Equal(t, "Description must be at least 20 characters", errs["description"])
}

func TestValidateLand_LocationFieldsDuplicatedUnderFlattenedKeys(t *testing.T) {
	land := validLand()
	land.Location.Pincode = "1234"
	errs := validateLand(land)
	assert.Equal(t, "Please enter a valid 6-digit pincode", errs["pincode"])
	assert.Equal(t, "Please enter a valid 6-digit pincode", errs["location.pincode"])

	land = validLand()
	land.Location.City = ""
	errs = validateLand(land)
	assert.Equal(t, "City is required", errs["city"])
	assert.Equal(t, "City is required", errs["location.city"])
}

func TestValidateLand_NumericBounds(t *testing.T) {
	land := validLand()
	land.Price = -1
	land.Area = 0.5
	errs := validateLand(land)
	assert.Equal(t, "Price cannot be negative", errs["price"])
	assert.Equal(t, "Area must be at least 1 sq ft", errs["area"])

	land = validLand()
	land.Price = 0
	assert.Nil(t, validateLand(land), "a free listing is allowed")
}

func TestValidateLand_LandType(t *testing.T) {
	land := validLand()
	land.LandType = "recreational"
	errs := validateLand(land)
	assert.Equal(t, "Land type must be one of residential, commercial, agricultural, industrial", errs["landType"])

	land.LandType = ""
	errs = validateLand(land)
	assert.Equal(t, "Land type is required", errs["landType"])
}

func TestValidateLand_AggregatesAllFailures(t *testing.T) {
	errs := validateLand(&entity.Land{})
	for _, field := range []string{"title", "description", "area", "address", "city", "state", "pincode", "landType"} {
		assert.Contains(t, errs, field)
	}
	// price zero is fine, so it must not appear
	assert.NotContains(t, errs, "price")
}

func TestValidateContactInput(t *testing.T) {
	in := ContactInput{
		Name:    "Asha",
		Email:   "asha@example.com",
		Phone:   "9876543210",
		Message: "Is this plot still available? I would like to visit.",
	}
	assert.Nil(t, validateContactInput(in))

	in.Message = "Hi there"
	errs := validateContactInput(in)
	assert.Equal(t, "Message must be at least 10 characters", errs["message"])

	in.Message = "क्या यह प्लॉट उपलब्ध है?" // well past 10 characters, each multibyte
	assert.Nil(t, validateContactInput(in))

	in.Email = "not-an-email"
	errs = validateContactInput(in)
	assert.Equal(t, "Please use a valid email address", errs["email"])

	errs = validateContactInput(ContactInput{})
	for _, field := range []string{"name", "email", "phone", "message"} {
		assert.Contains(t, errs, field)
	}
}
