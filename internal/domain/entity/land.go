package entity

import "time"

type LandType string

const (
	LandTypeResidential  LandType = "residential"
	LandTypeCommercial   LandType = "commercial"
	LandTypeAgricultural LandType = "agricultural"
	LandTypeIndustrial   LandType = "industrial"
)

func (t LandType) Valid() bool {
	switch t {
	case LandTypeResidential, LandTypeCommercial, LandTypeAgricultural, LandTypeIndustrial:
		return true
	}
	return false
}

type Location struct {
	Address string `json:"address"`
	City    string `json:"city"`
	State   string `json:"state"`
	Pincode string `json:"pincode"`
}

// Land is a land-sale offer. Exactly one owner; only the owner may mutate
// or delete it. IsFeatured is curation-only and never user-settable.
type Land struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	Area        float64   `json:"area"` // square feet
	Location    Location  `json:"location"`
	Images      []string  `json:"images"`
	LandType    LandType  `json:"landType"`
	Features    []string  `json:"features"`
	OwnerID     string    `json:"owner"`
	IsFeatured  bool      `json:"isFeatured"`
	IsActive    bool      `json:"isActive"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// LandOwner is the public subset of a seller's profile shown on a land detail page.
type LandOwner struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone,omitempty"`
}

type LandWithOwner struct {
	Land
	Owner LandOwner `json:"ownerDetails"`
}
