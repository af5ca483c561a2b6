package entity

import "time"

type ContactStatus string

const (
	ContactStatusPending   ContactStatus = "pending"
	ContactStatusRead      ContactStatus = "read"
	ContactStatusResponded ContactStatus = "responded"
)

func (s ContactStatus) Valid() bool {
	switch s {
	case ContactStatusPending, ContactStatusRead, ContactStatusResponded:
		return true
	}
	return false
}

// ContactRequest is a buyer inquiry tied to one Land. SellerID is captured
// from the land's owner at creation time and never recomputed afterwards;
// it is the sole authorization owner of the request.
type ContactRequest struct {
	ID        string        `json:"id"`
	LandID    string        `json:"land"`
	SellerID  string        `json:"seller"`
	Name      string        `json:"name"`
	Email     string        `json:"email"`
	Phone     string        `json:"phone"`
	Message   string        `json:"message"`
	Status    ContactStatus `json:"status"`
	CreatedAt time.Time     `json:"createdAt"`
	UpdatedAt time.Time     `json:"updatedAt"`
}

// ContactRequestWithLand carries the referenced land's title and location
// for the seller's dashboard.
type ContactRequestWithLand struct {
	ContactRequest
	LandTitle    string   `json:"landTitle"`
	LandLocation Location `json:"landLocation"`
}
