package service

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/landsetu/landsetu/internal/domain/entity"
)

var (
	pincodeRegexp = regexp.MustCompile(`^\d{6}$`)
	emailRegexp   = regexp.MustCompile(`^\S+@\S+\.\S+$`)
)

// locationFields are duplicated under their flattened key when they fail,
// so the form can show "pincode" errors without knowing the nested path.
var locationFields = map[string]struct{}{
	"address": {},
	"city":    {},
	"state":   {},
	"pincode": {},
}

type fieldErrors map[string]string

func (e fieldErrors) add(field, message string) {
	e[field] = message
	if _, ok := locationFields[field]; ok {
		e["location."+field] = message
	}
}

// validateLand checks the full field constraints of a land listing. It is run
// against the complete (merged) value, both on create and on partial update.
// Returns nil when every constraint holds.
func validateLand(land *entity.Land) fieldErrors {
	errs := fieldErrors{}

	// length limits count characters, not bytes; titles are routinely
	// written in Devanagari and other multibyte scripts
	title := strings.TrimSpace(land.Title)
	switch {
	case title == "":
		errs.add("title", "Title is required")
	case utf8.RuneCountInString(title) < 5:
		errs.add("title", "Title must be at least 5 characters")
	case utf8.RuneCountInString(title) > 100:
		errs.add("title", "Title cannot exceed 100 characters")
	}

	switch {
	case land.Description == "":
		errs.add("description", "Description is required")
	case utf8.RuneCountInString(land.Description) < 20:
		errs.add("description", "Description must be at least 20 characters")
	}

	if land.Price < 0 {
		errs.add("price", "Price cannot be negative")
	}
	if land.Area < 1 {
		errs.add("area", "Area must be at least 1 sq ft")
	}

	if land.Location.Address == "" {
		errs.add("address", "Address is required")
	}
	if land.Location.City == "" {
		errs.add("city", "City is required")
	}
	if land.Location.State == "" {
		errs.add("state", "State is required")
	}
	switch {
	case land.Location.Pincode == "":
		errs.add("pincode", "Pincode is required")
	case !pincodeRegexp.MatchString(land.Location.Pincode):
		errs.add("pincode", "Please enter a valid 6-digit pincode")
	}

	switch {
	case land.LandType == "":
		errs.add("landType", "Land type is required")
	case !land.LandType.Valid():
		errs.add("landType", "Land type must be one of residential, commercial, agricultural, industrial")
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}

// validateContactInput checks the inquirer-supplied fields of a contact
// request. Returns nil when every constraint holds.
func validateContactInput(in ContactInput) fieldErrors {
	errs := fieldErrors{}

	if strings.TrimSpace(in.Name) == "" {
		errs["name"] = "Name is required"
	}

	email := strings.TrimSpace(in.Email)
	switch {
	case email == "":
		errs["email"] = "Email is required"
	case !emailRegexp.MatchString(email):
		errs["email"] = "Please use a valid email address"
	}

	if strings.TrimSpace(in.Phone) == "" {
		errs["phone"] = "Phone number is required"
	}

	switch {
	case in.Message == "":
		errs["message"] = "Message is required"
	case utf8.RuneCountInString(in.Message) < 10:
		errs["message"] = "Message must be at least 10 characters"
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}
