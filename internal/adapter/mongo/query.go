package mongo

import (
	"regexp"

	"github.com/landsetu/landsetu/internal/repository"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// buildSearchQuery translates a filter set into a mongo predicate. Pure: no
// side effects, no I/O. Only active listings are ever eligible. Empty/zero
// filter values add no clause. Text filters combine with AND; the free-text
// search term ORs across title, description and city.
func buildSearchQuery(filter repository.LandFilter) bson.M {
	query := bson.M{"is_active": true}

	if filter.City != "" {
		query["location.city"] = substringRegex(filter.City)
	}
	if filter.State != "" {
		query["location.state"] = substringRegex(filter.State)
	}
	if filter.MinPrice > 0 || filter.MaxPrice > 0 {
		price := bson.M{}
		if filter.MinPrice > 0 {
			price["$gte"] = filter.MinPrice
		}
		if filter.MaxPrice > 0 {
			price["$lte"] = filter.MaxPrice
		}
		query["price"] = price
	}
	if filter.MinArea > 0 || filter.MaxArea > 0 {
		area := bson.M{}
		if filter.MinArea > 0 {
			area["$gte"] = filter.MinArea
		}
		if filter.MaxArea > 0 {
			area["$lte"] = filter.MaxArea
		}
		query["area"] = area
	}
	if filter.LandType != "" {
		query["land_type"] = filter.LandType
	}
	if filter.Search != "" {
		term := substringRegex(filter.Search)
		query["$or"] = bson.A{
			bson.M{"title": term},
			bson.M{"description": term},
			bson.M{"location.city": term},
		}
	}

	return query
}

// substringRegex matches the value as a literal, case-insensitive substring.
func substringRegex(value string) primitive.Regex {
	return primitive.Regex{Pattern: regexp.QuoteMeta(value), Options: "i"}
}
