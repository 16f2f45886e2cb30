package mongodb

import (
	"github.com/mealmasterhq/meal-master-api/internal/store"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// ciRegex builds a case-insensitive substring match for a text field.
func ciRegex(text string) bson.M {
	return bson.M{"$regex": text, "$options": "i"}
}

// buildFilter translates a ListQuery into a bson filter document.
// nameField/emailField name the collection's identity fields for the
// disjunctive name-or-email search.
func buildFilter(q store.ListQuery, nameField, emailField string) bson.M {
	filter := bson.M{}

	for field, value := range q.Eq {
		filter[field] = value
	}

	if q.SearchField != "" && q.SearchText != "" {
		filter[q.SearchField] = ciRegex(q.SearchText)
	}

	if q.NameEmailSearch != "" {
		filter["$or"] = bson.A{
			bson.M{nameField: ciRegex(q.NameEmailSearch)},
			bson.M{emailField: ciRegex(q.NameEmailSearch)},
		}
	}

	return filter
}

// findOptions translates the sort and pagination parts of a ListQuery
// into driver find options.
func findOptions(q store.ListQuery) *options.FindOptionsBuilder {
	opts := options.Find().
		SetSkip(q.Skip()).
		SetLimit(q.Limit)

	if q.SortField != "" && q.SortDir != store.SortNone {
		opts.SetSort(bson.D{{Key: q.SortField, Value: int(q.SortDir)}})
	}

	return opts
}
