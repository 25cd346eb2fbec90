package store

import (
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/GregMSThompson/transaction-insights/internal/dto"
)

// buildFilter translates filter criteria into a Mongo query document.
// The month predicate is evaluated with $month on dateOfSale, which cannot
// use an index.
func buildFilter(f dto.TransactionFilter) bson.M {
	filter := bson.M{
		"$expr": bson.M{"$eq": bson.A{bson.M{"$month": "$dateOfSale"}, f.Month}},
	}

	if search := f.SearchText(); search != "" {
		pattern := regexp.QuoteMeta(search)
		or := bson.A{
			bson.M{"title": primitive.Regex{Pattern: pattern, Options: "i"}},
			bson.M{"description": primitive.Regex{Pattern: pattern, Options: "i"}},
		}
		if price, ok := f.SearchPrice(); ok {
			or = append(or, bson.M{"price": price})
		}
		filter["$or"] = or
	}

	if f.Sold != nil {
		filter["sold"] = *f.Sold
	}

	price := bson.M{}
	if f.PriceMin != nil {
		price["$gte"] = *f.PriceMin
	}
	if f.PriceMax != nil {
		price["$lte"] = *f.PriceMax
	}
	if len(price) > 0 {
		filter["price"] = price
	}

	return filter
}

func sumPricePipeline(f dto.TransactionFilter) bson.A {
	return bson.A{
		bson.M{"$match": buildFilter(f)},
		bson.M{"$group": bson.M{"_id": nil, "total": bson.M{"$sum": "$price"}}},
	}
}

func categoryPipeline(f dto.TransactionFilter) bson.A {
	return bson.A{
		bson.M{"$match": buildFilter(f)},
		bson.M{"$group": bson.M{"_id": "$category", "count": bson.M{"$sum": 1}}},
		bson.M{"$sort": bson.D{{Key: "_id", Value: 1}}},
	}
}
