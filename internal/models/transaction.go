package models

import (
	"time"
)

// Transaction is one sale record from the seed dataset.
type Transaction struct {
	ID          string    `bson:"_id,omitempty" firestore:"-" json:"_id,omitempty"` // Mongo ObjectID hex or Firestore doc ID
	SourceID    int64     `bson:"id" firestore:"id" json:"id"`                      // id from the seed payload
	Title       string    `bson:"title" firestore:"title" json:"title"`
	Description string    `bson:"description" firestore:"description" json:"description"`
	Price       float64   `bson:"price" firestore:"price" json:"price"`
	Category    string    `bson:"category" firestore:"category" json:"category"`
	Image       string    `bson:"image" firestore:"image" json:"image,omitempty"`
	Sold        bool      `bson:"sold" firestore:"sold" json:"sold"`
	DateOfSale  time.Time `bson:"dateOfSale" firestore:"dateOfSale" json:"dateOfSale"`
	SaleMonth   int       `bson:"-" firestore:"saleMonth" json:"-"` // denormalized for stores without date functions
}

// Month is the calendar month of the sale in UTC.
func (t *Transaction) Month() int {
	return int(t.DateOfSale.UTC().Month())
}
