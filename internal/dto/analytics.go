package dto

import (
	"encoding/json"
	"fmt"
	"math/big"

	"github.com/shopspring/decimal"
)

// SaleAmount renders as a two-decimal string, or as the number 0 when no
// sold record contributed to the total.
type SaleAmount struct {
	Amount decimal.Decimal
	Valid  bool
}

// NewSaleAmount rounds the exact binary value of total to cents, halves
// going up, so 1.005 (stored as 1.00499...) becomes 1.00.
func NewSaleAmount(total float64) SaleAmount {
	r := new(big.Rat).SetFloat64(total)
	if r == nil {
		return SaleAmount{Valid: true}
	}
	r.Mul(r, big.NewRat(100, 1))
	r.Add(r, big.NewRat(1, 2))
	cents := new(big.Int).Div(r.Num(), r.Denom())
	return SaleAmount{Amount: decimal.NewFromBigInt(cents, -2), Valid: true}
}

func (a SaleAmount) String() string {
	if !a.Valid {
		return "0"
	}
	return a.Amount.StringFixed(2)
}

func (a SaleAmount) MarshalJSON() ([]byte, error) {
	if !a.Valid {
		return []byte("0"), nil
	}
	return json.Marshal(a.Amount.StringFixed(2))
}

type StatisticsResult struct {
	TotalSaleAmount  SaleAmount `json:"totalSaleAmount"`
	TotalSoldItems   int64      `json:"totalSoldItems"`
	TotalUnsoldItems int64      `json:"totalUnsoldItems"`
}

// PriceBucket is an inclusive price range. A nil Max means unbounded.
type PriceBucket struct {
	Min float64
	Max *float64
}

func (b PriceBucket) Label() string {
	if b.Max == nil {
		return fmt.Sprintf("%g - above", b.Min)
	}
	return fmt.Sprintf("%g - %g", b.Min, *b.Max)
}

func (b PriceBucket) Contains(price float64) bool {
	if price < b.Min {
		return false
	}
	return b.Max == nil || price <= *b.Max
}

// PriceBuckets returns the ten histogram ranges in ascending order:
// [0,100], [101,200] ... [801,900], [901,∞).
func PriceBuckets() []PriceBucket {
	buckets := make([]PriceBucket, 0, 10)
	buckets = append(buckets, PriceBucket{Min: 0, Max: bound(100)})
	for lo := 101.0; lo < 901; lo += 100 {
		buckets = append(buckets, PriceBucket{Min: lo, Max: bound(lo + 99)})
	}
	return append(buckets, PriceBucket{Min: 901})
}

func bound(v float64) *float64 { return &v }

type BarChartItem struct {
	Range string `json:"range"`
	Count int64  `json:"count"`
}

type CategoryCount struct {
	Category string `bson:"_id" json:"_id"`
	Count    int64  `bson:"count" json:"count"`
}

// CombinedDataResult holds [statistics, bar chart, pie chart] in that order.
type CombinedDataResult struct {
	CombinedData []any `json:"combinedData"`
}
