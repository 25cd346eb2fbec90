package dto

type SeedResult struct {
	Message         string `json:"message"`
	RecordsInserted int    `json:"recordsInserted"`
}
