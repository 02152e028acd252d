package dto

import (
	"time"

	"github.com/moneymap/backend/internal/application/usecase/record"
)

// CreateRecordRequest represents the request body for creating a record.
type CreateRecordRequest struct {
	Type     string  `json:"type" binding:"required"`
	Amount   float64 `json:"amount"`
	Category string  `json:"category"`
	Label    string  `json:"label"`
	Date     string  `json:"date" binding:"required"`
}

// UpdateRecordRequest represents the request body for a partial record
// update. Absent fields are left unchanged.
type UpdateRecordRequest struct {
	Type     *string  `json:"type"`
	Amount   *float64 `json:"amount"`
	Category *string  `json:"category"`
	Label    *string  `json:"label"`
	Date     *string  `json:"date"`
}

// RecordResponse represents a single record in API responses.
type RecordResponse struct {
	ID        string  `json:"id"`
	Type      string  `json:"type"`
	Amount    float64 `json:"amount"`
	Category  string  `json:"category"`
	Label     string  `json:"label"`
	Date      string  `json:"date"`
	CreatedAt string  `json:"created_at"`
	UpdatedAt string  `json:"updated_at"`
}

// RecordListResponse represents the response for listing records.
type RecordListResponse struct {
	Data  []RecordResponse `json:"data"`
	Total int              `json:"total"`
}

// ToRecordResponse converts a use case record output to its response DTO.
func ToRecordResponse(output *record.RecordOutput) RecordResponse {
	amount, _ := output.Amount.Float64()
	return RecordResponse{
		ID:        output.ID.String(),
		Type:      string(output.Type),
		Amount:    amount,
		Category:  output.Category,
		Label:     output.Label,
		Date:      output.Date,
		CreatedAt: output.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt: output.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

// ToRecordListResponse converts a ListRecordsOutput to RecordListResponse DTO.
func ToRecordListResponse(output *record.ListRecordsOutput) RecordListResponse {
	data := make([]RecordResponse, len(output.Records))
	for i, r := range output.Records {
		data[i] = ToRecordResponse(r)
	}
	return RecordListResponse{
		Data:  data,
		Total: output.Total,
	}
}
