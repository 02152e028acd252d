package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/moneymap/backend/internal/application/usecase/record"
	"github.com/moneymap/backend/internal/application/usecase/report"
	"github.com/moneymap/backend/internal/domain/entity"
	domainerror "github.com/moneymap/backend/internal/domain/error"
	"github.com/moneymap/backend/internal/integration/entrypoint/dto"
)

// RecordController handles record endpoints.
type RecordController struct {
	listUseCase   *record.ListRecordsUseCase
	createUseCase *record.CreateRecordUseCase
	updateUseCase *record.UpdateRecordUseCase
	deleteUseCase *record.DeleteRecordUseCase
}

// NewRecordController creates a new record controller instance.
func NewRecordController(
	listUseCase *record.ListRecordsUseCase,
	createUseCase *record.CreateRecordUseCase,
	updateUseCase *record.UpdateRecordUseCase,
	deleteUseCase *record.DeleteRecordUseCase,
) *RecordController {
	return &RecordController{
		listUseCase:   listUseCase,
		createUseCase: createUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// List handles GET /records requests. An optional period+anchor query
// pair restricts the list to the resolved period bounds.
func (c *RecordController) List(ctx *gin.Context) {
	input := record.ListRecordsInput{}

	periodStr := ctx.Query("period")
	anchorStr := ctx.Query("anchor")
	if periodStr != "" || anchorStr != "" {
		period := report.Period(periodStr)
		if !report.IsValidPeriod(period) {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "period must be: weekly, monthly, or yearly",
				Code:  string(domainerror.ErrCodeInvalidPeriod),
			})
			return
		}

		anchor, err := time.ParseInLocation("2006-01-02", anchorStr, time.Local)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid anchor format, expected YYYY-MM-DD",
				Code:  string(domainerror.ErrCodeInvalidAnchorDate),
			})
			return
		}

		input.Period = &period
		input.Anchor = &anchor
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to retrieve records",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToRecordListResponse(output))
}

// Create handles POST /records requests.
func (c *RecordController) Create(ctx *gin.Context) {
	var req dto.CreateRecordRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeMissingRecordFields),
		})
		return
	}

	input := record.CreateRecordInput{
		Type:     entity.RecordType(req.Type),
		Amount:   decimal.NewFromFloat(req.Amount),
		Category: req.Category,
		Label:    req.Label,
		Date:     req.Date,
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleRecordError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToRecordResponse(output.Record))
}

// Update handles PATCH /records/:id requests.
func (c *RecordController) Update(ctx *gin.Context) {
	recordID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid record ID format",
			Code:  string(domainerror.ErrCodeInvalidRecordIDFormat),
		})
		return
	}

	var req dto.UpdateRecordRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeMissingRecordFields),
		})
		return
	}

	input := record.UpdateRecordInput{
		ID:       recordID,
		Category: req.Category,
		Label:    req.Label,
		Date:     req.Date,
	}
	if req.Type != nil {
		recordType := entity.RecordType(*req.Type)
		input.Type = &recordType
	}
	if req.Amount != nil {
		amount := decimal.NewFromFloat(*req.Amount)
		input.Amount = &amount
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleRecordError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToRecordResponse(output.Record))
}

// Delete handles DELETE /records/:id requests.
func (c *RecordController) Delete(ctx *gin.Context) {
	recordID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid record ID format",
			Code:  string(domainerror.ErrCodeInvalidRecordIDFormat),
		})
		return
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), record.DeleteRecordInput{ID: recordID}); err != nil {
		c.handleRecordError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// handleRecordError maps record errors to HTTP responses.
func (c *RecordController) handleRecordError(ctx *gin.Context, err error) {
	if errors.Is(err, domainerror.ErrRecordNotFound) {
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{
			Error: "Record not found",
			Code:  string(domainerror.ErrCodeRecordNotFound),
		})
		return
	}

	var recErr *domainerror.RecordError
	if errors.As(err, &recErr) {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: recErr.Message,
			Code:  string(recErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}
