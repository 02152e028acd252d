package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/moneymap/backend/internal/application/usecase/report"
	domainerror "github.com/moneymap/backend/internal/domain/error"
	"github.com/moneymap/backend/internal/integration/entrypoint/dto"
)

// ReportController handles reporting endpoints.
type ReportController struct {
	getReportUseCase *report.GetReportUseCase
}

// NewReportController creates a new report controller instance.
func NewReportController(getReportUseCase *report.GetReportUseCase) *ReportController {
	return &ReportController{
		getReportUseCase: getReportUseCase,
	}
}

// GetReport handles GET /reports requests. The period defaults to
// monthly and the anchor to today when the query omits them.
func (c *ReportController) GetReport(ctx *gin.Context) {
	periodStr := ctx.DefaultQuery("period", string(report.PeriodMonthly))
	anchorStr := ctx.Query("anchor")

	period := report.Period(periodStr)
	if !report.IsValidPeriod(period) {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "period must be: weekly, monthly, or yearly",
			Code:  string(domainerror.ErrCodeInvalidPeriod),
		})
		return
	}

	anchor := time.Now()
	if anchorStr != "" {
		parsed, err := time.ParseInLocation("2006-01-02", anchorStr, time.Local)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid anchor format, expected YYYY-MM-DD",
				Code:  string(domainerror.ErrCodeInvalidAnchorDate),
			})
			return
		}
		anchor = parsed
	}

	input := report.GetReportInput{
		Period: period,
		Anchor: anchor,
	}

	output, err := c.getReportUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleReportError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToReportResponse(output))
}

// handleReportError maps report errors to HTTP responses.
func (c *ReportController) handleReportError(ctx *gin.Context, err error) {
	var repErr *domainerror.ReportError
	if errors.As(err, &repErr) {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: repErr.Message,
			Code:  string(repErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}
