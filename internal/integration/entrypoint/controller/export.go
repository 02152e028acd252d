package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/moneymap/backend/internal/application/usecase/export"
	"github.com/moneymap/backend/internal/integration/entrypoint/dto"
)

// ExportController handles record export endpoints.
type ExportController struct {
	exportCSVUseCase *export.ExportRecordsUseCase
	exportPDFUseCase *export.ExportRecordsUseCase
}

// NewExportController creates a new export controller instance.
func NewExportController(
	exportCSVUseCase *export.ExportRecordsUseCase,
	exportPDFUseCase *export.ExportRecordsUseCase,
) *ExportController {
	return &ExportController{
		exportCSVUseCase: exportCSVUseCase,
		exportPDFUseCase: exportPDFUseCase,
	}
}

// ExportCSV handles GET /exports/csv requests.
func (c *ExportController) ExportCSV(ctx *gin.Context) {
	c.serve(ctx, c.exportCSVUseCase)
}

// ExportPDF handles GET /exports/pdf requests.
func (c *ExportController) ExportPDF(ctx *gin.Context) {
	c.serve(ctx, c.exportPDFUseCase)
}

// serve runs an export use case and streams the document as a download.
func (c *ExportController) serve(ctx *gin.Context, useCase *export.ExportRecordsUseCase) {
	output, err := useCase.Execute(ctx.Request.Context())
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to generate export",
		})
		return
	}

	ctx.Header("Content-Disposition", `attachment; filename="`+output.Filename+`"`)
	ctx.Data(http.StatusOK, output.ContentType, output.Document)
}
