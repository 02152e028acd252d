// Package dependency provides dependency injection for the application.
package dependency

import (
	"gorm.io/gorm"

	"github.com/moneymap/backend/config"
	"github.com/moneymap/backend/internal/application/adapter"
	"github.com/moneymap/backend/internal/application/usecase/export"
	"github.com/moneymap/backend/internal/application/usecase/record"
	"github.com/moneymap/backend/internal/application/usecase/report"
	"github.com/moneymap/backend/internal/infra/server/router"
	"github.com/moneymap/backend/internal/integration/entrypoint/controller"
	exportintegration "github.com/moneymap/backend/internal/integration/export"
	"github.com/moneymap/backend/internal/integration/persistence"
)

// Injector holds all application dependencies.
type Injector struct {
	Config *config.Config
	DB     *gorm.DB
	Router *router.Router
}

// NewInjector creates a new dependency injector with all dependencies wired.
// The report cache is passed in so the caller decides between Redis and the
// noop fallback.
func NewInjector(cfg *config.Config, db *gorm.DB, reportCache adapter.ReportCache) *Injector {
	// Create repositories
	recordRepo := persistence.NewRecordRepository(db)

	// Create exporters
	csvExporter := exportintegration.NewCSVExporter()
	pdfExporter := exportintegration.NewPDFExporter()

	// Create record use cases
	listRecordsUseCase := record.NewListRecordsUseCase(recordRepo)
	createRecordUseCase := record.NewCreateRecordUseCase(recordRepo, reportCache)
	updateRecordUseCase := record.NewUpdateRecordUseCase(recordRepo, reportCache)
	deleteRecordUseCase := record.NewDeleteRecordUseCase(recordRepo, reportCache)

	// Create report use case
	getReportUseCase := report.NewGetReportUseCase(recordRepo, reportCache, cfg.Report.CacheTTL)

	// Create export use cases
	exportCSVUseCase := export.NewExportRecordsUseCase(recordRepo, csvExporter)
	exportPDFUseCase := export.NewExportRecordsUseCase(recordRepo, pdfExporter)

	// Create controllers
	healthController := controller.NewHealthController(func() bool {
		sqlDB, err := db.DB()
		if err != nil {
			return false
		}
		return sqlDB.Ping() == nil
	})

	recordController := controller.NewRecordController(
		listRecordsUseCase,
		createRecordUseCase,
		updateRecordUseCase,
		deleteRecordUseCase,
	)

	reportController := controller.NewReportController(getReportUseCase)

	exportController := controller.NewExportController(
		exportCSVUseCase,
		exportPDFUseCase,
	)

	// Create router
	appRouter := router.NewRouter(
		healthController,
		recordController,
		reportController,
		exportController,
	)

	return &Injector{
		Config: cfg,
		DB:     db,
		Router: appRouter,
	}
}
