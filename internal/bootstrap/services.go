package bootstrap

import (
	"github.com/jackc/pgx/v5/pgxpool"
	app "github.com/mohammadpnp/contact-import/internal/application/contact"
	"github.com/mohammadpnp/contact-import/internal/infrastructure/repository"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Services holds the use cases shared by the HTTP server and the CLI.
type Services struct {
	ImportContacts   app.ImportContacts
	DetectDuplicates app.DetectDuplicates
	RemoveDuplicates app.RemoveDuplicates
	GetImportRun     app.GetImportRun
	ListImportRuns   app.ListImportRuns
}

func NewServices(db *gorm.DB, pool *pgxpool.Pool, log *zap.Logger) Services {
	contactRepo := repository.NewContactRepository(db)
	companyRepo := repository.NewCompanyRepository(db)
	importRunRepo := repository.NewImportRunRepository(db)
	scanRepo := repository.NewContactScanRepository(pool)

	return Services{
		ImportContacts:   app.NewImportContacts(contactRepo, companyRepo, importRunRepo, log),
		DetectDuplicates: app.NewDetectDuplicates(scanRepo),
		RemoveDuplicates: app.NewRemoveDuplicates(contactRepo),
		GetImportRun:     app.NewGetImportRun(importRunRepo),
		ListImportRuns:   app.NewListImportRuns(importRunRepo),
	}
}
