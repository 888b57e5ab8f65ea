package main

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"

	"github.com/studioledger/studioledger/internal/api"
	v1 "github.com/studioledger/studioledger/internal/api/v1"
	"github.com/studioledger/studioledger/internal/config"
	"github.com/studioledger/studioledger/internal/logger"
	"github.com/studioledger/studioledger/internal/postgres"
	"github.com/studioledger/studioledger/internal/repository"
	"github.com/studioledger/studioledger/internal/service"
	"github.com/studioledger/studioledger/internal/validator"
)

// @title StudioLedger API
// @version 1.0
// @description Business document service for production studios
// @BasePath /v1
// @schemes http https

func init() {
	// Set UTC timezone for the entire application
	time.Local = time.UTC
}

func main() {
	app := fx.New(
		fx.Provide(
			// Validator
			validator.NewValidator,

			// Config
			config.NewConfig,

			// Logger
			logger.NewLogger,

			// Postgres
			postgres.NewDB,
			postgres.NewClient,

			// Repositories
			repository.NewSequenceRepository,
			repository.NewQuotationRepository,
			repository.NewInvoiceRepository,
			repository.NewExpenseRepository,
			repository.NewPlanningRepository,
			repository.NewTicketRepository,
			repository.NewTrackerRepository,

			// Services
			service.NewServiceParams,
			service.NewAllocatorService,
			service.NewSnapshotService,
			service.NewTrackerService,
			service.NewQuotationService,
			service.NewInvoiceService,
			service.NewExpenseService,
			service.NewPlanningService,
			service.NewTicketService,

			// API
			provideHandlers,
			api.NewRouter,
		),
		fx.Invoke(startServer),
	)
	app.Run()
}

func provideHandlers(
	logger *logger.Logger,
	quotationService service.QuotationService,
	invoiceService service.InvoiceService,
	expenseService service.ExpenseService,
	planningService service.PlanningService,
	ticketService service.TicketService,
	trackerService service.TrackerService,
) api.Handlers {
	return api.Handlers{
		Health:    v1.NewHealthHandler(logger),
		Quotation: v1.NewQuotationHandler(quotationService, logger),
		Invoice:   v1.NewInvoiceHandler(invoiceService, logger),
		Expense:   v1.NewExpenseHandler(expenseService, logger),
		Planning:  v1.NewPlanningHandler(planningService, logger),
		Ticket:    v1.NewTicketHandler(ticketService, logger),
		Tracker:   v1.NewTrackerHandler(trackerService, logger),
	}
}

func startServer(
	lc fx.Lifecycle,
	r *gin.Engine,
	cfg *config.Configuration,
	log *logger.Logger,
) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Infof("Starting API server on %s", cfg.Server.Address)
			go func() {
				if err := r.Run(cfg.Server.Address); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info("Shutting down server...")
			return nil
		},
	})
}
