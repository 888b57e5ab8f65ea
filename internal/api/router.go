package api

import (
	"github.com/gin-gonic/gin"

	v1 "github.com/studioledger/studioledger/internal/api/v1"
	"github.com/studioledger/studioledger/internal/config"
	"github.com/studioledger/studioledger/internal/rest/middleware"
	"github.com/studioledger/studioledger/internal/types"
)

type Handlers struct {
	Health    *v1.HealthHandler
	Quotation *v1.QuotationHandler
	Invoice   *v1.InvoiceHandler
	Expense   *v1.ExpenseHandler
	Planning  *v1.PlanningHandler
	Ticket    *v1.TicketHandler
	Tracker   *v1.TrackerHandler
}

func NewRouter(handlers Handlers, cfg *config.Configuration) *gin.Engine {
	if cfg.Deployment.Mode == types.ModeAPI {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.CORSMiddleware)
	router.Use(middleware.RequestMiddleware)
	router.Use(middleware.ErrorHandler())

	router.GET("/health", handlers.Health.Health)

	v1Group := router.Group("/v1")
	registerV1Routes(v1Group, handlers)

	return router
}

func registerV1Routes(router *gin.RouterGroup, handlers Handlers) {
	quotations := router.Group("/quotations")
	{
		quotations.POST("", handlers.Quotation.CreateQuotation)
		quotations.GET("", handlers.Quotation.ListQuotations)
		quotations.GET("/:id", handlers.Quotation.GetQuotation)
		quotations.GET("/number/:number", handlers.Quotation.GetQuotationByNumber)
		quotations.PUT("/:id", handlers.Quotation.UpdateQuotation)
		quotations.DELETE("/:id", handlers.Quotation.DeleteQuotation)
		quotations.POST("/:id/duplicate", handlers.Quotation.DuplicateQuotation)
		quotations.POST("/:id/accept", handlers.Quotation.AcceptQuotation)
		quotations.POST("/:id/reject", handlers.Quotation.RejectQuotation)
	}

	invoices := router.Group("/invoices")
	{
		invoices.POST("", handlers.Invoice.CreateInvoice)
		invoices.POST("/from-quotation", handlers.Invoice.CreateInvoiceFromQuotation)
		invoices.GET("", handlers.Invoice.ListInvoices)
		invoices.GET("/:id", handlers.Invoice.GetInvoice)
		invoices.GET("/number/:number", handlers.Invoice.GetInvoiceByNumber)
		invoices.PUT("/:id", handlers.Invoice.UpdateInvoice)
		invoices.DELETE("/:id", handlers.Invoice.DeleteInvoice)
		invoices.POST("/:id/pay", handlers.Invoice.PayInvoice)
	}

	expenses := router.Group("/expenses")
	{
		expenses.POST("", handlers.Expense.CreateExpense)
		expenses.POST("/from-invoice", handlers.Expense.CreateExpenseFromInvoice)
		expenses.POST("/from-planning", handlers.Expense.CreateExpenseFromPlanning)
		expenses.GET("", handlers.Expense.ListExpenses)
		expenses.GET("/:id", handlers.Expense.GetExpense)
		expenses.GET("/number/:number", handlers.Expense.GetExpenseByNumber)
		expenses.PUT("/:id", handlers.Expense.UpdateExpense)
		expenses.DELETE("/:id", handlers.Expense.DeleteExpense)
	}

	plannings := router.Group("/plannings")
	{
		plannings.POST("", handlers.Planning.CreatePlanning)
		plannings.GET("", handlers.Planning.ListPlannings)
		plannings.GET("/:id", handlers.Planning.GetPlanning)
		plannings.GET("/number/:number", handlers.Planning.GetPlanningByNumber)
		plannings.PUT("/:id", handlers.Planning.UpdatePlanning)
		plannings.DELETE("/:id", handlers.Planning.DeletePlanning)
	}

	tickets := router.Group("/tickets")
	{
		tickets.POST("", handlers.Ticket.CreateTicket)
		tickets.GET("", handlers.Ticket.ListTickets)
		tickets.GET("/:id", handlers.Ticket.GetTicket)
		tickets.GET("/number/:number", handlers.Ticket.GetTicketByNumber)
		tickets.PUT("/:id", handlers.Ticket.UpdateTicket)
		tickets.DELETE("/:id", handlers.Ticket.DeleteTicket)
		tickets.POST("/:id/bill", handlers.Ticket.BillTicket)
		tickets.POST("/:id/settle", handlers.Ticket.SettleTicket)
	}

	trackers := router.Group("/trackers")
	{
		trackers.GET("", handlers.Tracker.ListTrackers)
		trackers.GET("/:id", handlers.Tracker.GetTracker)
		trackers.PUT("/:id", handlers.Tracker.UpdateTrackerUserFields)
		trackers.DELETE("/:id", handlers.Tracker.DeleteTracker)
	}
}
