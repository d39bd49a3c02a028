package handler

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"acme_dashboard/internal/service"

	"github.com/gin-gonic/gin"
)

// InvoiceHandler handles invoice form submissions and the dashboard
// invoice table
type InvoiceHandler struct {
	service service.InvoiceService
}

// NewInvoiceHandler creates a new InvoiceHandler
func NewInvoiceHandler(s service.InvoiceService) *InvoiceHandler {
	return &InvoiceHandler{service: s}
}

func (h *InvoiceHandler) CreateInvoice(c *gin.Context) {
	outcome := h.service.CreateInvoice(c.Request.Context(), nil, formFields(c))
	if outcome.Redirected() {
		c.Redirect(http.StatusSeeOther, outcome.RedirectTo)
		return
	}
	if len(outcome.State.Errors) > 0 {
		c.JSON(http.StatusUnprocessableEntity, outcome.State)
		return
	}
	c.JSON(http.StatusInternalServerError, outcome.State)
}

func (h *InvoiceHandler) UpdateInvoice(c *gin.Context) {
	id := c.Param("id")
	outcome := h.service.UpdateInvoice(c.Request.Context(), id, nil, formFields(c))
	if outcome.Redirected() {
		c.Redirect(http.StatusSeeOther, outcome.RedirectTo)
		return
	}
	if len(outcome.State.Errors) > 0 {
		c.JSON(http.StatusUnprocessableEntity, outcome.State)
		return
	}
	c.JSON(http.StatusInternalServerError, outcome.State)
}

func (h *InvoiceHandler) DeleteInvoice(c *gin.Context) {
	state := h.service.DeleteInvoice(c.Request.Context(), c.Param("id"))
	if state.Message == "Deleted Invoice." {
		c.JSON(http.StatusOK, state)
		return
	}
	c.JSON(http.StatusInternalServerError, state)
}

func (h *InvoiceHandler) GetInvoice(c *gin.Context) {
	invoice, err := h.service.GetInvoice(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrInvoiceNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		log.Printf("Error getting invoice: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve invoice"})
		return
	}
	c.JSON(http.StatusOK, invoice)
}

func (h *InvoiceHandler) ListInvoices(c *gin.Context) {
	query := c.Query("query")
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid page number"})
		return
	}

	invoices, totalPages, err := h.service.ListInvoices(c.Request.Context(), query, page)
	if err != nil {
		log.Printf("Error listing invoices: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve invoices"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"invoices":    invoices,
		"total_pages": totalPages,
	})
}

func (h *InvoiceHandler) ListCustomers(c *gin.Context) {
	customers, err := h.service.ListCustomers(c.Request.Context())
	if err != nil {
		log.Printf("Error listing customers: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve customers"})
		return
	}
	c.JSON(http.StatusOK, customers)
}

// RegisterInvoiceRoutes registers the dashboard invoice routes. All of
// them sit behind the session auth middleware, like the original
// dashboard area.
func (h *InvoiceHandler) RegisterInvoiceRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	invoiceRoutes := rg.Group("/invoices")
	invoiceRoutes.Use(authMW)
	{
		invoiceRoutes.POST("", h.CreateInvoice)
		invoiceRoutes.GET("", h.ListInvoices)
		invoiceRoutes.GET("/:id", h.GetInvoice)
		invoiceRoutes.PUT("/:id", h.UpdateInvoice)
		invoiceRoutes.DELETE("/:id", h.DeleteInvoice)
	}

	customerRoutes := rg.Group("/customers")
	customerRoutes.Use(authMW)
	{
		customerRoutes.GET("", h.ListCustomers)
	}
}
