package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math"
	"time"

	"acme_dashboard/internal/model"
	"acme_dashboard/internal/repository"
	"acme_dashboard/internal/schema"
	"acme_dashboard/internal/viewcache"
)

var ErrInvoiceNotFound = errors.New("invoice not found")

// InvoicesPath is the dashboard view invalidated and navigated to after
// a successful invoice mutation.
const InvoicesPath = "/dashboard/invoices"

// InvoicesPerPage matches the dashboard table page size.
const InvoicesPerPage = 6

// InvoiceService validates invoice form submissions and applies them to
// storage. Each method is a single stateless request-scoped invocation:
// at most one write per call, no retries, no partial-write recovery.
type InvoiceService interface {
	CreateInvoice(ctx context.Context, prev *model.State, form map[string]string) model.Outcome
	UpdateInvoice(ctx context.Context, id string, prev *model.State, form map[string]string) model.Outcome
	DeleteInvoice(ctx context.Context, id string) *model.State
	GetInvoice(ctx context.Context, id string) (*model.Invoice, error)
	ListInvoices(ctx context.Context, query string, page int) ([]model.InvoiceRow, int, error)
	ListCustomers(ctx context.Context) ([]model.Customer, error)
}

type invoiceService struct {
	invoices  repository.InvoiceRepository
	customers repository.CustomerRepository
	views     viewcache.Revalidator
}

// NewInvoiceService creates a new InvoiceService
func NewInvoiceService(invoices repository.InvoiceRepository, customers repository.CustomerRepository, views viewcache.Revalidator) InvoiceService {
	return &invoiceService{invoices: invoices, customers: customers, views: views}
}

// CreateInvoice validates the raw fields and inserts a new invoice dated
// today (UTC). The previous state is part of the submission contract but
// carries nothing the handler needs.
func (s *invoiceService) CreateInvoice(ctx context.Context, prev *model.State, form map[string]string) model.Outcome {
	values, fieldErrs := schema.Invoice.Validate(form)
	if fieldErrs != nil {
		return model.Outcome{State: &model.State{
			Errors:  fieldErrs,
			Message: "Missing Fields. Failed to Create Invoice.",
		}}
	}

	invoice := &model.Invoice{
		CustomerID: values.String("customerId"),
		Amount:     toCents(values.Number("amount")),
		Status:     values.String("status"),
		Date:       time.Now().UTC().Format("2006-01-02"),
	}

	if err := s.invoices.Create(ctx, invoice); err != nil {
		log.Printf("Error creating invoice: %v", err)
		return model.Outcome{State: &model.State{
			Message: "Database Error: Failed to Create Invoice.",
		}}
	}

	s.views.RevalidatePath(InvoicesPath)
	return model.Outcome{RedirectTo: InvoicesPath}
}

// UpdateInvoice validates the raw fields and fully replaces customer,
// amount and status of the invoice with the given id. The creation date
// is left untouched.
func (s *invoiceService) UpdateInvoice(ctx context.Context, id string, prev *model.State, form map[string]string) model.Outcome {
	values, fieldErrs := schema.Invoice.Validate(form)
	if fieldErrs != nil {
		return model.Outcome{State: &model.State{
			Errors:  fieldErrs,
			Message: "Missing Fields. Failed to Update Invoice.",
		}}
	}

	invoice := &model.Invoice{
		ID:         id,
		CustomerID: values.String("customerId"),
		Amount:     toCents(values.Number("amount")),
		Status:     values.String("status"),
	}

	if err := s.invoices.Update(ctx, invoice); err != nil {
		log.Printf("Error updating invoice %s: %v", id, err)
		return model.Outcome{State: &model.State{
			Message: "Database Error: Failed to Update Invoice.",
		}}
	}

	s.views.RevalidatePath(InvoicesPath)
	return model.Outcome{RedirectTo: InvoicesPath}
}

// DeleteInvoice removes the invoice with the given id. The id is assumed
// well-formed; no field validation happens here.
func (s *invoiceService) DeleteInvoice(ctx context.Context, id string) *model.State {
	if err := s.invoices.Delete(ctx, id); err != nil {
		log.Printf("Error deleting invoice %s: %v", id, err)
		return &model.State{Message: "Database Error: Failed to Delete Invoice."}
	}

	s.views.RevalidatePath(InvoicesPath)
	return &model.State{Message: "Deleted Invoice."}
}

// GetInvoice fetches one invoice for the edit form
func (s *invoiceService) GetInvoice(ctx context.Context, id string) (*model.Invoice, error) {
	invoice, err := s.invoices.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to find invoice: %w", err)
	}
	if invoice == nil {
		return nil, ErrInvoiceNotFound
	}
	return invoice, nil
}

// ListInvoices returns one page of the filtered invoice table plus the
// total page count for the pagination control.
func (s *invoiceService) ListInvoices(ctx context.Context, query string, page int) ([]model.InvoiceRow, int, error) {
	if page < 1 {
		page = 1
	}
	offset := (page - 1) * InvoicesPerPage

	invoices, err := s.invoices.FindFiltered(ctx, query, InvoicesPerPage, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list invoices: %w", err)
	}
	count, err := s.invoices.CountFiltered(ctx, query)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count invoices: %w", err)
	}
	totalPages := (count + InvoicesPerPage - 1) / InvoicesPerPage
	return invoices, totalPages, nil
}

// ListCustomers returns the reference data for the invoice form picklist
func (s *invoiceService) ListCustomers(ctx context.Context) ([]model.Customer, error) {
	customers, err := s.customers.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list customers: %w", err)
	}
	return customers, nil
}

// toCents converts a decimal amount into a non-negative integer number
// of cents for storage.
func toCents(amount float64) int64 {
	return int64(math.Round(amount * 100))
}
