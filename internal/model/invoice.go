package model

const (
	InvoiceStatusPending = "pending"
	InvoiceStatusPaid    = "paid"
	InvoiceStatusOverdue = "overdue"
)

// InvoiceStatuses lists the accepted invoice states.
var InvoiceStatuses = []string{
	InvoiceStatusPending,
	InvoiceStatusPaid,
	InvoiceStatusOverdue,
}

// Invoice represents an invoice row. Amount is stored as integer cents.
type Invoice struct {
	ID         string `json:"id"`
	CustomerID string `json:"customer_id"`
	Amount     int64  `json:"amount"` // In cents
	Status     string `json:"status"`
	Date       string `json:"date"` // YYYY-MM-DD, set at creation
}

// InvoiceRow is an invoice joined with its customer, as shown in the
// dashboard invoice table.
type InvoiceRow struct {
	ID            string `json:"id"`
	CustomerID    string `json:"customer_id"`
	Amount        int64  `json:"amount"`
	Status        string `json:"status"`
	Date          string `json:"date"`
	CustomerName  string `json:"customer_name"`
	CustomerEmail string `json:"customer_email"`
	ImageURL      string `json:"image_url"`
}
