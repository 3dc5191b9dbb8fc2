package domain

import "time"

type TransactionType string

const (
	TransactionIncome  TransactionType = "income"
	TransactionExpense TransactionType = "expense"
	TransactionRefund  TransactionType = "refund"
)

type Transaction struct {
	ID        string
	Type      TransactionType
	Amount    float64
	Currency  string
	ProjectID string // optional
	ClientID  string // optional
	Category  string
	Date      time.Time
}

type InvoiceStatus string

const (
	InvoiceDraft     InvoiceStatus = "draft"
	InvoiceSent      InvoiceStatus = "sent"
	InvoicePaid      InvoiceStatus = "paid"
	InvoiceOverdue   InvoiceStatus = "overdue"
	InvoiceCancelled InvoiceStatus = "cancelled"
)

type Invoice struct {
	ID        string
	ClientID  string
	ProjectID string // optional
	Amount    float64
	Tax       float64
	Total     float64 // Amount + Tax
	Status    InvoiceStatus
}

type User struct {
	ID   string
	Name string
}
