package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/pm-tools/teampulse/pkg/models/domain"
)

type TransactionStore struct {
	db *sql.DB
}

func NewTransactionStore(db *sql.DB) (*TransactionStore, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is nil")
	}
	return &TransactionStore{db: db}, nil
}

const transactionColumns = `id, type, amount, currency, project_id, client_id, category, date`

func (s *TransactionStore) ListByProject(ctx context.Context, projectID string) ([]domain.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE project_id = ? ORDER BY date`
	rows, err := s.db.QueryContext(ctx, query, projectID)
	if err != nil {
		return nil, fmt.Errorf("listing transactions: %w", err)
	}
	defer rows.Close()

	var transactions []domain.Transaction
	for rows.Next() {
		var t domain.Transaction
		var projectID, clientID, category sql.NullString
		err := rows.Scan(&t.ID, &t.Type, &t.Amount, &t.Currency,
			&projectID, &clientID, &category, &t.Date)
		if err != nil {
			return nil, fmt.Errorf("scanning transaction: %w", err)
		}
		t.ProjectID = projectID.String
		t.ClientID = clientID.String
		t.Category = category.String
		transactions = append(transactions, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating transactions: %w", err)
	}
	return transactions, nil
}

func (s *TransactionStore) Create(ctx context.Context, t *domain.Transaction) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	query := `INSERT INTO transactions (` + transactionColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := executor(ctx, s.db).ExecContext(ctx, query,
		t.ID, string(t.Type), t.Amount, t.Currency,
		nullable(t.ProjectID), nullable(t.ClientID), nullable(t.Category), t.Date)
	if err != nil {
		return fmt.Errorf("inserting transaction: %w", err)
	}
	return nil
}

type InvoiceStore struct {
	db *sql.DB
}

func NewInvoiceStore(db *sql.DB) (*InvoiceStore, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is nil")
	}
	return &InvoiceStore{db: db}, nil
}

const invoiceColumns = `id, client_id, project_id, amount, tax, total, status`

func (s *InvoiceStore) ListByProject(ctx context.Context, projectID string) ([]domain.Invoice, error) {
	query := `SELECT ` + invoiceColumns + ` FROM invoices WHERE project_id = ?`
	rows, err := s.db.QueryContext(ctx, query, projectID)
	if err != nil {
		return nil, fmt.Errorf("listing invoices: %w", err)
	}
	defer rows.Close()

	var invoices []domain.Invoice
	for rows.Next() {
		var inv domain.Invoice
		var projectID sql.NullString
		err := rows.Scan(&inv.ID, &inv.ClientID, &projectID,
			&inv.Amount, &inv.Tax, &inv.Total, &inv.Status)
		if err != nil {
			return nil, fmt.Errorf("scanning invoice: %w", err)
		}
		inv.ProjectID = projectID.String
		invoices = append(invoices, inv)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating invoices: %w", err)
	}
	return invoices, nil
}

func (s *InvoiceStore) Create(ctx context.Context, inv *domain.Invoice) error {
	if inv.ID == "" {
		inv.ID = uuid.NewString()
	}
	query := `INSERT INTO invoices (` + invoiceColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?)`
	_, err := executor(ctx, s.db).ExecContext(ctx, query,
		inv.ID, inv.ClientID, nullable(inv.ProjectID),
		inv.Amount, inv.Tax, inv.Total, string(inv.Status))
	if err != nil {
		return fmt.Errorf("inserting invoice: %w", err)
	}
	return nil
}

func nullable(s string) any {
	if s == "" {
		return nil
	}
	return s
}
