package sqlite

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mockDB(t *testing.T) (*ProjectStore, *TransactionStore, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	projects, err := NewProjectStore(db)
	require.NoError(t, err)
	transactions, err := NewTransactionStore(db)
	require.NoError(t, err)
	return projects, transactions, mock
}

func TestProjectListQueryFailure(t *testing.T) {
	projects, _, mock := mockDB(t)
	mock.ExpectQuery("SELECT (.+) FROM projects").
		WillReturnError(errors.New("disk I/O error"))

	_, err := projects.List(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "listing projects")
	assert.Contains(t, err.Error(), "disk I/O error")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProjectGetByIDScanFailure(t *testing.T) {
	projects, _, mock := mockDB(t)
	rows := sqlmock.NewRows([]string{"id", "name", "status", "budget", "spent", "progress"}).
		AddRow("p1", "Atlas", "active", "not-a-number", 0.0, 0)
	mock.ExpectQuery("SELECT (.+) FROM projects WHERE id = ?").
		WithArgs("p1").
		WillReturnRows(rows)

	_, err := projects.GetByID(context.Background(), "p1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "scanning project")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTransactionRowIterationFailure(t *testing.T) {
	_, transactions, mock := mockDB(t)
	rows := sqlmock.NewRows([]string{"id", "type", "amount", "currency", "project_id", "client_id", "category", "date"}).
		AddRow("tx1", "expense", 100.0, "USD", "p1", nil, nil, "2026-01-02T00:00:00Z").
		RowError(0, errors.New("connection reset"))
	mock.ExpectQuery("SELECT (.+) FROM transactions").
		WithArgs("p1").
		WillReturnRows(rows)

	_, err := transactions.ListByProject(context.Background(), "p1")
	require.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
