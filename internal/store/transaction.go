package store

import (
	"fmt"
	"sort"
	"strings"

	"github.com/hance08/concil/internal/constants"
	"github.com/hance08/concil/internal/model"
	"github.com/shopspring/decimal"
)

// TransactionTable is the read-only transaction lookup table of the portal.
// It is filled once by NewTransactionTable and never mutated afterwards, so
// concurrent readers need no locking.
type TransactionTable struct {
	records map[string]model.TransactionRecord
}

func NewTransactionTable(records ...model.TransactionRecord) (*TransactionTable, error) {
	table := &TransactionTable{records: make(map[string]model.TransactionRecord, len(records))}

	for _, rec := range records {
		key := strings.ToUpper(strings.TrimSpace(rec.ID))
		if key == "" {
			return nil, fmt.Errorf("transaction id is required")
		}
		if _, ok := table.records[key]; ok {
			return nil, fmt.Errorf("transaction '%s': %w", key, ErrDuplicateTransaction)
		}

		rec.ID = key
		if rec.PaymentDate != nil {
			date := *rec.PaymentDate
			rec.PaymentDate = &date
		}
		table.records[key] = rec
	}

	return table, nil
}

// FindTransaction looks up an already upper-cased id.
func (t *TransactionTable) FindTransaction(id string) (model.TransactionRecord, error) {
	rec, ok := t.records[id]
	if !ok {
		return model.TransactionRecord{}, fmt.Errorf("transaction '%s': %w", id, ErrRecordNotFound)
	}

	if rec.PaymentDate != nil {
		date := *rec.PaymentDate
		rec.PaymentDate = &date
	}
	return rec, nil
}

func (t *TransactionTable) IDs() []string {
	ids := make([]string, 0, len(t.records))
	for id := range t.records {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

func (t *TransactionTable) Len() int {
	return len(t.records)
}

// SampleTransactions returns the demo data served by the portal.
func SampleTransactions() []model.TransactionRecord {
	paid := func(date string) *string { return &date }

	return []model.TransactionRecord{
		{
			ID: "TX-001", CustomerName: "João Silva", SaleDate: "01/12/2025", PaymentDate: paid("01/12/2025"),
			PaymentMethod: "PIX", GrossAmount: decimal.RequireFromString("150.00"), GatewayFee: decimal.RequireFromString("0.75"),
			Status: constants.StatusApproved,
		},
		{
			ID: "TX-002", CustomerName: "Maria Santos", SaleDate: "02/12/2025", PaymentDate: paid("02/01/2026"),
			PaymentMethod: "Cartão de Crédito", GrossAmount: decimal.RequireFromString("300.00"), GatewayFee: decimal.RequireFromString("7.50"),
			Status: constants.StatusApproved,
		},
		{
			ID: "TX-003", CustomerName: "Pedro Oliveira", SaleDate: "03/12/2025", PaymentDate: paid("04/12/2025"),
			PaymentMethod: "Cartão de Débito", GrossAmount: decimal.RequireFromString("80.00"), GatewayFee: decimal.RequireFromString("1.44"),
			Status: constants.StatusApproved,
		},
		{
			ID: "TX-004", CustomerName: "Ana Costa", SaleDate: "03/12/2025", PaymentDate: nil,
			PaymentMethod: "Boleto", GrossAmount: decimal.RequireFromString("500.00"), GatewayFee: decimal.RequireFromString("3.50"),
			Status: constants.StatusPending,
		},
		{
			ID: "TX-005", CustomerName: "Carlos Souza", SaleDate: "04/12/2025", PaymentDate: paid("04/12/2025"),
			PaymentMethod: "PIX", GrossAmount: decimal.RequireFromString("1200.00"), GatewayFee: decimal.RequireFromString("6.00"),
			Status: constants.StatusApproved,
		},
	}
}

// NewSampleTable builds the table over SampleTransactions.
func NewSampleTable() *TransactionTable {
	table, err := NewTransactionTable(SampleTransactions()...)
	if err != nil {
		panic(fmt.Sprintf("sample transactions are invalid: %v", err))
	}
	return table
}
