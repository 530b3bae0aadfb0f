package store

import "github.com/hance08/concil/internal/model"

// TransactionFinder is the contract every transaction source fulfils:
// given an upper-cased identifier, return the record or ErrRecordNotFound.
type TransactionFinder interface {
	FindTransaction(id string) (model.TransactionRecord, error)
}

type Repository interface {
	// Run Operations
	CreateRun(run model.Run) error
	GetRun(id string) (*model.Run, error)
	ListRuns(limit int) ([]*model.Run, error)
	DeleteRun(id string) error

	// Run Item Operations
	CreateRunItems(runID string, rows []model.ReportRow) error
	GetRunItems(runID string) ([]model.ReportRow, error)

	ExecTx(fn func(Repository) error) error
	Close() error
}
