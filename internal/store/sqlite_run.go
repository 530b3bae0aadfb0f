package store

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/hance08/concil/internal/model"
	sqlite "github.com/mattn/go-sqlite3"
	"github.com/shopspring/decimal"
)

const runColumns = `id, started_at, finished_at, input_path, output_path, gateway,
        read_count, processed, skipped, total_gross, total_net, total_profit`

func (s *Store) CreateRun(run model.Run) error {
	_, err := s.db.Exec(`
        INSERT INTO runs (`+runColumns+`)
        VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?);
    `,
		run.ID, run.StartedAt.Unix(), run.FinishedAt.Unix(), run.InputPath, run.OutputPath, run.Gateway,
		run.Read, run.Processed, run.Skipped,
		run.TotalGross.String(), run.TotalNet.String(), run.TotalProfit.String(),
	)
	if err != nil {
		var sqliteErr sqlite.Error
		if errors.As(err, &sqliteErr) && errors.Is(sqliteErr.Code, sqlite.ErrConstraint) {
			return fmt.Errorf("failed to create run '%s': %w", run.ID, ErrConstraintViolation)
		}
		return fmt.Errorf("failed to insert run: %w", err)
	}
	return nil
}

// GetRun accepts a full run id or an unambiguous prefix of one. The prefix
// is compared literally and case-sensitively.
func (s *Store) GetRun(id string) (*model.Run, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, ErrEmptyRunID
	}

	rows, err := s.db.Query(`
        SELECT `+runColumns+`
        FROM runs
        WHERE substr(id, 1, length(?)) = ?
        ORDER BY id = ? DESC
        LIMIT 2
    `, id, id, id)
	if err != nil {
		return nil, fmt.Errorf("failed to query run: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	runs, err := scanRuns(rows)
	if err != nil {
		return nil, err
	}

	switch {
	case len(runs) == 0:
		return nil, fmt.Errorf("run '%s': %w", id, ErrRecordNotFound)
	case runs[0].ID == id || len(runs) == 1:
		return runs[0], nil
	default:
		return nil, fmt.Errorf("run id prefix '%s' is ambiguous", id)
	}
}

func (s *Store) ListRuns(limit int) ([]*model.Run, error) {
	if limit <= 0 {
		limit = 100
	}

	rows, err := s.db.Query(`
        SELECT `+runColumns+`
        FROM runs
        ORDER BY started_at DESC, id DESC
        LIMIT ?
    `, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query runs: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	return scanRuns(rows)
}

func (s *Store) DeleteRun(id string) error {
	result, err := s.db.Exec("DELETE FROM runs WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete run: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check deleted rows: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("run '%s': %w", id, ErrRecordNotFound)
	}
	return nil
}

// CreateRunItems inserts the report rows of a run.
// It relies on the caller (Service layer) to wrap it in ExecTx for atomicity.
func (s *Store) CreateRunItems(runID string, rows []model.ReportRow) error {
	stmt, err := s.db.Prepare(`
        INSERT INTO run_items (run_id, sale_id, customer, gross_amount, payment_method, gateway_fee,
            additional_fee, net_amount, product_cost, profit, roi, status)
        VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?);
    `)
	if err != nil {
		return fmt.Errorf("failed to prepare run item SQL: %w", err)
	}
	defer func() {
		_ = stmt.Close()
	}()

	for _, row := range rows {
		_, err := stmt.Exec(
			runID, row.SaleID, row.Customer, row.GrossAmount.String(), row.PaymentMethod,
			row.GatewayFee.String(), row.AdditionalFee.String(), row.NetAmount.String(),
			row.ProductCost.String(), row.Profit.String(), row.ROI.String(), row.Status,
		)
		if err != nil {
			var sqliteErr sqlite.Error
			if errors.As(err, &sqliteErr) && errors.Is(sqliteErr.Code, sqlite.ErrConstraint) {
				return fmt.Errorf("failed to insert run item (sale: %s): %w", row.SaleID, ErrConstraintViolation)
			}
			return fmt.Errorf("failed to insert run item (sale: %s): %w", row.SaleID, err)
		}
	}

	return nil
}

func (s *Store) GetRunItems(runID string) ([]model.ReportRow, error) {
	rows, err := s.db.Query(`
        SELECT sale_id, customer, gross_amount, payment_method, gateway_fee, additional_fee,
            net_amount, product_cost, profit, roi, status
        FROM run_items
        WHERE run_id = ?
        ORDER BY id
    `, runID)
	if err != nil {
		return nil, fmt.Errorf("failed to query run items: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var items []model.ReportRow
	for rows.Next() {
		var row model.ReportRow
		var gross, gatewayFee, additionalFee, net, cost, profit, roi string

		err := rows.Scan(
			&row.SaleID, &row.Customer, &gross, &row.PaymentMethod, &gatewayFee,
			&additionalFee, &net, &cost, &profit, &roi, &row.Status,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan run item: %w", err)
		}

		amounts := []struct {
			raw string
			dst *decimal.Decimal
		}{
			{gross, &row.GrossAmount},
			{gatewayFee, &row.GatewayFee},
			{additionalFee, &row.AdditionalFee},
			{net, &row.NetAmount},
			{cost, &row.ProductCost},
			{profit, &row.Profit},
			{roi, &row.ROI},
		}
		for _, a := range amounts {
			if *a.dst, err = decimal.NewFromString(a.raw); err != nil {
				return nil, fmt.Errorf("corrupt amount %q in run item (sale: %s): %w", a.raw, row.SaleID, err)
			}
		}

		items = append(items, row)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating run items: %w", err)
	}

	return items, nil
}

func scanRuns(rows *sql.Rows) ([]*model.Run, error) {
	var runs []*model.Run
	for rows.Next() {
		run := &model.Run{}
		var startedAt, finishedAt int64
		var gross, net, profit string

		err := rows.Scan(
			&run.ID, &startedAt, &finishedAt, &run.InputPath, &run.OutputPath, &run.Gateway,
			&run.Read, &run.Processed, &run.Skipped, &gross, &net, &profit,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}

		run.StartedAt = time.Unix(startedAt, 0)
		run.FinishedAt = time.Unix(finishedAt, 0)
		if run.TotalGross, err = decimal.NewFromString(gross); err != nil {
			return nil, fmt.Errorf("corrupt total gross in run %s: %w", run.ID, err)
		}
		if run.TotalNet, err = decimal.NewFromString(net); err != nil {
			return nil, fmt.Errorf("corrupt total net in run %s: %w", run.ID, err)
		}
		if run.TotalProfit, err = decimal.NewFromString(profit); err != nil {
			return nil, fmt.Errorf("corrupt total profit in run %s: %w", run.ID, err)
		}

		runs = append(runs, run)
	}

	return runs, rows.Err()
}
