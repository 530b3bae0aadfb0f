package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/hance08/concil/internal/gateway"
	"github.com/hance08/concil/internal/model"
	"github.com/hance08/concil/internal/report"
	"github.com/hance08/concil/internal/rules"
	"github.com/hance08/concil/internal/sales"
	"github.com/hance08/concil/internal/store"
)

var (
	ErrNothingProcessed = errors.New("no sale could be reconciled")
	ErrUnknownGateway   = errors.New("unknown gateway")
)

type ReconcileService struct {
	repo     store.Repository
	logger   *slog.Logger
	gateways map[string]gateway.Gateway
	now      func() time.Time
}

func NewReconcileService(repo store.Repository, logger *slog.Logger, gateways ...gateway.Gateway) *ReconcileService {
	if logger == nil {
		logger = slog.Default()
	}

	byName := make(map[string]gateway.Gateway, len(gateways))
	for _, g := range gateways {
		byName[g.Name()] = g
	}

	return &ReconcileService{
		repo:     repo,
		logger:   logger,
		gateways: byName,
		now:      time.Now,
	}
}

type RunInput struct {
	Input   string
	Output  string
	Gateway string
}

// SkippedSale is a sale left out of the report and why.
type SkippedSale struct {
	SaleID string
	Reason string
}

type RunSummary struct {
	Run     model.Run
	Rows    []model.ReportRow
	Skipped []SkippedSale
}

// Run reconciles every sale of the input spreadsheet against the gateway,
// writes the report and records the run. Sales the gateway can not answer
// for, or whose figures fail validation, are skipped. When nothing is left
// the report is not written, the empty run is still recorded and
// ErrNothingProcessed is returned along with the summary.
func (rs *ReconcileService) Run(ctx context.Context, in RunInput) (*RunSummary, error) {
	gw, ok := rs.gateways[in.Gateway]
	if !ok {
		return nil, fmt.Errorf("%w: '%s'", ErrUnknownGateway, in.Gateway)
	}

	started := rs.now()
	rs.logger.Info("reconciliation started", "input", in.Input, "gateway", gw.Name())

	saleList, err := sales.ReadSales(in.Input)
	if err != nil {
		return nil, err
	}
	rs.logger.Info("sales loaded", "count", len(saleList))

	summary := &RunSummary{}
	for _, sale := range saleList {
		row, err := rs.reconcileSale(ctx, gw, sale)
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return nil, ctxErr
			}
			rs.logger.Warn("sale skipped", "id", sale.ID, "error", err)
			summary.Skipped = append(summary.Skipped, SkippedSale{SaleID: sale.ID, Reason: err.Error()})
			continue
		}
		summary.Rows = append(summary.Rows, row)
	}

	output := ""
	if len(summary.Rows) > 0 {
		if err := report.WriteReport(summary.Rows, in.Output); err != nil {
			return nil, err
		}
		output = in.Output
		rs.logger.Info("report written", "path", output)
	}

	totals := report.Sum(summary.Rows)
	summary.Run = model.Run{
		ID:          uuid.NewString(),
		StartedAt:   started,
		FinishedAt:  rs.now(),
		InputPath:   in.Input,
		OutputPath:  output,
		Gateway:     gw.Name(),
		Read:        len(saleList),
		Processed:   len(summary.Rows),
		Skipped:     len(summary.Skipped),
		TotalGross:  totals.Gross,
		TotalNet:    totals.Net,
		TotalProfit: totals.Profit,
	}

	err = rs.repo.ExecTx(func(repo store.Repository) error {
		if err := repo.CreateRun(summary.Run); err != nil {
			return err
		}
		return repo.CreateRunItems(summary.Run.ID, summary.Rows)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to record run: %w", err)
	}

	if len(summary.Rows) == 0 {
		return summary, ErrNothingProcessed
	}
	return summary, nil
}

func (rs *ReconcileService) reconcileSale(ctx context.Context, gw gateway.Gateway, sale model.Sale) (model.ReportRow, error) {
	consult, err := gw.Query(ctx, sale)
	if err != nil {
		return model.ReportRow{}, fmt.Errorf("gateway: %w", err)
	}

	result, err := rules.Calculate(rules.Input{
		GrossAmount:   sale.GrossAmount,
		GatewayFee:    consult.Fee,
		ProductCost:   sale.ProductCost,
		PaymentMethod: sale.PaymentMethod,
	})
	if err != nil {
		return model.ReportRow{}, fmt.Errorf("calculation: %w", err)
	}

	return model.ReportRow{
		SaleID:        sale.ID,
		Customer:      sale.Customer,
		GrossAmount:   sale.GrossAmount,
		PaymentMethod: sale.PaymentMethod,
		GatewayFee:    consult.Fee,
		AdditionalFee: result.AdditionalFee,
		NetAmount:     result.NetAmount,
		ProductCost:   sale.ProductCost,
		Profit:        result.Profit,
		ROI:           result.ROI,
		Status:        consult.Status,
	}, nil
}
