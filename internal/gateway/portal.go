package gateway

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/hance08/concil/internal/constants"
	"github.com/hance08/concil/internal/lookup"
	"github.com/hance08/concil/internal/model"
	"github.com/hance08/concil/internal/utils"
	"github.com/shopspring/decimal"
)

const DefaultPortalTimeout = 5 * time.Second

// PortalGateway reads fees off the lookup portal: it types the sale id into
// the search, waits for a panel to appear and parses what the panel shows.
type PortalGateway struct {
	controller *lookup.Controller
	timeout    time.Duration
	logger     *slog.Logger

	// one search at a time, like a single browser tab
	mu sync.Mutex
}

func NewPortalGateway(controller *lookup.Controller, timeout time.Duration, logger *slog.Logger) *PortalGateway {
	if timeout <= 0 {
		timeout = DefaultPortalTimeout
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &PortalGateway{controller: controller, timeout: timeout, logger: logger}
}

func (g *PortalGateway) Name() string {
	return ModePortal
}

func (g *PortalGateway) Query(ctx context.Context, sale model.Sale) (Consultation, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	id := lookup.Normalize(sale.ID)
	if !g.controller.Search(id) {
		return Consultation{}, fmt.Errorf("%w: empty sale id", ErrInvalidPortalData)
	}

	waitCtx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	// a callback left over from an earlier timed-out query can still show
	// its panel here; only the one for id counts
	snap, err := g.controller.AwaitResolved(waitCtx, id)
	if err != nil {
		if ctx.Err() != nil {
			return Consultation{}, ctx.Err()
		}
		return Consultation{}, fmt.Errorf("%w: %s after %s", ErrPortalTimeout, id, g.timeout)
	}

	if snap.State == lookup.ErrorShown {
		g.logger.Warn("transaction not found on portal", "id", id)
		return Consultation{}, fmt.Errorf("%w: %s", ErrTransactionNotFound, id)
	}
	if snap.Fields.ID != id {
		return Consultation{}, fmt.Errorf("%w: panel shows %q while searching %q", ErrInvalidPortalData, snap.Fields.ID, id)
	}

	result, err := parseFields(snap.Fields)
	if err != nil {
		return Consultation{}, fmt.Errorf("%w: %s: %v", ErrInvalidPortalData, id, err)
	}

	g.logger.Info("transaction read from portal", "id", id, "fee", result.Fee.StringFixed(2), "status", result.Status)
	return result, nil
}

func parseFields(f lookup.Fields) (Consultation, error) {
	fee, err := ParseBRL(f.GatewayFee)
	if err != nil {
		return Consultation{}, err
	}

	return Consultation{
		Fee:         fee,
		Status:      ParseStatus(f.Status),
		PaymentDate: ParsePaymentDate(f.PaymentDate),
	}, nil
}

// ParseBRL reads a money text as rendered by the portal, e.g. "R$ 1.200,00".
func ParseBRL(text string) (decimal.Decimal, error) {
	return utils.ParseBRL(text)
}

// ParseStatus maps panel text onto the known statuses. Anything that is
// neither approved nor pending counts as divergent.
func ParseStatus(text string) string {
	upper := strings.ToUpper(strings.TrimSpace(text))
	switch {
	case strings.Contains(upper, "APROVADO"):
		return constants.StatusApproved
	case strings.Contains(upper, "PENDENTE"):
		return constants.StatusPending
	default:
		return constants.StatusDivergent
	}
}

// ParsePaymentDate returns nil for the pending text and for anything that
// is not a valid dd/mm/yyyy date.
func ParsePaymentDate(text string) *string {
	clean := strings.TrimSpace(text)
	if strings.Contains(clean, "Pendente") || strings.Contains(clean, "processamento") {
		return nil
	}
	if _, err := time.Parse(constants.DateFormat, clean); err != nil || len(clean) != len(constants.DateFormat) {
		return nil
	}
	return &clean
}
