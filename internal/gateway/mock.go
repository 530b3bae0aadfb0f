package gateway

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"github.com/hance08/concil/internal/constants"
	"github.com/hance08/concil/internal/model"
	"github.com/hance08/concil/internal/rules"
	"github.com/shopspring/decimal"
)

var (
	minSurcharge = decimal.RequireFromString("0.50")
	maxSurcharge = decimal.RequireFromString("5.00")
)

// MockGateway charges the configured fee rule of each method and, now and
// then, an unexplained surcharge that leaves the sale divergent.
type MockGateway struct {
	DivergenceRate float64

	mu  sync.Mutex
	rnd *rand.Rand
}

// NewMockGateway uses a time seeded source when rnd is nil.
func NewMockGateway(divergenceRate float64, rnd *rand.Rand) *MockGateway {
	if rnd == nil {
		rnd = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &MockGateway{DivergenceRate: divergenceRate, rnd: rnd}
}

func (g *MockGateway) Name() string {
	return ModeMock
}

func (g *MockGateway) Query(ctx context.Context, sale model.Sale) (Consultation, error) {
	if err := ctx.Err(); err != nil {
		return Consultation{}, err
	}

	fee, err := rules.AdditionalFee(sale.GrossAmount, sale.PaymentMethod)
	if err != nil {
		return Consultation{}, err
	}

	g.mu.Lock()
	diverged := g.rnd.Float64() < g.DivergenceRate
	var spread float64
	if diverged {
		spread = g.rnd.Float64()
	}
	g.mu.Unlock()

	settled := sale.SaleDate.Format(constants.DateFormat)
	if !diverged {
		return Consultation{
			Fee:         fee.Round(2),
			Status:      constants.StatusApproved,
			PaymentDate: &settled,
		}, nil
	}

	surcharge := minSurcharge.Add(maxSurcharge.Sub(minSurcharge).Mul(decimal.NewFromFloat(spread)))
	return Consultation{
		Fee:    fee.Add(surcharge).Round(2),
		Status: constants.StatusDivergent,
	}, nil
}
