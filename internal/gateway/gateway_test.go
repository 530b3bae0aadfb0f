package gateway

import (
	"context"
	"errors"
	"math/rand"
	"sync"
	"testing"
	"time"

	"github.com/hance08/concil/internal/lookup"
	"github.com/hance08/concil/internal/model"
	"github.com/hance08/concil/internal/rules"
	"github.com/hance08/concil/internal/store"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sale(id, method, gross string) model.Sale {
	return model.Sale{
		ID:            id,
		Customer:      "Fulano",
		GrossAmount:   decimal.RequireFromString(gross),
		SaleDate:      time.Date(2025, 12, 1, 0, 0, 0, 0, time.UTC),
		PaymentMethod: method,
		ProductCost:   decimal.RequireFromString("10"),
	}
}

func newPortal(t *testing.T, timeout time.Duration) *PortalGateway {
	t.Helper()
	c := lookup.NewController(store.NewSampleTable(), lookup.WithDelay(time.Millisecond))
	return NewPortalGateway(c, timeout, nil)
}

func TestMockGateway_NoDivergence(t *testing.T) {
	g := NewMockGateway(0, rand.New(rand.NewSource(1)))

	tests := []struct {
		method string
		gross  string
		want   string
	}{
		{"pix", "150", "0.75"},
		{"cartao_credito", "300", "7.5"},
		{"cartao_debito", "80", "1.44"},
		{"boleto", "500", "3.5"},
	}

	for _, tt := range tests {
		t.Run(tt.method, func(t *testing.T) {
			got, err := g.Query(context.Background(), sale("TX-1", tt.method, tt.gross))
			require.NoError(t, err)
			assert.True(t, decimal.RequireFromString(tt.want).Equal(got.Fee), "fee %s", got.Fee)
			assert.Equal(t, "Aprovado", got.Status)
			require.NotNil(t, got.PaymentDate)
			assert.Equal(t, "01/12/2025", *got.PaymentDate)
		})
	}
}

func TestMockGateway_AlwaysDivergent(t *testing.T) {
	g := NewMockGateway(1, rand.New(rand.NewSource(7)))
	base := decimal.RequireFromString("3.50")

	for i := 0; i < 50; i++ {
		got, err := g.Query(context.Background(), sale("TX-1", "boleto", "100"))
		require.NoError(t, err)
		assert.Equal(t, "Pendente (Divergência)", got.Status)
		assert.Nil(t, got.PaymentDate)

		surcharge := got.Fee.Sub(base)
		assert.True(t, surcharge.GreaterThanOrEqual(decimal.RequireFromString("0.50")), "surcharge %s", surcharge)
		assert.True(t, surcharge.LessThanOrEqual(decimal.RequireFromString("5.00")), "surcharge %s", surcharge)
	}
}

func TestMockGateway_SeededRunsAreReproducible(t *testing.T) {
	run := func() []string {
		g := NewMockGateway(0.5, rand.New(rand.NewSource(42)))
		var out []string
		for i := 0; i < 20; i++ {
			got, err := g.Query(context.Background(), sale("TX-1", "pix", "200"))
			require.NoError(t, err)
			out = append(out, got.Status+" "+got.Fee.String())
		}
		return out
	}

	assert.Equal(t, run(), run())
}

func TestMockGateway_InvalidMethod(t *testing.T) {
	g := NewMockGateway(0, rand.New(rand.NewSource(1)))

	_, err := g.Query(context.Background(), sale("TX-1", "cheque", "100"))
	assert.ErrorIs(t, err, rules.ErrInvalidPaymentMethod)
}

func TestMockGateway_CancelledContext(t *testing.T) {
	g := NewMockGateway(0, nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := g.Query(ctx, sale("TX-1", "pix", "100"))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestPortalGateway_KnownTransactions(t *testing.T) {
	g := newPortal(t, time.Second)

	tests := []struct {
		id      string
		fee     string
		status  string
		payment *string
	}{
		{"TX-001", "0.75", "Aprovado", ptr("01/12/2025")},
		{"TX-002", "7.50", "Aprovado", ptr("02/01/2026")},
		{"TX-003", "1.44", "Aprovado", ptr("04/12/2025")},
		{"TX-004", "3.50", "Pendente", nil},
		{"tx-005", "6.00", "Aprovado", ptr("04/12/2025")},
	}

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			got, err := g.Query(context.Background(), sale(tt.id, "pix", "1"))
			require.NoError(t, err)
			assert.True(t, decimal.RequireFromString(tt.fee).Equal(got.Fee), "fee %s", got.Fee)
			assert.Equal(t, tt.status, got.Status)
			assert.Equal(t, tt.payment, got.PaymentDate)
		})
	}
}

func TestPortalGateway_NotFound(t *testing.T) {
	g := newPortal(t, time.Second)

	_, err := g.Query(context.Background(), sale("TX-999", "pix", "1"))
	assert.ErrorIs(t, err, ErrTransactionNotFound)
	assert.ErrorIs(t, err, ErrPortal)
	assert.ErrorContains(t, err, "TX-999")
}

func TestPortalGateway_Timeout(t *testing.T) {
	c := lookup.NewController(store.NewSampleTable(), lookup.WithScheduler(func(time.Duration, func()) {}))
	g := NewPortalGateway(c, 20*time.Millisecond, nil)

	_, err := g.Query(context.Background(), sale("TX-001", "pix", "1"))
	assert.ErrorIs(t, err, ErrPortalTimeout)
	assert.True(t, errors.Is(err, ErrPortal))
}

type queueScheduler struct {
	mu      sync.Mutex
	pending []func()
}

func (s *queueScheduler) schedule(_ time.Duration, f func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pending = append(s.pending, f)
}

func (s *queueScheduler) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.pending)
}

func (s *queueScheduler) fire(i int) {
	s.mu.Lock()
	f := s.pending[i]
	s.mu.Unlock()
	f()
}

func TestPortalGateway_IgnoresLateCallbackOfEarlierQuery(t *testing.T) {
	sched := &queueScheduler{}
	c := lookup.NewController(store.NewSampleTable(), lookup.WithScheduler(sched.schedule))
	g := NewPortalGateway(c, time.Second, nil)

	expired, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	_, err := g.Query(expired, sale("TX-999", "pix", "1"))
	require.ErrorIs(t, err, context.DeadlineExceeded)

	type result struct {
		got Consultation
		err error
	}
	done := make(chan result, 1)
	go func() {
		got, err := g.Query(context.Background(), sale("TX-001", "pix", "1"))
		done <- result{got, err}
	}()
	require.Eventually(t, func() bool { return sched.count() == 2 }, time.Second, time.Millisecond)

	// the TX-999 callback shows the error panel while TX-001 is pending
	sched.fire(0)
	select {
	case r := <-done:
		t.Fatalf("query returned on a stale panel: %v", r.err)
	case <-time.After(20 * time.Millisecond):
	}

	sched.fire(1)
	r := <-done
	require.NoError(t, r.err)
	assert.True(t, decimal.RequireFromString("0.75").Equal(r.got.Fee), "fee %s", r.got.Fee)
	assert.Equal(t, "Aprovado", r.got.Status)
}

func TestPortalGateway_ParentContextCancelled(t *testing.T) {
	c := lookup.NewController(store.NewSampleTable(), lookup.WithScheduler(func(time.Duration, func()) {}))
	g := NewPortalGateway(c, time.Second, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := g.Query(ctx, sale("TX-001", "pix", "1"))
	assert.ErrorIs(t, err, context.Canceled)
	assert.NotErrorIs(t, err, ErrPortal)
}

func TestPortalGateway_EmptyID(t *testing.T) {
	g := newPortal(t, time.Second)

	_, err := g.Query(context.Background(), sale("  ", "pix", "1"))
	assert.ErrorIs(t, err, ErrInvalidPortalData)
}

func TestParseBRL(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"R$ 1.200,00", "1200"},
		{"R$ 0,75", "0.75"},
		{"7,50", "7.5"},
	}

	for _, tt := range tests {
		got, err := ParseBRL(tt.in)
		require.NoError(t, err, tt.in)
		assert.True(t, decimal.RequireFromString(tt.want).Equal(got), "%s -> %s", tt.in, got)
	}

	_, err := ParseBRL("abc")
	assert.Error(t, err)
}

func TestParseStatus(t *testing.T) {
	assert.Equal(t, "Aprovado", ParseStatus(" aprovado "))
	assert.Equal(t, "Pendente", ParseStatus("PENDENTE"))
	assert.Equal(t, "Pendente", ParseStatus("Pendente (Divergência)"))
	assert.Equal(t, "Pendente (Divergência)", ParseStatus("Cancelado"))
}

func TestParsePaymentDate(t *testing.T) {
	assert.Nil(t, ParsePaymentDate("Pendente / Em processamento"))
	assert.Nil(t, ParsePaymentDate("32/13/2025"))
	assert.Nil(t, ParsePaymentDate("2025-12-01"))
	assert.Nil(t, ParsePaymentDate(""))

	got := ParsePaymentDate(" 01/12/2025 ")
	require.NotNil(t, got)
	assert.Equal(t, "01/12/2025", *got)
}

func ptr(s string) *string {
	return &s
}
