package lookup

import (
	"github.com/hance08/concil/internal/constants"
	"github.com/hance08/concil/internal/model"
	"github.com/hance08/concil/internal/utils"
)

type State int

const (
	Idle State = iota
	ResultShown
	ErrorShown
)

func (s State) String() string {
	switch s {
	case ResultShown:
		return "result"
	case ErrorShown:
		return "error"
	default:
		return "idle"
	}
}

// Fields are the display texts of the result panel.
type Fields struct {
	ID          string
	Customer    string
	SaleDate    string
	PaymentDate string
	Method      string
	GrossAmount string
	GatewayFee  string
	Status      string
}

// Snapshot is the panel state at one point in time. Query is the latest
// search; Resolved is the search whose callback produced the visible panel
// and stays empty while both panels are hidden.
type Snapshot struct {
	State         State
	ResultVisible bool
	ErrorVisible  bool
	Fields        Fields
	Query         string
	Resolved      string
}

// Present formats a record for the result panel.
func Present(rec model.TransactionRecord) Fields {
	paymentDate := constants.PaymentPendingText
	if rec.IsSettled() {
		paymentDate = *rec.PaymentDate
	}

	return Fields{
		ID:          rec.ID,
		Customer:    rec.CustomerName,
		SaleDate:    rec.SaleDate,
		PaymentDate: paymentDate,
		Method:      rec.PaymentMethod,
		GrossAmount: utils.FormatBRL(rec.GrossAmount),
		GatewayFee:  utils.FormatBRL(rec.GatewayFee),
		Status:      rec.Status,
	}
}
