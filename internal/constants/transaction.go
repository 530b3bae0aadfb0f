package constants

const (
	// Portal status labels
	StatusApproved  = "Aprovado"
	StatusPending   = "Pendente"
	StatusDivergent = "Pendente (Divergência)"

	// Shown when a transaction has not been settled yet
	PaymentPendingText = "Pendente / Em processamento"

	// Date Layouts
	DateFormat      = "02/01/2006"
	ISODateFormat   = "2006-01-02"
	TimestampFormat = "20060102_150405"
)

// Sales spreadsheet columns
const (
	ColumnSaleID        = "ID da venda"
	ColumnCustomer      = "Cliente"
	ColumnGrossAmount   = "Valor bruto"
	ColumnSaleDate      = "Data da venda"
	ColumnPaymentMethod = "Forma de pagamento"
	ColumnProductCost   = "Custo do produto"
)

var RequiredSalesColumns = []string{
	ColumnSaleID,
	ColumnCustomer,
	ColumnGrossAmount,
	ColumnSaleDate,
	ColumnPaymentMethod,
	ColumnProductCost,
}
