package constants

const (
	AppName        = "concil"
	ConfigFileName = "config"
	DatabaseFile   = "concil.db"
	EnvPrefix      = "CONCIL"
)

const (
	DefaultCurrencyLabel = "R$"
	DefaultLookupDelayMs = 300
	DefaultPortalTimeout = 5
	DefaultDivergence    = 0.10
	DefaultRunListLimit  = 20
)
