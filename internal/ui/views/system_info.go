package views

import "github.com/pterm/pterm"

type SystemInfoItem struct {
	ConfigPath   string
	DBPath       string
	DBExists     bool // true = Found, false = Not Found
	AppDataDir   string
	GatewayMode  string
	LookupDelay  string
	DefaultInput string
	OutputDir    string
	LogLevel     string
}

func RenderSystemInfo(data SystemInfoItem) error {
	dbStatus := pterm.Green("Found")
	if !data.DBExists {
		dbStatus = pterm.Red("Not Found (Will be created)")
	}

	tableData := pterm.TableData{
		{"Configuration File", data.ConfigPath},
		{"Database Path", data.DBPath},
		{"Database Status", dbStatus},
		{"AppData Directory", data.AppDataDir},
		{"Default Gateway", data.GatewayMode},
		{"Lookup Delay", data.LookupDelay},
		{"Default Input", data.DefaultInput},
		{"Output Directory", data.OutputDir},
		{"Log Level", data.LogLevel},
	}

	return pterm.DefaultTable.WithData(tableData).Render()
}
