// Package cmd defines the m913ctl command-line surface. Each subcommand
// is a kong struct whose Run method receives the bound logger and raw
// packet logger.
package cmd

// CLI is the root command structure parsed by kong.
type CLI struct {
	Log struct {
		Level   string `help:"Log level (trace, debug, info, warn, error)" default:"info" env:"M913CTL_LOG_LEVEL"`
		File    string `help:"Also write logs to this file" env:"M913CTL_LOG_FILE"`
		RawFile string `help:"Write raw packet hex dumps to this file" env:"M913CTL_LOG_RAW_FILE"`
	} `embed:"" prefix:"log."`

	Config string `help:"Path to a config file" env:"M913CTL_CONFIG"`

	Apply       Apply       `cmd:"" help:"Apply a profile file to the mouse"`
	Button      Button      `cmd:"" help:"Remap buttons (NAME=ACTION pairs)"`
	Dpi         Dpi         `cmd:"" help:"Set DPI slots (SLOT=VALUE pairs)"`
	Led         Led         `cmd:"" help:"Set the LED program"`
	PollingRate PollingRate `cmd:"" name:"polling-rate" help:"Set the USB polling rate"`
	Actions     Actions     `cmd:"" help:"List all valid button action names"`
	Listen      Listen      `cmd:"" help:"Passively dump packets from the mouse"`
	Raw         Raw         `cmd:"" help:"Send a raw packet and watch for responses"`
	Probe       Probe       `cmd:"" help:"Show USB interfaces and endpoints of the receiver"`
	Init        Init        `cmd:"" help:"Generate a profile template"`
}
