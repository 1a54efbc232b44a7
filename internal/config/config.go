// Package config defines the CLI structure for tmwheels.
package config

import (
	"github.com/OrhanYigitDurmaz/TMWheelsESP32/internal/cmd"
)

type Log struct {
	Level   string `help:"Log level: trace, debug, info, warn, error" default:"info" env:"TMWHEELS_LOG_LEVEL"`
	File    string `help:"Log file path (default: none; logs only to console)" env:"TMWHEELS_LOG_FILE"`
	RawFile string `help:"Raw frame log file path (default: none)" env:"TMWHEELS_LOG_RAW_FILE"`
}

// CLI is the root command structure for Kong CLI parsing.
type CLI struct {
	Log `embed:"" prefix:"log."`

	ConfigFile string `help:"Configuration file path" name:"config-file" env:"TMWHEELS_CONFIG"`

	Bridge     cmd.Bridge        `cmd:"" help:"Bridge the attached wheel rim to a HID gadget endpoint"`
	Identify   cmd.Identify      `cmd:"" help:"Poll the bus once and report which rim is attached"`
	Descriptor cmd.Descriptor    `cmd:"" help:"Print the HID report descriptor for the gadget function"`
	Config     cmd.ConfigCommand `cmd:"" help:"Configuration helpers"`
	Install    cmd.Install       `cmd:"" help:"Install tmwheels as a system service"`
	Uninstall  cmd.Uninstall     `cmd:"" help:"Remove the tmwheels system service"`
}
