package gamepad

import (
	"github.com/OrhanYigitDurmaz/TMWheelsESP32/usb/hid"
	"github.com/OrhanYigitDurmaz/TMWheelsESP32/wheel"
)

// ReportDescriptor builds the HID report descriptor matching the
// 4-byte input report: 21 buttons, 3 bits padding, a 4-bit hat switch
// with null state, 4 bits padding.
func ReportDescriptor() (hid.Data, error) {
	r := hid.Report{Items: []hid.Item{
		hid.UsagePage{Page: hid.UsagePageGenericDesktop},
		hid.Usage{Usage: hid.UsageGamePad},
		hid.Collection{Kind: hid.CollectionApplication, Items: []hid.Item{
			hid.UsagePage{Page: hid.UsagePageButton},
			hid.UsageMinimum{Min: 1},
			hid.UsageMaximum{Max: wheel.ButtonCount},
			hid.LogicalMinimum{Min: 0},
			hid.LogicalMaximum{Max: 1},
			hid.ReportSize{Bits: 1},
			hid.ReportCount{Count: wheel.ButtonCount},
			hid.Input{Flags: hid.MainData | hid.MainVar | hid.MainAbs},

			hid.ReportSize{Bits: 1},
			hid.ReportCount{Count: 3},
			hid.Input{Flags: hid.MainConst},

			hid.UsagePage{Page: hid.UsagePageGenericDesktop},
			hid.Usage{Usage: hid.UsageHatSwitch},
			hid.LogicalMinimum{Min: 1},
			hid.LogicalMaximum{Max: 8},
			hid.ReportSize{Bits: 4},
			hid.ReportCount{Count: 1},
			hid.Input{Flags: hid.MainData | hid.MainVar | hid.MainAbs | hid.MainNullState},

			hid.ReportSize{Bits: 4},
			hid.ReportCount{Count: 1},
			hid.Input{Flags: hid.MainConst},
		}},
	}}
	return r.Bytes()
}
