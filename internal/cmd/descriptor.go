package cmd

import (
	"fmt"
	"os"

	"github.com/OrhanYigitDurmaz/TMWheelsESP32/device/gamepad"
)

// Descriptor prints the HID report descriptor of the canonical
// gamepad, for configuring the USB gadget function.
type Descriptor struct {
	Format string `help:"Output format" enum:"hex,c" default:"hex"`
}

func (c *Descriptor) Run() error {
	data, err := gamepad.ReportDescriptor()
	if err != nil {
		return err
	}

	switch c.Format {
	case "c":
		fmt.Fprintln(os.Stdout, "static const unsigned char report_desc[] = {")
		for i, b := range data {
			if i%8 == 0 {
				fmt.Fprint(os.Stdout, "\t")
			}
			fmt.Fprintf(os.Stdout, "0x%02X,", b)
			if i%8 == 7 || i == len(data)-1 {
				fmt.Fprintln(os.Stdout)
			} else {
				fmt.Fprint(os.Stdout, " ")
			}
		}
		fmt.Fprintln(os.Stdout, "};")
	default:
		for i, b := range data {
			if i > 0 {
				fmt.Fprint(os.Stdout, " ")
			}
			fmt.Fprintf(os.Stdout, "%02x", b)
		}
		fmt.Fprintln(os.Stdout)
	}
	return nil
}
