// Package spibus drives a wheel rim's shift register through a Linux
// spidev device. The rims have no chip select of their own; the latch
// line that freezes the register for readout sits on a plain GPIO and
// is toggled around each frame.
package spibus

// Config describes one bus attachment.
type Config struct {
	// Device is the spidev path, e.g. /dev/spidev0.0.
	Device string
	// SpeedHz is the SPI clock rate. The rims are comfortable well
	// below 1 MHz.
	SpeedHz uint32
	// LatchGPIO is the GPIO number of the latch/select line.
	LatchGPIO int
}
