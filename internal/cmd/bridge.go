package cmd

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/OrhanYigitDurmaz/TMWheelsESP32/device/gamepad"
	"github.com/OrhanYigitDurmaz/TMWheelsESP32/internal/log"
	"github.com/OrhanYigitDurmaz/TMWheelsESP32/spibus"
	"github.com/OrhanYigitDurmaz/TMWheelsESP32/wheel"
)

// BusFlags are the shared flags describing the shift-register bus
// attachment.
type BusFlags struct {
	Device    string        `help:"spidev device path" default:"/dev/spidev0.0" env:"TMWHEELS_SPI_DEVICE"`
	LatchGpio int           `help:"GPIO number of the shift-register latch line" default:"25" env:"TMWHEELS_LATCH_GPIO"`
	Speed     uint32        `help:"SPI clock speed in Hz" default:"500000" env:"TMWHEELS_SPI_SPEED"`
	Settle    time.Duration `help:"Hardware settle delay around bus transfers" default:"40us" env:"TMWHEELS_SETTLE"`
}

func (f *BusFlags) open() (*spibus.Bus, error) {
	return spibus.Open(spibus.Config{
		Device:    f.Device,
		SpeedHz:   f.Speed,
		LatchGPIO: f.LatchGpio,
	})
}

// Bridge runs the poll loop bridging the attached rim to a HID
// gadget endpoint.
type Bridge struct {
	BusFlags `embed:""`

	Output string        `help:"HID gadget endpoint to write reports to" default:"/dev/hidg0" env:"TMWHEELS_OUTPUT"`
	Poll   time.Duration `help:"Poll interval while a rim is attached" default:"10ms" env:"TMWHEELS_POLL"`
	Retry  time.Duration `help:"Backoff between identification attempts while no rim is attached" default:"1s" env:"TMWHEELS_RETRY"`
}

// Run is called by Kong when the bridge command is executed.
func (b *Bridge) Run(logger *slog.Logger, frameLog log.FrameLogger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	bus, err := b.open()
	if err != nil {
		return err
	}
	defer bus.Close()

	out, err := os.OpenFile(b.Output, os.O_WRONLY, 0)
	if err != nil {
		return err
	}
	defer out.Close()

	dec := wheel.NewDecoder(bus, gamepad.NewSink(out), logger)
	dec.Reader.Settle = b.Settle
	dec.PollInterval = b.Poll
	dec.RetryBackoff = b.Retry
	dec.Observe = func(f wheel.Frame) { frameLog.Log(f[:]) }

	logger.Info("starting wheel bridge", "device", b.Device, "output", b.Output)
	if err := dec.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	logger.Info("wheel bridge stopped")
	return nil
}
