package cmd

import (
	"log/slog"

	"github.com/OrhanYigitDurmaz/TMWheelsESP32/internal/log"
	"github.com/OrhanYigitDurmaz/TMWheelsESP32/wheel"
)

// Identify polls the bus once and reports which rim is attached.
type Identify struct {
	BusFlags `embed:""`
}

func (c *Identify) Run(logger *slog.Logger, frameLog log.FrameLogger) error {
	bus, err := c.open()
	if err != nil {
		return err
	}
	defer bus.Close()

	reader := &wheel.FrameReader{Bus: bus, Settle: c.Settle}
	frame := reader.ReadFrame()
	frameLog.Log(frame[:])

	rim, present := wheel.Identify(frame)
	switch {
	case !present:
		logger.Warn("no rim attached")
	case rim == wheel.RimNone:
		logger.Warn("rim present but not identifiable this poll")
	default:
		logger.Info("rim identified", "rim", rim.String())
	}
	return nil
}
