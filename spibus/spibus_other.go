//go:build !linux

package spibus

import (
	"errors"
	"os"
)

// Bus is a stub on platforms without spidev.
type Bus struct {
	latch *os.File
}

// Open always fails off Linux; the shift-register bus needs spidev.
func Open(cfg Config) (*Bus, error) {
	return nil, errors.New("spibus: spidev is only available on linux")
}

func (b *Bus) Select()        {}
func (b *Bus) Deselect()      {}
func (b *Bus) Transfer() byte { return 0 }
func (b *Bus) Close() error   { return nil }
