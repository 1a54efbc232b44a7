//go:build linux

package spibus

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"unsafe"

	"golang.org/x/sys/unix"
)

// spidev ioctl requests, from linux/spi/spidev.h.
const (
	spiIocWrMode        = 0x40016b01
	spiIocWrBitsPerWord = 0x40016b03
	spiIocWrMaxSpeedHz  = 0x40046b04
	spiIocMessage1      = 0x40206b00
)

// spiTransfer mirrors struct spi_ioc_transfer.
type spiTransfer struct {
	txBuf       uint64
	rxBuf       uint64
	len         uint32
	speedHz     uint32
	delayUsecs  uint16
	bitsPerWord uint8
	csChange    uint8
	pad         uint32
}

// Bus is an open spidev attachment. It implements wheel.Bus.
type Bus struct {
	fd      int
	speedHz uint32
	latch   *os.File
}

// Open opens the spidev device, configures mode 0 / 8-bit words /
// the requested clock, and claims the latch GPIO as an output.
func Open(cfg Config) (*Bus, error) {
	fd, err := unix.Open(cfg.Device, unix.O_RDWR|unix.O_CLOEXEC, 0)
	if err != nil {
		return nil, fmt.Errorf("spibus: open %s: %w", cfg.Device, err)
	}

	mode := uint8(0)
	bits := uint8(8)
	speed := cfg.SpeedHz
	if err := ioctl(fd, spiIocWrMode, unsafe.Pointer(&mode)); err != nil {
		unix.Close(fd)
		return nil, fmt.Errorf("spibus: set mode: %w", err)
	}
	if err := ioctl(fd, spiIocWrBitsPerWord, unsafe.Pointer(&bits)); err != nil {
		unix.Close(fd)
		return nil, fmt.Errorf("spibus: set word size: %w", err)
	}
	if err := ioctl(fd, spiIocWrMaxSpeedHz, unsafe.Pointer(&speed)); err != nil {
		unix.Close(fd)
		return nil, fmt.Errorf("spibus: set speed: %w", err)
	}

	latch, err := openLatch(cfg.LatchGPIO)
	if err != nil {
		unix.Close(fd)
		return nil, err
	}

	b := &Bus{fd: fd, speedHz: cfg.SpeedHz, latch: latch}
	b.Deselect()
	return b, nil
}

// Select asserts the latch line (active low), freezing the register
// contents for readout.
func (b *Bus) Select() { b.writeLatch('0') }

// Deselect releases the latch line.
func (b *Bus) Deselect() { b.writeLatch('1') }

// Transfer clocks one byte out of the register. The bus read cannot
// fail observably; on an ioctl error the line reads as idle and the
// decoder sees an absent rim.
func (b *Bus) Transfer() byte {
	tx := [1]byte{0x00}
	rx := [1]byte{0x00}
	tr := spiTransfer{
		txBuf:       uint64(uintptr(unsafe.Pointer(&tx[0]))),
		rxBuf:       uint64(uintptr(unsafe.Pointer(&rx[0]))),
		len:         1,
		speedHz:     b.speedHz,
		bitsPerWord: 8,
	}
	_ = ioctl(b.fd, spiIocMessage1, unsafe.Pointer(&tr))
	return rx[0]
}

// Close releases the spidev and the latch GPIO.
func (b *Bus) Close() error {
	err := unix.Close(b.fd)
	if b.latch != nil {
		if cerr := b.latch.Close(); err == nil {
			err = cerr
		}
	}
	return err
}

func (b *Bus) writeLatch(v byte) {
	if b.latch != nil {
		_, _ = b.latch.Write([]byte{v})
	}
}

func ioctl(fd int, req uintptr, arg unsafe.Pointer) error {
	_, _, errno := unix.Syscall(unix.SYS_IOCTL, uintptr(fd), req, uintptr(arg))
	if errno != 0 {
		return errno
	}
	return nil
}

// openLatch exports the GPIO via sysfs, sets it as an output and
// opens its value file.
func openLatch(gpio int) (*os.File, error) {
	base := "/sys/class/gpio/gpio" + strconv.Itoa(gpio)
	if _, err := os.Stat(base); errors.Is(err, os.ErrNotExist) {
		if err := os.WriteFile("/sys/class/gpio/export", []byte(strconv.Itoa(gpio)), 0o200); err != nil {
			return nil, fmt.Errorf("spibus: export gpio %d: %w", gpio, err)
		}
	}
	if err := os.WriteFile(base+"/direction", []byte("out"), 0o200); err != nil {
		return nil, fmt.Errorf("spibus: gpio %d direction: %w", gpio, err)
	}
	f, err := os.OpenFile(base+"/value", os.O_WRONLY, 0)
	if err != nil {
		return nil, fmt.Errorf("spibus: gpio %d value: %w", gpio, err)
	}
	return f, nil
}
