package sx1262

import (
	"log"
	"sync"
	"time"

	"github.com/ecc1/gpio"
	"github.com/ecc1/radio"
	"github.com/ecc1/spi"
)

const (
	verbose    = false
	verboseSPI = false
)

func init() {
	if verbose || verboseSPI {
		log.SetFlags(log.Ltime | log.Lmicroseconds | log.LUTC)
	}
}

// Radio represents an open radio device.
//
// Public operations are serialized on an internal mutex: the chip
// executes a single command at a time and TX/RX/CAD share its interrupt
// status register, so no two operations may be in flight concurrently.
type Radio struct {
	device   spiConn
	resetPin outputPin
	busyPin  inputPin
	stats    radio.Statistics
	err      error

	mu   sync.Mutex
	mode RadioMode

	// In-memory configuration, re-encoded and re-sent on every change.
	frequency       uint32
	spreadingFactor uint8
	bandwidth       Bandwidth
	codingRate      CodingRate
	power           int
	syncWord        uint16
	preambleLength  uint16
	implicitHeader  bool
	crcEnabled      bool
	iqInverted      bool

	lastRSSI int
	lastSNR  int

	txCallback  func(success bool)
	rxCallback  func(data []byte, length int, rssi int, snr int)
	cadCallback func(detected bool)
}

func newRadio() *Radio {
	return &Radio{
		mode:            Sleep,
		frequency:       defaultFrequency,
		spreadingFactor: defaultSpreadingFactor,
		bandwidth:       Bandwidth125k,
		codingRate:      CodingRate4_5,
		power:           defaultPower,
		syncWord:        defaultSyncWord,
		preambleLength:  defaultPreambleLength,
		crcEnabled:      true,
	}
}

// Open opens the radio device using the platform pin assignments.
func Open() *Radio {
	return OpenPins(spiDevice, resetPin, busyPin)
}

// OpenPins opens the radio on the given SPI device, reset pin, and busy pin.
func OpenPins(device string, reset int, busy int) *Radio {
	const spiSpeed = 8000000 // Hz
	r := newRadio()
	r.device, r.err = spi.Open(device, spiSpeed, customCS)
	if r.err != nil {
		return r
	}
	r.resetPin, r.err = gpio.Output(reset, true, false)
	if r.err != nil {
		r.Close()
		return r
	}
	r.busyPin, r.err = gpio.Input(busy, "none", false)
	if r.err != nil {
		r.Close()
		return r
	}
	r.Reset()
	return r
}

// Close closes the radio device.
func (r *Radio) Close() {
	r.err = r.device.Close()
}

// Name returns the radio's name.
func (r *Radio) Name() string {
	return "SX1262"
}

// Device returns the pathname of the radio's device.
func (r *Radio) Device() string {
	return spiDevice
}

// Reset pulses the reset line and leaves the chip in Sleep.
// The chip must be commanded to StandbyRC before any configuration call.
func (r *Radio) Reset() {
	if r.Error() != nil {
		return
	}
	_ = r.resetPin.Write(true)
	time.Sleep(10 * time.Millisecond)
	r.err = r.resetPin.Write(false)
	time.Sleep(20 * time.Millisecond)
	r.mode = Sleep
}

// Mode returns the driver's view of the transceiver's operating mode.
func (r *Radio) Mode() RadioMode {
	return r.mode
}

// Statistics returns the byte and packet counts for the radio device.
func (r *Radio) Statistics() radio.Statistics {
	return r.stats
}

// Error returns the error state of the radio device.
func (r *Radio) Error() error {
	return r.err
}

// SetError sets the error state of the radio device.
func (r *Radio) SetError(err error) {
	r.err = err
}

// Hardware returns the radio's hardware information.
func (r *Radio) Hardware() *radio.Hardware {
	panic("unimplemented")
}
