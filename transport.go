package sx1262

import (
	"errors"
	"log"
	"time"
)

// ErrBusTimeout means the busy line did not clear within busyTimeout:
// the chip is absent or wedged. The in-flight operation is abandoned;
// the error latches until the caller clears it with SetError(nil).
var ErrBusTimeout = errors.New("sx1262: busy timeout")

const (
	busyTimeout      = 1000 * time.Millisecond
	busyPollInterval = 1 * time.Millisecond
)

// spiConn is the bus the chip is attached to.
// *spi.Device satisfies it; tests substitute a scripted bus.
type spiConn interface {
	Transfer([]byte) error
	Close() error
}

// inputPin and outputPin are the control lines the driver owns,
// satisfied by gpio.InputPin and gpio.OutputPin.
type inputPin interface {
	Read() (bool, error)
}

type outputPin interface {
	Write(bool) error
}

// waitOnBusy blocks until the chip's busy line clears.
// Every command is gated on this handshake; a stuck busy line is the
// single timeout backstop for all higher-level operations.
func (r *Radio) waitOnBusy() {
	if r.err != nil {
		return
	}
	for timeout := busyTimeout; timeout > 0; timeout -= busyPollInterval {
		busy, err := r.busyPin.Read()
		if err != nil {
			r.err = err
			return
		}
		if !busy {
			return
		}
		time.Sleep(busyPollInterval)
	}
	r.err = ErrBusTimeout
}

// transfer clocks buf out to the chip in a single chip-select assertion,
// replacing its contents with the bytes read back.
func (r *Radio) transfer(buf []byte) {
	r.waitOnBusy()
	if r.err != nil {
		return
	}
	if verboseSPI {
		log.Printf("xfer % X", buf)
	}
	r.err = r.device.Transfer(buf)
}

// sendCommand issues an opcode with the given parameter bytes.
func (r *Radio) sendCommand(cmd Command, params ...byte) {
	buf := make([]byte, 1+len(params))
	buf[0] = byte(cmd)
	copy(buf[1:], params)
	if verbose {
		log.Printf("command: % X", buf)
	}
	r.transfer(buf)
}

// readResponse issues an opcode followed by one don't-care byte and
// reads n response bytes.
func (r *Radio) readResponse(cmd Command, n int) []byte {
	buf := make([]byte, 2+n)
	buf[0] = byte(cmd)
	r.transfer(buf)
	if r.err != nil {
		return nil
	}
	if verbose {
		log.Printf("response %02X: % X", byte(cmd), buf[2:])
	}
	return buf[2:]
}

// writeBuffer writes payload into the chip's data buffer at offset 0.
func (r *Radio) writeBuffer(payload []byte) {
	params := make([]byte, 1+len(payload))
	copy(params[1:], payload)
	r.sendCommand(CmdWriteBuffer, params...)
}

// readBuffer reads n bytes from the chip's data buffer starting at offset.
func (r *Radio) readBuffer(offset byte, n int) []byte {
	buf := make([]byte, 3+n)
	buf[0] = byte(CmdReadBuffer)
	buf[1] = offset
	// buf[2] is the don't-care status byte.
	r.transfer(buf)
	if r.err != nil {
		return nil
	}
	return buf[3:]
}
