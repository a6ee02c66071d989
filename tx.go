package sx1262

import (
	"fmt"
	"time"
)

// MaxPayloadLength is the capacity of the chip's internal data buffer.
const MaxPayloadLength = 255

const (
	irqPollInterval = 1 * time.Millisecond

	// Wall-clock bound applied when the caller passes a zero timeout,
	// so that no operation can block forever on a mis-set flag.
	defaultOperationTimeout = 30 * time.Second
)

// Transmit sends the given payload and waits for the chip to confirm
// completion. It returns true on a confirmed transmission; the TX
// callback, if registered, is invoked exactly once with the same result.
// A zero timeout selects the 30-second default bound.
func (r *Radio) Transmit(payload []byte, timeout time.Duration) bool {
	if len(payload) > MaxPayloadLength {
		r.SetError(fmt.Errorf("%w: payload length %d", ErrInvalidParameter, len(payload)))
		return false
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Error() != nil {
		return false
	}
	return r.transmit(payload, timeout)
}

// Send transmits the given packet with the default timeout.
func (r *Radio) Send(data []byte) {
	_ = r.Transmit(data, 0)
}

func (r *Radio) transmit(payload []byte, timeout time.Duration) bool {
	if timeout <= 0 {
		timeout = defaultOperationTimeout
	}
	r.ensureStandby()
	r.ClearIrqStatus(IrqTxDone | IrqTimeout)
	// The chip transmits the payload length from the packet parameters,
	// not the number of bytes written to the buffer.
	r.setPacketParams(byte(len(payload)))
	r.writeBuffer(payload)
	// Tick field 0: no radio-side timeout, the wall clock below bounds us.
	r.sendCommand(CmdSetTx, marshalUint24(0)...)
	if r.err == nil {
		r.mode = TX
	}
	deadline := time.Now().Add(timeout)
	for r.err == nil && time.Now().Before(deadline) {
		flags := r.IrqStatus()
		if flags&IrqTxDone != 0 {
			r.ClearIrqStatus(IrqTxDone)
			// The chip falls back to standby by itself after TX.
			r.mode = StandbyRC
			r.txDone(true)
			return true
		}
		if flags&IrqTimeout != 0 {
			r.ClearIrqStatus(flags & (IrqTxDone | IrqTimeout))
			break
		}
		time.Sleep(irqPollInterval)
	}
	// A bus failure surfaces the same way as a radio timeout:
	// either way there is no confirmed transmission.
	r.SetStandby(StandbyModeRC)
	r.txDone(false)
	return false
}

func (r *Radio) txDone(success bool) {
	if r.txCallback != nil {
		r.txCallback(success)
	}
}
