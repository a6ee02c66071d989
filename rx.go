package sx1262

import "time"

// Receive listens for a packet, copying it into buf. It returns true
// and the payload length the hardware reported on success; a reported
// length greater than len(buf) means the copy was truncated and the
// caller got only the first len(buf) bytes. A zero timeout listens
// continuously, bounded by the 30-second default.
//
// CRC failures and radio timeouts both return false; the reason is not
// distinguished further.
func (r *Radio) Receive(buf []byte, timeout time.Duration) (bool, int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Error() != nil {
		return false, 0
	}
	return r.receive(buf, timeout)
}

func (r *Radio) receive(buf []byte, timeout time.Duration) (bool, int) {
	r.ensureStandby()
	r.ClearIrqStatus(IrqRxDone | IrqTimeout | IrqCrcError)
	ticks := uint32(0) // continuous listen
	if timeout > 0 {
		ticks = rxTimeoutTicks(uint32(timeout / time.Millisecond))
	}
	r.sendCommand(CmdSetRx, marshalUint24(ticks)...)
	if r.err == nil {
		r.mode = RX
	}
	bound := timeout
	if bound <= 0 {
		bound = defaultOperationTimeout
	}
	deadline := time.Now().Add(bound)
	for r.err == nil && time.Now().Before(deadline) {
		flags := r.IrqStatus()
		switch {
		case flags&IrqRxDone != 0:
			return r.finishReceive(buf)
		case flags&IrqCrcError != 0:
			r.ClearIrqStatus(IrqCrcError)
			r.SetStandby(StandbyModeRC)
			return false, 0
		case flags&IrqTimeout != 0:
			r.ClearIrqStatus(IrqTimeout)
			// The chip falls back to standby on an RX timeout.
			r.mode = StandbyRC
			return false, 0
		}
		time.Sleep(irqPollInterval)
	}
	r.SetStandby(StandbyModeRC)
	return false, 0
}

// finishReceive reads the received payload and its radio stats.
func (r *Radio) finishReceive(buf []byte) (bool, int) {
	status := r.readResponse(CmdGetRxBufferStatus, 2)
	if len(status) < 2 {
		return false, 0
	}
	length := int(status[0])
	offset := status[1]
	n := length
	if n > len(buf) {
		n = len(buf)
	}
	data := r.readBuffer(offset, n)
	copy(buf, data)
	rssi, snr := r.packetStatus()
	r.ClearIrqStatus(IrqRxDone)
	r.SetStandby(StandbyModeRC)
	if r.err != nil {
		return false, 0
	}
	r.lastRSSI, r.lastSNR = rssi, snr
	if r.rxCallback != nil {
		r.rxCallback(buf[:n], length, rssi, snr)
	}
	return true, length
}

// packetStatus reads RSSI (dBm) and SNR (dB) of the last received packet.
func (r *Radio) packetStatus() (rssi int, snr int) {
	b := r.readResponse(CmdGetPacketStatus, 3)
	if len(b) < 3 {
		return 0, 0
	}
	return -int(b[0]) / 2, int(int8(b[1])) / 4
}
