package sx1262

// Register access is the diagnostic/advanced path. Normal operation
// uses the command set, which validates ranges on the chip itself.

// ReadRegister returns the value of an SX1262 register.
func (r *Radio) ReadRegister(addr uint16) byte {
	buf := make([]byte, 5)
	buf[0] = byte(CmdReadRegister)
	buf[1] = byte(addr >> 8)
	buf[2] = byte(addr)
	// buf[3] is the don't-care status byte, buf[4] the register value.
	r.transfer(buf)
	if r.err != nil {
		return 0
	}
	return buf[4]
}

// WriteRegister writes a value to an SX1262 register.
func (r *Radio) WriteRegister(addr uint16, value byte) {
	r.sendCommand(CmdWriteRegister, byte(addr>>8), byte(addr), value)
}

// Version returns the chip's version register.
func (r *Radio) Version() byte {
	return r.ReadRegister(RegVersion)
}

// SetNodeAddress sets the node address used for filtered reception.
func (r *Radio) SetNodeAddress(addr byte) {
	r.WriteRegister(RegNodeAddress, addr)
}

// SetBroadcastAddress sets the broadcast address used for filtered reception.
func (r *Radio) SetBroadcastAddress(addr byte) {
	r.WriteRegister(RegBroadcastAddress, addr)
}
