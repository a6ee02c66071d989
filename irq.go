package sx1262

// IrqStatus returns the chip's interrupt status flags.
func (r *Radio) IrqStatus() IrqFlags {
	b := r.readResponse(CmdGetIrqStatus, 2)
	if len(b) < 2 {
		return 0
	}
	return IrqFlags(unmarshalUint16(b))
}

// ClearIrqStatus clears exactly the flags in mask.
// TX/RX/CAD share the status register, so an operation clears only the
// flags it has consumed; stale flags from a prior operation must never
// be misread as completion of the current one.
func (r *Radio) ClearIrqStatus(mask IrqFlags) {
	r.sendCommand(CmdClearIrqStatus, marshalUint16(uint16(mask))...)
}

// SetDioIrqParams routes the flags in each mask to the DIO lines.
func (r *Radio) SetDioIrqParams(irqMask IrqFlags, dio1Mask IrqFlags, dio2Mask IrqFlags, dio3Mask IrqFlags) {
	params := make([]byte, 0, 8)
	params = append(params, marshalUint16(uint16(irqMask))...)
	params = append(params, marshalUint16(uint16(dio1Mask))...)
	params = append(params, marshalUint16(uint16(dio2Mask))...)
	params = append(params, marshalUint16(uint16(dio3Mask))...)
	r.sendCommand(CmdSetDioIrqParams, params...)
}

// standardIrqMask is routed to DIO1 by Initialize so that completion of
// any operation can be observed without scanning the full register.
const standardIrqMask = IrqTxDone | IrqRxDone | IrqTimeout | IrqCadDone | IrqCadDetected
