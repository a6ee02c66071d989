package sx1262

// Mode-transition commands. These are the only entry points that change
// the tracked operating mode outside of the TX/RX/CAD operations, which
// drive their own transitions.

// SetStandby places the chip in standby on the given clock source.
func (r *Radio) SetStandby(mode StandbyMode) {
	r.sendCommand(CmdSetStandby, byte(mode))
	if r.err != nil {
		return
	}
	if mode == StandbyModeXOSC {
		r.mode = StandbyXOSC
	} else {
		r.mode = StandbyRC
	}
}

// SetSleep puts the chip to sleep. It wakes on the next chip select.
func (r *Radio) SetSleep(config SleepConfig) {
	r.sendCommand(CmdSetSleep, byte(config))
	if r.err == nil {
		r.mode = Sleep
	}
}

// SetFS switches the chip to frequency-synthesis mode.
func (r *Radio) SetFS() {
	r.sendCommand(CmdSetFS)
	if r.err == nil {
		r.mode = FS
	}
}

// Calibrate runs the calibration blocks selected by mask.
func (r *Radio) Calibrate(mask byte) {
	r.sendCommand(CmdCalibrate, mask)
}

// CalibrateImage calibrates image rejection for the band containing freq.
func (r *Radio) CalibrateImage(freq uint32) {
	var lo, hi byte
	switch {
	case freq > 900000000:
		lo, hi = 0xE1, 0xE9
	case freq > 850000000:
		lo, hi = 0xD7, 0xD8
	case freq > 770000000:
		lo, hi = 0xC1, 0xC5
	case freq > 460000000:
		lo, hi = 0x75, 0x81
	default:
		lo, hi = 0x6B, 0x6F
	}
	r.sendCommand(CmdCalibrateImage, lo, hi)
}

// SetRegulatorMode selects the LDO or DC-DC regulator.
func (r *Radio) SetRegulatorMode(mode RegulatorMode) {
	r.sendCommand(CmdSetRegulatorMode, byte(mode))
}

// SetPacketType selects the modem. It must precede modulation and
// packet parameters or the chip silently ignores them.
func (r *Radio) SetPacketType(t PacketType) {
	r.sendCommand(CmdSetPacketType, byte(t))
}

// PacketType returns the chip's current packet type.
func (r *Radio) PacketType() PacketType {
	b := r.readResponse(CmdGetPacketType, 1)
	if len(b) == 0 {
		return 0
	}
	return PacketType(b[0])
}

// ensureStandby forces StandbyRC if the chip is not already there.
func (r *Radio) ensureStandby() {
	if r.mode != StandbyRC {
		r.SetStandby(StandbyModeRC)
	}
}
