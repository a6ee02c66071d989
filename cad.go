package sx1262

import "time"

// StartCAD performs channel-activity detection. The detected/clear
// result is reported through the CAD callback; the return value is
// true once detection completes. The poll has no wall-clock bound of
// its own: the busy-timeout backstop in the transport is the only
// limit, so the timeout argument is accepted but not used.
func (r *Radio) StartCAD(timeout time.Duration) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Error() != nil {
		return false
	}
	return r.startCAD()
}

func (r *Radio) startCAD() bool {
	r.ensureStandby()
	// CAD shares no flag state with an in-flight TX or RX
	// (operations are serialized), so a full clear is safe here.
	r.ClearIrqStatus(IrqAll)
	r.sendCommand(CmdSetCAD)
	for r.err == nil {
		flags := r.IrqStatus()
		if flags&IrqCadDone != 0 {
			detected := flags&IrqCadDetected != 0
			r.ClearIrqStatus(IrqCadDone | IrqCadDetected)
			// The chip falls back to standby by itself after CAD.
			r.mode = StandbyRC
			if r.err != nil {
				break
			}
			if r.cadCallback != nil {
				r.cadCallback(detected)
			}
			return true
		}
		time.Sleep(irqPollInterval)
	}
	return false
}
