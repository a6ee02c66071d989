package sx1262

import "fmt"

// Conservative defaults applied at Open and sent to the chip by Initialize.
const (
	defaultFrequency       = 915000000 // Hz
	defaultSpreadingFactor = 7
	defaultPower           = 14 // dBm
	defaultSyncWord        = 0x1424
	defaultPreambleLength  = 8 // symbols
)

// Initialize resets the chip, verifies it responds, and configures it
// for LoRa operation with the driver's current parameters, leaving it
// in StandbyRC.
func (r *Radio) Initialize() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Reset()
	r.SetStandby(StandbyModeRC)
	v := r.Version()
	if r.err == nil && (v == 0x00 || v == 0xFF) {
		r.err = fmt.Errorf("unexpected version register value %#02x", v)
	}
	if r.err != nil {
		return r.err
	}
	r.SetPacketType(PacketTypeLoRa)
	if err := r.sendFrequency(r.frequency); err != nil {
		return err
	}
	if err := r.sendModulationParams(); err != nil {
		return err
	}
	r.setPacketParams(MaxPayloadLength)
	r.sendCommand(CmdSetPAConfig, encodePAConfig(0x04, 0x07, 0x00, 0x01)...)
	if err := r.sendTxParams(r.power, Ramp200us); err != nil {
		return err
	}
	r.sendSyncWord(r.syncWord)
	r.SetDioIrqParams(standardIrqMask, standardIrqMask, 0, 0)
	r.SetRegulatorMode(RegulatorDCDC)
	r.Calibrate(CalibrateAll)
	r.CalibrateImage(r.frequency)
	r.SetStandby(StandbyModeRC)
	return r.err
}

// Init initializes the radio device at the given frequency.
func (r *Radio) Init(frequency uint32) {
	r.frequency = frequency
	_ = r.Initialize()
}

// Deinitialize puts the chip into cold-start sleep.
func (r *Radio) Deinitialize() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.SetSleep(SleepColdStart)
}

// Status returns the chip's raw status byte.
func (r *Radio) Status() byte {
	buf := []byte{byte(CmdGetStatus), 0}
	r.transfer(buf)
	if r.err != nil {
		return 0
	}
	return buf[1]
}

// State returns a human-readable radio state.
func (r *Radio) State() string {
	return fmt.Sprintf("%v (status %#02x)", r.mode, r.Status())
}

// Frequency returns the configured center frequency in Hertz.
// This is the stored value, not re-decoded from hardware.
func (r *Radio) Frequency() uint32 {
	return r.frequency
}

// SetFrequency tunes the radio to the given frequency in Hertz.
func (r *Radio) SetFrequency(hz uint32) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ensureStandby()
	return r.sendFrequency(hz)
}

func (r *Radio) sendFrequency(hz uint32) error {
	p, err := encodeFrequency(hz)
	if err != nil {
		return err
	}
	r.sendCommand(CmdSetRfFrequency, p...)
	if r.err == nil {
		r.frequency = hz
	}
	return r.err
}

// SpreadingFactor returns the configured spreading factor.
func (r *Radio) SpreadingFactor() uint8 {
	return r.spreadingFactor
}

// SetSpreadingFactor sets the spreading factor (5..12) and re-sends
// the modulation parameters.
func (r *Radio) SetSpreadingFactor(sf uint8) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	old := r.spreadingFactor
	r.spreadingFactor = sf
	if err := r.updateModulation(); err != nil {
		r.spreadingFactor = old
		return err
	}
	return nil
}

// Bandwidth returns the configured bandwidth code.
func (r *Radio) Bandwidth() Bandwidth {
	return r.bandwidth
}

// SetBandwidth sets the bandwidth and re-sends the modulation parameters.
func (r *Radio) SetBandwidth(bw Bandwidth) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	old := r.bandwidth
	r.bandwidth = bw
	if err := r.updateModulation(); err != nil {
		r.bandwidth = old
		return err
	}
	return nil
}

// CodingRate returns the configured coding rate code.
func (r *Radio) CodingRate() CodingRate {
	return r.codingRate
}

// SetCodingRate sets the coding rate and re-sends the modulation parameters.
func (r *Radio) SetCodingRate(cr CodingRate) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	old := r.codingRate
	r.codingRate = cr
	if err := r.updateModulation(); err != nil {
		r.codingRate = old
		return err
	}
	return nil
}

func (r *Radio) updateModulation() error {
	r.ensureStandby()
	return r.sendModulationParams()
}

func (r *Radio) sendModulationParams() error {
	p, err := encodeModulation(r.spreadingFactor, r.bandwidth, r.codingRate)
	if err != nil {
		return err
	}
	r.sendCommand(CmdSetModulationParams, p...)
	return r.err
}

// setPacketParams sends the packet parameters with the given payload length.
func (r *Radio) setPacketParams(payloadLength byte) {
	p := encodePacketParams(r.preambleLength, r.implicitHeader, payloadLength, r.crcEnabled, r.iqInverted)
	r.sendCommand(CmdSetPacketParams, p...)
}

// Power returns the configured output power in dBm.
func (r *Radio) Power() int {
	return r.power
}

// SetPower sets the output power in dBm (-9..+22).
func (r *Radio) SetPower(dBm int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ensureStandby()
	return r.sendTxParams(dBm, Ramp200us)
}

func (r *Radio) sendTxParams(power int, ramp RampTime) error {
	p, err := encodeTxParams(power, ramp)
	if err != nil {
		return err
	}
	r.sendCommand(CmdSetTxParams, p...)
	if r.err == nil {
		r.power = power
	}
	return r.err
}

// SyncWord returns the configured LoRa sync word.
func (r *Radio) SyncWord() uint16 {
	return r.syncWord
}

// SetSyncWord sets the LoRa sync word.
func (r *Radio) SetSyncWord(w uint16) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sendSyncWord(w)
}

func (r *Radio) sendSyncWord(w uint16) {
	r.WriteRegister(RegSyncWordMSB, byte(w>>8))
	r.WriteRegister(RegSyncWordLSB, byte(w))
	if r.err == nil {
		r.syncWord = w
	}
}

// RSSI returns the signal strength of the last received packet, in dBm.
func (r *Radio) RSSI() int {
	return r.lastRSSI
}

// SNR returns the signal-to-noise ratio of the last received packet, in dB.
func (r *Radio) SNR() int {
	return r.lastSNR
}

// SetTxCallback registers a function invoked after each transmit attempt.
func (r *Radio) SetTxCallback(fn func(success bool)) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.txCallback = fn
}

// SetRxCallback registers a function invoked for each received packet.
func (r *Radio) SetRxCallback(fn func(data []byte, length int, rssi int, snr int)) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rxCallback = fn
}

// SetCadCallback registers a function invoked after each channel-activity
// detection completes.
func (r *Radio) SetCadCallback(fn func(detected bool)) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.cadCallback = fn
}
