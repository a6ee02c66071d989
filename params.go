package sx1262

import (
	"errors"
	"fmt"
)

// Parameter encoding: pure conversions from engineering units to the
// byte sequences the command set requires. No I/O happens here.

// ErrInvalidParameter reports a caller error, rejected before any bus traffic.
var ErrInvalidParameter = errors.New("sx1262: invalid parameter")

// FXOSC is the crystal frequency in Hz. RF frequency register values
// are in units of FXOSC / 2^25 (about 0.95 Hz).
const FXOSC = 32000000

const frequencyShift = 25

const (
	minFrequency = 150000000 // Hz
	maxFrequency = 960000000 // Hz

	minPower = -9 // dBm
	maxPower = 22 // dBm

	minSpreadingFactor = 5
	maxSpreadingFactor = 12
)

// Bandwidth is the chip's LoRa bandwidth code.
type Bandwidth byte

const (
	Bandwidth7_8k   Bandwidth = 0x00
	Bandwidth10_4k  Bandwidth = 0x08
	Bandwidth15_6k  Bandwidth = 0x01
	Bandwidth20_8k  Bandwidth = 0x09
	Bandwidth31_25k Bandwidth = 0x02
	Bandwidth41_7k  Bandwidth = 0x0A
	Bandwidth62_5k  Bandwidth = 0x03
	Bandwidth125k   Bandwidth = 0x04
	Bandwidth250k   Bandwidth = 0x05
	Bandwidth500k   Bandwidth = 0x06
)

// Hz returns the bandwidth in Hertz, or 0 for an invalid code.
func (bw Bandwidth) Hz() uint32 {
	switch bw {
	case Bandwidth7_8k:
		return 7800
	case Bandwidth10_4k:
		return 10400
	case Bandwidth15_6k:
		return 15600
	case Bandwidth20_8k:
		return 20800
	case Bandwidth31_25k:
		return 31250
	case Bandwidth41_7k:
		return 41700
	case Bandwidth62_5k:
		return 62500
	case Bandwidth125k:
		return 125000
	case Bandwidth250k:
		return 250000
	case Bandwidth500k:
		return 500000
	}
	return 0
}

// CodingRate is the chip's LoRa coding rate code.
type CodingRate byte

const (
	CodingRate4_5 CodingRate = 0x01
	CodingRate4_6 CodingRate = 0x02
	CodingRate4_7 CodingRate = 0x03
	CodingRate4_8 CodingRate = 0x04
)

// encodeFrequency converts a frequency in Hertz to the 4-byte
// big-endian register value, rounding to the nearest register step.
// 64-bit arithmetic avoids overflow at the top of the band.
func encodeFrequency(hz uint32) ([]byte, error) {
	if hz < minFrequency || hz > maxFrequency {
		return nil, fmt.Errorf("%w: frequency %d Hz", ErrInvalidParameter, hz)
	}
	f := (uint64(hz)<<frequencyShift + FXOSC/2) / FXOSC
	return marshalUint32(uint32(f)), nil
}

// decodeFrequency is the inverse of encodeFrequency,
// exact to within the register quantization step.
func decodeFrequency(b []byte) uint32 {
	f := uint64(b[0])<<24 | uint64(b[1])<<16 | uint64(b[2])<<8 | uint64(b[3])
	return uint32((f*FXOSC + 1<<(frequencyShift-1)) >> frequencyShift)
}

// encodeModulation packs spreading factor, bandwidth, and coding rate.
// The low-data-rate-optimize byte is set whenever the symbol duration
// 2^sf/bw exceeds 16 ms, as the chip requires.
func encodeModulation(sf uint8, bw Bandwidth, cr CodingRate) ([]byte, error) {
	if sf < minSpreadingFactor || sf > maxSpreadingFactor {
		return nil, fmt.Errorf("%w: spreading factor %d", ErrInvalidParameter, sf)
	}
	bwHz := bw.Hz()
	if bwHz == 0 {
		return nil, fmt.Errorf("%w: bandwidth code %#02x", ErrInvalidParameter, byte(bw))
	}
	if cr < CodingRate4_5 || cr > CodingRate4_8 {
		return nil, fmt.Errorf("%w: coding rate code %#02x", ErrInvalidParameter, byte(cr))
	}
	ldro := byte(0)
	if lowDataRate(sf, bwHz) {
		ldro = 1
	}
	return []byte{sf, byte(bw), byte(cr), ldro}, nil
}

// lowDataRate reports whether the symbol duration 2^sf/bw exceeds 16 ms.
func lowDataRate(sf uint8, bwHz uint32) bool {
	return uint64(1)<<sf*1000 > uint64(bwHz)*16
}

// encodePacketParams packs the packet parameters in the chip's field order:
// big-endian preamble length, header type, payload length, CRC, IQ.
func encodePacketParams(preambleLength uint16, implicitHeader bool, payloadLength byte, crcOn bool, iqInverted bool) []byte {
	p := make([]byte, 6)
	copy(p, marshalUint16(preambleLength))
	if implicitHeader {
		p[2] = 1
	}
	p[3] = payloadLength
	if crcOn {
		p[4] = 1
	}
	if iqInverted {
		p[5] = 1
	}
	return p
}

// encodePAConfig packs the power-amplifier configuration.
func encodePAConfig(dutyCycle byte, hpMax byte, deviceSel byte, paLUT byte) []byte {
	return []byte{dutyCycle, hpMax, deviceSel, paLUT}
}

// encodeTxParams packs output power and PA ramp time.
// Power outside the chip's -9..+22 dBm range is a caller error, not clamped.
func encodeTxParams(power int, ramp RampTime) ([]byte, error) {
	if power < minPower || power > maxPower {
		return nil, fmt.Errorf("%w: power %d dBm", ErrInvalidParameter, power)
	}
	return []byte{byte(int8(power)), byte(ramp)}, nil
}

// rxTimeoutTicks converts a millisecond timeout to the set-rx
// radio-timer tick field, truncating toward zero.
func rxTimeoutTicks(ms uint32) uint32 {
	return uint32(uint64(ms) * 64 / 1000)
}
