package sx1262

import "fmt"

// Command represents an opcode in the SX1262 command set.
// See the SX1261/2 data sheet, chapter 13.
type Command byte

//go:generate stringer -type Command

const (
	CmdSetSleep            Command = 0x84
	CmdSetStandby          Command = 0x80
	CmdSetFS               Command = 0xC1
	CmdSetTx               Command = 0x83
	CmdSetRx               Command = 0x82
	CmdSetCAD              Command = 0xC5
	CmdSetRegulatorMode    Command = 0x96
	CmdCalibrate           Command = 0x89
	CmdCalibrateImage      Command = 0x98
	CmdSetPAConfig         Command = 0x95
	CmdWriteRegister       Command = 0x0D
	CmdReadRegister        Command = 0x1D
	CmdWriteBuffer         Command = 0x0E
	CmdReadBuffer          Command = 0x1E
	CmdSetDioIrqParams     Command = 0x08
	CmdGetIrqStatus        Command = 0x12
	CmdClearIrqStatus      Command = 0x02
	CmdSetRfFrequency      Command = 0x86
	CmdSetPacketType       Command = 0x8A
	CmdGetPacketType       Command = 0x11
	CmdSetTxParams         Command = 0x8E
	CmdSetModulationParams Command = 0x8B
	CmdSetPacketParams     Command = 0x8C
	CmdGetStatus           Command = 0xC0
	CmdGetRxBufferStatus   Command = 0x13
	CmdGetPacketStatus     Command = 0x14
)

// Register addresses in the SX1262's 16-bit register space.
const (
	RegVersion          uint16 = 0x0153
	RegSyncWordMSB      uint16 = 0x08C7
	RegSyncWordLSB      uint16 = 0x08C8
	RegNodeAddress      uint16 = 0x08CD
	RegBroadcastAddress uint16 = 0x08CE
)

// RadioMode represents the operating mode of the transceiver.
// It mirrors the chip's internal state; the driver tracks it so that
// the TX/RX/CAD operations can restore StandbyRC between operations.
type RadioMode byte

const (
	Sleep RadioMode = iota
	StandbyRC
	StandbyXOSC
	FS
	RX
	TX
)

func (m RadioMode) String() string {
	switch m {
	case Sleep:
		return "Sleep"
	case StandbyRC:
		return "StandbyRC"
	case StandbyXOSC:
		return "StandbyXOSC"
	case FS:
		return "FS"
	case RX:
		return "RX"
	case TX:
		return "TX"
	}
	return fmt.Sprintf("RadioMode(%d)", byte(m))
}

// StandbyMode selects the clock source for standby.
type StandbyMode byte

const (
	StandbyModeRC   StandbyMode = 0x00
	StandbyModeXOSC StandbyMode = 0x01
)

// SleepConfig selects warm or cold start on wakeup.
type SleepConfig byte

const (
	SleepColdStart SleepConfig = 0x00
	SleepWarmStart SleepConfig = 0x04
)

// RegulatorMode selects the internal power regulator.
type RegulatorMode byte

const (
	RegulatorLDO  RegulatorMode = 0x00
	RegulatorDCDC RegulatorMode = 0x01
)

// PacketType selects the modem. It must be set before modulation or
// packet parameters, which the chip interprets relative to it.
type PacketType byte

const (
	PacketTypeGFSK   PacketType = 0x00
	PacketTypeLoRa   PacketType = 0x01
	PacketTypeLRFHSS PacketType = 0x03
)

// RampTime is the PA ramp-up time for SetTxParams.
type RampTime byte

const (
	Ramp10us   RampTime = 0x00
	Ramp20us   RampTime = 0x01
	Ramp40us   RampTime = 0x02
	Ramp80us   RampTime = 0x03
	Ramp200us  RampTime = 0x04
	Ramp800us  RampTime = 0x05
	Ramp1700us RampTime = 0x06
	Ramp3400us RampTime = 0x07
)

// CalibrateAll enables every calibration block in the Calibrate command.
const CalibrateAll byte = 0x7F

// IrqFlags is the 16-bit interrupt status bitmask.
type IrqFlags uint16

const (
	IrqTxDone           IrqFlags = 1 << 0
	IrqRxDone           IrqFlags = 1 << 1
	IrqPreambleDetected IrqFlags = 1 << 2
	IrqSyncWordValid    IrqFlags = 1 << 3
	IrqHeaderValid      IrqFlags = 1 << 4
	IrqHeaderError      IrqFlags = 1 << 5
	IrqCrcError         IrqFlags = 1 << 6
	IrqCadDone          IrqFlags = 1 << 7
	IrqCadDetected      IrqFlags = 1 << 8
	IrqTimeout          IrqFlags = 1 << 9

	IrqAll IrqFlags = 0x03FF
)
