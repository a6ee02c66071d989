package sx1262

// Scripted bus and pins for driving the driver without hardware.

type testPin struct {
	level bool
}

func (p *testPin) Read() (bool, error) { return p.level, nil }
func (p *testPin) Write(b bool) error  { p.level = b; return nil }

// testBus replaces *spi.Device. It records every frame clocked out and
// fills in responses for the read-style opcodes from its script.
type testBus struct {
	frames [][]byte // every frame, in order

	irqSeq     []IrqFlags // successive GetIrqStatus responses; last repeats
	irqIndex   int
	rxLength   byte    // GetRxBufferStatus payload length
	rxOffset   byte    // GetRxBufferStatus start offset
	pktStatus  [3]byte // GetPacketStatus raw bytes
	bufferData []byte  // chip data buffer, indexed by absolute offset
	version    byte    // value of the version register
	status     byte    // GetStatus response
}

func (b *testBus) Close() error { return nil }

func (b *testBus) Transfer(buf []byte) error {
	frame := make([]byte, len(buf))
	copy(frame, buf)
	b.frames = append(b.frames, frame)

	switch Command(buf[0]) {
	case CmdGetIrqStatus:
		var flags IrqFlags
		if len(b.irqSeq) > 0 {
			flags = b.irqSeq[b.irqIndex]
			if b.irqIndex < len(b.irqSeq)-1 {
				b.irqIndex++
			}
		}
		copy(buf[2:], marshalUint16(uint16(flags)))
	case CmdGetRxBufferStatus:
		buf[2] = b.rxLength
		buf[3] = b.rxOffset
	case CmdGetPacketStatus:
		copy(buf[2:], b.pktStatus[:])
	case CmdReadBuffer:
		offset := int(buf[1])
		for i := 3; i < len(buf); i++ {
			j := offset + i - 3
			if j < len(b.bufferData) {
				buf[i] = b.bufferData[j]
			}
		}
	case CmdReadRegister:
		addr := uint16(buf[1])<<8 | uint16(buf[2])
		if addr == RegVersion {
			buf[4] = b.version
		}
	case CmdGetStatus:
		buf[1] = b.status
	}
	return nil
}

// commands returns the opcode sequence of all recorded frames.
func (b *testBus) commands() []Command {
	cmds := make([]Command, len(b.frames))
	for i, f := range b.frames {
		cmds[i] = Command(f[0])
	}
	return cmds
}

// clearMasks returns the mask of every recorded clear-irq command, in order.
func (b *testBus) clearMasks() []IrqFlags {
	var masks []IrqFlags
	for _, f := range b.frames {
		if Command(f[0]) == CmdClearIrqStatus && len(f) >= 3 {
			masks = append(masks, IrqFlags(unmarshalUint16(f[1:])))
		}
	}
	return masks
}

// lastFrame returns the most recent frame with the given opcode, or nil.
func (b *testBus) lastFrame(cmd Command) []byte {
	for i := len(b.frames) - 1; i >= 0; i-- {
		if Command(b.frames[i][0]) == cmd {
			return b.frames[i]
		}
	}
	return nil
}

// testRadio returns a Radio wired to a scripted bus, in StandbyRC.
func testRadio(bus *testBus) *Radio {
	r := newRadio()
	r.device = bus
	r.resetPin = &testPin{}
	r.busyPin = &testPin{}
	r.mode = StandbyRC
	return r
}
