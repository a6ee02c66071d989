package sx1262

import (
	"bytes"
	"errors"
	"fmt"
	"testing"
	"time"
)

func TestTransmit(t *testing.T) {
	for _, n := range []int{0, 1, 10, 255} {
		t.Run(fmt.Sprintf("payload_%d", n), func(t *testing.T) {
			payload := make([]byte, n)
			for i := range payload {
				payload[i] = byte(i)
			}
			bus := &testBus{irqSeq: []IrqFlags{IrqTxDone}}
			r := testRadio(bus)
			var results []bool
			r.SetTxCallback(func(success bool) { results = append(results, success) })

			if !r.Transmit(payload, time.Minute) {
				t.Fatalf("Transmit failed: %v", r.Error())
			}
			if len(results) != 1 || !results[0] {
				t.Errorf("TX callback results == %v, want [true]", results)
			}
			if r.Mode() != StandbyRC {
				t.Errorf("Mode() == %v after transmit, want StandbyRC", r.Mode())
			}

			frame := bus.lastFrame(CmdWriteBuffer)
			if frame == nil {
				t.Fatal("no write-buffer frame recorded")
			}
			if frame[1] != 0 || !bytes.Equal(frame[2:], payload) {
				t.Errorf("write-buffer frame == % X, want offset 0 and payload % X", frame, payload)
			}
			pp := bus.lastFrame(CmdSetPacketParams)
			if pp == nil {
				t.Fatal("no set-packet-params frame recorded")
			}
			if pp[4] != byte(n) {
				t.Errorf("packet-params payload length == %d, want %d", pp[4], n)
			}
			tx := bus.lastFrame(CmdSetTx)
			want := []byte{byte(CmdSetTx), 0, 0, 0}
			if !bytes.Equal(tx, want) {
				t.Errorf("set-tx frame == % X, want % X", tx, want)
			}
			masks := bus.clearMasks()
			if len(masks) != 2 || masks[0] != IrqTxDone|IrqTimeout || masks[1] != IrqTxDone {
				t.Errorf("clear masks == %v, want [TxDone|Timeout, TxDone]", masks)
			}
		})
	}
}

func TestTransmitOversized(t *testing.T) {
	bus := &testBus{}
	r := testRadio(bus)
	calls := 0
	r.SetTxCallback(func(bool) { calls++ })

	if r.Transmit(make([]byte, 256), time.Minute) {
		t.Error("Transmit accepted a 256-byte payload")
	}
	if !errors.Is(r.Error(), ErrInvalidParameter) {
		t.Errorf("Error() == %v, want ErrInvalidParameter", r.Error())
	}
	if len(bus.frames) != 0 {
		t.Errorf("%d frames reached the bus for an oversized payload", len(bus.frames))
	}
	if calls != 0 {
		t.Errorf("TX callback invoked %d times for a rejected payload", calls)
	}
}

func TestTransmitRadioTimeout(t *testing.T) {
	bus := &testBus{irqSeq: []IrqFlags{0, IrqTimeout}}
	r := testRadio(bus)
	var results []bool
	r.SetTxCallback(func(success bool) { results = append(results, success) })

	if r.Transmit([]byte{0xAA}, time.Minute) {
		t.Error("Transmit succeeded despite the timeout flag")
	}
	if len(results) != 1 || results[0] {
		t.Errorf("TX callback results == %v, want [false]", results)
	}
	masks := bus.clearMasks()
	if len(masks) == 0 || masks[len(masks)-1] != IrqTimeout {
		t.Errorf("clear masks == %v, want IrqTimeout last", masks)
	}
	if r.Mode() != StandbyRC {
		t.Errorf("Mode() == %v after timeout, want StandbyRC", r.Mode())
	}
	if r.Error() != nil {
		t.Errorf("unexpected error %v", r.Error())
	}
}

func TestTransmitWallClockTimeout(t *testing.T) {
	bus := &testBus{irqSeq: []IrqFlags{0}}
	r := testRadio(bus)
	var results []bool
	r.SetTxCallback(func(success bool) { results = append(results, success) })

	start := time.Now()
	if r.Transmit([]byte{0xAA}, 50*time.Millisecond) {
		t.Error("Transmit succeeded with no completion flag")
	}
	if elapsed := time.Since(start); elapsed > time.Second {
		t.Errorf("Transmit took %v, want about 50ms", elapsed)
	}
	if len(results) != 1 || results[0] {
		t.Errorf("TX callback results == %v, want [false]", results)
	}
	if r.Mode() != StandbyRC {
		t.Errorf("Mode() == %v after wall-clock timeout, want StandbyRC", r.Mode())
	}
}
