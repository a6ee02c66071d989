package sx1262

// Configuration for Raspberry Pi with SX1262 radio bonnet.

const (
	spiDevice = "/dev/spidev0.1"
	customCS  = 0
	resetPin  = 17
	busyPin   = 23
	dio1Pin   = 24
)
