package sx1262

// Configuration for Intel Edison in 64-bit mode with SX1262 radio board.

const (
	spiDevice = "/dev/spidev5.1"
	customCS  = 110
	resetPin  = 14
	busyPin   = 15
	dio1Pin   = 16
)
