package rv3028

const (
	Address = 0x52 // I2C address for RV-3028-C7

	Seconds  = 0x00 // Time registers starting with seconds
	Minutes  = 0x01
	Hours    = 0x02
	Weekday  = 0x03
	Date     = 0x04
	Month    = 0x05
	Year     = 0x06
	Status   = 0x0E // Status register, bit 0 is the power-on reset flag
	Control1 = 0x0F // Control register 1
	Control2 = 0x10 // Control register 2, bit 1 selects 12-hour mode

	statusPORF     = 1 << 0
	control2Mode12 = 1 << 1
)
