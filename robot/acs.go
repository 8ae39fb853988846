package robot

// ACSLevel is the transmit power of the anti-collision system.
type ACSLevel uint8

const (
	ACSOff ACSLevel = iota
	ACSLow
	ACSMedium
	ACSHigh
)

// SetACSPower selects the ACS transmit power. The two power lines are
// driven high as outputs when in use and left as low inputs otherwise.
func SetACSPower(l ACSLevel) {
	switch l {
	case ACSOff:
		ACSPower.SetInput()
		ACSPower.SetLow()
		ACSPowerHigh.SetInput()
		ACSPowerHigh.SetLow()
		ACSLeft.SetLow()
		ACSRight.SetLow()
	case ACSLow:
		ACSPower.SetOutput()
		ACSPower.SetHigh()
		ACSPowerHigh.SetInput()
		ACSPowerHigh.SetLow()
	case ACSMedium:
		ACSPower.SetInput()
		ACSPower.SetLow()
		ACSPowerHigh.SetOutput()
		ACSPowerHigh.SetHigh()
	case ACSHigh:
		ACSPower.SetOutput()
		ACSPower.SetHigh()
		ACSPowerHigh.SetOutput()
		ACSPowerHigh.SetHigh()
	default:
		panic("robot: unknown ACS power level")
	}
}
