package robot

import (
	"rp6/avr"
	"rp6/timer"
)

// MaxPower is the full-scale motor duty. Timer1 counts to this value, not
// to 255.
const MaxPower = 210

// Direction of a motor.
type Direction uint8

const (
	Forward Direction = iota
	Backward
)

// InitMotors starts the motor PWM with both motors stopped and facing
// forward.
func InitMotors() error {
	if err := timer.Configure1(timer.MotorPWM); err != nil {
		return err
	}
	SetMotorDirection(Forward, Forward)
	return nil
}

// SetMotorDirection sets the rotation of the left and right motor.
func SetMotorDirection(left, right Direction) {
	setDir(DirLeft, left)
	setDir(DirRight, right)
}

// SetMotorPower sets the duty of both motors, clamped to MaxPower. The
// right motor hangs on OC1A, the left one on OC1B.
func SetMotorPower(left, right uint16) {
	timer.SetDuty(min(right, MaxPower), min(left, MaxPower))
}

// StopMotors sets both duties to zero. The PWM keeps running.
func StopMotors() {
	timer.SetDuty(0, 0)
}

func setDir(p avr.Pin, d Direction) {
	if d == Backward {
		p.SetHigh()
	} else {
		p.SetLow()
	}
}
