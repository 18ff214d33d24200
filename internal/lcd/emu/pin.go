package emu

import (
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpiotest"
)

// pin is a gpiotest pin that also feeds its level changes to the controller.
type pin struct {
	gpiotest.Pin
	ctrl *Controller
	id   lineID
}

// Out sets the pin level and lets the controller observe the transition.
func (p *pin) Out(l gpio.Level) error {
	if err := p.Pin.Out(l); err != nil {
		return err
	}
	p.ctrl.drive(p.id, l)
	return nil
}

var _ gpio.PinOut = (*pin)(nil)
