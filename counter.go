// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package segsim

// posMask truncates values to the counter's 4-bit width.
const posMask = 0xf

// A Counter is the 4-bit scroll position register.
//
//	Inputs: reset, load, enable, loadValue[4]
//	Outputs: value[4]
//	Function: value wraps 15 -> 0 on increment.
//
// The control priority is fixed: reset overrides load, load overrides
// enable, and with none asserted the value holds. Reset is asynchronous in
// the source hardware, so it is checked first and takes effect within the
// same step.
//
type Counter struct {
	value uint8
}

// Step applies one reference tick worth of control inputs and returns the
// resulting position. loadValue is truncated to 4 bits, never rejected.
//
func (c *Counter) Step(reset, load, enable bool, loadValue uint8) uint8 {
	switch {
	case reset:
		c.value = 0
	case load:
		c.value = loadValue & posMask
	case enable:
		c.value = (c.value + 1) & posMask
	default:
		// hold
	}
	return c.value
}

// Value returns the current position without stepping.
//
func (c *Counter) Value() uint8 {
	return c.value
}
