// Package die models the orientation of a six-sided die piece and the pip
// value it shows.
//
// # Faces
//
// Faces are numbered 1..6 with opposite faces summing to 7, in one fixed
// chirality: local +Z shows 1, -Z 6, +X 5, -X 2, +Y 3 and -Y 4.
//
// # Orientation
//
// An Orientation is an integer rotation matrix taking the die's local frame
// to the world frame. World up is +Z, world +Y points from rank 1 toward
// rank 8 and world +X from file A toward file H. The value shown is the face
// whose local axis currently points world-up.
package die

import (
	"errors"
	"fmt"
)

// ErrNotUnitAxis indicates a vector that is not one of the six signed unit axes.
var ErrNotUnitAxis = errors.New("vector is not a unit axis")

// ErrInvalidValue indicates a pip value outside 1-6.
var ErrInvalidValue = errors.New("pip value must be between 1 and 6")

// Axis is one of the three local axes.
type Axis int

const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

// String returns the axis letter.
func (a Axis) String() string {
	switch a {
	case AxisX:
		return "X"
	case AxisY:
		return "Y"
	case AxisZ:
		return "Z"
	default:
		return "?"
	}
}

// Vector is an integer 3-vector.
type Vector [3]int

// faceValues is keyed by axis*2 + positive.
var faceValues = [6]int{
	2, 5, // -X, +X
	4, 3, // -Y, +Y
	6, 1, // -Z, +Z
}

// axisOf returns the axis and sign of a signed unit vector.
func axisOf(v Vector) (Axis, int, error) {
	axis, sign, nonZero := Axis(0), 0, 0
	for i, c := range v {
		switch c {
		case 0:
		case 1, -1:
			axis, sign = Axis(i), c
			nonZero++
		default:
			return 0, 0, fmt.Errorf("%v: %w", v, ErrNotUnitAxis)
		}
	}
	if nonZero != 1 {
		return 0, 0, fmt.Errorf("%v: %w", v, ErrNotUnitAxis)
	}
	return axis, sign, nil
}

// ValueOf returns the pip value of the face whose local axis is v.
func ValueOf(v Vector) (int, error) {
	axis, sign, err := axisOf(v)
	if err != nil {
		return 0, err
	}
	positive := 0
	if sign > 0 {
		positive = 1
	}
	return faceValues[int(axis)*2+positive], nil
}

// AxisFor returns the local axis and sign of the face showing value.
func AxisFor(value int) (Axis, int, error) {
	for i, v := range faceValues {
		if v == value {
			sign := -1
			if i%2 == 1 {
				sign = 1
			}
			return Axis(i / 2), sign, nil
		}
	}
	return 0, 0, fmt.Errorf("%d: %w", value, ErrInvalidValue)
}

// UnitVector returns the signed unit vector along axis.
func UnitVector(axis Axis, sign int) Vector {
	var v Vector
	v[axis] = sign
	return v
}
