package die

import "fmt"

// Orientation is a proper rotation taking local die coordinates to world
// coordinates. The zero value is not valid; use Identity or FromValue.
type Orientation struct {
	Matrix [3][3]int `json:"matrix"`
}

// Quarter-turn rotations about the world axes.
var (
	rotXPos = [3][3]int{{1, 0, 0}, {0, 0, -1}, {0, 1, 0}}
	rotXNeg = [3][3]int{{1, 0, 0}, {0, 0, 1}, {0, -1, 0}}
	rotYPos = [3][3]int{{0, 0, 1}, {0, 1, 0}, {-1, 0, 0}}
	rotYNeg = [3][3]int{{0, 0, -1}, {0, 1, 0}, {1, 0, 0}}
	rotZPos = [3][3]int{{0, -1, 0}, {1, 0, 0}, {0, 0, 1}}
	rotX180 = [3][3]int{{1, 0, 0}, {0, -1, 0}, {0, 0, -1}}
)

// Identity returns the orientation with the 1 face up.
func Identity() Orientation {
	return Orientation{Matrix: [3][3]int{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}}
}

// FromValue returns an orientation showing value face-up.
func FromValue(value int) (Orientation, error) {
	axis, sign, err := AxisFor(value)
	if err != nil {
		return Orientation{}, err
	}

	// Rotation that carries the face's local axis onto world up.
	var r [3][3]int
	switch {
	case axis == AxisZ && sign > 0:
		return Identity(), nil
	case axis == AxisZ:
		r = rotX180
	case axis == AxisX && sign > 0:
		r = rotYNeg
	case axis == AxisX:
		r = rotYPos
	case axis == AxisY && sign > 0:
		r = rotXPos
	default:
		r = rotXNeg
	}
	return Orientation{Matrix: r}, nil
}

// Up returns the local axis currently pointing world-up.
func (o Orientation) Up() Vector {
	return Vector(o.Matrix[2])
}

// Value returns the pip value currently face-up.
func (o Orientation) Value() int {
	v, err := ValueOf(o.Up())
	if err != nil {
		// Only reachable for a zero-value Orientation.
		return 0
	}
	return v
}

// Roll tips the die one square in world direction (dx, dy). The top face
// ends up facing the direction of travel.
func (o Orientation) Roll(dx, dy int) (Orientation, error) {
	switch {
	case dx == 0 && dy == 1:
		return o.rotate(rotXNeg), nil
	case dx == 0 && dy == -1:
		return o.rotate(rotXPos), nil
	case dx == 1 && dy == 0:
		return o.rotate(rotYPos), nil
	case dx == -1 && dy == 0:
		return o.rotate(rotYNeg), nil
	default:
		return o, fmt.Errorf("cannot roll by (%d,%d): %w", dx, dy, ErrNotUnitAxis)
	}
}

// Yaw turns the die about the vertical axis by quarterTurns * 90 degrees.
// The face-up value does not change.
func (o Orientation) Yaw(quarterTurns int) Orientation {
	n := ((quarterTurns % 4) + 4) % 4
	for i := 0; i < n; i++ {
		o = o.rotate(rotZPos)
	}
	return o
}

// Flip turns the die 180 degrees about the world X axis, bringing the
// opposite face up.
func (o Orientation) Flip() Orientation {
	return o.rotate(rotX180)
}

// rotate applies a world-frame rotation.
func (o Orientation) rotate(r [3][3]int) Orientation {
	var out Orientation
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			sum := 0
			for k := 0; k < 3; k++ {
				sum += r[i][k] * o.Matrix[k][j]
			}
			out.Matrix[i][j] = sum
		}
	}
	return out
}
