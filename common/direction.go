package common

// Direction is the facing of a character or projectile.
type Direction int

const (
	Right Direction = iota
	Left
)

func (d Direction) String() string {
	if d == Left {
		return "left"
	}
	return "right"
}

// Opposite returns the mirrored direction.
func (d Direction) Opposite() Direction {
	if d == Left {
		return Right
	}
	return Left
}

// Sign is +1 for Right and -1 for Left.
func (d Direction) Sign() float64 {
	if d == Left {
		return -1
	}
	return 1
}
