package academic

type Grade string

const (
	GradeAPlus Grade = "A+"
	GradeA     Grade = "A"
	GradeBPlus Grade = "B+"
	GradeB     Grade = "B"
	GradeCPlus Grade = "C+"
	GradeC     Grade = "C"
	GradeDPlus Grade = "D+"
	GradeD     Grade = "D"
	GradeF     Grade = "F"
	GradeW     Grade = "W"
)

// W has no point value: withdrawn courses carry no attempted credit.
var gradePoints = map[Grade]float64{
	GradeAPlus: 4.5,
	GradeA:     4.0,
	GradeBPlus: 3.5,
	GradeB:     3.0,
	GradeCPlus: 2.5,
	GradeC:     2.0,
	GradeDPlus: 1.5,
	GradeD:     1.0,
	GradeF:     0.0,
}

func (g Grade) Points() (float64, bool) {
	points, okay := gradePoints[g]
	return points, okay
}

func (g Grade) Valid() bool {
	if g == GradeW {
		return true
	}
	_, okay := gradePoints[g]
	return okay
}

// Passing reports whether g satisfies a prerequisite requirement.
func (g Grade) Passing() bool {
	return g.Valid() && g != GradeF && g != GradeW
}
