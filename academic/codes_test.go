package academic

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidCourseCode(t *testing.T) {
	assert.True(t, ValidCourseCode("CST8284"))
	assert.True(t, ValidCourseCode("MAT8001"))

	assert.False(t, ValidCourseCode("cst8284"))
	assert.False(t, ValidCourseCode("CST828"))
	assert.False(t, ValidCourseCode("CST82844"))
	assert.False(t, ValidCourseCode("CS8284"))
	assert.False(t, ValidCourseCode(""))
}

func TestValidTerm(t *testing.T) {
	assert.True(t, ValidTerm("F2023"))
	assert.True(t, ValidTerm("W2024"))
	assert.True(t, ValidTerm("S2024"))

	assert.False(t, ValidTerm("X2024"))
	assert.False(t, ValidTerm("F24"))
	assert.False(t, ValidTerm("2024F"))
	assert.False(t, ValidTerm(""))
}

func TestGradePassing(t *testing.T) {
	assert.True(t, GradeD.Passing())
	assert.True(t, GradeAPlus.Passing())

	assert.False(t, GradeF.Passing())
	assert.False(t, GradeW.Passing())
	assert.False(t, Grade("Z").Passing())
}
