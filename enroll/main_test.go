package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTermName(t *testing.T) {
	assert.Equal(t, "Fall 2023", TermName("F2023"))
	assert.Equal(t, "Winter 2024", TermName("W2024"))
	assert.Equal(t, "Spring/Summer 2024", TermName("S2024"))
}
