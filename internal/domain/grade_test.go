package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseGrade(t *testing.T) {
	cases := []struct {
		code string
		want int
	}{
		{"K", 0},
		{"k", 0},
		{"Kindergarten", 0},
		{"1", 1},
		{"3rd", 3},
		{"12", 12},
		{" 7 ", 7},
	}
	for _, c := range cases {
		got, err := ParseGrade(c.code)
		require.NoError(t, err, "code %q", c.code)
		assert.Equal(t, c.want, got, "code %q", c.code)
	}
}

func TestParseGrade_Invalid(t *testing.T) {
	for _, code := range []string{"", "13", "-1", "preschool"} {
		_, err := ParseGrade(code)
		assert.Error(t, err, "code %q", code)
	}
}

func TestChild_GradeNumber_Unparseable(t *testing.T) {
	c := Child{Grade: "nursery"}
	assert.Equal(t, -1, c.GradeNumber())
}

func TestGradeLabel(t *testing.T) {
	assert.Equal(t, "K", GradeLabel(0))
	assert.Equal(t, "5", GradeLabel(5))
}
