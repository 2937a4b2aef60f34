package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExemptionCodeMatches(t *testing.T) {
	testCases := []struct {
		name     string
		code     ExemptionCode
		dutyType DutyType
		expected bool
	}{
		{
			name:     "Guards exemption matches guards category",
			code:     ExemptionGuards,
			dutyType: DutyType{Name: "Day Guard", Category: "guards"},
			expected: true,
		},
		{
			name:     "Guards exemption ignores kitchen",
			code:     ExemptionGuards,
			dutyType: DutyType{Name: "Kitchen Morning", Category: "kitchen"},
			expected: false,
		},
		{
			name:     "Cleaning exemption matches cleaning category",
			code:     ExemptionCleaning,
			dutyType: DutyType{Name: "Latrines", Category: "cleaning"},
			expected: true,
		},
		{
			name:     "Night exemption matches night category",
			code:     ExemptionNight,
			dutyType: DutyType{Name: "Perimeter Watch", Category: "night"},
			expected: true,
		},
		{
			name:     "Night exemption matches name containing night",
			code:     ExemptionNight,
			dutyType: DutyType{Name: "night guard", Category: "guards"},
			expected: true,
		},
		{
			name:     "Night name match is case-sensitive",
			code:     ExemptionNight,
			dutyType: DutyType{Name: "Night Guard", Category: "guards"},
			expected: false,
		},
		{
			name:     "Unknown code matches nothing",
			code:     ExemptionCode("medical"),
			dutyType: DutyType{Name: "Latrines", Category: "cleaning"},
			expected: false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.code.Matches(&tc.dutyType))
		})
	}
}

func TestExemptionCodeIsValid(t *testing.T) {
	assert.True(t, ExemptionNight.IsValid())
	assert.True(t, ExemptionGuards.IsValid())
	assert.True(t, ExemptionCleaning.IsValid())
	assert.False(t, ExemptionCode("medical").IsValid())
	assert.False(t, ExemptionCode("").IsValid())
}
