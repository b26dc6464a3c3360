package utils

import (
	"math"
	"testing"
)

func TestCalculateBMI(t *testing.T) {
	bmi, err := CalculateBMI(175, 70)
	if err != nil {
		t.Fatalf("CalculateBMI returned error: %v", err)
	}
	if math.Abs(bmi-22.857) > 0.01 {
		t.Errorf("BMI = %v, want ~22.86", bmi)
	}
}

func TestCalculateBMIRejectsImplausibleInput(t *testing.T) {
	cases := []struct{ h, w float64 }{
		{0, 70}, {175, 0}, {-175, 70}, {30, 70}, {175, 500},
	}
	for _, tc := range cases {
		if _, err := CalculateBMI(tc.h, tc.w); err == nil {
			t.Errorf("CalculateBMI(%v, %v) = nil error, want error", tc.h, tc.w)
		}
	}
}

func TestBMICategory(t *testing.T) {
	tests := []struct {
		bmi  float64
		want string
	}{
		{17, "Underweight"},
		{22, "Normal weight"},
		{27, "Overweight"},
		{33, "Obese"},
	}
	for _, tt := range tests {
		if got := BMICategory(tt.bmi); got != tt.want {
			t.Errorf("BMICategory(%v) = %q, want %q", tt.bmi, got, tt.want)
		}
	}
}
