package pilosa

import (
	"bytes"
	"testing"
)

func TestMag_DivDigit(t *testing.T) {
	tests := []struct {
		x     string
		d     byte
		wantQ string
		wantR byte
	}{
		{"", 7, "", 0},
		{"6", 2, "3", 0},
		{"7", 2, "3", 1},
		{"100", 3, "33", 1},
		{"1332", 6, "222", 0},
		{"1000000", 7, "142857", 1},
		{"123456789", 9, "13717421", 0},
	}
	for _, tt := range tests {
		q, r := magf(tt.x).divDigit(tt.d)
		if !bytes.Equal(q, magf(tt.wantQ)) || r != tt.wantR {
			t.Errorf("divDigit(%q, %v) = (%v, %v), want (%q, %v)", tt.x, tt.d, q, r, tt.wantQ, tt.wantR)
		}
	}
}

func TestMag_DivDigit_Zero(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("divDigit(%q, 0) did not panic", "12")
		}
	}()
	magf("12").divDigit(0)
}

func TestMag_Div(t *testing.T) {
	tests := []struct {
		x, y  string
		wantQ string
		wantR string
	}{
		// single-digit divisors delegate to short division
		{"1332", "6", "222", ""},
		{"7", "2", "3", "1"},
		// dividend smaller than divisor
		{"", "12", "", ""},
		{"12", "345", "", "12"},
		{"99", "100", "", "99"},
		// exact multi-digit
		{"1332", "12", "111", ""},
		{"12", "12", "1", ""},
		{"999999", "999", "1001", ""},
		{"909090", "91", "9990", ""},
		// with remainder
		{"100", "13", "7", "9"},
		{"10000", "73", "136", "72"},
		{"65432", "321", "203", "269"},
		// divisor top digit 1, maximal normalization
		{"100", "19", "5", "5"},
		{"1000", "19", "52", "12"},
		{"1000000000000000", "3333333", "300000030", "10"},
	}
	for _, tt := range tests {
		q, r := magf(tt.x).div(magf(tt.y))
		if !bytes.Equal(q, magf(tt.wantQ)) || !bytes.Equal(r, magf(tt.wantR)) {
			t.Errorf("div(%q, %q) = (%v, %v), want (%q, %q)", tt.x, tt.y, q, r, tt.wantQ, tt.wantR)
		}
	}
}

func TestMag_Div_Zero(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("div(%q, 0) did not panic", "12")
		}
	}()
	magf("12").div(nil)
}
