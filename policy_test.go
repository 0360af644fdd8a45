package statuswatch

import "testing"

func TestDefaultSuccessPolicy_BoundaryCodes(t *testing.T) {
	tests := []struct {
		code int
		want bool
	}{
		{199, false},
		{200, true},
		{204, true},
		{299, true},
		{300, true},
		{301, true},
		{399, true},
		{400, false},
		{404, false},
		{500, false},
	}

	for _, tt := range tests {
		if got := DefaultSuccessPolicy(tt.code); got != tt.want {
			t.Errorf("DefaultSuccessPolicy(%d) = %v, want %v", tt.code, got, tt.want)
		}
	}
}

func TestSuccessRange(t *testing.T) {
	p := SuccessRange(200, 299)

	if !p(200) {
		t.Error("SuccessRange(200, 299)(200) = false, want true")
	}
	if !p(299) {
		t.Error("SuccessRange(200, 299)(299) = false, want true")
	}
	if p(300) {
		t.Error("SuccessRange(200, 299)(300) = true, want false")
	}
	if p(199) {
		t.Error("SuccessRange(200, 299)(199) = true, want false")
	}
}

func TestSuccessCodes(t *testing.T) {
	p := SuccessCodes(200, 301, 418)

	for _, code := range []int{200, 301, 418} {
		if !p(code) {
			t.Errorf("SuccessCodes(%d) = false, want true", code)
		}
	}
	for _, code := range []int{201, 300, 500} {
		if p(code) {
			t.Errorf("SuccessCodes(%d) = true, want false", code)
		}
	}
}
