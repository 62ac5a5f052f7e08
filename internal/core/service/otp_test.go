package service

import "testing"

func TestGenerateOTP_Length(t *testing.T) {
	for _, digits := range []int{1, 4, 6, 8} {
		for i := 0; i < 50; i++ {
			otp, err := GenerateOTP(digits)
			if err != nil {
				t.Fatalf("generate failed: %v", err)
			}
			if len(otp) != digits {
				t.Fatalf("expected %d digits, got %q", digits, otp)
			}
			for _, r := range otp {
				if r < '0' || r > '9' {
					t.Fatalf("non-digit in OTP: %q", otp)
				}
			}
		}
	}
}

func TestGenerateOTP_Varies(t *testing.T) {
	seen := make(map[string]struct{})
	for i := 0; i < 20; i++ {
		otp, err := GenerateOTP(6)
		if err != nil {
			t.Fatalf("generate failed: %v", err)
		}
		seen[otp] = struct{}{}
	}
	if len(seen) < 2 {
		t.Fatalf("20 draws produced a single value")
	}
}

func TestGenerateOTP_InvalidDigits(t *testing.T) {
	for _, digits := range []int{0, -1} {
		if _, err := GenerateOTP(digits); err == nil {
			t.Fatalf("expected error for digits=%d", digits)
		}
	}
}
