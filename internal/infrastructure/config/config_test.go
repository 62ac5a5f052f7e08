package config

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	cfg := Load()

	if cfg.Port != "8080" {
		t.Fatalf("unexpected port: %s", cfg.Port)
	}
	if cfg.OTPDigits != 4 {
		t.Fatalf("unexpected otp digits: %d", cfg.OTPDigits)
	}
	if cfg.OTPMaxTries != 0 {
		t.Fatalf("try limiting must default to disabled, got %d", cfg.OTPMaxTries)
	}
	if cfg.TokenTTL != 0 {
		t.Fatalf("token expiry must default to disabled, got %s", cfg.TokenTTL)
	}
	if cfg.OTPTryWindow != time.Hour {
		t.Fatalf("unexpected try window: %s", cfg.OTPTryWindow)
	}
	if cfg.Mongo.Database != "account_service" {
		t.Fatalf("unexpected mongo db: %s", cfg.Mongo.Database)
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("OTP_MAX_TRIES", "3")
	t.Setenv("TOKEN_TTL", "24h")

	cfg := Load()
	if cfg.Port != "9090" {
		t.Fatalf("PORT override ignored: %s", cfg.Port)
	}
	if cfg.OTPMaxTries != 3 {
		t.Fatalf("OTP_MAX_TRIES override ignored: %d", cfg.OTPMaxTries)
	}
	if cfg.TokenTTL != 24*time.Hour {
		t.Fatalf("TOKEN_TTL override ignored: %s", cfg.TokenTTL)
	}
}
