// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package cliparse

import "testing"

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"BACKEND_URL", "API_TOKEN", "USER_ID", "SNAPSHOT_DRIVER", "SNAPSHOT_URL", "FANOUT_LIMIT"} {
		t.Setenv(key, "")
	}
}

func TestParseFlagsDefaults(t *testing.T) {
	clearEnv(t)

	cfg, rest, err := ParseFlags([]string{"-b", "http://localhost:8080", "dashboard"})
	if err != nil {
		t.Fatalf("ParseFlags() failed: %v", err)
	}
	if cfg.BackendURL != "http://localhost:8080" {
		t.Errorf("BackendURL = %q", cfg.BackendURL)
	}
	if cfg.SnapshotDriver != "sqlite" {
		t.Errorf("SnapshotDriver = %q, want sqlite default", cfg.SnapshotDriver)
	}
	if cfg.SnapshotURL != "survey-scope.db" {
		t.Errorf("SnapshotURL = %q, want default file", cfg.SnapshotURL)
	}
	if cfg.FanoutLimit != 8 {
		t.Errorf("FanoutLimit = %d, want default 8", cfg.FanoutLimit)
	}
	if len(rest) != 1 || rest[0] != "dashboard" {
		t.Errorf("Remaining args = %v, want [dashboard]", rest)
	}
}

func TestParseFlagsEnvFallback(t *testing.T) {
	clearEnv(t)
	t.Setenv("BACKEND_URL", "http://env:9090")
	t.Setenv("API_TOKEN", "env-token")
	t.Setenv("USER_ID", "42")
	t.Setenv("FANOUT_LIMIT", "2")

	cfg, _, err := ParseFlags(nil)
	if err != nil {
		t.Fatalf("ParseFlags() failed: %v", err)
	}
	if cfg.BackendURL != "http://env:9090" {
		t.Errorf("BackendURL = %q", cfg.BackendURL)
	}
	if cfg.Token != "env-token" {
		t.Errorf("Token = %q", cfg.Token)
	}
	if cfg.UserID != 42 {
		t.Errorf("UserID = %d, want 42", cfg.UserID)
	}
	if cfg.FanoutLimit != 2 {
		t.Errorf("FanoutLimit = %d, want 2", cfg.FanoutLimit)
	}
}

func TestParseFlagsFlagBeatsEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("BACKEND_URL", "http://env:9090")

	cfg, _, err := ParseFlags([]string{"-b", "http://flag:8080"})
	if err != nil {
		t.Fatalf("ParseFlags() failed: %v", err)
	}
	if cfg.BackendURL != "http://flag:8080" {
		t.Errorf("BackendURL = %q, flag must win over env", cfg.BackendURL)
	}
}

func TestParseFlagsErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		env  map[string]string
	}{
		{name: "missing backend URL", args: nil},
		{name: "bad user id", args: []string{"-b", "http://x", "-u", "abc"}},
		{name: "bad snapshot driver", args: []string{"-b", "http://x", "-snapshot-driver", "mysql"}},
		{name: "bad fanout env", args: []string{"-b", "http://x"}, env: map[string]string{"FANOUT_LIMIT": "lots"}},
		{name: "negative fanout env", args: []string{"-b", "http://x"}, env: map[string]string{"FANOUT_LIMIT": "-3"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			if _, _, err := ParseFlags(tt.args); err == nil {
				t.Error("ParseFlags() should have failed")
			}
		})
	}
}

func TestParseFlagsUnboundedFanout(t *testing.T) {
	clearEnv(t)

	cfg, _, err := ParseFlags([]string{"-b", "http://x", "-c", "0"})
	if err != nil {
		t.Fatalf("ParseFlags() failed: %v", err)
	}
	if cfg.FanoutLimit != 0 {
		t.Errorf("FanoutLimit = %d, want explicit 0", cfg.FanoutLimit)
	}
}
