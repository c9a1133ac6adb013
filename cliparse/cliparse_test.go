package cliparse

import "testing"

func TestParseFlags(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr bool
		check   func(t *testing.T, cfg Config)
	}{
		{
			name: "all flags",
			args: []string{"-p", "8080", "-d", "file:votes.db", "-t", "sqlite", "-admin-salt", "a", "-slug-salt", "s"},
			check: func(t *testing.T, cfg Config) {
				if cfg.Port != 8080 {
					t.Errorf("Expected port 8080, got %d", cfg.Port)
				}
				if cfg.DatabaseType != "sqlite" {
					t.Errorf("Expected sqlite, got %s", cfg.DatabaseType)
				}
			},
		},
		{
			name: "default port and db type",
			args: []string{"-d", "file:votes.db", "-admin-salt", "a", "-slug-salt", "s"},
			check: func(t *testing.T, cfg Config) {
				if cfg.Port != 3419 {
					t.Errorf("Expected default port 3419, got %d", cfg.Port)
				}
				if cfg.DatabaseType != "sqlite" {
					t.Errorf("Expected default sqlite, got %s", cfg.DatabaseType)
				}
			},
		},
		{
			name:    "missing database URL",
			args:    []string{"-admin-salt", "a", "-slug-salt", "s"},
			wantErr: true,
		},
		{
			name:    "missing admin salt",
			args:    []string{"-d", "file:votes.db", "-slug-salt", "s"},
			wantErr: true,
		},
		{
			name:    "missing slug salt",
			args:    []string{"-d", "file:votes.db", "-admin-salt", "a"},
			wantErr: true,
		},
		{
			name:    "bad database type",
			args:    []string{"-d", "x", "-t", "mysql", "-admin-salt", "a", "-slug-salt", "s"},
			wantErr: true,
		},
		{
			name: "demo mode needs nothing else",
			args: []string{"-demo"},
			check: func(t *testing.T, cfg Config) {
				if !cfg.Demo {
					t.Error("Expected demo mode")
				}
				if cfg.DemoVoters != 500 {
					t.Errorf("Expected 500 demo voters, got %d", cfg.DemoVoters)
				}
			},
		},
		{
			name:    "demo voters must be positive",
			args:    []string{"-demo", "-demo-voters", "0"},
			wantErr: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg, err := ParseFlags(tc.args)
			if tc.wantErr {
				if err == nil {
					t.Fatal("Expected an error")
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if tc.check != nil {
				tc.check(t, cfg)
			}
		})
	}
}
