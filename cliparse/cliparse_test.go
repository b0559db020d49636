// cliparse/cliparse_test.go
package cliparse

import (
	"os"
	"testing"
)

func TestParseFlags_EnvVars(t *testing.T) {
	os.Setenv("PORT", "9000")
	os.Setenv("DATABASE_URL", "postgres://test")
	os.Setenv("JWT_SECRET", "test-secret")
	defer os.Clearenv()

	cfg, err := ParseFlags([]string{})
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Port != 9000 {
		t.Errorf("expected port 9000, got %d", cfg.Port)
	}
	if cfg.DatabaseType != "sqlite" {
		t.Errorf("expected default database type sqlite, got %s", cfg.DatabaseType)
	}
}

func TestParseFlags_CLIOverridesEnv(t *testing.T) {
	os.Setenv("PORT", "9000")
	defer os.Clearenv()

	cfg, err := ParseFlags([]string{"-p", "8080", "-d", "file:test.db", "-jwt-secret", "s1"})
	if err != nil {
		t.Fatal(err)
	}

	// CLI should override env
	if cfg.Port != 8080 {
		t.Errorf("CLI should override env: expected 8080, got %d", cfg.Port)
	}
}

func TestParseFlags_DefaultPort(t *testing.T) {
	os.Clearenv()
	os.Setenv("DATABASE_URL", "file:test.db")
	os.Setenv("JWT_SECRET", "test-secret")
	defer os.Clearenv()

	cfg, err := ParseFlags([]string{})
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Port != 3418 {
		t.Errorf("expected default port 3418, got %d", cfg.Port)
	}
}

func TestParseFlags_RequiredValues(t *testing.T) {
	tests := []struct {
		name string
		args []string
		env  map[string]string
	}{
		{"missing database url", []string{"-jwt-secret", "s1"}, nil},
		{"missing jwt secret", []string{"-d", "file:test.db"}, nil},
		{
			"bad database type",
			[]string{"-d", "file:test.db", "-jwt-secret", "s1", "-t", "mysql"},
			nil,
		},
		{
			"bad PORT env",
			[]string{"-d", "file:test.db", "-jwt-secret", "s1"},
			map[string]string{"PORT": "not-a-number"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			os.Clearenv()
			for k, v := range tt.env {
				os.Setenv(k, v)
			}
			defer os.Clearenv()

			if _, err := ParseFlags(tt.args); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}

func TestParseFlags_CollaboratorEndpoints(t *testing.T) {
	os.Clearenv()
	os.Setenv("DATABASE_URL", "file:test.db")
	os.Setenv("JWT_SECRET", "test-secret")
	os.Setenv("DIRECTORY_URL", "https://directory.test")
	os.Setenv("DIRECTORY_TOKEN", "dir-token")
	os.Setenv("NOTIFY_URL", "https://notify.test/hook")
	defer os.Clearenv()

	cfg, err := ParseFlags([]string{})
	if err != nil {
		t.Fatal(err)
	}

	if cfg.DirectoryURL != "https://directory.test" {
		t.Errorf("expected directory URL from env, got %s", cfg.DirectoryURL)
	}
	if cfg.DirectoryToken != "dir-token" {
		t.Errorf("expected directory token from env, got %s", cfg.DirectoryToken)
	}
	if cfg.NotifyURL != "https://notify.test/hook" {
		t.Errorf("expected notify URL from env, got %s", cfg.NotifyURL)
	}
}
