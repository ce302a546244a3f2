package config

import (
	"os"
	"testing"
)

func validConfig() Config {
	return Config{
		HTTP:     HTTPConfig{Port: 8090},
		Database: DatabaseConfig{Addrs: []string{"localhost:6379"}},
	}
}

func TestValidate_PortRange(t *testing.T) {
	for _, port := range []int{0, -1, 70000} {
		cfg := validConfig()
		cfg.HTTP.Port = port
		if err := cfg.Validate(); err == nil {
			t.Errorf("port %d: expected error", port)
		}
	}
}

func TestValidate_AddrsRequired(t *testing.T) {
	cfg := validConfig()
	cfg.Database.Addrs = nil
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for missing addrs")
	}
}

func TestValidate_DefaultPageSizeBound(t *testing.T) {
	cfg := validConfig()
	cfg.Search.DefaultPageSize = 200
	cfg.Search.MaxPageSize = 100
	if err := cfg.Validate(); err == nil {
		t.Error("expected error when default page size exceeds max")
	}
}

func TestApplyDefaults(t *testing.T) {
	cfg := validConfig()
	cfg.ApplyDefaults()

	if cfg.HTTP.ReadTimeoutSec != 10 || cfg.HTTP.WriteTimeoutSec != 10 || cfg.HTTP.ShutdownSec != 10 {
		t.Errorf("http defaults = %+v", cfg.HTTP)
	}
	if cfg.Search.DefaultPageSize != 20 || cfg.Search.MaxPageSize != 100 {
		t.Errorf("search page defaults = %+v", cfg.Search)
	}
	if cfg.Search.SuggestionLimit != 8 || cfg.Search.CommentConcurrency != 8 {
		t.Errorf("search fan-out defaults = %+v", cfg.Search)
	}
	if cfg.Database.ReadinessTimeout != 10 {
		t.Errorf("readiness default = %d", cfg.Database.ReadinessTimeout)
	}
}

func TestApplyDefaults_KeepsExplicitValues(t *testing.T) {
	cfg := validConfig()
	cfg.Search.DefaultPageSize = 50
	cfg.Cache.SubjectTTLSec = 600
	cfg.ApplyDefaults()

	if cfg.Search.DefaultPageSize != 50 {
		t.Errorf("default page size = %d, want 50", cfg.Search.DefaultPageSize)
	}
	if cfg.Cache.SubjectTTLSec != 600 {
		t.Errorf("subject ttl = %d, want 600", cfg.Cache.SubjectTTLSec)
	}
}

func TestExpandEnvVars(t *testing.T) {
	t.Setenv("STUDYFIND_TEST_PASSWORD", "s3cret")

	in := []byte("password: ${STUDYFIND_TEST_PASSWORD}\nother: ${STUDYFIND_TEST_MISSING:-fallback}\n")
	out := string(expandEnvVars(in))

	want := "password: s3cret\nother: fallback\n"
	if out != want {
		t.Errorf("expanded = %q, want %q", out, want)
	}
}

func TestExpandEnvVars_MissingWithoutDefault(t *testing.T) {
	_ = os.Unsetenv("STUDYFIND_TEST_UNSET")
	out := string(expandEnvVars([]byte("v: ${STUDYFIND_TEST_UNSET}")))
	if out != "v: " {
		t.Errorf("expanded = %q", out)
	}
}

func TestGetEnv(t *testing.T) {
	t.Setenv("ENV", "prod")
	if got := GetEnv(); got != "prod" {
		t.Errorf("GetEnv = %q, want prod", got)
	}

	t.Setenv("ENV", "")
	if got := GetEnv(); got != "local" {
		t.Errorf("GetEnv = %q, want local", got)
	}
}
