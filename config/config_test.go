package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadConfigDefaults(t *testing.T) {
	cfg := LoadConfig(writeConfig(t, "{}"))

	if cfg.LLM.Provider != "openai" || cfg.LLM.Model != "gpt-4o-mini" {
		t.Fatalf("llm defaults = %+v", cfg.LLM)
	}
	if cfg.LLM.Timeout != 30*time.Second {
		t.Fatalf("llm.timeout = %v", cfg.LLM.Timeout)
	}
	if cfg.LLM.PlannerTemperature != 0.1 || cfg.LLM.AnswerTemperature != 0.7 {
		t.Fatalf("temperatures = %+v", cfg.LLM)
	}
	if cfg.Search.Provider != "brightdata" || cfg.Search.Zone != "serp_api1" {
		t.Fatalf("search defaults = %+v", cfg.Search)
	}
	if cfg.Search.MaxResults != 5 || cfg.Search.Retries != 1 {
		t.Fatalf("search defaults = %+v", cfg.Search)
	}
	if cfg.Search.Timeout != 10*time.Second || cfg.Search.RetryBackoff != 500*time.Millisecond {
		t.Fatalf("search timing = %+v", cfg.Search)
	}
	if cfg.Context.MaxChars != 4000 {
		t.Fatalf("context.max_chars = %d", cfg.Context.MaxChars)
	}
	if cfg.Server.Addr != ":8000" || len(cfg.Server.CORSOrigins) != 2 {
		t.Fatalf("server defaults = %+v", cfg.Server)
	}
}

func TestLoadConfigFileOverrides(t *testing.T) {
	path := writeConfig(t, `{
  "llm": {"model": "gpt-4o", "timeout": "45s"},
  "search": {"max_results": 8},
  "server": {"addr": ":9000", "cors_origins": ["https://app.example.com"]}
}`)
	cfg := LoadConfig(path)

	if cfg.LLM.Model != "gpt-4o" || cfg.LLM.Timeout != 45*time.Second {
		t.Fatalf("llm = %+v", cfg.LLM)
	}
	if cfg.Search.MaxResults != 8 {
		t.Fatalf("search = %+v", cfg.Search)
	}
	if cfg.Server.Addr != ":9000" || len(cfg.Server.CORSOrigins) != 1 {
		t.Fatalf("server = %+v", cfg.Server)
	}
}

func TestLoadConfigEnvOverrides(t *testing.T) {
	t.Setenv("SEEKER_LLM_MODEL", "o4-mini")
	t.Setenv("SEEKER_SEARCH_MAX_RESULTS", "3")

	cfg := LoadConfig(writeConfig(t, "{}"))

	if cfg.LLM.Model != "o4-mini" {
		t.Fatalf("llm.model = %q", cfg.LLM.Model)
	}
	if cfg.Search.MaxResults != 3 {
		t.Fatalf("search.max_results = %d", cfg.Search.MaxResults)
	}
}

func TestLoadConfigTokenAliases(t *testing.T) {
	t.Setenv("ZEABUR_API_TOKEN", "llm-token")
	t.Setenv("BRIGHTDATA_API_TOKEN", "serp-token")

	cfg := LoadConfig(writeConfig(t, "{}"))

	if cfg.LLM.APIKey != "llm-token" {
		t.Fatalf("llm.api_key = %q", cfg.LLM.APIKey)
	}
	if cfg.Search.APIKey != "serp-token" {
		t.Fatalf("search.api_key = %q", cfg.Search.APIKey)
	}
}

func TestLoadConfigReadsDotEnv(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, ".env"), []byte("SEEKER_LLM_MODEL=dotenv-model\n"), 0o600); err != nil {
		t.Fatalf("write .env: %v", err)
	}
	path := filepath.Join(dir, "config.json")
	if err := os.WriteFile(path, []byte("{}"), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	oldwd, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() { _ = os.Chdir(oldwd) })
	t.Cleanup(func() { os.Unsetenv("SEEKER_LLM_MODEL") })

	cfg := LoadConfig(path)

	if cfg.LLM.Model != "dotenv-model" {
		t.Fatalf("llm.model = %q", cfg.LLM.Model)
	}
}

func TestLoadConfigNormalizesZeroTimings(t *testing.T) {
	path := writeConfig(t, `{"search": {"timeout": "0s", "retry_backoff": "0s"}}`)
	cfg := LoadConfig(path)

	if cfg.Search.Timeout != 10*time.Second {
		t.Fatalf("search.timeout = %v", cfg.Search.Timeout)
	}
	if cfg.Search.RetryBackoff != 500*time.Millisecond {
		t.Fatalf("search.retry_backoff = %v", cfg.Search.RetryBackoff)
	}
}

func TestLoadConfigRejectsBadValues(t *testing.T) {
	cases := []struct {
		name string
		body string
	}{
		{"negative max_results", `{"search": {"max_results": -1}}`},
		{"blank model", `{"llm": {"model": "  "}}`},
		{"negative retries", `{"search": {"retries": -2}}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			path := writeConfig(t, tc.body)
			defer func() {
				if recover() == nil {
					t.Fatalf("LoadConfig must panic on %s", tc.name)
				}
			}()
			LoadConfig(path)
		})
	}
}

func TestLoadConfigMissingExplicitFile(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("LoadConfig must panic when an explicit config file is missing")
		}
	}()
	LoadConfig(filepath.Join(t.TempDir(), "nope.json"))
}
