package yaml

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "wakeproxy.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestParse(t *testing.T) {
	path := writeConfig(t, `
target: "00:11:22:33:44:55"
port: 8080
shutdown_mode: disabled
upstream:
  host: pc.lan
  port: 9000
  suspend_timeout: 2s
wake:
  interface: eth0
`)
	cfg, err := NewParser().Parse(path)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if cfg.Target != "00:11:22:33:44:55" || cfg.Port != 8080 {
		t.Fatalf("unexpected config %+v", cfg)
	}
	if cfg.ShutdownMode != "disabled" {
		t.Fatalf("unexpected shutdown mode %s", cfg.ShutdownMode)
	}
	if cfg.Upstream.Host != "pc.lan" || cfg.Upstream.Port != 9000 || cfg.Upstream.SuspendTimeout != "2s" {
		t.Fatalf("unexpected upstream %+v", cfg.Upstream)
	}
	if cfg.Wake.Interface != "eth0" {
		t.Fatalf("unexpected wake %+v", cfg.Wake)
	}
}

func TestParseUnknownField(t *testing.T) {
	path := writeConfig(t, "target: aa:bb:cc:dd:ee:ff\nprot: 8080\n")
	if _, err := NewParser().Parse(path); err == nil {
		t.Fatalf("expected error for unknown field")
	}
}

func TestParseMissingFile(t *testing.T) {
	if _, err := NewParser().Parse(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}
