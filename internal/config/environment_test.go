package config

import (
	"os"
	"strings"
	"testing"
)

func TestCaptureEnvironment(t *testing.T) {
	t.Setenv("PATH", strings.Join([]string{"/usr/bin", "/usr/local/bin"}, string(os.PathListSeparator)))
	t.Setenv("VIRTUAL_ENV", "/home/user/.venvs/demo")
	t.Setenv("PY_PYTHON", "3")
	t.Setenv("PY_PYTHON3", "3.6")
	t.Setenv("PY_PYTHONX", "garbage")

	env := CaptureEnvironment()

	if len(env.PathDirs) != 2 || env.PathDirs[0] != "/usr/bin" || env.PathDirs[1] != "/usr/local/bin" {
		t.Errorf("PathDirs = %v", env.PathDirs)
	}
	if env.VirtualEnv != "/home/user/.venvs/demo" {
		t.Errorf("VirtualEnv = %q", env.VirtualEnv)
	}
	if env.DefaultVersion != "3" {
		t.Errorf("DefaultVersion = %q", env.DefaultVersion)
	}
	if got := env.MajorDefaults[3]; got != "3.6" {
		t.Errorf("MajorDefaults[3] = %q, want %q", got, "3.6")
	}
	if len(env.MajorDefaults) != 1 {
		t.Errorf("MajorDefaults = %v, want one entry", env.MajorDefaults)
	}
}

func TestCaptureEnvironmentUnset(t *testing.T) {
	t.Setenv("PATH", "")
	t.Setenv("VIRTUAL_ENV", "")
	t.Setenv("PY_PYTHON", "")

	env := CaptureEnvironment()

	if len(env.PathDirs) != 0 {
		t.Errorf("PathDirs = %v, want empty", env.PathDirs)
	}
	if env.VirtualEnv != "" || env.DefaultVersion != "" {
		t.Errorf("expected empty markers, got %+v", env)
	}
}

func TestSearchPath(t *testing.T) {
	env := Environment{PathDirs: []string{"/usr/bin", "/bin"}}
	cfg := &Config{Search: SearchConfig{ExtraPaths: []string{"/opt/python/bin"}}}

	got := env.SearchPath(cfg)

	want := []string{"/usr/bin", "/bin", "/opt/python/bin"}
	if len(got) != len(want) {
		t.Fatalf("SearchPath() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("SearchPath()[%d] = %q, want %q", i, got[i], want[i])
		}
	}

	if dirs := env.SearchPath(nil); len(dirs) != 2 {
		t.Errorf("SearchPath(nil) = %v, want PATH entries only", dirs)
	}
}
