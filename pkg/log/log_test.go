package log

import (
	"io"
	"os"
	"strings"
	"testing"
)

// captureStderr runs fn with os.Stderr redirected to a pipe and returns what
// was written. Not safe for parallel tests.
func captureStderr(t *testing.T, fn func()) string {
	t.Helper()

	old := os.Stderr
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("os.Pipe() error = %v", err)
	}
	os.Stderr = w

	fn()

	w.Close()
	os.Stderr = old

	out, err := io.ReadAll(r)
	if err != nil {
		t.Fatalf("ReadAll() error = %v", err)
	}
	return string(out)
}

func TestErrorMsg(t *testing.T) {
	out := captureStderr(t, func() {
		ErrorMsg("it broke: %s\n", "badly")
	})

	if !strings.Contains(out, "[!] Error: it broke: badly") {
		t.Errorf("output = %q; want error prefix and message", out)
	}
}

func TestInfoMsg(t *testing.T) {
	out := captureStderr(t, func() {
		InfoMsg("listening on %s\n", "127.0.0.1:4433")
	})

	if !strings.Contains(out, "[+] listening on 127.0.0.1:4433") {
		t.Errorf("output = %q; want info prefix and message", out)
	}
}

func TestVerboseMsg(t *testing.T) {
	out := captureStderr(t, func() {
		VerboseMsg("%d bytes\n", 42)
	})

	if !strings.Contains(out, "[*] 42 bytes") {
		t.Errorf("output = %q; want verbose prefix and message", out)
	}
}
