package tui

import (
	"bytes"
	"io"
	"os"
	"strings"
	"testing"

	"github.com/EmundoT/dep-comply/internal/core"
)

// --- Print functions (capture stdout) ---

func captureStdout(fn func()) string {
	old := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w
	fn()
	_ = w.Close()
	os.Stdout = old
	var buf bytes.Buffer
	_, _ = io.Copy(&buf, r)
	return buf.String()
}

func TestNewTUICallback(t *testing.T) {
	cb := NewTUICallback()
	if cb == nil {
		t.Fatal("NewTUICallback returned nil")
	}
}

func TestTUICallback_ShowError(t *testing.T) {
	cb := NewTUICallback()
	output := captureStdout(func() {
		cb.ShowError("Test Error", "error details")
	})
	if !strings.Contains(output, "Test Error") {
		t.Errorf("ShowError output missing title, got: %q", output)
	}
	if !strings.Contains(output, "error details") {
		t.Errorf("ShowError output missing message, got: %q", output)
	}
}

func TestTUICallback_ShowSuccess(t *testing.T) {
	cb := NewTUICallback()
	output := captureStdout(func() {
		cb.ShowSuccess("all good")
	})
	if !strings.Contains(output, "all good") {
		t.Errorf("ShowSuccess output missing message, got: %q", output)
	}
}

func TestTUICallback_ShowWarning(t *testing.T) {
	cb := NewTUICallback()
	output := captureStdout(func() {
		cb.ShowWarning("Heads Up", "something unusual")
	})
	if !strings.Contains(output, "Heads Up") {
		t.Errorf("ShowWarning output missing title, got: %q", output)
	}
	if !strings.Contains(output, "something unusual") {
		t.Errorf("ShowWarning output missing message, got: %q", output)
	}
}

func TestTUICallback_StyleTitle(t *testing.T) {
	cb := NewTUICallback()
	result := cb.StyleTitle("Section Header")
	if !strings.Contains(result, "Section Header") {
		t.Errorf("StyleTitle result missing text, got: %q", result)
	}
}

func TestTUICallback_GetOutputMode(t *testing.T) {
	cb := NewTUICallback()
	if cb.GetOutputMode() != core.OutputNormal {
		t.Errorf("GetOutputMode = %v, want OutputNormal", cb.GetOutputMode())
	}
}

func TestTUICallback_IsAutoApprove(t *testing.T) {
	cb := NewTUICallback()
	if cb.IsAutoApprove() {
		t.Error("IsAutoApprove should return false for interactive mode")
	}
}

func TestTUICallback_FormatJSON(t *testing.T) {
	cb := NewTUICallback()
	err := cb.FormatJSON(core.JSONOutput{Status: "test"})
	if err != nil {
		t.Errorf("FormatJSON should return nil in interactive mode, got: %v", err)
	}
}

func TestPrintError(t *testing.T) {
	output := captureStdout(func() {
		PrintError("Failed", "something went wrong")
	})
	if !strings.Contains(output, "Failed") {
		t.Errorf("PrintError output missing title, got: %q", output)
	}
	if !strings.Contains(output, "something went wrong") {
		t.Errorf("PrintError output missing message, got: %q", output)
	}
}

func TestPrintHelp_ListsAllCommands(t *testing.T) {
	output := captureStdout(func() {
		PrintHelp()
	})
	for _, cmd := range []string{"init", "export", "list", "list-ignored", "check", "sbom", "watch", "completion"} {
		if !strings.Contains(output, cmd) {
			t.Errorf("PrintHelp output missing command %q", cmd)
		}
	}
}
