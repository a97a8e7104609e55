package tui

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"testing"

	"github.com/EmundoT/dep-comply/internal/core"
)

func TestNonInteractiveTUICallback_ShowError_Quiet(t *testing.T) {
	// Capture stderr
	oldStderr := os.Stderr
	r, w, _ := os.Pipe()
	os.Stderr = w

	callback := NewNonInteractiveTUICallback(core.NonInteractiveFlags{
		Mode: core.OutputQuiet,
	})

	callback.ShowError("Test Error", "This should not appear")

	_ = w.Close()
	os.Stderr = oldStderr

	var buf bytes.Buffer
	_, _ = io.Copy(&buf, r)

	if buf.String() != "" {
		t.Errorf("Expected no output in quiet mode, got: %s", buf.String())
	}
}

func TestNonInteractiveTUICallback_ShowError_JSON(t *testing.T) {
	output := captureStdout(func() {
		callback := NewNonInteractiveTUICallback(core.NonInteractiveFlags{
			Mode: core.OutputJSON,
		})
		callback.ShowError("Test Error", "Test message")
	})

	var parsed core.JSONOutput
	if err := json.Unmarshal([]byte(output), &parsed); err != nil {
		t.Fatalf("Failed to parse JSON output: %v", err)
	}

	if parsed.Status != "error" {
		t.Errorf("Expected status 'error', got '%s'", parsed.Status)
	}

	if parsed.Error == nil {
		t.Fatal("Expected error object to be present")
	}

	if parsed.Error.Title != "Test Error" {
		t.Errorf("Expected error title 'Test Error', got '%s'", parsed.Error.Title)
	}

	if parsed.Error.Message != "Test message" {
		t.Errorf("Expected error message 'Test message', got '%s'", parsed.Error.Message)
	}
}

func TestNonInteractiveTUICallback_ShowSuccess_Normal(t *testing.T) {
	output := captureStdout(func() {
		callback := NewNonInteractiveTUICallback(core.NonInteractiveFlags{
			Mode: core.OutputNormal,
		})
		callback.ShowSuccess("Operation succeeded")
	})

	expected := "Operation succeeded\n"
	if output != expected {
		t.Errorf("Expected output '%s', got '%s'", expected, output)
	}
}

func TestNonInteractiveTUICallback_ShowSuccess_Quiet(t *testing.T) {
	output := captureStdout(func() {
		callback := NewNonInteractiveTUICallback(core.NonInteractiveFlags{
			Mode: core.OutputQuiet,
		})
		callback.ShowSuccess("This should not appear")
	})

	if output != "" {
		t.Errorf("Expected no output in quiet mode, got: %s", output)
	}
}

func TestNonInteractiveTUICallback_ShowSuccess_JSON(t *testing.T) {
	output := captureStdout(func() {
		callback := NewNonInteractiveTUICallback(core.NonInteractiveFlags{
			Mode: core.OutputJSON,
		})
		callback.ShowSuccess("Operation succeeded")
	})

	var parsed core.JSONOutput
	if err := json.Unmarshal([]byte(output), &parsed); err != nil {
		t.Fatalf("Failed to parse JSON output: %v", err)
	}

	if parsed.Status != "success" {
		t.Errorf("Expected status 'success', got '%s'", parsed.Status)
	}

	if parsed.Message != "Operation succeeded" {
		t.Errorf("Expected message 'Operation succeeded', got '%s'", parsed.Message)
	}
}

func TestNonInteractiveTUICallback_AskConfirmation_Yes(t *testing.T) {
	callback := NewNonInteractiveTUICallback(core.NonInteractiveFlags{
		Yes: true,
	})

	result := callback.AskConfirmation("Test Confirmation", "Proceed?")

	if !result {
		t.Error("Expected auto-approve to return true with --yes flag")
	}
}

func TestNonInteractiveTUICallback_AskConfirmation_NoYes(t *testing.T) {
	// Capture stderr (where error will be shown)
	oldStderr := os.Stderr
	r, w, _ := os.Pipe()
	os.Stderr = w

	callback := NewNonInteractiveTUICallback(core.NonInteractiveFlags{
		Yes:  false,
		Mode: core.OutputNormal,
	})

	result := callback.AskConfirmation("Test Confirmation", "Proceed?")

	_ = w.Close()
	os.Stderr = oldStderr

	var buf bytes.Buffer
	_, _ = io.Copy(&buf, r)

	if result {
		t.Error("Expected confirmation to return false without --yes flag")
	}

	if buf.Len() == 0 {
		t.Error("Expected error message to be shown when confirmation is requested without --yes")
	}
}

func TestNonInteractiveTUICallback_FormatJSON(t *testing.T) {
	var formatErr error
	output := captureStdout(func() {
		callback := NewNonInteractiveTUICallback(core.NonInteractiveFlags{
			Mode: core.OutputJSON,
		})
		formatErr = callback.FormatJSON(core.JSONOutput{
			Status:  "success",
			Message: "Test message",
			Data: map[string]interface{}{
				"key1": "value1",
				"key2": 42,
			},
		})
	})
	if formatErr != nil {
		t.Fatalf("FormatJSON failed: %v", formatErr)
	}

	var parsed core.JSONOutput
	if err := json.Unmarshal([]byte(output), &parsed); err != nil {
		t.Fatalf("Failed to parse JSON output: %v", err)
	}

	if parsed.Status != "success" {
		t.Errorf("Expected status 'success', got '%s'", parsed.Status)
	}

	if parsed.Message != "Test message" {
		t.Errorf("Expected message 'Test message', got '%s'", parsed.Message)
	}

	if parsed.Data["key1"] != "value1" {
		t.Errorf("Expected data.key1 'value1', got '%v'", parsed.Data["key1"])
	}

	// JSON numbers are unmarshaled as float64
	if parsed.Data["key2"] != float64(42) {
		t.Errorf("Expected data.key2 42, got '%v'", parsed.Data["key2"])
	}
}

func TestNonInteractiveTUICallback_GetOutputMode(t *testing.T) {
	tests := []struct {
		name string
		mode core.OutputMode
	}{
		{"Normal mode", core.OutputNormal},
		{"Quiet mode", core.OutputQuiet},
		{"JSON mode", core.OutputJSON},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			callback := NewNonInteractiveTUICallback(core.NonInteractiveFlags{Mode: tt.mode})
			if got := callback.GetOutputMode(); got != tt.mode {
				t.Errorf("GetOutputMode() = %v, want %v", got, tt.mode)
			}
		})
	}
}

func TestNonInteractiveTUICallback_StyleTitle(t *testing.T) {
	callback := NewNonInteractiveTUICallback(core.NonInteractiveFlags{})
	if got := callback.StyleTitle("plain"); got != "plain" {
		t.Errorf("StyleTitle should be a no-op, got %q", got)
	}
}
