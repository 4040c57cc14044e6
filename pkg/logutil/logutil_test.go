package logutil

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestGetLogger_SilentByDefault(t *testing.T) {
	t.Cleanup(func() { SetOutput(io.Discard) })
	logger := GetLogger("[test] ")
	logger.Println("dropped")

	var buf bytes.Buffer
	SetOutput(&buf)
	logger.Println("kept")

	got := buf.String()
	if strings.Contains(got, "dropped") {
		t.Errorf("output %q contains message logged before SetOutput", got)
	}
	if !strings.HasPrefix(got, "[test] ") || !strings.HasSuffix(got, "kept\n") {
		t.Errorf("output = %q, want prefixed message", got)
	}
}

func TestSetOutput_AffectsExistingLoggers(t *testing.T) {
	t.Cleanup(func() { SetOutput(io.Discard) })
	a, b := GetLogger("[a] "), GetLogger("[b] ")
	var buf bytes.Buffer
	SetOutput(&buf)
	a.Print("1")
	b.Print("2")
	if got := buf.String(); !strings.Contains(got, "[a] ") || !strings.Contains(got, "[b] ") {
		t.Errorf("output = %q, want lines from both loggers", got)
	}
}

func TestSetOutputFile(t *testing.T) {
	t.Cleanup(func() { SetOutput(io.Discard) })
	name := filepath.Join(t.TempDir(), "log")
	logger := GetLogger("[file] ")
	if err := SetOutputFile(name); err != nil {
		t.Fatal(err)
	}
	logger.Println("hello")
	// Switching away closes the file.
	if err := SetOutputFile(""); err != nil {
		t.Fatal(err)
	}
	logger.Println("after")

	data, err := os.ReadFile(name)
	if err != nil {
		t.Fatal(err)
	}
	if got := string(data); !strings.Contains(got, "[file] ") || !strings.Contains(got, "hello") || strings.Contains(got, "after") {
		t.Errorf("log file = %q", got)
	}
}

func TestSetOutputFile_BadPath(t *testing.T) {
	err := SetOutputFile(filepath.Join(t.TempDir(), "no", "such", "dir", "log"))
	if err == nil {
		t.Errorf("want error for bad path")
	}
}
