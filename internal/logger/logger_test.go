package logger

import (
	"os"
	"path/filepath"
	"testing"
)

func TestInitConsoleOnly(t *testing.T) {
	if err := Init("debug", ""); err != nil {
		t.Fatal(err)
	}
	if Log == nil || Sugar == nil {
		t.Fatal("logger not initialized")
	}
}

func TestInitWithFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "arc.log")
	if err := Init("info", path); err != nil {
		t.Fatal(err)
	}
	Log.Info("reconstruction started")
	Sync()

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("log file not created: %v", err)
	}
	if info.Size() == 0 {
		t.Fatal("log file is empty")
	}
}
