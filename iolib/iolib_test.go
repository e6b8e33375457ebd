package iolib

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFileExists(t *testing.T) {
	dir := t.TempDir()
	name := filepath.Join(dir, "reviews.csv")

	if FileExists(name) {
		t.Fatal("FileExists reported a missing file")
	}
	if err := os.WriteFile(name, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}
	if !FileExists(name) {
		t.Error("FileExists missed an existing file")
	}
	if FileExists(dir) {
		t.Error("FileExists reported a directory as a file")
	}
	if !DirExists(dir) {
		t.Error("DirExists missed an existing directory")
	}
	if DirExists(name) {
		t.Error("DirExists reported a file as a directory")
	}
}

func TestCreateTSV(t *testing.T) {
	name := filepath.Join(t.TempDir(), "out.tsv")

	tsv, err := CreateTSV(name, "row", "text")
	if err != nil {
		t.Fatalf("CreateTSV: %v", err)
	}
	if err := tsv.Write([]string{"0", "clean, quiet room"}); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if err := tsv.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	b, err := os.ReadFile(name)
	if err != nil {
		t.Fatal(err)
	}
	want := "row\ttext\n0\tclean, quiet room\n"
	if string(b) != want {
		t.Errorf("file content = %q, want %q", b, want)
	}
}
