package extract

import (
	"archive/zip"
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
)

func buildDocx(t *testing.T, body string) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create("word/document.xml")
	if err != nil {
		t.Fatalf("create zip entry: %v", err)
	}
	if _, err := w.Write([]byte(body)); err != nil {
		t.Fatalf("write zip entry: %v", err)
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("close zip: %v", err)
	}
	return buf.Bytes()
}

func TestResumeText_ZipDocxNormalizes(t *testing.T) {
	data := buildDocx(t, `<w:document xmlns:w="w"><w:body><w:p><w:r><w:t>Jane Doe</w:t></w:r></w:p><w:p><w:r><w:t>Skills: Go, SQL</w:t></w:r></w:p></w:body></w:document>`)

	text, err := ResumeText(context.Background(), data, "application/zip", "resume.docx")
	if err != nil {
		t.Fatalf("expected docx to extract from zip mime, got error: %v", err)
	}
	if text != "Jane Doe\nSkills: Go, SQL" {
		t.Fatalf("unexpected text: %q", text)
	}
}

func TestResumeText_RealZipRejected(t *testing.T) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create("notes.txt")
	if err != nil {
		t.Fatalf("create zip entry: %v", err)
	}
	if _, err := w.Write([]byte("hello")); err != nil {
		t.Fatalf("write zip entry: %v", err)
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("close zip: %v", err)
	}

	_, err = ResumeText(context.Background(), buf.Bytes(), "application/zip", "notes.zip")
	if !errors.Is(err, ErrUnsupported) {
		t.Fatalf("expected ErrUnsupported, got %v", err)
	}
	if !strings.Contains(err.Error(), "application/zip") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestResumeText_PlainTextByExtension(t *testing.T) {
	text, err := ResumeText(context.Background(), []byte("plain resume"), "", "resume.txt")
	if err != nil {
		t.Fatalf("ResumeText: %v", err)
	}
	if text != "plain resume" {
		t.Fatalf("unexpected text: %q", text)
	}
}

func TestResumeText_EmptyPayload(t *testing.T) {
	if _, err := ResumeText(context.Background(), nil, MimePlain, "a.txt"); err == nil {
		t.Fatal("expected error for empty payload")
	}
}

func TestResumeText_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := ResumeText(ctx, []byte("x"), MimePlain, "a.txt"); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestDetectMimeType(t *testing.T) {
	cases := []struct {
		name     string
		mime     string
		file     string
		data     []byte
		expected string
	}{
		{"declared pdf", "application/pdf; charset=binary", "x.bin", nil, MimePDF},
		{"octet stream pdf extension", "application/octet-stream", "cv.PDF", nil, MimePDF},
		{"no mime docx extension", "", "cv.docx", nil, MimeDOCX},
		{"sniffed text", "", "cv", []byte("hello world"), MimePlain},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := DetectMimeType(tc.mime, tc.file, tc.data); got != tc.expected {
				t.Fatalf("expected %q, got %q", tc.expected, got)
			}
		})
	}
}
