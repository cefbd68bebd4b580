package files

import (
	"bytes"
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"os"
	"path/filepath"
	"strings"
	"testing"

	domainErrors "github.com/notemart/notemart/internal/domain/errors"
)

func fileHeader(t *testing.T, filename, contentType string, content []byte) *multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename=%q`, filename))
	if contentType != "" {
		header.Set("Content-Type", contentType)
	}
	part, err := mw.CreatePart(header)
	if err != nil {
		t.Fatalf("create part: %v", err)
	}
	if _, err := part.Write(content); err != nil {
		t.Fatalf("write part: %v", err)
	}
	_ = mw.Close()

	req := httptest.NewRequest(http.MethodPost, "/", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	if err := req.ParseMultipartForm(32 << 20); err != nil {
		t.Fatalf("parse form: %v", err)
	}
	return req.MultipartForm.File["file"][0]
}

func TestSaveNote(t *testing.T) {
	store, err := NewStore(t.TempDir())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	name, fileURL, err := store.SaveNote(fileHeader(t, "algebra.pdf", "application/pdf", []byte("%PDF-1.4")))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasSuffix(name, ".pdf") {
		t.Fatalf("expected pdf name, got %q", name)
	}
	if !strings.HasPrefix(fileURL, "/uploads/notes/") {
		t.Fatalf("unexpected url %q", fileURL)
	}

	content, err := os.ReadFile(store.NotePath(name))
	if err != nil {
		t.Fatalf("stored file missing: %v", err)
	}
	if string(content) != "%PDF-1.4" {
		t.Fatalf("unexpected content %q", content)
	}
}

func TestSaveNoteRejectsNonPDF(t *testing.T) {
	store, err := NewStore(t.TempDir())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	cases := []struct {
		name        string
		filename    string
		contentType string
	}{
		{"wrong extension", "algebra.docx", "application/msword"},
		{"wrong content type", "algebra.pdf", "text/plain"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := store.SaveNote(fileHeader(t, tc.filename, tc.contentType, []byte("x")))
			if !errors.Is(err, domainErrors.ErrValidation) {
				t.Fatalf("expected validation error, got %v", err)
			}
		})
	}
}

func TestSaveNoteRejectsOversizedFile(t *testing.T) {
	store, err := NewStore(t.TempDir())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	fh := fileHeader(t, "big.pdf", "application/pdf", []byte("x"))
	fh.Size = MaxUploadSize + 1

	if _, _, err := store.SaveNote(fh); !errors.Is(err, domainErrors.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestSaveImage(t *testing.T) {
	store, err := NewStore(t.TempDir())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	imageURL, err := store.SaveImage(fileHeader(t, "preview.PNG", "image/png", []byte("png")))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasPrefix(imageURL, "/uploads/images/") || !strings.HasSuffix(imageURL, ".png") {
		t.Fatalf("unexpected url %q", imageURL)
	}

	if _, err := store.SaveImage(fileHeader(t, "preview.gif", "image/gif", []byte("gif"))); !errors.Is(err, domainErrors.ErrValidation) {
		t.Fatalf("expected validation error for gif, got %v", err)
	}
}

func TestNotePathIgnoresDirectoryComponents(t *testing.T) {
	root := t.TempDir()
	store, err := NewStore(root)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	path := store.NotePath("../../etc/passwd")
	if path != filepath.Join(root, "notes", "passwd") {
		t.Fatalf("path escaped the notes dir: %q", path)
	}
}
