package files

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	domainErrors "github.com/notemart/notemart/internal/domain/errors"
)

const (
	notesDir  = "notes"
	imagesDir = "images"

	// MaxUploadSize limits a single uploaded file to 50 MB.
	MaxUploadSize = 50 << 20
)

// Store persists uploaded PDFs and preview images on local disk under a
// single uploads root, served statically at /uploads.
type Store struct {
	root string
}

// NewStore creates the uploads directory layout if missing.
func NewStore(root string) (*Store, error) {
	for _, dir := range []string{notesDir, imagesDir} {
		if err := os.MkdirAll(filepath.Join(root, dir), 0o755); err != nil {
			return nil, fmt.Errorf("create uploads dir: %w", err)
		}
	}
	return &Store{root: root}, nil
}

// SaveNote stores an uploaded PDF and returns its stored name and public URL.
func (s *Store) SaveNote(fh *multipart.FileHeader) (string, string, error) {
	if err := checkPDF(fh); err != nil {
		return "", "", err
	}
	name := "note-" + uuid.NewString() + ".pdf"
	if err := s.write(fh, filepath.Join(notesDir, name)); err != nil {
		return "", "", err
	}
	return name, "/uploads/" + notesDir + "/" + name, nil
}

// SaveImage stores an uploaded preview image and returns its public URL.
func (s *Store) SaveImage(fh *multipart.FileHeader) (string, error) {
	ext, err := imageExt(fh)
	if err != nil {
		return "", err
	}
	name := "image-" + uuid.NewString() + ext
	if err := s.write(fh, filepath.Join(imagesDir, name)); err != nil {
		return "", err
	}
	return "/uploads/" + imagesDir + "/" + name, nil
}

// NotePath resolves the on-disk path of a stored note file.
func (s *Store) NotePath(fileName string) string {
	return filepath.Join(s.root, notesDir, filepath.Base(fileName))
}

// Root returns the uploads root directory.
func (s *Store) Root() string {
	return s.root
}

func (s *Store) write(fh *multipart.FileHeader, rel string) error {
	if fh.Size > MaxUploadSize {
		return domainErrors.Validation("file exceeds maximum allowed size")
	}

	src, err := fh.Open()
	if err != nil {
		return err
	}
	defer src.Close()

	dst, err := os.Create(filepath.Join(s.root, rel))
	if err != nil {
		return err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return err
	}
	return nil
}

func checkPDF(fh *multipart.FileHeader) error {
	ext := strings.ToLower(filepath.Ext(fh.Filename))
	contentType := fh.Header.Get("Content-Type")
	if ext != ".pdf" || (contentType != "" && contentType != "application/pdf") {
		return domainErrors.Validation("please upload a PDF file")
	}
	return nil
}

func imageExt(fh *multipart.FileHeader) (string, error) {
	ext := strings.ToLower(filepath.Ext(fh.Filename))
	switch ext {
	case ".jpg", ".jpeg", ".png", ".webp":
		return ext, nil
	default:
		return "", domainErrors.Validation("preview image must be jpeg, png or webp")
	}
}
