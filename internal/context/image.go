// internal/context/image.go
package context

import (
	"encoding/base64"
	"errors"
	"fmt"
	"mime"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/dustin/go-humanize"
)

// DefaultMaxImageBytes caps image uploads (5MiB)
const DefaultMaxImageBytes = 5 << 20

// sniffLen is how many leading bytes http.DetectContentType inspects
const sniffLen = 512

var (
	ErrNotImage      = errors.New("Only image files are supported for visual prompts.")
	ErrImageTooLarge = errors.New("image too large")
)

// ImageAsset is an image file encoded for a visual prompt.
type ImageAsset struct {
	Name    string
	MIME    string
	Size    int64
	DataURL string
}

func (a ImageAsset) String() string {
	return fmt.Sprintf("%s (%s, %s)", a.Name, a.MIME, humanize.IBytes(uint64(a.Size)))
}

// LoadImage reads an image file and encodes it as a base64 data URL.
// maxBytes <= 0 means DefaultMaxImageBytes.
func LoadImage(path string, maxBytes int64) (ImageAsset, error) {
	if maxBytes <= 0 {
		maxBytes = DefaultMaxImageBytes
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return ImageAsset{}, fmt.Errorf("failed to resolve path: %w", err)
	}

	if err := ValidatePath(absPath); err != nil {
		return ImageAsset{}, err
	}

	info, err := os.Stat(absPath)
	if err != nil {
		return ImageAsset{}, fmt.Errorf("failed to stat file: %w", err)
	}
	if info.IsDir() {
		return ImageAsset{}, fmt.Errorf("%w: %s is a directory", ErrNotImage, filepath.Base(absPath))
	}
	if info.Size() > maxBytes {
		return ImageAsset{}, fmt.Errorf("%w: %s is %s, limit %s", ErrImageTooLarge,
			filepath.Base(absPath), humanize.IBytes(uint64(info.Size())), humanize.IBytes(uint64(maxBytes)))
	}

	data, err := os.ReadFile(absPath)
	if err != nil {
		return ImageAsset{}, fmt.Errorf("failed to read file: %w", err)
	}

	mimeType, ok := DetectImageType(absPath, data)
	if !ok {
		return ImageAsset{}, ErrNotImage
	}

	return ImageAsset{
		Name:    filepath.Base(absPath),
		MIME:    mimeType,
		Size:    int64(len(data)),
		DataURL: EncodeDataURL(mimeType, data),
	}, nil
}

// DetectImageType sniffs the content type of data. SVG is text to the
// sniffer, so it is recognized by extension instead.
func DetectImageType(path string, data []byte) (string, bool) {
	head := data
	if len(head) > sniffLen {
		head = head[:sniffLen]
	}
	ct := http.DetectContentType(head)
	if strings.HasPrefix(ct, "image/") {
		return ct, true
	}

	if strings.EqualFold(filepath.Ext(path), ".svg") && strings.Contains(string(head), "<svg") {
		return "image/svg+xml", true
	}
	return ct, false
}

// EncodeDataURL builds a data: URL with a base64 payload
func EncodeDataURL(mimeType string, data []byte) string {
	return "data:" + mimeType + ";base64," + base64.StdEncoding.EncodeToString(data)
}

// DecodeDataURL splits a base64 data URL into its media type and payload.
func DecodeDataURL(dataURL string) (string, []byte, error) {
	rest, ok := strings.CutPrefix(dataURL, "data:")
	if !ok {
		return "", nil, fmt.Errorf("not a data URL")
	}
	meta, payload, ok := strings.Cut(rest, ",")
	if !ok {
		return "", nil, fmt.Errorf("data URL has no payload")
	}
	mediaType, isBase64 := strings.CutSuffix(meta, ";base64")
	if !isBase64 {
		return "", nil, fmt.Errorf("data URL is not base64 encoded")
	}
	if _, _, err := mime.ParseMediaType(mediaType); err != nil {
		return "", nil, fmt.Errorf("invalid media type: %w", err)
	}
	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", nil, fmt.Errorf("decode payload: %w", err)
	}
	return mediaType, data, nil
}

// ValidatePath checks for security issues with the path
func ValidatePath(path string) error {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("invalid path: %w", err)
	}

	// Check for path traversal attempts
	cleanPath := filepath.Clean(absPath)
	if cleanPath != absPath && strings.Contains(path, "..") {
		return fmt.Errorf("path traversal not allowed")
	}

	if _, err := os.Stat(absPath); os.IsNotExist(err) {
		return fmt.Errorf("path does not exist: %s", absPath)
	} else if err != nil {
		return fmt.Errorf("cannot access path: %w", err)
	}

	if isSensitivePath(absPath) {
		return fmt.Errorf("access to sensitive path denied")
	}

	return nil
}

// isSensitivePath returns true for paths that should never be loaded
func isSensitivePath(path string) bool {
	sensitive := []string{
		"/.ssh/",
		"/.gnupg/",
		"/.aws/",
		"/.config/gcloud",
		"/etc/shadow",
		"/.netrc",
		"/credentials",
		"/secrets",
		"/.env",
		".pem",
		".key",
		"id_rsa",
		"id_ed25519",
	}

	lowerPath := strings.ToLower(path)
	for _, s := range sensitive {
		if strings.Contains(lowerPath, s) {
			return true
		}
	}
	return false
}
