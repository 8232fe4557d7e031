// internal/context/image_test.go
package context

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// pngHeader is enough for content sniffing
var pngHeader = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR\x00\x00\x00\x01\x00\x00\x00\x01")

func writeFile(t *testing.T, dir, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatalf("failed to create test file: %v", err)
	}
	return path
}

func TestValidatePath(t *testing.T) {
	tmpDir := t.TempDir()
	testFile := writeFile(t, tmpDir, "chart.png", pngHeader)

	tests := []struct {
		name    string
		path    string
		wantErr bool
	}{
		{"valid file", testFile, false},
		{"valid directory", tmpDir, false},
		{"nonexistent path", filepath.Join(tmpDir, "nonexistent"), true},
		{"path traversal", filepath.Join(tmpDir, "..", "..", "etc", "shadow"), true},
		{"sensitive ssh path", "/home/user/.ssh/id_rsa", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePath(tt.path)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidatePath(%q) error = %v, wantErr %v", tt.path, err, tt.wantErr)
			}
		})
	}
}

func TestLoadImage(t *testing.T) {
	tmpDir := t.TempDir()
	png := writeFile(t, tmpDir, "skyline.png", pngHeader)
	txt := writeFile(t, tmpDir, "notes.txt", []byte("just some text"))
	svg := writeFile(t, tmpDir, "logo.svg", []byte(`<?xml version="1.0"?><svg xmlns="http://www.w3.org/2000/svg"></svg>`))

	t.Run("png", func(t *testing.T) {
		asset, err := LoadImage(png, 0)
		if err != nil {
			t.Fatalf("LoadImage() error = %v", err)
		}
		if asset.Name != "skyline.png" {
			t.Errorf("Name = %q, want skyline.png", asset.Name)
		}
		if asset.MIME != "image/png" {
			t.Errorf("MIME = %q, want image/png", asset.MIME)
		}
		if !strings.HasPrefix(asset.DataURL, "data:image/png;base64,") {
			t.Errorf("DataURL has wrong prefix: %q", asset.DataURL)
		}
		if asset.Size != int64(len(pngHeader)) {
			t.Errorf("Size = %d, want %d", asset.Size, len(pngHeader))
		}
		if !strings.Contains(asset.String(), "skyline.png") {
			t.Errorf("String() = %q", asset.String())
		}
	})

	t.Run("svg by extension", func(t *testing.T) {
		asset, err := LoadImage(svg, 0)
		if err != nil {
			t.Fatalf("LoadImage() error = %v", err)
		}
		if asset.MIME != "image/svg+xml" {
			t.Errorf("MIME = %q, want image/svg+xml", asset.MIME)
		}
	})

	t.Run("text file rejected", func(t *testing.T) {
		_, err := LoadImage(txt, 0)
		if !errors.Is(err, ErrNotImage) {
			t.Fatalf("LoadImage() error = %v, want ErrNotImage", err)
		}
		if err.Error() != "Only image files are supported for visual prompts." {
			t.Errorf("unexpected message %q", err)
		}
	})

	t.Run("directory rejected", func(t *testing.T) {
		if _, err := LoadImage(tmpDir, 0); !errors.Is(err, ErrNotImage) {
			t.Errorf("LoadImage(dir) error = %v, want ErrNotImage", err)
		}
	})

	t.Run("too large", func(t *testing.T) {
		_, err := LoadImage(png, 8)
		if !errors.Is(err, ErrImageTooLarge) {
			t.Errorf("LoadImage() error = %v, want ErrImageTooLarge", err)
		}
	})

	t.Run("missing", func(t *testing.T) {
		if _, err := LoadImage(filepath.Join(tmpDir, "nope.png"), 0); err == nil {
			t.Error("LoadImage() expected error for missing file")
		}
	})
}

func TestDataURLRoundTrip(t *testing.T) {
	url := EncodeDataURL("image/png", pngHeader)
	mediaType, data, err := DecodeDataURL(url)
	if err != nil {
		t.Fatalf("DecodeDataURL() error = %v", err)
	}
	if mediaType != "image/png" {
		t.Errorf("media type = %q", mediaType)
	}
	if string(data) != string(pngHeader) {
		t.Error("payload mismatch")
	}

	for _, bad := range []string{"image/png;base64,AA", "data:image/png;base64", "data:image/png,AA", "data:image/png;base64,!!"} {
		if _, _, err := DecodeDataURL(bad); err == nil {
			t.Errorf("DecodeDataURL(%q) expected error", bad)
		}
	}
}

func TestIsSensitivePath(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{"/home/user/.ssh/id_rsa", true},
		{"/home/user/.gnupg/private.key", true},
		{"/home/user/.aws/credentials", true},
		{"/path/to/.env", true},
		{"/project/secrets/api.key", true},
		{"/home/user/Pictures/chart.png", false},
		{"/project/diagram.svg", false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			if got := isSensitivePath(tt.path); got != tt.want {
				t.Errorf("isSensitivePath(%q) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}
