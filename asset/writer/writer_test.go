package writer

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

func testImage(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{R: uint8(x * 10), G: uint8(y * 10), B: 200, A: 255})
		}
	}
	return img
}

func TestEncodePPM(t *testing.T) {
	img := testImage(4, 3)

	var buf bytes.Buffer
	if err := EncodePPM(&buf, img); err != nil {
		t.Fatal(err)
	}

	header := "P6 4 3 255\n"
	out := buf.Bytes()
	if !bytes.HasPrefix(out, []byte(header)) {
		t.Fatalf("expected header %q; got %q", header, out[:len(header)])
	}

	payload := out[len(header):]
	if len(payload) != 3*4*3 {
		t.Fatalf("expected payload to contain %d bytes; got %d", 3*4*3, len(payload))
	}

	// Pixel (1, 2) is stored after 2 full rows and 1 pixel
	offset := (2*4 + 1) * 3
	exp := []byte{10, 20, 200}
	if !bytes.Equal(payload[offset:offset+3], exp) {
		t.Fatalf("expected pixel (1, 2) to be %v; got %v", exp, payload[offset:offset+3])
	}
}

func TestFormatDetection(t *testing.T) {
	type spec struct {
		filename  string
		expFormat Format
		expErr    string
	}

	specs := []spec{
		{"out.ppm", FormatPPM, ""},
		{"out", FormatPPM, ""},
		{"out.PNG", FormatPNG, ""},
		{"frames/out.bmp", FormatBMP, ""},
		{"out.tif", FormatTIFF, ""},
		{"out.tiff", FormatTIFF, ""},
		{"out.jpg", FormatPPM, `writer: unsupported image format ".jpg"`},
	}

	for specIndex, s := range specs {
		format, err := FormatFromFilename(s.filename)
		if s.expErr != "" {
			if err == nil || err.Error() != s.expErr {
				t.Fatalf("[spec %d] expected error %q; got %v", specIndex, s.expErr, err)
			}
			continue
		}
		if err != nil {
			t.Fatalf("[spec %d] unexpected error: %v", specIndex, err)
		}
		if format != s.expFormat {
			t.Fatalf("[spec %d] expected format %s; got %s", specIndex, s.expFormat, format)
		}
	}
}

func TestEncodeFormats(t *testing.T) {
	img := testImage(5, 4)
	decoders := map[Format]func(io.Reader) (image.Image, error){
		FormatPNG:  png.Decode,
		FormatBMP:  bmp.Decode,
		FormatTIFF: tiff.Decode,
	}

	for format, decode := range decoders {
		data, err := EncodeBytes(img, format)
		if err != nil {
			t.Fatalf("[%s] %v", format, err)
		}

		decoded, err := decode(bytes.NewReader(data))
		if err != nil {
			t.Fatalf("[%s] %v", format, err)
		}
		if decoded.Bounds() != img.Bounds() {
			t.Fatalf("[%s] expected bounds %v; got %v", format, img.Bounds(), decoded.Bounds())
		}

		r, g, b, _ := decoded.At(3, 2).RGBA()
		if r>>8 != 30 || g>>8 != 20 || b>>8 != 200 {
			t.Fatalf("[%s] expected pixel (3, 2) to be (30, 20, 200); got (%d, %d, %d)", format, r>>8, g>>8, b>>8)
		}
	}
}

func TestWriteImage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "frame.ppm")
	if err := WriteImage(path, testImage(2, 2), FormatPPM); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(data) != len("P6 2 2 255\n")+12 {
		t.Fatalf("unexpected file size %d", len(data))
	}
}

func TestResize(t *testing.T) {
	img := testImage(40, 20)

	if out := Resize(img, 0); out != image.Image(img) {
		t.Fatal("expected zero width to return the original image")
	}

	out := Resize(img, 10)
	if out.Bounds().Dx() != 10 || out.Bounds().Dy() != 5 {
		t.Fatalf("expected resized image to be 10x5; got %v", out.Bounds())
	}
}

func TestS3Publish(t *testing.T) {
	var gotPath, gotContentType string
	var gotBody []byte
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotContentType = r.Header.Get("Content-Type")
		gotBody, _ = io.ReadAll(r.Body)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	publisher, err := NewS3Publisher(S3Config{
		AccessKey: "key",
		SecretKey: "secret",
		Endpoint:  server.URL,
		Region:    "us-east-1",
		Bucket:    "renders",
	})
	if err != nil {
		t.Fatal(err)
	}

	data := []byte("P6 1 1 255\n\x01\x02\x03")
	if err = publisher.Publish(context.Background(), "frames/frame.ppm", data, FormatPPM); err != nil {
		t.Fatal(err)
	}

	if gotPath != "/renders/frames/frame.ppm" {
		t.Fatalf("expected upload path /renders/frames/frame.ppm; got %s", gotPath)
	}
	if gotContentType != FormatPPM.ContentType() {
		t.Fatalf("expected content type %s; got %s", FormatPPM.ContentType(), gotContentType)
	}
	if !bytes.Equal(gotBody, data) {
		t.Fatalf("expected body %q; got %q", data, gotBody)
	}
}

func TestS3PublishErrors(t *testing.T) {
	if _, err := NewS3Publisher(S3Config{}); err != ErrNoBucket {
		t.Fatalf("expected ErrNoBucket; got %v", err)
	}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		fmt.Fprint(w, `<?xml version="1.0" encoding="UTF-8"?><Error><Code>AccessDenied</Code><Message>Access Denied</Message></Error>`)
	}))
	defer server.Close()

	publisher, err := NewS3Publisher(S3Config{
		AccessKey: "key",
		SecretKey: "secret",
		Endpoint:  server.URL,
		Region:    "us-east-1",
		Bucket:    "renders",
	})
	if err != nil {
		t.Fatal(err)
	}

	err = publisher.Publish(context.Background(), "frame.png", []byte("data"), FormatPNG)
	if err == nil || !strings.Contains(err.Error(), "writer: failed to upload frame.png") {
		t.Fatalf("expected upload error; got %v", err)
	}
}
