package genart

import (
	"image"
	"image/color"
	"image/png"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestViewerNoFrameYet(t *testing.T) {
	v := NewViewer()
	rec := httptest.NewRecorder()
	v.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/best.png", nil))
	if rec.Code != http.StatusServiceUnavailable {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusServiceUnavailable)
	}
}

func TestViewerServesPublishedFrame(t *testing.T) {
	v := NewViewer()
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			img.Set(x, y, color.RGBA{R: 200, G: 100, B: 50, A: 255})
		}
	}
	if err := v.Publish(img, 42, 123456); err != nil {
		t.Fatal(err)
	}

	rec := httptest.NewRecorder()
	v.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/best.png", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "image/png" {
		t.Errorf("Content-Type = %q, want image/png", ct)
	}
	if got := rec.Header().Get("X-Generation"); got != "42" {
		t.Errorf("X-Generation = %q, want 42", got)
	}
	if got := rec.Header().Get("X-Fitness"); got != "123456" {
		t.Errorf("X-Fitness = %q, want 123456", got)
	}
	decoded, err := png.Decode(rec.Body)
	if err != nil {
		t.Fatalf("served frame is not a PNG: %v", err)
	}
	if b := decoded.Bounds(); b.Dx() != 4 || b.Dy() != 4 {
		t.Errorf("decoded bounds = %v, want 4x4", b)
	}
}

func TestViewerIndexPage(t *testing.T) {
	v := NewViewer()
	rec := httptest.NewRecorder()
	v.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "/best.png") {
		t.Error("index page does not reference /best.png")
	}
}

func TestViewerUnknownPath(t *testing.T) {
	v := NewViewer()
	rec := httptest.NewRecorder()
	v.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/does-not-exist", nil))
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}
