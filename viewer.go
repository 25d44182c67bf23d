package genart

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"net/http"
	"sync"
)

const viewerPage = `<!DOCTYPE html>
<html>
<head><title>genart</title></head>
<body style="background:#222;margin:0;display:flex;justify-content:center">
<img id="best" alt="best individual">
<script>
const img = document.getElementById("best");
function refresh() { img.src = "/best.png?t=" + Date.now(); }
img.onload = () => setTimeout(refresh, 500);
img.onerror = () => setTimeout(refresh, 2000);
refresh();
</script>
</body>
</html>
`

// Viewer serves the most recently published rendering of the best
// individual over HTTP. It is purely observational: the evolution loop
// publishes snapshots at whatever cadence it likes and nothing flows
// back.
//
// Publish may be called from the loop goroutine while handlers run on the
// server's goroutines; the published frame is guarded by a mutex.
type Viewer struct {
	mu         sync.RWMutex
	frame      []byte // encoded PNG
	generation int
	fitness    int64
}

// NewViewer returns a viewer with no published frame yet.
func NewViewer() *Viewer { return &Viewer{} }

// Publish encodes img and makes it the frame served to clients.
func (v *Viewer) Publish(img image.Image, generation int, fitness int64) error {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return fmt.Errorf("viewer: encode frame: %w", err)
	}
	v.mu.Lock()
	v.frame = buf.Bytes()
	v.generation = generation
	v.fitness = fitness
	v.mu.Unlock()
	return nil
}

// Handler returns the viewer's routes: an HTML page at / and the current
// frame at /best.png.
func (v *Viewer) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		fmt.Fprint(w, viewerPage)
	})
	mux.HandleFunc("/best.png", func(w http.ResponseWriter, r *http.Request) {
		v.mu.RLock()
		frame := v.frame
		generation := v.generation
		fitness := v.fitness
		v.mu.RUnlock()
		if frame == nil {
			http.Error(w, "no frame published yet", http.StatusServiceUnavailable)
			return
		}
		w.Header().Set("Content-Type", "image/png")
		w.Header().Set("Cache-Control", "no-store")
		w.Header().Set("X-Generation", fmt.Sprint(generation))
		w.Header().Set("X-Fitness", fmt.Sprint(fitness))
		w.Write(frame)
	})
	return mux
}

// Start serves the viewer on addr. It blocks, like http.ListenAndServe.
func (v *Viewer) Start(addr string) error {
	Logger().Info("viewer listening", "addr", addr)
	return http.ListenAndServe(addr, v.Handler())
}
