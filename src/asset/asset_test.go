package asset

import (
	"bytes"
	"errors"
	"evilknob/src/eventloop"
	"evilknob/src/logx"
	"evilknob/src/sprite"
	"image"
	"image/png"
	"io/fs"
	"net/http"
	"net/http/httptest"
	"testing"
	"testing/fstest"
	"time"

	"golang.org/x/image/bmp"
)

func encodePNG(t *testing.T, w, h int) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, w, h))); err != nil {
		t.Fatalf("png encode: %v", err)
	}
	return buf.Bytes()
}

type result struct {
	sheet sprite.Sheet
	err   error
}

// wait drains q until done ran once
func wait(t *testing.T, q *eventloop.Queue, l Loader, src string) result {
	t.Helper()
	var res *result
	l.Load(src, func(s sprite.Sheet, err error) { res = &result{s, err} })
	deadline := time.Now().Add(5 * time.Second)
	for res == nil && time.Now().Before(deadline) {
		q.Drain()
		time.Sleep(time.Millisecond)
	}
	if res == nil {
		t.Fatalf("load of %s never completed", src)
	}
	return *res
}

func TestLoadFromFS(t *testing.T) {
	var bmpBuf bytes.Buffer
	if err := bmp.Encode(&bmpBuf, image.NewRGBA(image.Rect(0, 0, 20, 60))); err != nil {
		t.Fatalf("bmp encode: %v", err)
	}
	fsys := fstest.MapFS{
		"knob.png": {Data: encodePNG(t, 50, 500)},
		"knob.bmp": {Data: bmpBuf.Bytes()},
		"bad.png":  {Data: []byte("not an image")},
		"wide.png": {Data: encodePNG(t, 50, 10)},
	}
	q := eventloop.NewQueue()
	l := NewAsyncLoader(q, fsys, logx.NewNop())

	res := wait(t, q, l, "knob.png")
	if res.err != nil {
		t.Fatalf("knob.png: %v", res.err)
	}
	if res.sheet.FrameCount() != 10 || res.sheet.FrameSize() != 50 {
		t.Errorf("knob.png frames/size = %d/%d", res.sheet.FrameCount(), res.sheet.FrameSize())
	}

	res = wait(t, q, l, "knob.bmp")
	if res.err != nil || res.sheet.FrameCount() != 3 {
		t.Errorf("knob.bmp: frames %d err %v", res.sheet.FrameCount(), res.err)
	}

	if res = wait(t, q, l, "missing.png"); !errors.Is(res.err, fs.ErrNotExist) {
		t.Errorf("missing.png error = %v", res.err)
	}
	if res = wait(t, q, l, "bad.png"); !errors.Is(res.err, image.ErrFormat) {
		t.Errorf("bad.png error = %v", res.err)
	}
	if res = wait(t, q, l, "wide.png"); res.err == nil {
		t.Error("wide.png loaded without error")
	}
}

func TestLoadCachesDecodedSheets(t *testing.T) {
	fsys := fstest.MapFS{"knob.png": {Data: encodePNG(t, 10, 30)}}
	q := eventloop.NewQueue()
	l := NewAsyncLoader(q, fsys, logx.NewNop())

	first := wait(t, q, l, "knob.png")
	delete(fsys, "knob.png")
	second := wait(t, q, l, "knob.png")
	if second.err != nil {
		t.Fatalf("cached load failed: %v", second.err)
	}
	if first.sheet.Image != second.sheet.Image {
		t.Error("second load decoded again instead of using the cache")
	}
}

func TestLoadOverHTTP(t *testing.T) {
	data := encodePNG(t, 32, 320)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/knob.png" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "image/png")
		w.Write(data)
	}))
	defer srv.Close()

	q := eventloop.NewQueue()
	l := NewAsyncLoader(q, nil, logx.NewNop()).WithClient(srv.Client())

	res := wait(t, q, l, srv.URL+"/knob.png")
	if res.err != nil || res.sheet.FrameCount() != 10 {
		t.Errorf("http load: frames %d err %v", res.sheet.FrameCount(), res.err)
	}
	if res = wait(t, q, l, srv.URL+"/nope.png"); res.err == nil {
		t.Error("404 loaded without error")
	}
}

func TestStatic(t *testing.T) {
	m := eventloop.NewManual()
	s := NewStatic(m)
	s.Add("a", sprite.Sheet{Width: 4, Height: 8})

	var got []error
	s.Load("a", func(_ sprite.Sheet, err error) { got = append(got, err) })
	s.Load("b", func(_ sprite.Sheet, err error) { got = append(got, err) })
	if len(got) != 0 {
		t.Fatal("Static called done synchronously")
	}
	m.Drain()
	if len(got) != 2 || got[0] != nil || !errors.Is(got[1], fs.ErrNotExist) {
		t.Errorf("results = %v", got)
	}
}

func TestPreload(t *testing.T) {
	q := eventloop.NewQueue()
	l := NewAsyncLoader(q, fstest.MapFS{}, logx.NewNop())
	sheet, err := sprite.NewSheet(image.NewRGBA(image.Rect(0, 0, 8, 80)))
	if err != nil {
		t.Fatal(err)
	}
	l.Preload("builtin:knob", sheet)

	res := wait(t, q, l, "builtin:knob")
	if res.err != nil || res.sheet.FrameCount() != 10 {
		t.Errorf("preloaded: frames %d err %v", res.sheet.FrameCount(), res.err)
	}
}
