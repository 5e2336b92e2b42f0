package asset

import (
	"evilknob/src/eventloop"
	"evilknob/src/logx"
	"evilknob/src/sprite"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"io/fs"
	"net/http"
	"os"
	"strings"
	"sync"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
)

// Loader fetches a sprite sheet in the background. done always runs on the
// event loop, never on the loading goroutine.
type Loader interface {
	Load(src string, done func(sprite.Sheet, error))
}

type AsyncLoader struct {
	loop   eventloop.Loop
	fsys   fs.FS
	client *http.Client
	logger logx.Logger

	mu    sync.Mutex
	cache map[string]sprite.Sheet
}

// NewAsyncLoader reads from fsys when set, from the OS file system otherwise.
// http and https sources always go through the client.
func NewAsyncLoader(loop eventloop.Loop, fsys fs.FS, logger logx.Logger) *AsyncLoader {
	return &AsyncLoader{
		loop:   loop,
		fsys:   fsys,
		client: http.DefaultClient,
		logger: logger,
		cache:  make(map[string]sprite.Sheet),
	}
}

func (l *AsyncLoader) WithClient(c *http.Client) *AsyncLoader {
	l.client = c
	return l
}

// Preload seeds the cache with an already decoded sheet under src
func (l *AsyncLoader) Preload(src string, sheet sprite.Sheet) {
	l.mu.Lock()
	l.cache[src] = sheet
	l.mu.Unlock()
}

func (l *AsyncLoader) Load(src string, done func(sprite.Sheet, error)) {
	l.mu.Lock()
	sheet, ok := l.cache[src]
	l.mu.Unlock()
	if ok {
		l.loop.Post(func() { done(sheet, nil) })
		return
	}

	go func() {
		sheet, err := l.decode(src)
		if err == nil {
			l.mu.Lock()
			l.cache[src] = sheet
			l.mu.Unlock()
			l.logger.Debugf("sprite sheet %s loaded: %dx%d, %d frames", src, sheet.Width, sheet.Height, sheet.FrameCount())
		} else {
			l.logger.Errorf("error load sprite sheet %s: %v", src, err)
		}
		l.loop.Post(func() { done(sheet, err) })
	}()
}

func (l *AsyncLoader) decode(src string) (sprite.Sheet, error) {
	rc, err := l.open(src)
	if err != nil {
		return sprite.Sheet{}, err
	}
	defer rc.Close()

	img, format, err := image.Decode(rc)
	if err != nil {
		return sprite.Sheet{}, fmt.Errorf("error decode %s: %w", src, err)
	}
	l.logger.Debugf("decoded %s as %s", src, format)
	return sprite.NewSheet(img)
}

func (l *AsyncLoader) open(src string) (io.ReadCloser, error) {
	if strings.HasPrefix(src, "http://") || strings.HasPrefix(src, "https://") {
		resp, err := l.client.Get(src)
		if err != nil {
			return nil, err
		}
		if resp.StatusCode != http.StatusOK {
			resp.Body.Close()
			return nil, fmt.Errorf("error fetch %s: %s", src, resp.Status)
		}
		return resp.Body, nil
	}
	if l.fsys != nil {
		return l.fsys.Open(src)
	}
	return os.Open(src)
}

// Static hands out sheets that are already decoded, keyed by source name
type Static struct {
	loop   eventloop.Loop
	sheets map[string]sprite.Sheet
}

func NewStatic(loop eventloop.Loop) *Static {
	return &Static{loop: loop, sheets: make(map[string]sprite.Sheet)}
}

func (s *Static) Add(src string, sheet sprite.Sheet) {
	s.sheets[src] = sheet
}

func (s *Static) Load(src string, done func(sprite.Sheet, error)) {
	sheet, ok := s.sheets[src]
	s.loop.Post(func() {
		if !ok {
			done(sprite.Sheet{}, fmt.Errorf("sprite sheet %s: %w", src, fs.ErrNotExist))
			return
		}
		done(sheet, nil)
	})
}
