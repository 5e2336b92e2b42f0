package gdialog

import (
	"path/filepath"

	"github.com/sqweek/dialog"
)

type Result struct {
	Path string
	Name string
}

// ErrCancelled is returned when the user closes the dialog without a choice
var ErrCancelled = dialog.ErrCancelled

func OpenSpriteSheet(title string) (Result, error) {
	path, err := dialog.File().
		Title(title).
		Filter("Sprite sheets", "png", "jpg", "jpeg", "gif", "bmp", "webp").
		Load()
	if err != nil {
		return Result{}, err
	}
	return Result{
		Path: path,
		Name: filepath.Base(path),
	}, nil
}
