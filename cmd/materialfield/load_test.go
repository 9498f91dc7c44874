package main

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	fielderrors "github.com/alexisbeaulieu97/materialfield/pkg/errors"
)

func writePNG(t *testing.T, path string) {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	img.Set(1, 1, color.Black)
	file, err := os.Create(path)
	require.NoError(t, err)
	defer file.Close()
	require.NoError(t, png.Encode(file, img))
}

func TestLoadFieldResolvesIconsNextToDocument(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, "icons"), 0o755))
	writePNG(t, filepath.Join(dir, "icons", "left.png"))

	path := filepath.Join(dir, "field.yaml")
	doc := "version: \"1.0\"\nname: f\nicons:\n  left: icons/left.png\nvalidators:\n  - type: required\n    message: required\n"
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	field, err := loadField(path)
	require.NoError(t, err)
	require.NotNil(t, field.left)
	require.Nil(t, field.right)
	require.Nil(t, field.clear)
	require.Len(t, field.validators, 1)
}

func TestLoadFieldMissingIcon(t *testing.T) {
	t.Parallel()

	path := writeDocument(t, "field.yaml", "version: \"1.0\"\nname: f\nicons:\n  clear: nowhere.png\n")
	_, err := loadField(path)

	var iconErr *fielderrors.IconError
	require.ErrorAs(t, err, &iconErr)
}
