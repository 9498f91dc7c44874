package main

import (
	"path/filepath"

	"github.com/alexisbeaulieu97/materialfield/internal/config"
	"github.com/alexisbeaulieu97/materialfield/internal/icon"
	"github.com/alexisbeaulieu97/materialfield/internal/model"
	"github.com/alexisbeaulieu97/materialfield/internal/validation"
)

// loadedField is a parsed field document with its icons decoded.
type loadedField struct {
	doc        *config.Document
	cfg        model.FieldConfig
	validators []validation.Validator
	left       *icon.Source
	right      *icon.Source
	clear      *icon.Source
}

func loadField(path string) (*loadedField, error) {
	doc, err := config.ParseFile(path)
	if err != nil {
		return nil, err
	}
	cfg, err := config.ToFieldConfig(doc)
	if err != nil {
		return nil, err
	}
	validators, err := config.BuildValidators(doc)
	if err != nil {
		return nil, err
	}

	field := &loadedField{doc: doc, cfg: cfg, validators: validators}
	dir := filepath.Dir(path)
	for _, slot := range []struct {
		name string
		path string
		dst  **icon.Source
	}{
		{"left", doc.Icons.Left, &field.left},
		{"right", doc.Icons.Right, &field.right},
		{"clear", doc.Icons.Clear, &field.clear},
	} {
		if slot.path == "" {
			continue
		}
		iconPath := slot.path
		if !filepath.IsAbs(iconPath) {
			iconPath = filepath.Join(dir, iconPath)
		}
		src, err := icon.Load(slot.name, iconPath)
		if err != nil {
			return nil, err
		}
		*slot.dst = src
	}
	return field, nil
}
