// Package config reads and writes navigation configuration files.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"

	"github.com/spf13/afero"

	"git.home.luguber.info/inful/docnav/internal/docsite"
	ferrors "git.home.luguber.info/inful/docnav/internal/foundation/errors"
	"git.home.luguber.info/inful/docnav/internal/logfields"
	"git.home.luguber.info/inful/docnav/internal/site"
)

// DefaultPath is the configuration file used when none is given.
const DefaultPath = "docnav.yaml"

// Load reads and validates the configuration at path.
func Load(fsys afero.Fs, path string) (*site.Configuration, error) {
	data, err := afero.ReadFile(fsys, path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, ferrors.FileSystemError("configuration file not found").
			WithContext(ferrors.ContextPath, path).
			WithCause(err).
			Build()
	}
	if err != nil {
		return nil, ferrors.FileSystemError("failed to read configuration file").
			WithContext(ferrors.ContextPath, path).
			WithCause(err).
			Build()
	}

	cfg, err := site.Parse(data)
	if err != nil {
		return nil, withPath(err, path)
	}
	slog.Debug("Loaded configuration", logfields.Path(path),
		logfields.Count(cfg.Sidebar().Len()))
	return cfg, nil
}

// Builtin returns the configuration compiled into the binary.
func Builtin() (*site.Configuration, error) {
	cfg, err := docsite.Config()
	if err != nil {
		return nil, ferrors.InternalError("built-in configuration is invalid").WithCause(err).Build()
	}
	return cfg, nil
}

// Init writes the built-in configuration to path as a starting point. An
// existing file is only replaced when force is set.
func Init(fsys afero.Fs, path string, force bool) error {
	exists, err := afero.Exists(fsys, path)
	if err != nil {
		return fmt.Errorf("stat %s: %w", path, err)
	}
	if exists && !force {
		return ferrors.FileSystemError("configuration file already exists (use --force to overwrite)").
			WithContext(ferrors.ContextPath, path).
			Build()
	}

	cfg, err := Builtin()
	if err != nil {
		return err
	}
	data, err := site.Marshal(cfg)
	if err != nil {
		return ferrors.InternalError("failed to encode configuration").WithCause(err).Build()
	}
	if err := afero.WriteFile(fsys, path, data, 0o644); err != nil {
		return ferrors.FileSystemError("failed to write configuration file").
			WithContext(ferrors.ContextPath, path).
			WithCause(err).
			Build()
	}
	slog.Info("Wrote configuration", logfields.Path(path))
	return nil
}

func withPath(err error, path string) error {
	classified, ok := ferrors.AsClassified(err)
	if !ok {
		return fmt.Errorf("%s: %w", path, err)
	}
	return classified.WithContext(ferrors.ContextPath, path)
}
