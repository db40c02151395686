package sink

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/teranos/javagen/code/render"
	"github.com/teranos/javagen/config"
	"github.com/teranos/javagen/errors"
	"github.com/teranos/javagen/logger"
)

// FileSink writes each unit to <Dir>/<package path>/<FileName>.java.
type FileSink struct {
	writer
	dir       string
	overwrite bool
	written   []string
}

// NewFileSink returns a sink rooted at dir.
func NewFileSink(dir string, overwrite bool, opts Options) *FileSink {
	return &FileSink{writer: newWriter(opts), dir: dir, overwrite: overwrite}
}

// PathFor returns the file a unit is written to.
func (s *FileSink) PathFor(unit render.UnitInfo) (string, error) {
	if unit.FileName == "" {
		return "", errors.WithHint(
			errors.New("compilation unit has no top level type"),
			"declare a class, enum or interface so the file can be named",
		)
	}
	parts := []string{s.dir}
	if unit.PackageName != "" {
		parts = append(parts, strings.Split(unit.PackageName, ".")...)
	}
	parts = append(parts, unit.FileName+".java")
	return filepath.Join(parts...), nil
}

func (s *FileSink) CompilationUnitEnd() error {
	path, err := s.PathFor(s.unit)
	if err != nil {
		return err
	}

	if !s.overwrite {
		if _, err := os.Stat(path); err == nil {
			return errors.Wrapf(errors.ErrOutputExists, "%s", path)
		}
	}

	if err := os.MkdirAll(filepath.Dir(path), config.DefaultDirPermissions); err != nil {
		return errors.Wrapf(err, "failed to create directory for %s", path)
	}

	content := s.out.String() + s.opts.LineSeparator
	if err := os.WriteFile(path, []byte(content), config.DefaultFilePermissions); err != nil {
		return errors.Wrapf(err, "failed to write %s", path)
	}

	logger.Debugw("Wrote compilation unit",
		logger.FieldFile, path,
		logger.FieldCount, len(content))

	s.written = append(s.written, path)
	return nil
}

// Written returns the paths written so far, in order.
func (s *FileSink) Written() []string { return s.written }

var _ render.Sink = (*FileSink)(nil)
