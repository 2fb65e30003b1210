// Package convert implements program commands working on .docx files.
package convert

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime/debug"
	"strings"
	"time"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"docxview/docx"
	"docxview/render"
	"docxview/state"
)

const docxExt = ".docx"

// fileFunc processes a single package, src is path relative to the source
// root.
type fileFunc func(ctx context.Context, path, src, dst string, log *zap.Logger) error

// Run renders document(s) into HTML pages.
func Run(ctx context.Context, cmd *cli.Command) (err error) {
	if err := ctx.Err(); err != nil {
		return err
	}

	env := state.EnvFromContext(ctx)
	log := env.Logger().Named("convert")

	src, dst, err := arguments(cmd, log)
	if err != nil {
		return err
	}
	env.Overwrite = cmd.Bool("overwrite")

	log.Info("Processing starting", zap.String("source", src), zap.String("destination", dst))
	defer func(start time.Time) {
		log.Info("Processing completed", zap.Duration("elapsed", time.Since(start)))
	}(time.Now())

	return process(ctx, src, dst, renderFile, log)
}

// arguments returns absolute source and destination, destination defaults
// to working directory.
func arguments(cmd *cli.Command, log *zap.Logger) (src, dst string, err error) {
	src = cmd.Args().Get(0)
	if len(src) == 0 {
		return "", "", errors.New("no input source has been specified")
	}
	if src, err = filepath.Abs(src); err != nil {
		return "", "", err
	}

	dst = cmd.Args().Get(1)
	if len(dst) == 0 {
		if dst, err = os.Getwd(); err != nil {
			return "", "", fmt.Errorf("unable to get working directory: %w", err)
		}
	}
	if dst, err = filepath.Abs(dst); err != nil {
		return "", "", err
	}
	if cmd.Args().Len() > 2 {
		log.Warn("Malformed command line, too many destinations", zap.Strings("ignoring", cmd.Args().Slice()[2:]))
	}
	return src, dst, nil
}

// process handles either single package or directory tree of packages.
func process(ctx context.Context, src, dst string, fn fileFunc, log *zap.Logger) error {
	fi, err := os.Stat(src)
	if err != nil {
		return fmt.Errorf("input source was not found (%s): %w", src, err)
	}
	switch {
	case fi.Mode().IsDir():
		if err := processDir(ctx, src, dst, fn, log); err != nil {
			return fmt.Errorf("unable to process directory: %w", err)
		}
		return nil
	case fi.Mode().IsRegular():
		if !isDocxFile(src) {
			return fmt.Errorf("input was not recognized as docx package (%s)", src)
		}
		return fn(ctx, src, filepath.Base(src), dst, log)
	default:
		return fmt.Errorf("unexpected path mode for (%s)", src)
	}
}

// processDir walks directory tree finding packages and processes them. Errors
// of individual packages are logged and do not stop processing.
func processDir(ctx context.Context, dir, dst string, fn fileFunc, log *zap.Logger) (err error) {
	count := 0
	defer func() {
		if err == nil && count == 0 {
			log.Debug("Nothing to process", zap.String("dir", dir))
		}
	}()

	return filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err != nil {
			log.Warn("Skipping path", zap.String("path", path), zap.Error(err))
			return nil
		}
		if !info.Mode().IsRegular() || !isDocxFile(path) {
			return nil
		}
		count++

		src := strings.TrimPrefix(strings.TrimPrefix(path, dir), string(filepath.Separator))
		if err := fn(ctx, path, src, dst, log); err != nil {
			log.Error("Unable to process file", zap.String("file", path), zap.Error(err))
		}
		return nil
	})
}

func isDocxFile(path string) bool {
	// word lock files share extension
	return strings.EqualFold(filepath.Ext(path), docxExt) && !strings.HasPrefix(filepath.Base(path), "~$")
}

// renderFile renders single package into HTML page next to its relative
// location under dst.
func renderFile(ctx context.Context, path, src, dst string, log *zap.Logger) (rerr error) {
	env := state.EnvFromContext(ctx)

	var outputName string

	log.Info("Conversion starting", zap.String("from", src))
	defer func(start time.Time) {
		if r := recover(); r != nil {
			log.Error("Conversion ended with panic",
				zap.Any("panic", r), zap.Duration("elapsed", time.Since(start)), zap.String("to", outputName), zap.ByteString("stack", debug.Stack()))
			rerr = fmt.Errorf("conversion panic: %v", r)
		} else if rerr == nil {
			log.Info("Conversion completed", zap.Duration("elapsed", time.Since(start)), zap.String("to", outputName))
		}
	}(time.Now())

	doc, err := docx.Open(path, log)
	if err != nil {
		return fmt.Errorf("unable to parse docx source (%s): %w", src, err)
	}

	values := render.NewTemplateValues(doc, src)
	outputName = buildOutputPath(values, src, dst, env)
	if err := prepareOutput(outputName, env.Overwrite, log); err != nil {
		return err
	}

	out, err := os.Create(outputName)
	if err != nil {
		return fmt.Errorf("unable to create output file: %w", err)
	}
	defer out.Close()

	r := render.New(&env.Cfg.Render, log)
	result, err := r.WriteHTML(out, doc, buildTitle(values, env))
	if err != nil {
		return fmt.Errorf("unable to write output: %w", err)
	}
	log.Debug("Document rendered", zap.Int("nodes", len(result.Nodes)), zap.Int("images", len(result.Images)))
	return out.Close()
}

// prepareOutput makes sure file could be written at name.
func prepareOutput(name string, overwrite bool, log *zap.Logger) error {
	if _, err := os.Stat(name); err == nil {
		if !overwrite {
			return fmt.Errorf("output file already exists: %s", name)
		}
		log.Warn("Overwriting existing file", zap.String("file", name))
		return os.Remove(name)
	} else if !os.IsNotExist(err) {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(name), 0755); err != nil {
		return fmt.Errorf("unable to create output directory: %w", err)
	}
	return nil
}
