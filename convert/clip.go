package convert

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"docxview/config"
	"docxview/docx"
	"docxview/imagegeom"
	"docxview/render"
	"docxview/state"
	"docxview/utils/images"
)

// emuPerPixel at 96 dpi.
const emuPerPixel = 9525

// Clip writes previews of visible parts of cropped pictures.
func Clip(ctx context.Context, cmd *cli.Command) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	env := state.EnvFromContext(ctx)
	log := env.Logger().Named("clip")

	src, dst, err := arguments(cmd, log)
	if err != nil {
		return err
	}
	env.Overwrite = cmd.Bool("overwrite")
	all := cmd.Bool("all")

	log.Info("Processing starting", zap.String("source", src), zap.String("destination", dst))
	defer func(start time.Time) {
		log.Info("Processing completed", zap.Duration("elapsed", time.Since(start)))
	}(time.Now())

	return process(ctx, src, dst, func(ctx context.Context, path, src, dst string, log *zap.Logger) error {
		return clipFile(ctx, path, src, dst, all, log)
	}, log)
}

func clipFile(ctx context.Context, path, src, dst string, all bool, log *zap.Logger) error {
	env := state.EnvFromContext(ctx)

	doc, err := docx.Open(path, log)
	if err != nil {
		return fmt.Errorf("unable to parse docx source (%s): %w", src, err)
	}
	values := render.NewTemplateValues(doc, src)
	outDir := filepath.Join(dst, filepath.Dir(src))

	var pictures []*docx.Image
	doc.Walk(func(p *docx.Paragraph) {
		for _, r := range p.Runs {
			if r.Image != nil {
				pictures = append(pictures, r.Image)
			}
		}
	})

	written := 0
	for i, img := range pictures {
		if err := ctx.Err(); err != nil {
			return err
		}
		if img.Clip == nil && !all {
			continue
		}
		data, err := Preview(img, &env.Cfg.Preview)
		if err != nil {
			log.Warn("Unable to prepare preview", zap.String("image", img.Target), zap.Error(err))
			continue
		}
		name := filepath.Join(outDir, previewName(values.SourceFile, i+1, img)+env.Cfg.Preview.Format.Ext())
		if err := prepareOutput(name, env.Overwrite, log); err != nil {
			return err
		}
		if err := os.WriteFile(name, data, 0644); err != nil {
			return fmt.Errorf("unable to write preview: %w", err)
		}
		log.Debug("Preview written", zap.String("image", img.Target), zap.String("file", name), zap.Stringer("clip", img.Clip))
		written++
	}
	log.Info("Previews written", zap.String("from", src), zap.Int("count", written), zap.Int("pictures", len(pictures)))
	return nil
}

// previewName is source name followed by picture number and media base
// name.
func previewName(source string, n int, img *docx.Image) string {
	parts := []string{source, strconv.Itoa(n)}
	if img.Target != "" {
		parts = append(parts, strings.TrimSuffix(filepath.Base(img.Target), filepath.Ext(img.Target)))
	}
	return config.CleanFileName(strings.Join(parts, "-"))
}

// Preview decodes picture, cuts visible part of it and encodes result.
// Vector pictures without raster fallback are rasterized at extent size.
func Preview(img *docx.Image, cfg *config.PreviewConfig) ([]byte, error) {
	var (
		pic image.Image
		err error
	)
	switch {
	case len(img.Data) > 0 && img.MIME != "image/svg+xml":
		pic, err = imagegeom.Decode(bytes.NewReader(img.Data))
	case len(img.SVG) > 0:
		pic, err = images.RasterizeSVG(img.SVG, int(img.Width/emuPerPixel), int(img.Height/emuPerPixel))
	default:
		return nil, errors.New("picture has no data")
	}
	if err != nil {
		return nil, err
	}

	if img.Clip != nil {
		if pic, err = imagegeom.Crop(pic, *img.Clip); err != nil {
			return nil, err
		}
	}
	return images.Encode(pic, cfg.Format, cfg.JPEGQuality, cfg.Grayscale)
}
