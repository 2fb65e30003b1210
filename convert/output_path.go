package convert

import (
	"os"
	"path/filepath"
	"slices"
	"strings"

	"go.uber.org/zap"

	"docxview/config"
	"docxview/render"
	"docxview/state"
)

const htmlExt = ".html"

// buildOutputPath returns output file path for package src. Directory
// structure of src relative to the source root is kept under dst, file name
// comes from output name template which may add subdirectories of its own.
func buildOutputPath(values render.TemplateValues, src, dst string, env *state.LocalEnv) string {
	outDir := filepath.Join(dst, filepath.Dir(src))
	defaultFile := config.CleanFileName(values.SourceFile) + htmlExt

	if env.Cfg.Render.OutputNameTemplate == "" {
		return filepath.Join(outDir, defaultFile)
	}

	expanded, err := render.ExpandTemplate(config.OutputNameTemplateFieldName, env.Cfg.Render.OutputNameTemplate, values)
	if err != nil {
		env.Logger().Warn("Unable to prepare output filename", zap.Error(err))
		return filepath.Join(outDir, defaultFile)
	}
	segments := splitPath(filepath.FromSlash(expanded))
	if len(segments) == 0 {
		return filepath.Join(outDir, defaultFile)
	}

	parts := make([]string, 0, len(segments)+1)
	parts = append(parts, outDir)
	for _, s := range segments {
		parts = append(parts, config.CleanFileName(s))
	}
	return filepath.Join(parts...)
}

// splitPath breaks path into its elements, dropping empty, "." and ".."
// ones so template could not escape destination.
func splitPath(path string) []string {
	var segments []string
	for head, tail := filepath.Split(strings.TrimSuffix(path, string(os.PathSeparator))); ; head, tail = filepath.Split(head) {
		if tail != "" && tail != "." && tail != ".." {
			segments = slices.Insert(segments, 0, tail)
		}
		head = strings.TrimSuffix(head, string(os.PathSeparator))
		if head == "" || head == filepath.VolumeName(head) {
			break
		}
	}
	return segments
}

// buildTitle returns page title, falls back to source file name.
func buildTitle(values render.TemplateValues, env *state.LocalEnv) string {
	if env.Cfg.Render.TitleTemplate == "" {
		return values.SourceFile
	}
	title, err := render.ExpandTemplate(config.TitleTemplateFieldName, env.Cfg.Render.TitleTemplate, values)
	if err != nil || title == "" {
		env.Logger().Warn("Unable to prepare title, using file name", zap.Error(err))
		return values.SourceFile
	}
	return title
}
