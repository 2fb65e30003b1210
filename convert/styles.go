package convert

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"docxview/docx"
	"docxview/render"
	"docxview/state"
	"docxview/utils/debug"
)

// Styles dumps based-on chains of document styles with generated rules.
func Styles(ctx context.Context, cmd *cli.Command) error {
	env := state.EnvFromContext(ctx)
	log := env.Logger().Named("styles")

	src := cmd.Args().Get(0)
	if len(src) == 0 {
		return errors.New("no input source has been specified")
	}
	if cmd.Args().Len() > 2 {
		log.Warn("Malformed command line, too many destinations", zap.Strings("ignoring", cmd.Args().Slice()[2:]))
	}

	doc, err := docx.Open(src, log)
	if err != nil {
		return fmt.Errorf("unable to parse docx source (%s): %w", src, err)
	}
	dump := DumpStyles(doc, render.New(&env.Cfg.Render, log))

	fname := cmd.Args().Get(1)
	if len(fname) == 0 {
		_, err = os.Stdout.WriteString(dump)
		return err
	}
	log.Info("Writing styles", zap.String("file", fname))
	if err := os.WriteFile(fname, []byte(dump), 0644); err != nil {
		return fmt.Errorf("unable to write styles to '%s': %w", filepath.Base(fname), err)
	}
	return nil
}

// DumpStyles returns human readable tree of style chains and stylesheet
// rules of doc.
func DumpStyles(doc *docx.Document, r *render.Renderer) string {
	tw := debug.NewTreeWriter()

	tw.Line(0, "styles")
	for _, id := range doc.Styles.IDs() {
		s, _ := doc.Styles.Get(id)
		chain, cycle := doc.Styles.Chain(id)
		tw.Line(1, "%s (%s)", id, s.Type)
		if s.Name != "" {
			tw.TextBlock(2, "name", s.Name)
		}
		if s.Default {
			tw.Line(2, "default")
		}
		line := strings.Join(chain.IDs(), " -> ")
		if cycle {
			line += " (cycle)"
		}
		tw.Line(2, "chain: %s", line)
	}

	tw.Line(0, "rules")
	for _, rule := range r.Rules(doc) {
		label := rule.Selector
		if rule.StyleID != "" {
			label += " [" + rule.StyleID + "]"
		}
		if len(rule.Decls) == 0 {
			tw.Line(1, "%s: empty", label)
			continue
		}
		tw.Decls(1, label, rule.Decls)
	}
	return tw.String()
}
