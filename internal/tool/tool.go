// Package tool implements the spritetool subcommands.
package tool

import (
	"context"
	"errors"
	"fmt"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"github.com/gogpu/sprite"
	"github.com/gogpu/sprite/internal/scene"
	"github.com/gogpu/sprite/internal/state"
	"github.com/gogpu/sprite/layerops"
	"github.com/gogpu/sprite/render"
	"github.com/gogpu/sprite/undo"
)

// mergeLogger reports merge notifications of a document.
type mergeLogger struct {
	log *zap.Logger
}

func (m *mergeLogger) OnLayerMergedDown(src, dst sprite.Layer) {
	m.log.Info("Layer merged down", zap.String("src", src.Name()), zap.String("dst", dst.Name()))
}

// arguments returns the scene path and the output directory.
func arguments(cmd *cli.Command) (string, string, error) {
	switch cmd.Args().Len() {
	case 0:
		return "", "", errors.New("no scene file specified")
	case 1, 2:
	default:
		return "", "", fmt.Errorf("too many arguments: %v", cmd.Args().Slice()[2:])
	}
	dst := cmd.Args().Get(1)
	if dst == "" {
		dst = "."
	}
	return cmd.Args().Get(0), dst, nil
}

func loadDocument(env *state.LocalEnv, path string) (*sprite.Document, error) {
	doc, err := scene.Load(path)
	if err != nil {
		return nil, fmt.Errorf("unable to load scene '%s': %w", path, err)
	}
	doc.AddObserver(&mergeLogger{log: env.Log})
	spr := doc.Sprite()
	env.Log.Debug("Scene loaded", zap.String("path", path),
		zap.Int("width", spr.Width()), zap.Int("height", spr.Height()),
		zap.Int("frames", spr.TotalFrames()), zap.Int("layers", len(spr.AllLayers())))
	return doc, nil
}

// selectLayers selects the named layers, or every top-level layer when no
// name is given.
func selectLayers(spr *sprite.Sprite, names []string) (*sprite.SelectedLayers, error) {
	if len(names) == 0 {
		return sprite.NewSelectedLayers(spr.Root().Layers()...), nil
	}
	sel := sprite.NewSelectedLayers()
	for _, name := range names {
		l := spr.LayerByName(name)
		if l == nil {
			return nil, fmt.Errorf("layer '%s' not found", name)
		}
		sel.Insert(l)
	}
	return sel, nil
}

// canFlattenDown reports whether a merge-down flatten of sel has a layer
// to draw into.
func canFlattenDown(spr *sprite.Sprite, sel *sprite.SelectedLayers) bool {
	sel = sel.Clone()
	sel.RemoveChildrenIfParentIsSelected()
	list := sel.ToBrowsableLayerList(spr)
	if len(list) == 0 {
		return true
	}
	for _, l := range list {
		if l.IsBackground() && l.IsVisible() {
			return true
		}
	}
	return sprite.AsImageLayer(list[0]) != nil
}

// finish commits tx and, when requested, undoes it again.
func finish(env *state.LocalEnv, tx *undo.Transaction, revert bool) error {
	if err := tx.Commit(); err != nil {
		if errors.Is(err, undo.ErrEmpty) {
			env.Log.Warn("Nothing changed", zap.String("operation", tx.Label()))
			return nil
		}
		return err
	}
	env.Log.Debug("Transaction committed", zap.String("operation", tx.Label()), zap.Int("steps", tx.Len()))
	if !revert {
		return nil
	}
	if err := tx.Undo(); err != nil {
		return fmt.Errorf("unable to undo %s: %w", tx.Label(), err)
	}
	env.Log.Info("Operation undone", zap.String("operation", tx.Label()))
	return nil
}

func newRenderer(env *state.LocalEnv, legacy bool) (*render.Renderer, error) {
	bg, err := env.Cfg.Render.BgOptions()
	if err != nil {
		return nil, err
	}
	r := render.NewRenderer()
	r.SetNewBlend(env.Cfg.Render.NewBlend && !legacy)
	r.SetBgOptions(bg)
	return r, nil
}

func newExportOptions(env *state.LocalEnv, dir string) exportOptions {
	return exportOptions{dir: dir, scale: env.Cfg.Render.Scale, workers: env.Cfg.Render.Workers}
}

// Flatten is the action of the flatten subcommand.
func Flatten(ctx context.Context, cmd *cli.Command) error {
	env := state.EnvFromContext(ctx)

	src, dst, err := arguments(cmd)
	if err != nil {
		return err
	}
	doc, err := loadDocument(env, src)
	if err != nil {
		return err
	}
	spr := doc.Sprite()

	sel, err := selectLayers(spr, cmd.StringSlice("layer"))
	if err != nil {
		return err
	}
	opts, err := env.Cfg.Options()
	if err != nil {
		return err
	}
	mergeDown := cmd.Bool("merge-down")
	if mergeDown {
		if !canFlattenDown(spr, sel) {
			return errors.New("bottom selected layer is a group and cannot hold the result")
		}
		opts = append(opts, layerops.WithMergeDown(true))
	}
	if cmd.Bool("legacy-blend") {
		opts = append(opts, layerops.WithNewBlend(false))
	}

	tx := undo.New("Flatten Layers")
	flat := layerops.FlattenLayers(tx, doc, sel, opts...)
	if flat != nil {
		env.Log.Info("Layers flattened", zap.Int("selected", sel.Len()),
			zap.String("target", flat.Name()), zap.Bool("merge-down", mergeDown))
	}
	if err := finish(env, tx, cmd.Bool("undo")); err != nil {
		return err
	}

	r, err := newRenderer(env, cmd.Bool("legacy-blend"))
	if err != nil {
		return err
	}
	return exportFrames(ctx, env.Log, spr, r, newExportOptions(env, dst))
}

// MergeDown is the action of the mergedown subcommand.
func MergeDown(ctx context.Context, cmd *cli.Command) error {
	env := state.EnvFromContext(ctx)

	src, dst, err := arguments(cmd)
	if err != nil {
		return err
	}
	doc, err := loadDocument(env, src)
	if err != nil {
		return err
	}
	spr := doc.Sprite()

	name := cmd.String("layer")
	top := spr.LayerByName(name)
	if top == nil {
		return fmt.Errorf("layer '%s' not found", name)
	}

	tx := undo.New("Merge Down Layer")
	if err := layerops.MergeDownLayer(tx, doc, top); err != nil {
		return err
	}
	if err := finish(env, tx, cmd.Bool("undo")); err != nil {
		return err
	}

	r, err := newRenderer(env, false)
	if err != nil {
		return err
	}
	return exportFrames(ctx, env.Log, spr, r, newExportOptions(env, dst))
}

// Render is the action of the render subcommand.
func Render(ctx context.Context, cmd *cli.Command) error {
	env := state.EnvFromContext(ctx)

	src, dst, err := arguments(cmd)
	if err != nil {
		return err
	}
	doc, err := loadDocument(env, src)
	if err != nil {
		return err
	}
	r, err := newRenderer(env, cmd.Bool("legacy-blend"))
	if err != nil {
		return err
	}
	return exportFrames(ctx, env.Log, doc.Sprite(), r, newExportOptions(env, dst))
}
