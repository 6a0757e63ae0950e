package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/akmonengine/flipbook/page"
)

type framesOpts struct {
	config  string
	frames  int
	workers int
	side    string
}

func (c *CLI) framesCommand() *cobra.Command {
	opts := framesOpts{}

	cmd := &cobra.Command{
		Use:   "frames",
		Short: "Print the transform of every frame of a page turn",
		Long: `Print one line per frame: index, angle in degrees, projected left and
right page edges, and the CSS matrix3d() value of the page.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := LoadConfig(opts.config)
			if err != nil {
				return err
			}

			if cmd.Flags().Changed("frames") {
				cfg.Sweep.Frames = opts.frames
			}
			if cmd.Flags().Changed("side") {
				cfg.Page.Side = opts.side
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			return c.runFrames(cfg, opts.workers)
		},
	}

	cmd.Flags().StringVarP(&opts.config, "config", "c", "", "TOML scene file")
	cmd.Flags().IntVarP(&opts.frames, "frames", "n", 0, "number of frames (overrides the config)")
	cmd.Flags().IntVarP(&opts.workers, "workers", "w", page.DEFAULT_WORKERS, "goroutines building frames")
	cmd.Flags().StringVar(&opts.side, "side", "", "page side: left or right (overrides the config)")

	return cmd
}

func (c *CLI) runFrames(cfg Config, workers int) error {
	p := cfg.PageSpec()
	angles := page.Sweep(cfg.Sweep.From, cfg.Sweep.To, cfg.Sweep.Frames)

	c.logger.Debug("posing page", "side", p.Side, "perspective", p.Perspective, "frames", len(angles), "workers", workers)

	for _, f := range page.Frames(p, angles, workers) {
		if _, err := fmt.Fprintf(c.out, "%d\t%.3f\t%.3f\t%.3f\t%s\n", f.Index, f.Angle, f.Left, f.Right, f.Transform); err != nil {
			return fmt.Errorf("write frame %d: %w", f.Index, err)
		}
	}

	c.logger.Info("frames written", "count", len(angles))
	return nil
}
