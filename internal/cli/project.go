package cli

import (
	"fmt"
	"math"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/akmonengine/flipbook"
)

type projectOpts struct {
	config string
	angle  float64
}

func (c *CLI) projectCommand() *cobra.Command {
	opts := projectOpts{}

	cmd := &cobra.Command{
		Use:   "project X...",
		Short: "Project x coordinates through a page transform",
		Long: `Project each local x coordinate (at y = 0, z = 0) through the configured
[base] transform, or through the page pose at --angle when no base is set.
Points on the viewer's plane print as NaN or ±Inf.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			xs := make([]float64, len(args))
			for i, arg := range args {
				x, err := strconv.ParseFloat(arg, 64)
				if err != nil {
					return fmt.Errorf("parse coordinate %q: %w", arg, err)
				}
				xs[i] = x
			}

			cfg, err := LoadConfig(opts.config)
			if err != nil {
				return err
			}

			return c.runProject(cfg, opts.angle, xs)
		},
	}

	cmd.Flags().StringVarP(&opts.config, "config", "c", "", "TOML scene file")
	cmd.Flags().Float64VarP(&opts.angle, "angle", "a", 0, "page angle in degrees, used without a [base] transform")

	return cmd
}

func (c *CLI) runProject(cfg Config, angle float64, xs []float64) error {
	var t *flipbook.Transform
	if cfg.Base != nil {
		t = flipbook.From(*cfg.Base)
	} else {
		t = cfg.PageSpec().Pose(angle)
	}
	c.logger.Debug("projecting", "transform", t)

	for _, x := range xs {
		px := t.ProjectX(x)
		if math.IsNaN(px) || math.IsInf(px, 0) {
			c.logger.Warn("point projects off screen", "x", x)
		}
		if _, err := fmt.Fprintf(c.out, "%g\t%g\n", x, px); err != nil {
			return fmt.Errorf("write projection: %w", err)
		}
	}

	return nil
}
