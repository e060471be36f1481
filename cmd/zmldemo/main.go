// SPDX-License-Identifier: MIT

// Command zmldemo drives the zetaml engine end to end.
//
// Scenario:
//
//	A unit cube centred on the origin is spun about the Y axis. A camera at
//	(3, 2, 5) looks at the origin through a perspective lens. The demo prints
//	the model, view and projection matrices followed by the normalised device
//	coordinates of the eight cube corners. With -plot it also draws the
//	projected wireframe into a PNG.
//
// Usage:
//
//	zmldemo [-lh] [-degrees] [-spin 0.5] [-fov 0] [-plot cube.png] [-profile cpu|mem]
//
// -spin and -fov are read in the unit chosen by -degrees. A zero -fov selects
// a 60° lens.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/pkg/profile"

	"github.com/katalvlaran/zetaml/linalg"
	"github.com/katalvlaran/zetaml/scalar"
	"github.com/katalvlaran/zetaml/transform"
)

// errUsage is returned for invalid flag values.
var errUsage = errors.New("zmldemo: usage")

type options struct {
	leftHanded bool
	degrees    bool
	spin       float64
	fov        float64
	plotPath   string
	profile    string
}

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		_, _ = fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(2)
	}
}

func parseFlags(args []string, stderr io.Writer) (options, error) {
	var o options
	fs := flag.NewFlagSet("zmldemo", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.BoolVar(&o.leftHanded, "lh", false, "Use left-handed coordinates.")
	fs.BoolVar(&o.degrees, "degrees", false, "Read -spin and -fov in degrees.")
	fs.Float64Var(&o.spin, "spin", 0.5, "Rotation of the cube about Y.")
	fs.Float64Var(&o.fov, "fov", 0, "Vertical field of view (0 = 60°).")
	fs.StringVar(&o.plotPath, "plot", "", "Write the projected wireframe to this PNG file.")
	fs.StringVar(&o.profile, "profile", "", "cpu|mem: write a profile to the working directory.")
	if err := fs.Parse(args); err != nil {
		return o, err
	}

	switch o.profile {
	case "", "cpu", "mem":
	default:
		return o, fmt.Errorf("%w: unknown -profile %q (want cpu or mem)", errUsage, o.profile)
	}
	if o.fov < 0 {
		return o, fmt.Errorf("%w: -fov must be positive", errUsage)
	}
	if o.fov == 0 {
		o.fov = scalar.ToRadians(60)
		if o.degrees {
			o.fov = 60
		}
	}

	return o, nil
}

func run(args []string, stdout, stderr io.Writer) error {
	o, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}

	switch o.profile {
	case "cpu":
		defer profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.Quiet).Stop()
	case "mem":
		defer profile.Start(profile.MemProfile, profile.ProfilePath("."), profile.Quiet).Stop()
	}

	b := transform.New(
		transform.WithHandedness(handedness(o.leftHanded)),
		transform.WithAngleUnit(angleUnit(o.degrees)),
		transform.WithLogger(slog.New(slog.NewTextHandler(stderr, nil))),
	)

	sc, err := buildScene(b, o.spin, o.fov, 1)
	if err != nil {
		return fmt.Errorf("scene: %w", err)
	}
	ndc, err := sc.projectCorners()
	if err != nil {
		return fmt.Errorf("project: %w", err)
	}

	if err = printScene(stdout, b.Config(), sc, ndc); err != nil {
		return err
	}

	if o.plotPath != "" {
		if err = renderWireframe(o.plotPath, ndc, cubeEdges[:]); err != nil {
			return fmt.Errorf("plot: %w", err)
		}
		_, _ = fmt.Fprintf(stdout, "wireframe written to %s\n", o.plotPath)
	}

	return nil
}

func printScene(w io.Writer, cfg transform.Config, sc *scene, ndc []*linalg.Vector) error {
	if _, err := fmt.Fprintf(w, "config: %s, %s\n", cfg.Handedness, cfg.AngleUnit); err != nil {
		return err
	}
	for _, m := range []struct {
		name string
		mat  *linalg.Matrix
	}{{"model", sc.model}, {"view", sc.view}, {"projection", sc.proj}} {
		if _, err := fmt.Fprintf(w, "%-10s ", m.name); err != nil {
			return err
		}
		if _, err := linalg.Fprintln(w, m.mat); err != nil {
			return err
		}
	}
	for i, p := range ndc {
		if _, err := fmt.Fprintf(w, "corner %d   ", i); err != nil {
			return err
		}
		if _, err := linalg.Fprintln(w, p); err != nil {
			return err
		}
	}

	return nil
}

func handedness(left bool) transform.Handedness {
	if left {
		return transform.LeftHanded
	}

	return transform.RightHanded
}

func angleUnit(degrees bool) scalar.AngleUnit {
	if degrees {
		return scalar.Degrees
	}

	return scalar.Radians
}
