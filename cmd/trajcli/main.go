// Command trajcli samples one or more trajectory configuration records
// over a dt grid and emits CSV rows to stdout, per spec.md §6.
package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/nrodrigues64/td3-trajectory/internal/xlog"
	"github.com/nrodrigues64/td3-trajectory/pkg/config"
	"github.com/nrodrigues64/td3-trajectory/pkg/robottrajectory"
	"github.com/nrodrigues64/td3-trajectory/pkg/trajectory"
)

func main() {
	dt := flag.Float64("dt", 0.02, "sample step, in seconds")
	margin := flag.Float64("margin", 0.2, "leading/trailing padding, in seconds")
	robot := flag.Bool("robot", false, "multi-dimensional robot trajectory mode")
	degreesFlag := flag.String("degrees", "0,1,2", "comma-separated derivative orders to emit")
	flag.Parse()

	log := xlog.New()

	degrees, err := parseDegrees(*degreesFlag)
	if err != nil {
		log.Error().Err(err).Msg("malformed --degrees")
		os.Exit(1)
	}

	w := csv.NewWriter(os.Stdout)
	defer w.Flush()
	if err := w.Write([]string{"source", "t", "order", "variable", "value"}); err != nil {
		log.Error().Err(err).Msg("writing CSV header")
		os.Exit(1)
	}

	for i, path := range flag.Args() {
		source := fmt.Sprintf("record[%d]", i)
		f, err := os.Open(path)
		if err != nil {
			log.Error().Err(err).Str("source", source).Str("path", path).Msg("opening record")
			os.Exit(1)
		}

		if *robot {
			rec, err := config.DecodeRobotTrajectoryYAML(f)
			f.Close()
			if err != nil {
				log.Error().Err(err).Str("source", source).Msg("decoding robot trajectory record")
				os.Exit(1)
			}
			rt, err := rec.Build()
			if err != nil {
				log.Error().Err(err).Str("source", source).Msg("building robot trajectory")
				os.Exit(1)
			}
			if err := sampleRobotTrajectory(w, source, rt, degrees, *dt, *margin); err != nil {
				log.Error().Err(err).Str("source", source).Msg("sampling robot trajectory")
				os.Exit(1)
			}
			continue
		}

		rec, err := config.DecodeTrajectoryYAML(f)
		f.Close()
		if err != nil {
			log.Error().Err(err).Str("source", source).Msg("decoding trajectory record")
			os.Exit(1)
		}
		tr, err := rec.Build()
		if err != nil {
			log.Error().Err(err).Str("source", source).Msg("building trajectory")
			os.Exit(1)
		}
		if err := sampleTrajectory(w, source, tr, degrees, *dt, *margin); err != nil {
			log.Error().Err(err).Str("source", source).Msg("sampling trajectory")
			os.Exit(1)
		}
	}
}

func parseDegrees(spec string) ([]int, error) {
	parts := strings.Split(spec, ",")
	degrees := make([]int, 0, len(parts))
	for _, p := range parts {
		d, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("invalid degree %q: %w", p, err)
		}
		degrees = append(degrees, d)
	}
	return degrees, nil
}

func sampleTrajectory(w *csv.Writer, source string, tr trajectory.Trajectory, degrees []int, dt, margin float64) error {
	for t := tr.Start() - margin; t <= tr.End()+margin; t += dt {
		for _, d := range degrees {
			v := tr.ValueAt(t, d)
			if err := writeRow(w, source, t, d, "x", v); err != nil {
				return err
			}
		}
	}
	return nil
}

func sampleRobotTrajectory(w *csv.Writer, source string, rt *robottrajectory.RobotTrajectory, degrees []int, dt, margin float64) error {
	space := rt.PlanificationSpace()
	n, err := rt.DimensionCount(space)
	if err != nil {
		return err
	}

	for t := rt.Start() - margin; t <= rt.End()+margin; t += dt {
		for _, d := range degrees {
			for dim := 0; dim < n; dim++ {
				v, err := rt.Value(t, dim, d, space)
				if err != nil {
					continue
				}
				variable := fmt.Sprintf("dim%d", dim)
				if err := writeRow(w, source, t, d, variable, v); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

func writeRow(w *csv.Writer, source string, t float64, order int, variable string, value float64) error {
	return w.Write([]string{
		source,
		strconv.FormatFloat(t, 'g', -1, 64),
		strconv.Itoa(order),
		variable,
		strconv.FormatFloat(value, 'g', -1, 64),
	})
}
