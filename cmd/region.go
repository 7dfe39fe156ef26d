/*
Copyright © 2020 NAME HERE <EMAIL ADDRESS>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"
	"os"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/notargets/goslepian/InputParameters"
	"github.com/notargets/goslepian/geometry2D"
	"github.com/notargets/goslepian/slepian"
	"github.com/notargets/goslepian/utils"
)

// RegionCmd represents the region command
var RegionCmd = &cobra.Command{
	Use:   "region",
	Short: "Slepian functions on a 2D region concentrated in a wavenumber disc",
	Long: `
Builds a quadrature over a 2D region, given as a mask or a circle, and solves
for the functions best concentrated inside a disc of the given spectral radius.

goslepian region -I deck.yaml

Example deck:
########################################
Title: "Blob"
Mask:
  - "0011100"
  - "0111110"
  - "1111111"
  - "0111110"
  - "0011100"
SpectralRadius: 2.
Rows: 16
NodesPerInterval: 16
K: 4
########################################`,
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		var (
			data   []byte
			icFile string
		)
		icFile, _ = cmd.Flags().GetString("inputConditionsFile")
		if icFile == "" {
			return fmt.Errorf("must supply an input deck (-I, --inputConditionsFile)")
		}
		if data, err = os.ReadFile(icFile); err != nil {
			return
		}
		ip := &InputParameters.RegionParameters{}
		if err = ip.Parse(data); err != nil {
			return fmt.Errorf("%s: %w", icFile, err)
		}
		if log.IsLevelEnabled(log.DebugLevel) {
			ip.Print(os.Stderr)
		}
		return RunRegion(ip)
	},
}

func init() {
	rootCmd.AddCommand(RegionCmd)
	RegionCmd.Flags().StringP("inputConditionsFile", "I", "", "YAML input deck: Mask or Radius, SpectralRadius, Rows, NodesPerInterval, K")
}

// RegionCurve returns the closed boundary curve of the region
func RegionCurve(ip *InputParameters.RegionParameters) (curve geometry2D.Curve, err error) {
	var (
		mask [][]bool
		pts  []geometry2D.Point
	)
	if mask, err = ip.MaskGrid(); err != nil {
		return
	}
	if mask == nil {
		return geometry2D.NewNgon(geometry2D.NewPoint(0, 0), ip.Radius, ip.CurvePoints), nil
	}
	if ip.Contour {
		pts = geometry2D.MaskContour(mask)
	} else {
		pts = geometry2D.ExtractBoundary(mask)
	}
	if len(pts) < 3 {
		err = fmt.Errorf("mask has %d boundary points, need at least 3", len(pts))
		return
	}
	return geometry2D.OrderClosedCurve(pts)
}

func RunRegion(ip *InputParameters.RegionParameters) (err error) {
	var (
		curve geometry2D.Curve
		q     *geometry2D.QuadratureNodes
		ts    *slepian.TaperSet
		start = time.Now()
		warn  []string
	)
	if curve, err = RegionCurve(ip); err != nil {
		return fmt.Errorf("region: %w", err)
	}
	if q, err = geometry2D.QuadratureFromCurve(curve, ip.Rows, ip.NodesPerInterval); err != nil {
		return fmt.Errorf("region: %w", err)
	}
	if out := q.Outside(curve); len(out) > 0 {
		log.WithField("nodes", len(out)).Warn("quadrature nodes outside the boundary curve")
		warn = append(warn, fmt.Sprintf("%d quadrature nodes outside the boundary curve", len(out)))
	}
	for _, rowErr := range q.RowErrors {
		log.WithFields(log.Fields{"row": rowErr.Row, "coordinate": rowErr.Coordinate}).Warn(rowErr.Reason)
		warn = append(warn, rowErr.Error())
	}
	centroid := curve.Centroid()
	lg := log.WithFields(log.Fields{
		"centroid": centroid.X, "nodes": q.Len(), "rows": q.Rows, "area": q.Area(), "spectralRadius": ip.SpectralRadius, "k": ip.K,
	})
	lg.Info("solving region problem")
	if ts, err = slepian.Solve2D(q, ip.SpectralRadius, min(ip.K, q.Len()), taperRequest()); err != nil {
		return fmt.Errorf("region: %w", err)
	}
	if ts.Degenerate {
		lg.WithField("shannon", ts.Shannon).Warn("too few quadrature nodes for the spectral radius")
		warn = append(warn, "degenerate kernel: too few quadrature nodes for the spectral radius")
	}
	elapsed := time.Since(start)
	lg.WithField("elapsed", elapsed).Info("done")
	lg.WithField("mem", utils.GetMemUsage()).Debug("memory after solve")
	res := newResult(ip.Title, "region", q.Len(), ts, elapsed)
	res.Warnings = warn
	return writeResult(os.Stdout, res)
}
