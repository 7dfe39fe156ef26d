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
	"io"
	"time"

	"github.com/ghodss/yaml"
	"github.com/guptarohit/asciigraph"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"github.com/notargets/goslepian/slepian"
)

// Result is the YAML document written by every subcommand
type Result struct {
	Title       string      `json:"title,omitempty"`
	Problem     string      `json:"problem"`
	Samples     int         `json:"samples"`
	Eigenvalues []float64   `json:"eigenvalues,omitempty"`
	Tapers      [][]float64 `json:"tapers,omitempty"`
	Shannon     float64     `json:"shannon,omitempty"`
	Degenerate  bool        `json:"degenerate,omitempty"`
	Orthogonal  bool        `json:"orthogonal,omitempty"`
	Warnings    []string    `json:"warnings,omitempty"`
	Elapsed     string      `json:"elapsed"`
}

func newResult(title, problem string, samples int, ts *slepian.TaperSet, elapsed time.Duration) (r *Result) {
	r = &Result{
		Title:       title,
		Problem:     problem,
		Samples:     samples,
		Eigenvalues: ts.Eigenvalues,
		Shannon:     ts.Shannon,
		Degenerate:  ts.Degenerate,
		Orthogonal:  ts.Orthogonal,
		Elapsed:     elapsed.String(),
	}
	if ts.Tapers != nil {
		for j := 0; j < ts.Len(); j++ {
			r.Tapers = append(r.Tapers, ts.Taper(j))
		}
	}
	return
}

// taperRequest asks for tapers only when they are printed or plotted
func taperRequest() (req slepian.Request) {
	req = slepian.DefaultRequest
	req.WantTapers = viper.GetBool("tapers") || viper.GetBool("plot")
	return
}

func writeResult(w io.Writer, r *Result) (err error) {
	var (
		data []byte
		plot = viper.GetBool("plot")
	)
	if plot {
		plotResult(w, r)
	}
	if !viper.GetBool("tapers") {
		r.Tapers = nil
	}
	if data, err = yaml.Marshal(r); err != nil {
		return
	}
	_, err = w.Write(data)
	return
}

func plotResult(w io.Writer, r *Result) {
	if len(r.Eigenvalues) > 1 {
		fmt.Fprintln(w, asciigraph.Plot(r.Eigenvalues,
			asciigraph.Height(10), asciigraph.Caption("concentration ratio by taper order")))
	}
	if len(r.Tapers) > 0 && len(r.Tapers[0]) > 1 {
		fmt.Fprintln(w, asciigraph.Plot(r.Tapers[0],
			asciigraph.Height(10), asciigraph.Width(72), asciigraph.Caption("taper 0")))
	}
	log.Debug("plotted result")
}
