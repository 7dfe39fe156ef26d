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
	"runtime"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/mat"

	"github.com/notargets/goslepian/InputParameters"
	"github.com/notargets/goslepian/slepian"
)

// GPSSCmd represents the gpss command
var GPSSCmd = &cobra.Command{
	Use:   "gpss [deck.yaml ...]",
	Short: "Slepian sequences on unequally spaced or incomplete samples",
	Long: `
Solves the generalized concentration problem K x = lambda G x for every input
deck. Several decks are solved concurrently.

goslepian gpss -I deck.yaml
goslepian gpss --parallel 4 a.yaml b.yaml c.yaml

Example deck:
########################################
Title: "Jittered grid"
Times: [0, 1.1, 2, 2.9, 4, 5.2, 6, 7.1]
W: 0.1          # half bandwidth
Carrier: 0      # band centre, 0 for low-pass
Beta: 0.5       # analysis half bandwidth of the weight matrix
K: 3
Orthogonalize: false
MissingData: false
########################################`,
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		var (
			files    = args
			parallel int
		)
		if icFile, _ := cmd.Flags().GetString("inputConditionsFile"); icFile != "" {
			files = append([]string{icFile}, files...)
		}
		if len(files) == 0 {
			return fmt.Errorf("must supply at least one input deck (-I, --inputConditionsFile)")
		}
		parallel, _ = cmd.Flags().GetInt("parallel")
		decks := make([]*InputParameters.GPSSParameters, len(files))
		for i, file := range files {
			var data []byte
			if data, err = os.ReadFile(file); err != nil {
				return
			}
			decks[i] = &InputParameters.GPSSParameters{}
			if err = decks[i].Parse(data); err != nil {
				return fmt.Errorf("%s: %w", file, err)
			}
			if decks[i].Title == "" {
				decks[i].Title = file
			}
		}
		return RunGPSS(decks, parallel)
	},
}

func init() {
	rootCmd.AddCommand(GPSSCmd)
	GPSSCmd.Flags().StringP("inputConditionsFile", "I", "", "YAML input deck: Times, W, Carrier, Beta, K, Orthogonalize, MissingData")
	GPSSCmd.Flags().Int("parallel", runtime.NumCPU(), "number of decks solved concurrently")
}

func gpssJob(ip *InputParameters.GPSSParameters) (job slepian.Job, err error) {
	var K, G *mat.SymDense
	job = slepian.Job{Name: ip.Title, Count: ip.K, Request: taperRequest()}
	job.Request.Orthogonalize = ip.Orthogonalize
	if K, err = slepian.BuildUnequalKernel(ip.Times, ip.W, ip.Carrier); err != nil {
		return
	}
	job.Kernel = K
	if ip.MissingData {
		return
	}
	if G, err = slepian.BuildWeightMatrix(ip.Times, ip.Beta); err != nil {
		return
	}
	job.Weight = G
	return
}

func RunGPSS(decks []*InputParameters.GPSSParameters, parallel int) (err error) {
	var (
		jobs  = make([]slepian.Job, len(decks))
		start = time.Now()
	)
	for i, ip := range decks {
		if jobs[i], err = gpssJob(ip); err != nil {
			return fmt.Errorf("%s: %w", ip.Title, err)
		}
		log.WithFields(log.Fields{
			"deck": ip.Title, "samples": len(ip.Times), "W": ip.W, "k": ip.K,
		}).Debug("built kernels")
	}
	results := slepian.SolveBatch(jobs, parallel)
	elapsed := time.Since(start)
	log.WithFields(log.Fields{"decks": len(decks), "elapsed": elapsed}).Info("solved")
	for i, res := range results {
		if res.Err != nil {
			log.WithError(res.Err).WithField("deck", res.Name).Error("solve failed")
			err = fmt.Errorf("%s: %w", res.Name, res.Err)
			continue
		}
		problem := "gpss"
		if decks[i].MissingData {
			problem = "mdslepian"
		}
		if i > 0 {
			fmt.Fprintln(os.Stdout, "---")
		}
		if werr := writeResult(os.Stdout, newResult(res.Name, problem, len(decks[i].Times), res.Tapers, elapsed)); werr != nil {
			return werr
		}
	}
	return
}
