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
	"github.com/notargets/goslepian/slepian"
)

// DPSSCmd represents the dpss command
var DPSSCmd = &cobra.Command{
	Use:   "dpss",
	Short: "Discrete prolate spheroidal sequences on a unit spaced grid",
	Long: `
Computes the first k discrete prolate spheroidal sequences of length n for
time-bandwidth product nw, with their concentration ratios.

goslepian dpss -n 64 --nw 4 -k 7`,
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		ip := &InputParameters.DPSSParameters{}
		ip.N, _ = cmd.Flags().GetInt("n")
		ip.NW, _ = cmd.Flags().GetFloat64("nw")
		ip.K, _ = cmd.Flags().GetInt("k")
		ip.Title, _ = cmd.Flags().GetString("title")
		if ip.K == 0 {
			ip.K = max(1, int(2*ip.NW)-1)
		}
		if err = ip.Validate(); err != nil {
			return
		}
		return RunDPSS(ip)
	},
}

func init() {
	rootCmd.AddCommand(DPSSCmd)
	DPSSCmd.Flags().IntP("n", "n", 64, "sequence length")
	DPSSCmd.Flags().Float64("nw", 4, "time-bandwidth product, W = nw/n")
	DPSSCmd.Flags().IntP("k", "k", 0, "number of tapers (default 2nw-1)")
	DPSSCmd.Flags().StringP("title", "t", "", "title echoed in the output")
}

func RunDPSS(ip *InputParameters.DPSSParameters) (err error) {
	var (
		ts    *slepian.TaperSet
		start = time.Now()
		lg    = log.WithFields(log.Fields{"N": ip.N, "NW": ip.NW, "k": ip.K})
	)
	lg.Info("solving classical problem")
	if ts, err = slepian.SolveClassical(ip.N, ip.NW, ip.K, taperRequest()); err != nil {
		return fmt.Errorf("dpss: %w", err)
	}
	elapsed := time.Since(start)
	lg.WithField("elapsed", elapsed).Info("done")
	return writeResult(os.Stdout, newResult(ip.Title, "dpss", ip.N, ts, elapsed))
}
