// Copyright © 2023 Rak Laptudirm <rak@laptudirm.com>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// miniosl-report walks the legal move tree from the standard opening
// to a fixed depth, the way a perft sweep would, and reports the
// branching factor per ply as an HTML chart plus a progress bar of
// nodes visited, grounded on the progressbar/v3 + go-echarts/v2 pairing
// the teacher uses to track and plot its evaluation tuner's progress.
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/schollz/progressbar/v3"

	"github.com/tkaneko/miniosl/pkg/shogi/movegen"
	"github.com/tkaneko/miniosl/pkg/shogi/state"
)

func main() {
	depth := flag.Int("depth", 3, "ply depth to sweep from the standard opening")
	out := flag.String("out", "branching-factor.html", "HTML chart output path")
	flag.Parse()

	if err := run(*depth, *out); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// ply collects the node and move counts observed at one depth of the sweep.
type ply struct {
	nodes        int
	moves        int
	inconsistent int
}

func run(depth int, outPath string) error {
	fmt.Printf("miniosl-report: sweeping %d ply from the standard opening\n", depth)

	stats := make([]ply, depth)

	bar := progressbar.NewOptions(-1,
		progressbar.OptionSetElapsedTime(true),
		progressbar.OptionSetItsString("node"),
		progressbar.OptionSetPredictTime(false),
		progressbar.OptionSetRenderBlankState(true),
		progressbar.OptionShowCount(),
		progressbar.OptionShowIts(),
	)

	sweep(state.NewHirate(), 0, depth, stats, bar)
	_ = bar.Close()

	plyLabel := make([]string, depth)
	branching := make([]opts.LineData, depth)
	for i, s := range stats {
		plyLabel[i] = strconv.Itoa(i + 1)
		factor := 0.0
		if s.nodes > 0 {
			factor = float64(s.moves) / float64(s.nodes)
		}
		factor = round2(factor)
		branching[i] = opts.LineData{Value: factor}
		fmt.Printf("miniosl-report: ply %d nodes=%d moves=%d avg-branching=%v inconsistent=%d\n",
			i+1, s.nodes, s.moves, factor, s.inconsistent)
	}

	chart := charts.NewLine()
	chart.SetXAxis(plyLabel).AddSeries("branching factor", branching)

	plotFile, err := os.Create(outPath)
	if err != nil {
		return err
	}
	defer plotFile.Close()
	return chart.Render(plotFile)
}

func round2(f float64) float64 {
	return float64(int(f*100)) / 100
}

// sweep walks es's legal move tree to depth levels, accumulating node
// and move counts into stats and ticking bar once per node visited.
func sweep(es *state.EffectState, level, depth int, stats []ply, bar *progressbar.ProgressBar) {
	if level >= depth {
		return
	}
	moves := movegen.GenerateLegal(es)
	stats[level].nodes++
	stats[level].moves += len(moves)
	if !es.IsConsistent() {
		stats[level].inconsistent++
	}
	_ = bar.Add(1)

	for _, m := range moves {
		clone := es.Clone()
		if err := clone.MakeMove(m); err != nil {
			continue
		}
		sweep(clone, level+1, depth, stats, bar)
	}
}
