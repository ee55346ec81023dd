// Command circuitcore is a manual smoke-test harness around the three
// analysis entry points: it loads a JSON preset, runs one analysis,
// and prints a formatted result table. It is not part of the public
// API contract; pkg/analysis is.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"sort"
	"strconv"
	"strings"

	"circuitcore/pkg/analysis"
	"circuitcore/pkg/model"
	"circuitcore/pkg/netlist"
)

func main() {
	analysisFlag := flag.String("analysis", "dc", "analysis to run: dc, ac, transient")
	presetFlag := flag.String("preset", "", "path to a JSON preset file (default: stdin)")
	startFreq := flag.Float64("start-freq", 1, "AC sweep start frequency (Hz)")
	stopFreq := flag.Float64("stop-freq", 1e6, "AC sweep stop frequency (Hz)")
	points := flag.Int("points", 20, "AC sweep point count")
	timeStep := flag.Float64("time-step", 1e-5, "transient time step (s)")
	stopTime := flag.Float64("stop-time", 1e-3, "transient stop time (s)")
	flag.Parse()

	in := os.Stdin
	if *presetFlag != "" {
		f, err := os.Open(*presetFlag)
		if err != nil {
			log.Fatalf("opening preset: %v", err)
		}
		defer f.Close()
		in = f
	}

	components, wires, err := netlist.Decode(in)
	if err != nil {
		log.Fatalf("decoding preset: %v", err)
	}
	fmt.Printf("Loaded %d components, %d wires\n", len(components), len(wires))

	var result model.Result
	switch strings.ToLower(*analysisFlag) {
	case "dc":
		result = analysis.SolveCircuit(components, wires, 0)
	case "ac":
		result = analysis.SolveACSweep(components, wires, model.ACSweepConfig{
			StartFreq: *startFreq,
			StopFreq:  *stopFreq,
			Points:    *points,
		})
	case "transient":
		result = analysis.SolveTransient(components, wires, model.TransientConfig{
			TimeStep: *timeStep,
			StopTime: *stopTime,
		})
	default:
		log.Fatalf("unknown analysis %q", *analysisFlag)
	}

	printResult(result)
}

func printResult(result model.Result) {
	if result.Error != "" {
		fmt.Printf("Error: %s\n", result.Error)
		return
	}

	fmt.Printf("\nAnalysis: %s\n", result.Mode)

	switch result.Mode {
	case model.ModeDC:
		fmt.Println("\nNode Voltages:")
		ids := make([]int, 0, len(result.NodeVoltages))
		for id := range result.NodeVoltages {
			ids = append(ids, id)
		}
		sort.Ints(ids)
		for _, id := range ids {
			fmt.Printf("  N%d = %s\n", id, model.FormatSI(result.NodeVoltages[id].Magnitude, "V"))
		}

		fmt.Println("\nComponent Currents:")
		names := make([]string, 0, len(result.ComponentCurrents))
		for name := range result.ComponentCurrents {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			fmt.Printf("  %s = %s\n", name, model.FormatSI(result.ComponentCurrents[name], "A"))
		}

	case model.ModeACSweep:
		fmt.Printf("\n%-14s %s\n", "Frequency", "Magnitudes")
		for _, p := range result.PlotData {
			labels := plotValueLabels(p)
			fmt.Printf("%-14s %s\n", model.FormatFrequency(p.X), strings.Join(labels, "  "))
		}

	case model.ModeTransient:
		fmt.Printf("\n%-14s %s\n", "Time", "Node Voltages")
		for _, p := range result.PlotData {
			labels := plotValueLabels(p)
			fmt.Printf("%-14s %s\n", model.FormatSI(p.X, "s"), strings.Join(labels, "  "))
		}
	}
}

func plotValueLabels(p model.PlotPoint) []string {
	keys := make([]string, 0, len(p.Values))
	for k := range p.Values {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		ni, erri := strconv.Atoi(strings.TrimPrefix(keys[i], "N"))
		nj, errj := strconv.Atoi(strings.TrimPrefix(keys[j], "N"))
		if erri == nil && errj == nil {
			return ni < nj
		}
		return keys[i] < keys[j]
	})

	labels := make([]string, 0, len(keys))
	for _, k := range keys {
		labels = append(labels, fmt.Sprintf("%s=%s", k, model.FormatSI(p.Values[k], "V")))
	}
	return labels
}
