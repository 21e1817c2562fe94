package main

import (
	"flag"
	"fmt"
	"math"
	"os"

	"gonum.org/v1/gonum/stat"

	"github.com/mhoque/drillsight/internal/database"
	"github.com/mhoque/drillsight/internal/survey"
	"github.com/mhoque/drillsight/internal/trajectory"
)

// QCReport summarizes the quality of a directional survey file before it is
// imported into a well
type QCReport struct {
	StationCount int
	MDRange      [2]float64
	TVDRange     [2]float64
	StepMean     float64
	StepStdDev   float64
	StepMax      float64
	DoglegCount  int // stations where TVD decreases against increasing MD
	DupMDCount   int
}

func main() {
	maxStep := flag.Float64("max-step", 100.0, "Flag station spacing above this many meters")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "usage: %s [flags] <survey-file>\n", os.Args[0])
		flag.PrintDefaults()
		os.Exit(2)
	}

	f, err := os.Open(flag.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "error opening survey file: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()

	rows, err := survey.ParseStations(f)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error parsing survey file: %v\n", err)
		os.Exit(1)
	}

	report := analyze(database.TrajectoryStations(rows))
	printReport(report, *maxStep)
}

func analyze(stations []trajectory.Station) QCReport {
	svy := trajectory.NewSurvey(stations)
	sorted := svy.Stations()

	report := QCReport{StationCount: len(sorted)}
	if len(sorted) == 0 {
		return report
	}

	report.MDRange = [2]float64{sorted[0].MD, sorted[len(sorted)-1].MD}
	report.TVDRange = [2]float64{sorted[0].TVD, sorted[0].TVD}

	steps := make([]float64, 0, len(sorted)-1)
	for i, s := range sorted {
		report.TVDRange[0] = math.Min(report.TVDRange[0], s.TVD)
		report.TVDRange[1] = math.Max(report.TVDRange[1], s.TVD)
		if i == 0 {
			continue
		}
		prev := sorted[i-1]
		step := s.MD - prev.MD
		steps = append(steps, step)
		if step == 0 {
			report.DupMDCount++
		}
		if s.TVD < prev.TVD {
			report.DoglegCount++
		}
		report.StepMax = math.Max(report.StepMax, step)
	}

	if len(steps) > 0 {
		report.StepMean, report.StepStdDev = stat.MeanStdDev(steps, nil)
		if math.IsNaN(report.StepStdDev) {
			report.StepStdDev = 0
		}
	}

	return report
}

func printReport(r QCReport, maxStep float64) {
	fmt.Printf("Stations:        %d\n", r.StationCount)
	if r.StationCount == 0 {
		fmt.Println("No usable survey stations found.")
		return
	}
	fmt.Printf("MD range:        %.2f - %.2f m\n", r.MDRange[0], r.MDRange[1])
	fmt.Printf("TVD range:       %.2f - %.2f m\n", r.TVDRange[0], r.TVDRange[1])
	fmt.Printf("Station spacing: mean %.2f m, stddev %.2f m, max %.2f m\n", r.StepMean, r.StepStdDev, r.StepMax)

	if r.DupMDCount > 0 {
		fmt.Printf("WARNING: %d duplicate MD station(s); the first station wins on import\n", r.DupMDCount)
	}
	if r.DoglegCount > 0 {
		fmt.Printf("WARNING: %d station(s) where TVD decreases with MD; TVD to MD lookups use the shallowest match\n", r.DoglegCount)
	}
	if r.StepMax > maxStep {
		fmt.Printf("WARNING: largest station spacing %.2f m exceeds %.2f m; interpolation accuracy degrades across wide gaps\n", r.StepMax, maxStep)
	}
}
