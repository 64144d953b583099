package export

import (
	"fmt"
	"time"

	"github.com/phpdave11/gofpdf"

	"github.com/CMOE-TUDelft/SkyBoxAnalysis/internal/dataset"
)

// Report collects everything one analysis run produced for one recording.
// Optional sections are nil or empty when the step did not run.
type Report struct {
	RunID       string
	GeneratedAt time.Time
	Dataset     string
	Fingerprint uint64
	Properties  dataset.TestProperties
	LEDWindow   *WindowSummary
	Tares       []TareSummary
	Spectra     []SpectrumSummary
	Catenary    *CatenarySummary
	Mooring     *MooringSummary
	Notes       string
}

type WindowSummary struct {
	RiseIndex int
	FallIndex int
	RiseTimeS float64
	FallTimeS float64
}

type TareSummary struct {
	Channel string
	StartS  float64
	EndS    float64
	Value   float64
}

type SpectrumSummary struct {
	Channel         string
	SampleCount     int
	ResolutionHz    float64
	MaxFrequencyHz  float64
	PeakFrequencyHz float64
	PeakAmplitude   float64
}

type CatenarySummary struct {
	HorizontalTensionKN float64
	WeightKNPerM        float64
	XMinM               float64
	XMaxM               float64
	Points              int
	MinYM               float64
	MaxYM               float64
}

type MooringSummary struct {
	LengthM          float64
	AxialStiffnessKN float64
	StiffnessKNPerM  float64
}

// WriteReport renders the analysis report as an A4 PDF.
func WriteReport(path string, rep *Report) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, "SkyBox Test Analysis")
	pdf.Ln(12)

	section := func(title string) {
		pdf.SetFont("Helvetica", "B", 12)
		pdf.Cell(0, 8, title)
		pdf.Ln(9)
		pdf.SetFont("Helvetica", "", 11)
	}
	line := func(format string, args ...any) {
		pdf.Cell(0, 6, fmt.Sprintf(format, args...))
		pdf.Ln(6)
	}

	pdf.SetFont("Helvetica", "", 11)
	line("Dataset: %s", rep.Dataset)
	line("Run: %s", rep.RunID)
	line("Date: %s", rep.GeneratedAt.Format("2006-01-02 15:04"))
	line("Fingerprint: %016x", rep.Fingerprint)
	pdf.Ln(4)

	if rows := rep.Properties.Rows(); len(rows) > 0 {
		section("Test Properties")
		for _, kv := range rows {
			line("%s: %s", kv[0], kv[1])
		}
		pdf.Ln(4)
	}

	if w := rep.LEDWindow; w != nil {
		section("LED Trigger Window")
		line("Samples %d to %d (%.3f s to %.3f s)", w.RiseIndex, w.FallIndex, w.RiseTimeS, w.FallTimeS)
		pdf.Ln(4)
	}

	if len(rep.Tares) > 0 {
		section("Tare")
		for _, ta := range rep.Tares {
			line("%s: %.6g over [%.3f s, %.3f s)", ta.Channel, ta.Value, ta.StartS, ta.EndS)
		}
		pdf.Ln(4)
	}

	if len(rep.Spectra) > 0 {
		section("Spectra")
		for _, sp := range rep.Spectra {
			line("%s: peak %.6g at %.4g Hz (n=%d, df=%.4g Hz, max %.4g Hz)",
				sp.Channel, sp.PeakAmplitude, sp.PeakFrequencyHz,
				sp.SampleCount, sp.ResolutionHz, sp.MaxFrequencyHz)
		}
		pdf.Ln(4)
	}

	if c := rep.Catenary; c != nil {
		section("Catenary")
		line("H = %g kN, w = %g kN/m, x in [%g, %g] m (%d points)",
			c.HorizontalTensionKN, c.WeightKNPerM, c.XMinM, c.XMaxM, c.Points)
		line("y range: %.6g m to %.6g m", c.MinYM, c.MaxYM)
		pdf.Ln(4)
	}

	if m := rep.Mooring; m != nil {
		section("Mooring Stiffness")
		line("L = %g m, EA = %g kN, k = %g kN/m", m.LengthM, m.AxialStiffnessKN, m.StiffnessKNPerM)
		pdf.Ln(4)
	}

	if rep.Notes != "" {
		section("Notes")
		pdf.MultiCell(0, 6, rep.Notes, "", "L", false)
	}
	return pdf.OutputFileAndClose(path)
}
