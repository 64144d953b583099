package analysis

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gonum.org/v1/gonum/floats"

	"github.com/CMOE-TUDelft/SkyBoxAnalysis/internal/calc/catenary"
	"github.com/CMOE-TUDelft/SkyBoxAnalysis/internal/calc/mooring"
	"github.com/CMOE-TUDelft/SkyBoxAnalysis/internal/calc/spectrum"
	"github.com/CMOE-TUDelft/SkyBoxAnalysis/internal/config"
	"github.com/CMOE-TUDelft/SkyBoxAnalysis/internal/dataset"
	"github.com/CMOE-TUDelft/SkyBoxAnalysis/internal/export"
	"github.com/CMOE-TUDelft/SkyBoxAnalysis/internal/postprocess"
)

// Session is one configured analysis run over one or more recordings.
type Session struct {
	ID  string
	cfg *config.Config
	log *zap.Logger
}

func NewSession(cfg *config.Config, log *zap.Logger) *Session {
	return &Session{ID: uuid.NewString(), cfg: cfg, log: log}
}

// Outcome records what one recording produced.
type Outcome struct {
	Dataset     string
	ReportPath  string
	SpectraPath string
}

// Expand resolves a literal path or a doublestar pattern to a sorted list
// of workbook paths.
func Expand(pattern string) ([]string, error) {
	matches, err := doublestar.FilepathGlob(pattern)
	if err != nil {
		return nil, fmt.Errorf("bad pattern %q: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("no datasets match %q", pattern)
	}
	sort.Strings(matches)
	return matches, nil
}

// Run validates the config, then processes every matching recording in
// order. The first failure aborts the whole run.
func (s *Session) Run() ([]Outcome, error) {
	if err := s.cfg.Validate(); err != nil {
		return nil, err
	}
	files, err := Expand(s.cfg.Data)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(s.cfg.OutputDir, 0o755); err != nil {
		return nil, err
	}

	outcomes := make([]Outcome, 0, len(files))
	for _, file := range files {
		out, err := s.analyze(file)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", file, err)
		}
		outcomes = append(outcomes, out)
	}
	return outcomes, nil
}

func (s *Session) analyze(file string) (Outcome, error) {
	d, err := export.ReadDataset(file)
	if err != nil {
		return Outcome{}, err
	}
	fingerprint := d.Fingerprint()
	s.log.Info("dataset loaded",
		zap.String("run_id", s.ID),
		zap.String("dataset", d.Name),
		zap.Int("samples", d.Len()),
		zap.Strings("channels", d.Channels()),
		zap.String("fingerprint", fmt.Sprintf("%016x", fingerprint)),
	)
	s.log.Debug("dataset headers", zap.String("listing", d.Headers()))
	s.log.Debug("test properties", zap.String("summary", d.Properties.Summary()))

	rep := &export.Report{
		RunID:       s.ID,
		GeneratedAt: time.Now(),
		Dataset:     d.Name,
		Fingerprint: fingerprint,
		Properties:  d.Properties,
	}

	if s.cfg.UseLEDWindow {
		rise, fall, err := postprocess.ActiveWindow(d)
		if err != nil {
			return Outcome{}, err
		}
		win := &export.WindowSummary{RiseIndex: rise, FallIndex: fall}
		if tc, err := d.Channel(dataset.TimeChannel); err == nil {
			win.RiseTimeS, win.FallTimeS = tc[rise], tc[fall]
		}
		if d, err = d.Window(rise, fall); err != nil {
			return Outcome{}, err
		}
		rep.LEDWindow = win
		s.log.Info("LED trigger window applied",
			zap.Int("rise", rise),
			zap.Int("fall", fall),
			zap.Int("samples", d.Len()),
		)
	}

	for _, ta := range s.cfg.Tare {
		tc, err := d.Channel(dataset.TimeChannel)
		if err != nil {
			return Outcome{}, fmt.Errorf("tare needs a %s channel: %w", dataset.TimeChannel, err)
		}
		samples, err := d.Channel(ta.Channel)
		if err != nil {
			return Outcome{}, err
		}
		tared, value, err := postprocess.Tare(tc, samples, ta.StartS, ta.EndS)
		if err != nil {
			return Outcome{}, fmt.Errorf("tare %s: %w", ta.Channel, err)
		}
		if err := d.SetChannel(ta.Channel, tared); err != nil {
			return Outcome{}, err
		}
		rep.Tares = append(rep.Tares, export.TareSummary{
			Channel: ta.Channel,
			StartS:  ta.StartS,
			EndS:    ta.EndS,
			Value:   value,
		})
		s.log.Info("channel tared",
			zap.String("channel", ta.Channel),
			zap.Float64("tare_value", value),
		)
	}

	samplingHz := d.Properties.SamplingHz
	if samplingHz <= 0 {
		samplingHz = s.cfg.DefaultSamplingHz
	}
	var spectra []export.ChannelSpectrum
	for _, name := range s.cfg.Spectrum.Channels {
		samples, err := d.Channel(name)
		if err != nil {
			return Outcome{}, err
		}
		res, err := spectrum.Calculate(spectrum.Input{Samples: samples, SamplingHz: samplingHz})
		if err != nil {
			return Outcome{}, fmt.Errorf("spectrum %s: %w", name, err)
		}
		peakF, peakA := res.Peak()
		rep.Spectra = append(rep.Spectra, export.SpectrumSummary{
			Channel:         name,
			SampleCount:     res.SampleCount,
			ResolutionHz:    res.ResolutionHz,
			MaxFrequencyHz:  res.MaxFrequencyHz,
			PeakFrequencyHz: peakF,
			PeakAmplitude:   peakA,
		})
		spectra = append(spectra, export.ChannelSpectrum{Channel: name, Result: res})
		s.log.Info("spectrum computed",
			zap.String("channel", name),
			zap.Int("sample_len", res.SampleCount),
			zap.Float64("least_count_hz", res.ResolutionHz),
			zap.Float64("max_freq_hz", res.MaxFrequencyHz),
		)
	}

	if c := s.cfg.Catenary; c != nil {
		p := catenary.Params{HorizontalTensionKN: c.HorizontalTensionKN, WeightKNPerM: c.WeightKNPerM}
		x := floats.Span(make([]float64, c.Points), c.XMinM, c.XMaxM)
		y := catenary.Profile(x, p)
		rep.Catenary = &export.CatenarySummary{
			HorizontalTensionKN: p.HorizontalTensionKN,
			WeightKNPerM:        p.WeightKNPerM,
			XMinM:               c.XMinM,
			XMaxM:               c.XMaxM,
			Points:              c.Points,
			MinYM:               floats.Min(y),
			MaxYM:               floats.Max(y),
		}
	}

	if m := s.cfg.Mooring; m != nil {
		res, err := mooring.Calculate(mooring.Input{LengthM: m.LengthM, AxialStiffnessKN: m.AxialStiffnessKN})
		if err != nil {
			return Outcome{}, err
		}
		rep.Mooring = &export.MooringSummary{
			LengthM:          m.LengthM,
			AxialStiffnessKN: m.AxialStiffnessKN,
			StiffnessKNPerM:  res.StiffnessKNPerM,
		}
	}

	base := strings.TrimSuffix(filepath.Base(file), filepath.Ext(file))
	out := Outcome{Dataset: d.Name}
	out.ReportPath = filepath.Join(s.cfg.OutputDir, base+"-report.pdf")
	if err := export.WriteReport(out.ReportPath, rep); err != nil {
		return Outcome{}, err
	}
	if len(spectra) > 0 {
		out.SpectraPath = filepath.Join(s.cfg.OutputDir, base+"-spectra.xlsx")
		if err := export.WriteSpectra(out.SpectraPath, spectra); err != nil {
			return Outcome{}, err
		}
	}
	s.log.Info("analysis written",
		zap.String("dataset", d.Name),
		zap.String("report", out.ReportPath),
		zap.String("spectra", out.SpectraPath),
	)
	return out, nil
}
