package export

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/CMOE-TUDelft/SkyBoxAnalysis/internal/calc/spectrum"
	"github.com/CMOE-TUDelft/SkyBoxAnalysis/internal/dataset"
)

const (
	channelsSheet   = "Channels"
	propertiesSheet = "TestProperties"
)

// WriteDataset stores a recording as an XLSX workbook: one column per
// channel on the Channels sheet, headers in row 1, and key/value rows on
// the TestProperties sheet. Sample cells keep the full float64 round-trip
// precision, so a written recording reads back bit-exact.
func WriteDataset(path string, d *dataset.Dataset) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", channelsSheet); err != nil {
		return err
	}
	header := make([]interface{}, 0, len(d.Channels()))
	for _, name := range d.Channels() {
		header = append(header, name)
	}
	if err := f.SetSheetRow(channelsSheet, "A1", &header); err != nil {
		return err
	}
	for col, name := range d.Channels() {
		samples, err := d.Channel(name)
		if err != nil {
			return err
		}
		// Shortest round-trip form via SetCellDefault. Numeric cell values
		// clip to 15 significant digits.
		for row, v := range samples {
			cell, err := excelize.CoordinatesToCellName(col+1, row+2)
			if err != nil {
				return err
			}
			if err := f.SetCellDefault(channelsSheet, cell, strconv.FormatFloat(v, 'g', -1, 64)); err != nil {
				return fmt.Errorf("channel %s: %w", name, err)
			}
		}
	}

	if _, err := f.NewSheet(propertiesSheet); err != nil {
		return err
	}
	for row, kv := range d.Properties.Rows() {
		cell, err := excelize.CoordinatesToCellName(1, row+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(propertiesSheet, cell, &[]interface{}{kv[0], kv[1]}); err != nil {
			return err
		}
	}
	return f.SaveAs(path)
}

// ReadDataset loads a recording written by WriteDataset, or exported in the
// same layout by the acquisition side. The TestProperties sheet is optional.
func ReadDataset(path string) (*dataset.Dataset, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	rows, err := f.GetRows(channelsSheet)
	if err != nil {
		return nil, fmt.Errorf("channels sheet: %w", err)
	}
	if len(rows) < 2 {
		return nil, fmt.Errorf("no samples in %s", path)
	}

	header := rows[0]
	cols := make([][]float64, len(header))
	for i := range cols {
		cols[i] = make([]float64, 0, len(rows)-1)
	}
	for _, row := range rows[1:] {
		for c := range header {
			if c >= len(row) || row[c] == "" {
				continue
			}
			v, err := toFloat(row[c])
			if err != nil {
				return nil, fmt.Errorf("channel %s: %w", header[c], err)
			}
			cols[c] = append(cols[c], v)
		}
	}

	d := dataset.New(datasetName(path))
	for c, name := range header {
		if err := d.AddChannel(name, cols[c]); err != nil {
			return nil, err
		}
	}

	if props, err := f.GetRows(propertiesSheet); err == nil {
		for _, row := range props {
			if len(row) < 2 {
				continue
			}
			if err := d.Properties.SetRow(row[0], row[1]); err != nil {
				return nil, err
			}
		}
	}
	return d, nil
}

// ChannelSpectrum pairs a channel name with its computed spectrum.
type ChannelSpectrum struct {
	Channel string
	Result  spectrum.Result
}

// WriteSpectra stores computed spectra as an XLSX workbook with one sheet
// per channel: frequency_hz, amplitude and psd columns.
func WriteSpectra(path string, spectra []ChannelSpectrum) error {
	if len(spectra) == 0 {
		return fmt.Errorf("no spectra to write")
	}

	f := excelize.NewFile()
	defer f.Close()

	for i, cs := range spectra {
		if i == 0 {
			if err := f.SetSheetName("Sheet1", cs.Channel); err != nil {
				return err
			}
		} else if _, err := f.NewSheet(cs.Channel); err != nil {
			return err
		}
		if err := f.SetSheetRow(cs.Channel, "A1", &[]interface{}{"frequency_hz", "amplitude", "psd"}); err != nil {
			return err
		}
		if err := f.SetSheetCol(cs.Channel, "A2", &cs.Result.FrequencyHz); err != nil {
			return err
		}
		if err := f.SetSheetCol(cs.Channel, "B2", &cs.Result.Amplitude); err != nil {
			return err
		}
		if err := f.SetSheetCol(cs.Channel, "C2", &cs.Result.PSD); err != nil {
			return err
		}
	}
	return f.SaveAs(path)
}

func datasetName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

func toFloat(s string) (float64, error) {
	var v float64
	_, err := fmt.Sscanf(s, "%f", &v)
	return v, err
}
