package export

import (
	"bytes"
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
	"time"

	"carbon-credits/internal/dataset"
	"carbon-credits/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func sampleRecord() model.Record {
	return model.Record{
		Date:                           "2025-07-20",
		Company:                        "Google Cloud Texas",
		CarbonCreditPriceUSD:           88.9,
		AIComputeIntensity:             0.5,
		CoolingEfficiencyPUE:           1.75,
		RenewableEnergyPct:             62.3,
		DailyEmissionsTonsCO2:          101.25,
		CarbonCreditsNeeded:            101.25,
		TransactionVolumeUSD:           9001.13,
		TraditionalSettlementDays:      21,
		SmartContractSettlementMinutes: 17,
		IsInternational:                true,
		ROIPercentage:                  1234.5,
		InferenceCarbonFootprintGCO2:   2.1,
	}
}

func generate(t *testing.T) []model.Record {
	t.Helper()
	res, err := dataset.Generate(dataset.Params{
		Seed: model.DefaultSeed,
		AsOf: time.Date(2025, 7, 20, 9, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	return res.Records
}

func TestFormatRow(t *testing.T) {
	row := FormatRow(sampleRecord())
	require.Len(t, row, len(model.Columns))

	tests := []struct {
		col      int
		expected string
	}{
		{0, "2025-07-20"},
		{1, "Google Cloud Texas"},
		{2, "88.90"},
		{3, "0.500"},
		{4, "1.75"},
		{5, "62.3"},
		{8, "0.00"},
		{10, "21"},
		{11, "17"},
		{15, "true"},
		{20, "1234.5"},
		{27, "2.100"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, row[tt.col], "column %s", model.Columns[tt.col].Name)
	}
}

func TestWriteCSV_HeaderAndRows(t *testing.T) {
	records := generate(t)

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, records))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, len(records)+1)
	assert.Equal(t, model.ColumnNames(), rows[0])
	assert.Equal(t, "Google Cloud Texas", rows[1][1])
	assert.Equal(t, "Oracle Cloud Austin", rows[10][1])
}

func TestWriteCSVFile_ByteIdenticalAcrossRuns(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.csv")
	b := filepath.Join(dir, "nested", "b.csv")

	require.NoError(t, WriteCSVFile(a, generate(t)))
	require.NoError(t, WriteCSVFile(b, generate(t)))

	rawA, err := os.ReadFile(a)
	require.NoError(t, err)
	rawB, err := os.ReadFile(b)
	require.NoError(t, err)
	assert.Equal(t, rawA, rawB)
}

func TestWriteCSVFile_Overwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")
	require.NoError(t, os.WriteFile(path, bytes.Repeat([]byte("x"), 1<<20), 0o644))

	require.NoError(t, WriteCSVFile(path, []model.Record{sampleRecord()}))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "xxx")
	assert.Contains(t, string(raw), "Google Cloud Texas")
}

func TestWriteCSVFile_UnwritablePath(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "file")
	require.NoError(t, os.WriteFile(blocker, nil, 0o644))

	err := WriteCSVFile(filepath.Join(blocker, "out.csv"), nil)
	assert.Error(t, err)
}

func TestWriteXLSXFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.xlsx")
	records := []model.Record{sampleRecord()}

	require.NoError(t, WriteXLSXFile(path, records))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(SheetName)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, model.ColumnNames(), rows[0])
	assert.Equal(t, "Google Cloud Texas", rows[1][1])

	v, err := f.GetCellValue(SheetName, "K2", excelize.Options{RawCellValue: true})
	require.NoError(t, err)
	assert.Equal(t, "21", v)
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"csv", FormatCSV, false},
		{" XLSX ", FormatXLSX, false},
		{"json", "", true},
		{"", "", true},
	}
	for _, tt := range tests {
		got, err := ParseFormat(tt.in)
		if tt.wantErr {
			assert.Error(t, err, tt.in)
			continue
		}
		assert.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got)
	}
}

func TestWriteFile_UnknownFormat(t *testing.T) {
	err := WriteFile(filepath.Join(t.TempDir(), "x"), Format("parquet"), nil)
	assert.Error(t, err)
}
