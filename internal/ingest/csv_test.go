package ingest

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleCSV = `Region,Year,CO2_kt,CH4_kt,N2O_kt,Usage
Asia,2021,5000000,38095,806,125000
Europe,2021,1800000,12000,300,98000
Asia,2022,4900000,37500,790,127500
`

func TestParseCSV(t *testing.T) {
	t.Run("parses header and rows", func(t *testing.T) {
		ds, err := ParseCSV([]byte(sampleCSV))
		require.NoError(t, err)

		assert.Equal(t, []string{"Region", "Year", "CO2_kt", "CH4_kt", "N2O_kt", "Usage"}, ds.Columns)
		require.Equal(t, 3, ds.Len())
		assert.Equal(t, "Asia", ds.Records[0]["Region"])
		assert.Equal(t, "5000000", ds.Records[0]["CO2_kt"])
		assert.Equal(t, "127500", ds.Records[2]["Usage"])
	})

	t.Run("short rows pad with empty cells", func(t *testing.T) {
		ds, err := ParseCSV([]byte("Year,CO2\n2021\n"))
		require.NoError(t, err)
		require.Equal(t, 1, ds.Len())
		assert.Equal(t, "2021", ds.Records[0]["Year"])
		assert.Equal(t, "", ds.Records[0]["CO2"])
	})

	t.Run("header-only input yields empty dataset", func(t *testing.T) {
		ds, err := ParseCSV([]byte("Year,CO2\n"))
		require.NoError(t, err)
		assert.Equal(t, 0, ds.Len())
	})

	t.Run("empty input fails", func(t *testing.T) {
		_, err := ParseCSV(nil)
		assert.ErrorIs(t, err, ErrEmptyDataset)
	})
}

func TestLoadCSV(t *testing.T) {
	t.Run("loads file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "emissions.csv")
		require.NoError(t, os.WriteFile(path, []byte(sampleCSV), 0600))

		ds, err := LoadCSV(path)
		require.NoError(t, err)
		assert.Equal(t, 3, ds.Len())
	})

	t.Run("missing file fails with path in error", func(t *testing.T) {
		_, err := LoadCSV("/nonexistent/emissions.csv")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "/nonexistent/emissions.csv")
	})
}

func TestFromRows(t *testing.T) {
	ds := FromRows([]string{"Year", "CO2"}, []map[string]string{
		{"Year": "2021", "CO2": "100"},
		{"Year": "2022"},
	})

	require.Equal(t, 2, ds.Len())
	assert.Equal(t, "100", ds.Records[0]["CO2"])
	assert.Equal(t, "", ds.Records[1]["CO2"], "absent cells become empty strings")
}

func TestFingerprint(t *testing.T) {
	t.Run("stable for identical content", func(t *testing.T) {
		a, err := ParseCSV([]byte(sampleCSV))
		require.NoError(t, err)
		b, err := ParseCSV([]byte(sampleCSV))
		require.NoError(t, err)

		assert.Equal(t, a.Fingerprint(), b.Fingerprint())
	})

	t.Run("sensitive to cell changes", func(t *testing.T) {
		a, err := ParseCSV([]byte("Year,CO2\n2021,100\n"))
		require.NoError(t, err)
		b, err := ParseCSV([]byte("Year,CO2\n2021,101\n"))
		require.NoError(t, err)

		assert.NotEqual(t, a.Fingerprint(), b.Fingerprint())
	})
}
