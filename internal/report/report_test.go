package report_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/S4ng4/winery-resolver/internal/catalog"
	"github.com/S4ng4/winery-resolver/internal/domain"
	"github.com/S4ng4/winery-resolver/internal/report"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const export = `{
  "wines": [
    {"wine_number": "1", "wine_name": "Cirò Rosso", "wine_producer": "Ippolito"},
    {"wine_number": "2", "wine_name": "Cirò Bianco", "wine_producer": " ippolito "},
    {"wine_number": "3", "wine_name": "Pecorino", "wine_producer": "Tenuta Ulisse"},
    {"wine_number": "4", "wine_name": "Nero d'Avola", "wine_producer": "Santa Tresa*"},
    {"wine_number": "5", "wine_name": "House Red", "wine_producer": "Cantina Sconosciuta"},
    {"wine_number": "6", "wine_name": "House White", "wine_producer": "UNKNOWN PRODUCER"},
    {"wine_number": "7", "wine_name": "Rosato", "wine_producer": ""},
    {"wine_number": "8", "wine_name": "Cirò Rosato", "wine_producer": "IPPOLITO 1845"}
  ]
}`

func loadExport(t *testing.T) []domain.RawWineListing {
	t.Helper()
	wines, err := report.DecodeWines(strings.NewReader(export))
	require.NoError(t, err)
	return wines
}

func TestDecodeWines(t *testing.T) {
	wines := loadExport(t)
	require.Len(t, wines, 8)
	assert.Equal(t, "ippolito", wines[1].Producer, "producer names are trimmed")

	_, err := report.DecodeWines(strings.NewReader(`{"wines": []}`))
	require.ErrorIs(t, err, report.ErrNoWines)

	_, err = report.DecodeWines(strings.NewReader(`not json`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode wine list")
}

func TestLoadWines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wines.json")
	require.NoError(t, os.WriteFile(path, []byte(export), 0o600))

	wines, err := report.LoadWines(path)
	require.NoError(t, err)
	assert.Len(t, wines, 8)

	_, err = report.LoadWines(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "open wine list")
}

func TestBuildMatchReport(t *testing.T) {
	table, err := catalog.Default()
	require.NoError(t, err)

	rep := report.BuildMatchReport(loadExport(t), table)

	want := []report.Group{
		{Key: "IPPOLITO 1845", Strategy: domain.MatchContainment, Producers: []string{"Ippolito", "IPPOLITO 1845"}},
		{Key: "FEUDI BIZANTINI", Strategy: domain.MatchAlias, Producers: []string{"Tenuta Ulisse"}},
		{Key: "SANTA TRESA", Strategy: domain.MatchExactKey, Producers: []string{"Santa Tresa*"}},
	}
	if diff := cmp.Diff(want, rep.Matched); diff != "" {
		t.Errorf("matched groups mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, []string{"Cantina Sconosciuta"}, rep.Unmatched)
	assert.Equal(t, 5, rep.Producers())
	assert.InDelta(t, 0.8, rep.MatchRate(), 1e-9)
}

func TestMatchReportEmpty(t *testing.T) {
	var rep report.MatchReport
	assert.Equal(t, 0, rep.Producers())
	assert.Zero(t, rep.MatchRate())
}

func TestCountProducers(t *testing.T) {
	got := report.CountProducers(loadExport(t))

	want := []report.ProducerCount{
		{Name: "Cantina Sconosciuta", Wines: 1},
		{Name: "Ippolito", Wines: 1},
		{Name: "ippolito", Wines: 1},
		{Name: "IPPOLITO 1845", Wines: 1},
		{Name: "Santa Tresa*", Wines: 1},
		{Name: "Tenuta Ulisse", Wines: 1},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("producer counts mismatch (-want +got):\n%s", diff)
	}
}
