package catalog_test

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/legwise/legwise/internal/catalog"
)

func TestDefault_IsValid(t *testing.T) {
	c := catalog.Default()
	require.NoError(t, c.Validate())

	assert.Len(t, c.FirstMile, 6)
	assert.Len(t, c.LastMile, 3)
	assert.Equal(t, "train_main", c.MainLeg.ID)
}

func TestDefault_SegmentsSumToLegDuration(t *testing.T) {
	c := catalog.Default()

	legs := append(append([]catalog.Leg{}, c.FirstMile...), c.LastMile...)
	legs = append(legs, c.MainLeg)
	for _, l := range legs {
		assert.Equal(t, l.TotalDurationMinutes, l.SegmentDuration(), "leg %s", l.ID)
	}
}

func TestDefault_ReturnsIndependentCopies(t *testing.T) {
	a := catalog.Default()
	b := catalog.Default()

	a.FirstMile[0].CostAmount = 999
	assert.InDelta(t, 8.97, b.FirstMile[0].CostAmount, 1e-9)
}

func TestValidate_ReportsEveryViolation(t *testing.T) {
	c := catalog.Default()
	c.FirstMile[1].ID = c.FirstMile[0].ID
	c.FirstMile[2].CostAmount = -1
	c.LastMile[0].TotalDurationMinutes = 99
	c.MainLeg.RiskScore = -2
	c.Baseline.DistanceUnits = 0

	err := c.Validate()
	require.Error(t, err)

	var verr *catalog.ValidationError
	require.True(t, errors.As(err, &verr))

	fields := make([]string, 0, len(verr.Violations))
	for _, v := range verr.Violations {
		fields = append(fields, v.Field)
	}
	assert.Contains(t, fields, "firstMile[1].id")
	assert.Contains(t, fields, "firstMile[2].cost")
	assert.Contains(t, fields, "lastMile[0].time")
	assert.Contains(t, fields, "mainLeg.riskScore")
	assert.Contains(t, fields, "directDrive.distance")
	assert.True(t, strings.HasPrefix(err.Error(), "invalid catalog: "))
}

func TestValidate_EmptyGroups(t *testing.T) {
	c := catalog.Default()
	c.FirstMile = nil
	c.LastMile = []catalog.Leg{}

	var verr *catalog.ValidationError
	require.ErrorAs(t, c.Validate(), &verr)
	assert.Len(t, verr.Violations, 2)
}

func TestValidate_SegmentRules(t *testing.T) {
	c := catalog.Default()
	c.FirstMile[0].Segments = nil
	c.LastMile[1].Segments[0].Mode = "hovercraft"
	c.LastMile[2].Segments[0].DurationMinutes = 0
	c.LastMile[2].TotalDurationMinutes = 0

	var verr *catalog.ValidationError
	require.ErrorAs(t, c.Validate(), &verr)

	fields := make([]string, 0, len(verr.Violations))
	for _, v := range verr.Violations {
		fields = append(fields, v.Field)
	}
	assert.Contains(t, fields, "firstMile[0].segments")
	assert.Contains(t, fields, "lastMile[1].segments[0].mode")
	assert.Contains(t, fields, "lastMile[2].segments[0].time")
}

func TestCatalog_Leg(t *testing.T) {
	c := catalog.Default()

	l, err := c.Leg(catalog.GroupLastMile, "bus")
	require.NoError(t, err)
	assert.InDelta(t, 3.00, l.CostAmount, 1e-9)

	l, err = c.Leg(catalog.GroupMainLeg, "train_main")
	require.NoError(t, err)
	assert.Equal(t, 102, l.TotalDurationMinutes)

	_, err = c.Leg(catalog.GroupFirstMile, "teleport")
	assert.ErrorIs(t, err, catalog.ErrLegNotFound)
}

func TestLoadFile_RoundTripsDefault(t *testing.T) {
	data, err := json.Marshal(catalog.Default())
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "catalog.json")
	require.NoError(t, os.WriteFile(path, data, 0o600))

	c, err := catalog.LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, catalog.Default(), c)
}

func TestLoadFile_EmptyPathUsesDefault(t *testing.T) {
	c, err := catalog.LoadFile("")
	require.NoError(t, err)
	assert.Equal(t, "train_main", c.MainLeg.ID)
}

func TestLoad_RejectsInvalidCatalog(t *testing.T) {
	_, err := catalog.Load(strings.NewReader(`{"firstMile":[],"lastMile":[],"mainLeg":{},"directDrive":{}}`))

	var verr *catalog.ValidationError
	assert.ErrorAs(t, err, &verr)
}

func TestLoad_RejectsMalformedJSON(t *testing.T) {
	_, err := catalog.Load(strings.NewReader(`{"firstMile":`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode catalog")
}

func TestMode_Valid(t *testing.T) {
	for _, m := range catalog.Modes() {
		assert.True(t, m.Valid(), string(m))
	}
	assert.False(t, catalog.Mode("ferry").Valid())
}
