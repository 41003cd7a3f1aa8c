package report

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/talentohr/hris-backend-go/internal/pkg/validator"
)

func TestParamsValidate(t *testing.T) {
	cases := []struct {
		name    string
		params  Params
		g       Granularity
		wantErr bool
	}{
		{"monthly ok", Params{Year: 2025, Month: 6}, GranularityMonthly, false},
		{"monthly missing month", Params{Year: 2025}, GranularityMonthly, true},
		{"monthly month 13", Params{Year: 2025, Month: 13}, GranularityMonthly, true},
		{"quarterly ok", Params{Year: 2025, Quarter: 2}, GranularityQuarterly, false},
		{"quarterly quarter 5", Params{Year: 2025, Quarter: 5}, GranularityQuarterly, true},
		{"annual ok", Params{Year: 2025}, GranularityAnnual, false},
		{"annual year too old", Params{Year: 1999}, GranularityAnnual, true},
		{"range ok", Params{
			Year:      2025,
			StartDate: time.Date(2025, 1, 1, 0, 0, 0, 0, time.Local),
			EndDate:   time.Date(2025, 6, 30, 0, 0, 0, 0, time.Local),
		}, GranularityDateRange, false},
		{"range missing dates", Params{Year: 2025}, GranularityDateRange, true},
		{"department ids ok", Params{
			Year:          2025,
			Month:         6,
			DepartmentIDs: []string{"0190b2e4-9d6c-7cde-8b4f-3f6a2b1c9d0e"},
		}, GranularityMonthly, false},
		{"department ids malformed", Params{
			Year:          2025,
			Month:         6,
			DepartmentIDs: []string{"finance"},
		}, GranularityMonthly, true},
		{"range inverted", Params{
			Year:      2025,
			StartDate: time.Date(2025, 6, 30, 0, 0, 0, 0, time.Local),
			EndDate:   time.Date(2025, 1, 1, 0, 0, 0, 0, time.Local),
		}, GranularityDateRange, true},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			err := c.params.Validate(c.g)
			if !c.wantErr {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			var verrs validator.ValidationErrors
			assert.True(t, errors.As(err, &verrs))
		})
	}
}

func TestParamsWindow(t *testing.T) {
	start, end := Params{Year: 2025, Month: 2}.Window(GranularityMonthly)
	assert.Equal(t, time.Date(2025, 2, 1, 0, 0, 0, 0, time.Local), start)
	assert.Equal(t, time.Date(2025, 2, 28, 0, 0, 0, 0, time.Local), end)

	start, end = Params{Year: 2024, Month: 2}.Window(GranularityMonthly)
	assert.Equal(t, time.Date(2024, 2, 29, 0, 0, 0, 0, time.Local), end)
	assert.Equal(t, time.Date(2024, 2, 1, 0, 0, 0, 0, time.Local), start)

	start, end = Params{Year: 2025, Quarter: 3}.Window(GranularityQuarterly)
	assert.Equal(t, time.Date(2025, 7, 1, 0, 0, 0, 0, time.Local), start)
	assert.Equal(t, time.Date(2025, 9, 30, 0, 0, 0, 0, time.Local), end)

	start, end = Params{Year: 2025}.Window(GranularityAnnual)
	assert.Equal(t, time.Date(2025, 1, 1, 0, 0, 0, 0, time.Local), start)
	assert.Equal(t, time.Date(2025, 12, 31, 0, 0, 0, 0, time.Local), end)
}

func TestParamsPeriodSlug(t *testing.T) {
	assert.Equal(t, "2025-03", Params{Year: 2025, Month: 3}.PeriodSlug(GranularityMonthly))
	assert.Equal(t, "2025-Q2", Params{Year: 2025, Quarter: 2}.PeriodSlug(GranularityQuarterly))
	assert.Equal(t, "2025", Params{Year: 2025}.PeriodSlug(GranularityAnnual))
	assert.Equal(t, "2025-01-01_to_2025-06-30", Params{
		StartDate: time.Date(2025, 1, 1, 0, 0, 0, 0, time.Local),
		EndDate:   time.Date(2025, 6, 30, 0, 0, 0, 0, time.Local),
	}.PeriodSlug(GranularityDateRange))
}

func TestParseFormat(t *testing.T) {
	f, ok := ParseFormat("excel")
	assert.True(t, ok)
	assert.Equal(t, FormatExcel, f)

	_, ok = ParseFormat("docx")
	assert.False(t, ok)
	_, ok = ParseFormat("")
	assert.False(t, ok)
}

func TestFormatExtensionAndContentType(t *testing.T) {
	assert.Equal(t, "xlsx", FormatExcel.Extension())
	assert.Equal(t, "txt", FormatFixedWidth.Extension())
	assert.Equal(t, "dat", FormatDAT.Extension())
	assert.Equal(t, "text/plain", FormatFixedWidth.ContentType())
	assert.Equal(t, "application/pdf", FormatPDF.ContentType())
}

func TestUnsupportedExportErrorMatches(t *testing.T) {
	err := &UnsupportedExportError{Code: "1601c", Format: FormatDAT}
	assert.ErrorIs(t, err, ErrUnsupportedExport)
	assert.Contains(t, err.Error(), "1601c")
	assert.Contains(t, err.Error(), "dat")
}
