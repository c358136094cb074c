package ingest

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"shootings/internal/frame"
)

const testHeader = "INCIDENT_KEY,OCCUR_DATE,OCCUR_TIME,BORO,PRECINCT,JURISDICTION_CODE," +
	"LOCATION_DESC,STATISTICAL_MURDER_FLAG,PERP_AGE_GROUP,PERP_SEX,PERP_RACE," +
	"VIC_AGE_GROUP,VIC_SEX,VIC_RACE,Latitude,Longitude"

func testCSV(rows ...string) string {
	return testHeader + "\n" + strings.Join(rows, "\n") + "\n"
}

func TestRead(t *testing.T) {
	in := testCSV(
		"1,01/05/2020,13:00,BROOKLYN,75,0,BAR,true,25-44,M,B,18-24,M,B,40.5,-73.9",
		"2,01/05/2020,14:30,QUEENS,105,2,,false,,,,25-44,F,W,40.7,-73.8",
	)

	res, e := Read(strings.NewReader(in), DefaultSchema())
	assert.Nil(t, e)
	assert.Equal(t, 2, res.DF.RowCount())
	assert.Equal(t, 16, res.DF.ColumnCount())
	assert.Equal(t, 0, len(res.Anomalies))

	boro, _ := res.DF.Column(ColBoro)
	assert.Equal(t, []string{"BROOKLYN", "QUEENS"}, boro.Strings())

	flag, _ := res.DF.Column(ColMurderFlag)
	assert.Equal(t, []bool{true, false}, flag.Bools())

	prec, _ := res.DF.Column(ColPrecinct)
	assert.Equal(t, []int{75, 105}, prec.Ints())

	// blanks are marked missing, not dropped
	assert.Equal(t, 1, res.Missing[ColLocationDesc])
	assert.Equal(t, 1, res.Missing[ColPerpSex])
	assert.Equal(t, 0, res.Missing[ColBoro])
}

func TestRead_HeaderMismatch(t *testing.T) {
	_, e := Read(strings.NewReader("A,B,C\n1,2,3\n"), DefaultSchema())
	assert.NotNil(t, e)

	bad := strings.Replace(testHeader, "BORO", "BOROUGH", 1)
	_, e = Read(strings.NewReader(bad+"\n"), DefaultSchema())
	assert.NotNil(t, e)
}

func TestRead_Anomalies(t *testing.T) {
	in := testCSV(
		"1,01/05/2020,13:00,BRONX,notanint,0,BAR,true,,,,,M,B,40.5,-73.9",
		"2,01/05/2020,13:00,BRONX,40,0,BAR,maybe,,,,,M,B,badfloat,-73.9",
	)

	res, e := Read(strings.NewReader(in), DefaultSchema())
	assert.Nil(t, e)
	assert.Equal(t, 2, res.DF.RowCount())
	assert.Equal(t, 3, len(res.Anomalies))

	assert.Equal(t, 1, res.Anomalies[0].Row)
	assert.Equal(t, ColPrecinct, res.Anomalies[0].Column)
	assert.Equal(t, ColMurderFlag, res.Anomalies[1].Column)
	assert.Equal(t, ColLatitude, res.Anomalies[2].Column)

	// the bad cells are coerced to zero values and marked missing
	prec, _ := res.DF.Column(ColPrecinct)
	assert.Equal(t, []int{0, 40}, prec.Ints())
	assert.Equal(t, 1, res.Missing[ColPrecinct])
	assert.Equal(t, 1, res.Missing[ColMurderFlag])
}

func TestRead_FieldCount(t *testing.T) {
	in := testCSV("1,01/05/2020,13:00,BRONX,40")

	res, e := Read(strings.NewReader(in), DefaultSchema())
	assert.Nil(t, e)
	assert.Equal(t, 1, res.DF.RowCount())
	assert.True(t, len(res.Anomalies) >= 1)
	assert.Contains(t, res.Anomalies[0].Reason, "expected 16 fields")

	// short row still yields a full-width record
	lat, _ := res.DF.Column(ColLatitude)
	assert.Equal(t, []float64{0}, lat.Floats())
	assert.Equal(t, 1, res.Missing[ColLatitude])
}

func TestParseCell_IntFromFloat(t *testing.T) {
	v, ok, bad := parseCell("25.0", frame.DTint)
	assert.True(t, ok)
	assert.Equal(t, "", bad)
	assert.Equal(t, 25, v)

	_, ok, bad = parseCell("25.5", frame.DTint)
	assert.False(t, ok)
	assert.NotEqual(t, "", bad)
}
