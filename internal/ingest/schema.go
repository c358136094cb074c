// Package ingest loads the raw shooting-incident CSV into a typed frame.
package ingest

import "shootings/internal/frame"

// Column names of the raw dataset.
const (
	ColIncidentKey  = "INCIDENT_KEY"
	ColOccurDate    = "OCCUR_DATE"
	ColOccurTime    = "OCCUR_TIME"
	ColBoro         = "BORO"
	ColPrecinct     = "PRECINCT"
	ColJurisdiction = "JURISDICTION_CODE"
	ColLocationDesc = "LOCATION_DESC"
	ColMurderFlag   = "STATISTICAL_MURDER_FLAG"
	ColPerpAgeGroup = "PERP_AGE_GROUP"
	ColPerpSex      = "PERP_SEX"
	ColPerpRace     = "PERP_RACE"
	ColVicAgeGroup  = "VIC_AGE_GROUP"
	ColVicSex       = "VIC_SEX"
	ColVicRace      = "VIC_RACE"
	ColLatitude     = "Latitude"
	ColLongitude    = "Longitude"
)

// Derived column appended by the cleaner.
const ColYear = "YEAR"

// Field is one column of the input schema.
type Field struct {
	Name string
	Type frame.DataTypes
}

// Schema is the ordered column layout of the input file.
type Schema []Field

// DefaultSchema matches the published 16-column incident extract.
func DefaultSchema() Schema {
	return Schema{
		{ColIncidentKey, frame.DTstring},
		{ColOccurDate, frame.DTstring},
		{ColOccurTime, frame.DTstring},
		{ColBoro, frame.DTstring},
		{ColPrecinct, frame.DTint},
		{ColJurisdiction, frame.DTint},
		{ColLocationDesc, frame.DTstring},
		{ColMurderFlag, frame.DTbool},
		{ColPerpAgeGroup, frame.DTstring},
		{ColPerpSex, frame.DTstring},
		{ColPerpRace, frame.DTstring},
		{ColVicAgeGroup, frame.DTstring},
		{ColVicSex, frame.DTstring},
		{ColVicRace, frame.DTstring},
		{ColLatitude, frame.DTfloat},
		{ColLongitude, frame.DTfloat},
	}
}

// Names returns the column names in schema order.
func (s Schema) Names() []string {
	names := make([]string, len(s))
	for ind := 0; ind < len(s); ind++ {
		names[ind] = s[ind].Name
	}

	return names
}
