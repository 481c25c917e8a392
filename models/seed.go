package models

// SeedData is the content of a seed file, already validated.
type SeedData struct {
	OrgUnits     []OrgUnit
	DataElements []DataElement
	Periods      []Period
	DataSets     []DataSet
	DataValues   []DataValue
}

type SeedReport struct {
	OrgUnits     int
	DataElements int
	Periods      int
	DataSets     int
	DataValues   int
}
