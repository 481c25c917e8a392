package models

// DataSet groups the data elements collected together, with the period type they are reported on.
type DataSet struct {
	Id           string
	Name         string
	PeriodType   PeriodType
	DataElements []DataElement
}
