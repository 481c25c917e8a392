package models

type DataElement struct {
	Id          string
	Name        string
	Description string
}
