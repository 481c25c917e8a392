package models

// OrgUnit is a node of the organisation hierarchy. Roots have a nil ParentId.
type OrgUnit struct {
	Id       string
	Name     string
	ParentId *string
	Level    int
}
