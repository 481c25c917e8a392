package dto

import (
	"io"

	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"

	"github.com/orgcharts/orgcharts-backend/models"
	"github.com/orgcharts/orgcharts-backend/pure_utils"
)

// SeedFile is the yaml document imported by the --seed command.
type SeedFile struct {
	OrgUnits     []SeedOrgUnit     `yaml:"orgUnits"`
	DataElements []SeedDataElement `yaml:"dataElements"`
	Periods      []SeedPeriod      `yaml:"periods"`
	DataSets     []SeedDataSet     `yaml:"dataSets"`
	DataValues   []SeedDataValue   `yaml:"dataValues"`
}

type SeedOrgUnit struct {
	Id     string  `yaml:"id"`
	Name   string  `yaml:"name"`
	Parent *string `yaml:"parent"`
	Level  int     `yaml:"level"`
}

type SeedDataElement struct {
	Id          string `yaml:"id"`
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
}

type SeedPeriod struct {
	Id         string `yaml:"id"`
	Code       string `yaml:"code"`
	Name       string `yaml:"name"`
	PeriodType string `yaml:"periodType"`
}

type SeedDataSet struct {
	Id           string   `yaml:"id"`
	Name         string   `yaml:"name"`
	PeriodType   string   `yaml:"periodType"`
	DataElements []string `yaml:"dataElements"`
}

type SeedDataValue struct {
	Id          string  `yaml:"id"`
	OrgUnit     string  `yaml:"orgUnit"`
	DataElement string  `yaml:"dataElement"`
	Period      string  `yaml:"period"`
	Value       float64 `yaml:"value"`
}

func ParseSeedFile(r io.Reader) (SeedFile, error) {
	var file SeedFile
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	if err := decoder.Decode(&file); err != nil {
		if errors.Is(err, io.EOF) {
			return SeedFile{}, errors.Wrap(models.BadParameterError, "seed file is empty")
		}
		return SeedFile{}, errors.Wrap(models.BadParameterError, err.Error())
	}
	return file, nil
}

func AdaptSeedData(file SeedFile) models.SeedData {
	return models.SeedData{
		OrgUnits: pure_utils.Map(file.OrgUnits, func(o SeedOrgUnit) models.OrgUnit {
			return models.OrgUnit{Id: o.Id, Name: o.Name, ParentId: o.Parent, Level: o.Level}
		}),
		DataElements: pure_utils.Map(file.DataElements, func(d SeedDataElement) models.DataElement {
			return models.DataElement{Id: d.Id, Name: d.Name, Description: d.Description}
		}),
		Periods: pure_utils.Map(file.Periods, func(p SeedPeriod) models.Period {
			return models.Period{Id: p.Id, Code: p.Code, Name: p.Name, PeriodType: models.PeriodType(p.PeriodType)}
		}),
		DataSets: pure_utils.Map(file.DataSets, func(d SeedDataSet) models.DataSet {
			return models.DataSet{
				Id:         d.Id,
				Name:       d.Name,
				PeriodType: models.PeriodType(d.PeriodType),
				DataElements: pure_utils.Map(d.DataElements, func(id string) models.DataElement {
					return models.DataElement{Id: id}
				}),
			}
		}),
		DataValues: pure_utils.Map(file.DataValues, func(v SeedDataValue) models.DataValue {
			return models.DataValue{
				Id:            v.Id,
				OrgUnitId:     v.OrgUnit,
				DataElementId: v.DataElement,
				PeriodId:      v.Period,
				Value:         v.Value,
			}
		}),
	}
}
