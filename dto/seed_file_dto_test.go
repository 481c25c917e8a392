package dto

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orgcharts/orgcharts-backend/models"
)

const seedFixture = `
orgUnits:
  - id: 6d1a8e1e-8a3c-4bbf-9b5b-6a0f1b9c1a01
    name: Country
    level: 0
  - id: 6d1a8e1e-8a3c-4bbf-9b5b-6a0f1b9c1a02
    name: District
    parent: 6d1a8e1e-8a3c-4bbf-9b5b-6a0f1b9c1a01
    level: 1
dataElements:
  - id: 3f0c5b7a-1d2e-4f60-8a9b-0c1d2e3f4a01
    name: Malaria cases
    description: Confirmed cases
periods:
  - id: 9a8b7c6d-5e4f-4a3b-8c2d-1e0f9a8b7c01
    code: "202401"
    name: January 2024
    periodType: Monthly
dataSets:
  - id: 0b1c2d3e-4f5a-4b6c-8d7e-8f9a0b1c2d01
    name: Malaria
    periodType: Monthly
    dataElements:
      - 3f0c5b7a-1d2e-4f60-8a9b-0c1d2e3f4a01
dataValues:
  - orgUnit: 6d1a8e1e-8a3c-4bbf-9b5b-6a0f1b9c1a02
    dataElement: 3f0c5b7a-1d2e-4f60-8a9b-0c1d2e3f4a01
    period: 9a8b7c6d-5e4f-4a3b-8c2d-1e0f9a8b7c01
    value: 42
`

func TestParseSeedFile(t *testing.T) {
	file, err := ParseSeedFile(strings.NewReader(seedFixture))
	require.NoError(t, err)

	data := AdaptSeedData(file)
	require.Len(t, data.OrgUnits, 2)
	assert.Nil(t, data.OrgUnits[0].ParentId)
	require.NotNil(t, data.OrgUnits[1].ParentId)
	assert.Equal(t, "6d1a8e1e-8a3c-4bbf-9b5b-6a0f1b9c1a01", *data.OrgUnits[1].ParentId)
	assert.Equal(t, 1, data.OrgUnits[1].Level)

	require.Len(t, data.Periods, 1)
	assert.Equal(t, "202401", data.Periods[0].Code)
	assert.Equal(t, models.PeriodType("Monthly"), data.Periods[0].PeriodType)

	require.Len(t, data.DataSets, 1)
	require.Len(t, data.DataSets[0].DataElements, 1)
	assert.Equal(t, "3f0c5b7a-1d2e-4f60-8a9b-0c1d2e3f4a01", data.DataSets[0].DataElements[0].Id)

	require.Len(t, data.DataValues, 1)
	assert.Empty(t, data.DataValues[0].Id)
	assert.Equal(t, 42.0, data.DataValues[0].Value)
}

func TestParseSeedFile_errors(t *testing.T) {
	tts := []struct {
		name    string
		content string
	}{
		{"empty file", ""},
		{"unknown field", "orgUnits:\n  - id: x\n    colour: red\n"},
		{"wrong type", "orgUnits:\n  - id: x\n    level: high\n"},
	}

	for _, tt := range tts {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseSeedFile(strings.NewReader(tt.content))
			assert.ErrorIs(t, err, models.BadParameterError)
		})
	}
}
