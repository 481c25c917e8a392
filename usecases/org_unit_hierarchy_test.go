package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/orgcharts/orgcharts-backend/mocks"
	"github.com/orgcharts/orgcharts-backend/models"
)

func TestListDescendants_walks_each_level_once(t *testing.T) {
	ctx := context.Background()
	repository := new(mocks.OrgChartsRepository)

	anchor := models.OrgUnit{Id: "a", Level: 0}
	b := models.OrgUnit{Id: "b", Level: 1}
	c := models.OrgUnit{Id: "c", Level: 1}
	d := models.OrgUnit{Id: "d", Level: 2}
	e := models.OrgUnit{Id: "e", Level: 2}

	repository.On("ListOrgUnitsByParentIds", ctx, mock.Anything, []string{"a"}).
		Return([]models.OrgUnit{b, c}, nil).Once()
	repository.On("ListOrgUnitsByParentIds", ctx, mock.Anything, []string{"b", "c"}).
		Return([]models.OrgUnit{d, e}, nil).Once()
	repository.On("ListOrgUnitsByParentIds", ctx, mock.Anything, []string{"d", "e"}).
		Return([]models.OrgUnit{}, nil).Once()

	result, err := listDescendants(ctx, nil, repository, anchor)

	require.NoError(t, err)
	assert.Equal(t, []models.OrgUnit{b, c, d, e}, result.descendants)
	assert.Equal(t, 2, result.depth)
	assert.Equal(t, []models.OrgUnit{d, e}, filterOrgUnitsByLevel(result.descendants, 2))
	repository.AssertExpectations(t)
}

func TestListDescendants_node_reachable_twice_is_kept_once(t *testing.T) {
	ctx := context.Background()
	repository := new(mocks.OrgChartsRepository)

	anchor := models.OrgUnit{Id: "a"}
	b := models.OrgUnit{Id: "b", Level: 1}

	repository.On("ListOrgUnitsByParentIds", ctx, mock.Anything, []string{"a"}).
		Return([]models.OrgUnit{b, b}, nil).Once()
	repository.On("ListOrgUnitsByParentIds", ctx, mock.Anything, []string{"b"}).
		Return([]models.OrgUnit{anchor, b}, nil).Once()

	result, err := listDescendants(ctx, nil, repository, anchor)

	require.NoError(t, err)
	assert.Equal(t, []models.OrgUnit{b}, result.descendants)
	repository.AssertExpectations(t)
}

func TestListDescendants_stops_on_canceled_context(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	repository := new(mocks.OrgChartsRepository)

	_, err := listDescendants(ctx, nil, repository, models.OrgUnit{Id: "a"})

	assert.ErrorIs(t, err, context.Canceled)
	repository.AssertNotCalled(t, "ListOrgUnitsByParentIds", mock.Anything, mock.Anything, mock.Anything)
}
