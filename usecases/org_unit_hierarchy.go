package usecases

import (
	"context"

	"github.com/hashicorp/go-set/v2"

	"github.com/orgcharts/orgcharts-backend/models"
	"github.com/orgcharts/orgcharts-backend/repositories"
)

type orgUnitChildrenReader interface {
	ListOrgUnitsByParentIds(ctx context.Context, exec repositories.Executor, parentIds []string) ([]models.OrgUnit, error)
}

type descendantsResult struct {
	descendants []models.OrgUnit
	depth       int
}

// listDescendants walks the hierarchy below the anchor breadth-first, loading the children of a whole
// frontier per query. Each org unit is expanded at most once, so cycles in the parent links terminate.
// The anchor is never part of the result.
func listDescendants(
	ctx context.Context,
	exec repositories.Executor,
	reader orgUnitChildrenReader,
	anchor models.OrgUnit,
) (descendantsResult, error) {
	visited := set.From([]string{anchor.Id})
	frontier := []string{anchor.Id}
	result := descendantsResult{descendants: []models.OrgUnit{}}

	for len(frontier) > 0 {
		if err := ctx.Err(); err != nil {
			return descendantsResult{}, err
		}

		children, err := reader.ListOrgUnitsByParentIds(ctx, exec, frontier)
		if err != nil {
			return descendantsResult{}, err
		}

		next := make([]string, 0, len(children))
		for _, child := range children {
			if !visited.Insert(child.Id) {
				continue
			}
			result.descendants = append(result.descendants, child)
			next = append(next, child.Id)
		}
		if len(next) > 0 {
			result.depth++
		}
		frontier = next
	}

	return result, nil
}

func filterOrgUnitsByLevel(orgUnits []models.OrgUnit, level int) []models.OrgUnit {
	filtered := make([]models.OrgUnit, 0, len(orgUnits))
	for _, orgUnit := range orgUnits {
		if orgUnit.Level == level {
			filtered = append(filtered, orgUnit)
		}
	}
	return filtered
}
