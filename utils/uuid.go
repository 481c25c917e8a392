package utils

import (
	"github.com/cockroachdb/errors"
	"github.com/google/uuid"

	"github.com/orgcharts/orgcharts-backend/models"
)

// uuidLength is the length of the canonical hyphenated form, the only one accepted.
const uuidLength = 36

func ValidateUuid(uuidParam string) error {
	if _, err := uuid.Parse(uuidParam); err != nil || len(uuidParam) != uuidLength {
		return errors.Wrapf(models.InvalidIdentifierError, "'%s' is not a valid UUID", uuidParam)
	}
	return nil
}

func ValidateUuids(uuidParams []string) error {
	for _, param := range uuidParams {
		if err := ValidateUuid(param); err != nil {
			return err
		}
	}
	return nil
}
