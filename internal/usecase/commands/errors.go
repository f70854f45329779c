package commands

import (
	"restaurant-api/internal/infra"
	"restaurant-api/internal/pkg/errs"
)

// markNotFound tags repository not-found errors with the resource sentinel
// so handlers can map them without knowing about the infra layer.
func markNotFound(err, sentinel error) error {
	if infra.IsKind(err, infra.KindNotFound) {
		return errs.Mark(err, sentinel)
	}
	return err
}
