package commands

import (
	"context"

	"toolshed/internal/infra"
	"toolshed/internal/pkg/errs"
	"toolshed/internal/usecase/queries"
	"toolshed/internal/usecase/shared"
)

type CreateToolInput struct {
	Name        string
	Description string
	Category    string
	ImageURL    *string
}

type ToolCommands interface {
	Create(ctx context.Context, adminID int64, in CreateToolInput) (*queries.ToolView, error)
	// Delete removes a tool from the catalog. Reservation rows referencing it
	// are removed by the store's cascade.
	Delete(ctx context.Context, id, adminID int64) error
}

type toolCommandsImpl struct {
	uow     shared.UnitOfWork
	queries queries.ToolQueries
	cache   shared.AvailabilityCache
}

func NewToolCommands(uow shared.UnitOfWork, toolQueries queries.ToolQueries, cache shared.AvailabilityCache) ToolCommands {
	return &toolCommandsImpl{uow: uow, queries: toolQueries, cache: cache}
}

func (c *toolCommandsImpl) Create(ctx context.Context, adminID int64, in CreateToolInput) (*queries.ToolView, error) {
	if in.Name == "" || in.Description == "" || in.Category == "" {
		return nil, errs.ErrMissingFields
	}

	var toolID int64
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		toolID, err = tx.Tools().Create(ctx, tx.DB(), adminID, in.Name, in.Description, in.Category, in.ImageURL)
		if err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return c.queries.GetByID(ctx, toolID)
}

func (c *toolCommandsImpl) Delete(ctx context.Context, id, adminID int64) error {
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		tool, err := tx.Reads().ToolByID(ctx, id)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.ErrToolNotFound
			}
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		if tool.AdminID != adminID {
			return errs.ErrNotToolOwner
		}

		if err := tx.Tools().Delete(ctx, tx.DB(), id); err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		return nil
	})
	if err != nil {
		return err
	}

	c.cache.Invalidate(ctx, id)
	return nil
}
