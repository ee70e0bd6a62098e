package commands

import (
	"context"

	"toolshed/internal/infra"
	"toolshed/internal/pkg/errs"
	"toolshed/internal/usecase/shared"
)

type CreateReportInput struct {
	ToolID      int64
	Description string
	ImageURL    *string
}

type ReportCommands interface {
	Create(ctx context.Context, userID int64, in CreateReportInput) (int64, error)
	// Resolve marks a damage report handled. Only the admin owning the
	// reported tool may resolve it.
	Resolve(ctx context.Context, id, adminID int64) error
}

type reportCommandsImpl struct {
	uow shared.UnitOfWork
}

func NewReportCommands(uow shared.UnitOfWork) ReportCommands {
	return &reportCommandsImpl{uow: uow}
}

func (c *reportCommandsImpl) Create(ctx context.Context, userID int64, in CreateReportInput) (int64, error) {
	if in.ToolID == 0 || in.Description == "" {
		return 0, errs.ErrMissingFields
	}

	var reportID int64
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		reportID, err = tx.Reports().Create(ctx, tx.DB(), in.ToolID, userID, in.Description, in.ImageURL)
		if err != nil {
			if infra.IsKind(err, infra.KindForeignKeyViolated) {
				return errs.ErrToolNotFound
			}
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return reportID, nil
}

func (c *reportCommandsImpl) Resolve(ctx context.Context, id, adminID int64) error {
	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		toolID, err := tx.Reports().ToolIDOf(ctx, tx.DB(), id)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.ErrReportNotFound
			}
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		tool, err := tx.Reads().ToolByID(ctx, toolID)
		if err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		if tool.AdminID != adminID {
			return errs.ErrNotToolOwner
		}

		if err := tx.Reports().Resolve(ctx, tx.DB(), id); err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		return nil
	})
}
