package commands

import (
	"context"

	"toolshed/internal/infra"
	"toolshed/internal/pkg/errs"
	"toolshed/internal/usecase/shared"
)

type CreateReviewInput struct {
	ToolID  int64
	Rating  int
	Comment *string
}

type ReviewCommands interface {
	Create(ctx context.Context, userID int64, in CreateReviewInput) (int64, error)
}

type reviewCommandsImpl struct {
	uow shared.UnitOfWork
}

func NewReviewCommands(uow shared.UnitOfWork) ReviewCommands {
	return &reviewCommandsImpl{uow: uow}
}

func (c *reviewCommandsImpl) Create(ctx context.Context, userID int64, in CreateReviewInput) (int64, error) {
	if in.ToolID == 0 {
		return 0, errs.ErrMissingFields
	}
	if in.Rating < 1 || in.Rating > 5 {
		return 0, errs.ErrInvalidRating
	}

	var reviewID int64
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		reviewID, err = tx.Reviews().Create(ctx, tx.DB(), in.ToolID, userID, in.Rating, in.Comment)
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
	return reviewID, nil
}
