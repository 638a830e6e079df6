package usecase

import (
	"context"
	"time"

	"github.com/microcosm-cc/bluemonday"

	"github.com/communitycal/events-api/internal/access"
	"github.com/communitycal/events-api/internal/modules/tag/domain"
	"github.com/communitycal/events-api/internal/modules/tag/repository/interfaces"
	"github.com/communitycal/events-api/pkg/helper"
	"github.com/communitycal/events-api/pkg/tracer"
	"github.com/communitycal/events-api/pkg/validator"
)

type tagUsecaseImpl struct {
	repo      interfaces.TagRepository
	validator *validator.Validator

	strictPolicy *bluemonday.Policy
}

// NewTagUsecase constructor
func NewTagUsecase(repo interfaces.TagRepository, v *validator.Validator) TagUsecase {
	return &tagUsecaseImpl{
		repo:         repo,
		validator:    v,
		strictPolicy: bluemonday.StrictPolicy(),
	}
}

// FindAll tags
func (uc *tagUsecaseImpl) FindAll(ctx context.Context) ([]domain.Tag, error) {
	trace, ctx := tracer.StartTraceWithContext(ctx, "TagUsecase:FindAll")
	defer trace.Finish()

	return uc.repo.FindAll(ctx)
}

// Create new tag, admin only
func (uc *tagUsecaseImpl) Create(ctx context.Context, payload *domain.Payload) (*domain.Tag, error) {
	trace, ctx := tracer.StartTraceWithContext(ctx, "TagUsecase:Create")
	defer trace.Finish()

	identity := access.GetIdentity(ctx)
	if decision := access.ManageTaxonomies(identity); decision.Kind != access.Allow {
		return nil, domain.ErrForbidden
	}

	payload.Title = uc.strictPolicy.Sanitize(payload.Title)

	if err := uc.validator.ValidateStruct(payload); err != nil {
		return nil, err
	}
	if !helper.IsValidSlug(payload.Slug) {
		return nil, domain.ErrInvalidSlug
	}
	if _, err := uc.repo.FindBySlug(ctx, payload.Slug); err == nil {
		return nil, domain.ErrSlugTaken
	}

	now := time.Now()
	tag := &domain.Tag{
		Title:      payload.Title,
		Slug:       payload.Slug,
		CreatedBy:  identity.ID,
		CreatedAt:  now,
		ModifiedAt: now,
	}
	if err := uc.repo.Save(ctx, tag); err != nil {
		return nil, err
	}
	return tag, nil
}
