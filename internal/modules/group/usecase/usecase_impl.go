package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/microcosm-cc/bluemonday"

	"github.com/communitycal/events-api/internal/access"
	"github.com/communitycal/events-api/internal/geocode"
	"github.com/communitycal/events-api/internal/modules/group/domain"
	"github.com/communitycal/events-api/internal/modules/group/repository/interfaces"
	"github.com/communitycal/events-api/pkg/helper"
	"github.com/communitycal/events-api/pkg/logger"
	"github.com/communitycal/events-api/pkg/shared"
	"github.com/communitycal/events-api/pkg/tracer"
	"github.com/communitycal/events-api/pkg/validator"
)

type groupUsecaseImpl struct {
	repo      interfaces.GroupRepository
	geocoder  geocode.Geocoder
	validator *validator.Validator

	strictPolicy *bluemonday.Policy
}

// NewGroupUsecase constructor
func NewGroupUsecase(repo interfaces.GroupRepository, geocoder geocode.Geocoder, v *validator.Validator) GroupUsecase {
	return &groupUsecaseImpl{
		repo:         repo,
		geocoder:     geocoder,
		validator:    v,
		strictPolicy: bluemonday.StrictPolicy(),
	}
}

// FindAll paginated group list
func (uc *groupUsecaseImpl) FindAll(ctx context.Context, filter *shared.Filter) (groups []domain.Group, meta shared.Meta, err error) {
	trace, ctx := tracer.StartTraceWithContext(ctx, "GroupUsecase:FindAll")
	defer trace.Finish()

	filter.CalculateOffset()
	groups, err = uc.repo.FindAll(ctx, filter)
	if err != nil {
		return nil, meta, err
	}

	return groups, shared.NewMeta(filter.Page, filter.Limit, uc.repo.Count(ctx)), nil
}

// FindBySlug single group
func (uc *groupUsecaseImpl) FindBySlug(ctx context.Context, slug string) (*domain.Group, error) {
	trace, ctx := tracer.StartTraceWithContext(ctx, "GroupUsecase:FindBySlug")
	defer trace.Finish()

	group, err := uc.repo.FindBySlug(ctx, slug)
	if err != nil {
		return nil, domain.ErrGroupNotFound
	}
	return group, nil
}

// Create new group, admin only, fresh api key issued for the group's editors
func (uc *groupUsecaseImpl) Create(ctx context.Context, payload *domain.Payload) (*domain.Group, error) {
	trace, ctx := tracer.StartTraceWithContext(ctx, "GroupUsecase:Create")
	defer trace.Finish()

	identity := access.GetIdentity(ctx)
	if decision := access.ManageTaxonomies(identity); decision.Kind != access.Allow {
		return nil, domain.ErrForbidden
	}

	payload.Title = uc.strictPolicy.Sanitize(payload.Title)
	payload.Description = uc.strictPolicy.Sanitize(payload.Description)
	payload.Location = uc.strictPolicy.Sanitize(payload.Location)

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
	group := &domain.Group{
		Title:           payload.Title,
		Slug:            payload.Slug,
		Description:     payload.Description,
		Location:        payload.Location,
		EnableAutoPosts: payload.EnableAutoPosts,
		APIKey:          uuid.NewString(),
		CreatedBy:       identity.ID,
		CreatedAt:       now,
		ModifiedAt:      now,
	}

	// best effort enrichment, a failed lookup never blocks the write
	if payload.Location != "" {
		if result, err := uc.geocoder.Search(ctx, payload.Location); err != nil {
			logger.LogEf("group: geocode %s: %v", payload.Location, err)
		} else {
			group.Coordinates = []float64{result.Lon, result.Lat}
			group.Address = result.Address
		}
	}

	if err := uc.repo.Save(ctx, group); err != nil {
		return nil, err
	}
	return group, nil
}

// ValidateAPIKey resolve group api key to an editor identity of that group
func (uc *groupUsecaseImpl) ValidateAPIKey(ctx context.Context, apiKey string) (*access.Identity, error) {
	trace, ctx := tracer.StartTraceWithContext(ctx, "GroupUsecase:ValidateAPIKey")
	defer trace.Finish()

	group, err := uc.repo.FindByAPIKey(ctx, apiKey)
	if err != nil {
		return nil, domain.ErrInvalidAPIKey
	}

	return &access.Identity{
		ID:     group.Slug,
		Roles:  []string{helper.RoleEditor},
		Groups: []string{group.ID.Hex()},
	}, nil
}
