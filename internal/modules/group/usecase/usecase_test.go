package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/communitycal/events-api/internal/access"
	"github.com/communitycal/events-api/internal/geocode"
	"github.com/communitycal/events-api/internal/modules/group/domain"
	"github.com/communitycal/events-api/pkg/helper"
	"github.com/communitycal/events-api/pkg/shared"
	"github.com/communitycal/events-api/pkg/validator"
)

type fakeGroupRepo struct {
	groups []domain.Group
	saved  *domain.Group
}

func (f *fakeGroupRepo) FindAll(ctx context.Context, filter *shared.Filter) ([]domain.Group, error) {
	return f.groups, nil
}

func (f *fakeGroupRepo) Count(ctx context.Context) int {
	return len(f.groups)
}

func (f *fakeGroupRepo) FindBySlug(ctx context.Context, slug string) (*domain.Group, error) {
	for i := range f.groups {
		if f.groups[i].Slug == slug {
			return &f.groups[i], nil
		}
	}
	return nil, domain.ErrGroupNotFound
}

func (f *fakeGroupRepo) FindByAPIKey(ctx context.Context, apiKey string) (*domain.Group, error) {
	for i := range f.groups {
		if f.groups[i].APIKey == apiKey {
			return &f.groups[i], nil
		}
	}
	return nil, domain.ErrInvalidAPIKey
}

func (f *fakeGroupRepo) Save(ctx context.Context, group *domain.Group) error {
	f.saved = group
	return nil
}

type fakeGeocoder struct {
	result *geocode.Result
	err    error
}

func (f *fakeGeocoder) Search(ctx context.Context, query string) (*geocode.Result, error) {
	return f.result, f.err
}

func adminContext() context.Context {
	return access.SetToContext(context.Background(), &access.Identity{ID: "root", Roles: []string{helper.RoleAdmin}})
}

func TestGroupCreate(t *testing.T) {
	payload := func() *domain.Payload {
		return &domain.Payload{Title: "Tech Community", Slug: "tech-community", Location: "Frankfurt"}
	}

	t.Run("Testcase #1: anonymous denied", func(t *testing.T) {
		uc := NewGroupUsecase(&fakeGroupRepo{}, &fakeGeocoder{}, validator.NewValidator())

		_, err := uc.Create(context.Background(), payload())
		assert.Equal(t, domain.ErrForbidden, err)
	})

	t.Run("Testcase #2: editor denied", func(t *testing.T) {
		ctx := access.SetToContext(context.Background(), &access.Identity{ID: "tech", Roles: []string{helper.RoleEditor}})
		uc := NewGroupUsecase(&fakeGroupRepo{}, &fakeGeocoder{}, validator.NewValidator())

		_, err := uc.Create(ctx, payload())
		assert.Equal(t, domain.ErrForbidden, err)
	})

	t.Run("Testcase #3: admin create issues api key and enriches", func(t *testing.T) {
		repo := &fakeGroupRepo{}
		geocoder := &fakeGeocoder{result: &geocode.Result{Lat: 50.1, Lon: 8.6, Class: "place", Address: map[string]interface{}{"city": "Frankfurt"}}}
		uc := NewGroupUsecase(repo, geocoder, validator.NewValidator())

		group, err := uc.Create(adminContext(), payload())
		require.NoError(t, err)
		assert.NotEmpty(t, group.APIKey)
		assert.Equal(t, []float64{8.6, 50.1}, group.Coordinates)
		assert.Equal(t, "root", group.CreatedBy)
		assert.Equal(t, repo.saved, group)
	})

	t.Run("Testcase #4: invalid slug rejected", func(t *testing.T) {
		uc := NewGroupUsecase(&fakeGroupRepo{}, &fakeGeocoder{}, validator.NewValidator())

		invalid := payload()
		invalid.Slug = "Tech Community!"
		_, err := uc.Create(adminContext(), invalid)
		assert.Equal(t, domain.ErrInvalidSlug, err)
	})

	t.Run("Testcase #5: duplicate slug rejected", func(t *testing.T) {
		repo := &fakeGroupRepo{groups: []domain.Group{{Slug: "tech-community"}}}
		uc := NewGroupUsecase(repo, &fakeGeocoder{}, validator.NewValidator())

		_, err := uc.Create(adminContext(), payload())
		assert.Equal(t, domain.ErrSlugTaken, err)
	})

	t.Run("Testcase #6: failed geocode never blocks the write", func(t *testing.T) {
		repo := &fakeGroupRepo{}
		uc := NewGroupUsecase(repo, &fakeGeocoder{err: geocode.ErrNoResult}, validator.NewValidator())

		group, err := uc.Create(adminContext(), payload())
		require.NoError(t, err)
		assert.Empty(t, group.Coordinates)
		assert.NotNil(t, repo.saved)
	})
}

func TestValidateAPIKey(t *testing.T) {
	groupID := primitive.NewObjectID()
	repo := &fakeGroupRepo{groups: []domain.Group{{ID: groupID, Slug: "tech-community", APIKey: "secret"}}}
	uc := NewGroupUsecase(repo, &fakeGeocoder{}, validator.NewValidator())

	t.Run("Testcase #1: valid key yields editor of the group", func(t *testing.T) {
		identity, err := uc.ValidateAPIKey(context.Background(), "secret")
		require.NoError(t, err)
		assert.Equal(t, "tech-community", identity.ID)
		assert.True(t, identity.IsEditor())
		assert.True(t, identity.MemberOf(groupID.Hex()))
	})

	t.Run("Testcase #2: unknown key rejected", func(t *testing.T) {
		_, err := uc.ValidateAPIKey(context.Background(), "wrong")
		assert.Equal(t, domain.ErrInvalidAPIKey, err)
	})
}

func TestGroupFindAll(t *testing.T) {
	repo := &fakeGroupRepo{groups: []domain.Group{{Slug: "a"}, {Slug: "b"}}}
	uc := NewGroupUsecase(repo, &fakeGeocoder{}, validator.NewValidator())

	groups, meta, err := uc.FindAll(context.Background(), &shared.Filter{})
	require.NoError(t, err)
	assert.Len(t, groups, 2)
	assert.Equal(t, 2, meta.TotalRecords)
	assert.Equal(t, 1, meta.Page)
}
