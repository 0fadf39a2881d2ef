package service

import (
	"context"
	"testing"

	"heyrube-be/internal/dto"
	"heyrube-be/internal/repository/memory"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateTagTrimsAndReuses(t *testing.T) {
	factory := memory.NewFactory()
	svc := NewTagService(factory)
	ctx := context.Background()

	first, err := svc.Create(ctx, &dto.CreateTagRequest{Name: "  travel  "})
	require.NoError(t, err)
	assert.Equal(t, "travel", first.Name)

	second, err := svc.Create(ctx, &dto.CreateTagRequest{Name: "travel"})
	require.NoError(t, err)
	assert.Equal(t, first.Id, second.Id)
}

func TestCreateTagRejectsBlank(t *testing.T) {
	svc := NewTagService(memory.NewFactory())

	_, err := svc.Create(context.Background(), &dto.CreateTagRequest{Name: "   "})
	assert.ErrorIs(t, err, ErrEmptyTagName)
}

func TestListNamesSorted(t *testing.T) {
	factory := memory.NewFactory()
	svc := NewTagService(factory)
	ctx := context.Background()

	for _, name := range []string{"zeta", "alpha", "mid"} {
		_, err := svc.Create(ctx, &dto.CreateTagRequest{Name: name})
		require.NoError(t, err)
	}

	names, err := svc.ListNames(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"alpha", "mid", "zeta"}, names)
}
