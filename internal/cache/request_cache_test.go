package cache

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/ecocollect/waste-service/internal/repository"
)

type stubLister struct {
	requests []*repository.PickupRequest
	err      error
}

func (s *stubLister) GetAllActive(context.Context) ([]*repository.PickupRequest, error) {
	return s.requests, s.err
}

func TestLoadInitialData(t *testing.T) {
	t.Run("warms from the repository", func(t *testing.T) {
		active := []*repository.PickupRequest{
			{ID: uuid.New(), Status: "pending"},
			{ID: uuid.New(), Status: "scheduled"},
		}
		c := NewRequestCache(&stubLister{requests: active}, zap.NewNop())

		require.NoError(t, c.LoadInitialData(context.Background()))

		for _, req := range active {
			got, found := c.Get(req.ID)
			assert.True(t, found)
			assert.Equal(t, req.ID, got.ID)
		}
	})

	t.Run("propagates repository failure", func(t *testing.T) {
		c := NewRequestCache(&stubLister{err: errors.New("db down")}, zap.NewNop())
		assert.Error(t, c.LoadInitialData(context.Background()))
	})
}

func TestSetAndGet(t *testing.T) {
	c := NewRequestCache(&stubLister{}, zap.NewNop())

	t.Run("returns a copy", func(t *testing.T) {
		req := &repository.PickupRequest{ID: uuid.New(), Status: "pending", Description: "old sofa"}
		c.Set(req)

		got, found := c.Get(req.ID)
		require.True(t, found)

		got.Description = "mutated"
		again, _ := c.Get(req.ID)
		assert.Equal(t, "old sofa", again.Description)
	})

	t.Run("miss", func(t *testing.T) {
		_, found := c.Get(uuid.New())
		assert.False(t, found)
	})

	t.Run("terminal status evicts", func(t *testing.T) {
		req := &repository.PickupRequest{ID: uuid.New(), Status: "scheduled"}
		c.Set(req)
		_, found := c.Get(req.ID)
		require.True(t, found)

		req.Status = "completed"
		c.Set(req)
		_, found = c.Get(req.ID)
		assert.False(t, found)
	})
}

func TestDelete(t *testing.T) {
	c := NewRequestCache(&stubLister{}, zap.NewNop())

	req := &repository.PickupRequest{ID: uuid.New(), Status: "pending"}
	c.Set(req)
	c.Delete(req.ID)

	_, found := c.Get(req.ID)
	assert.False(t, found)

	// deleting a missing id is a no-op
	c.Delete(uuid.New())
}
