package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"skyward/opsportal/internal/constants"
	"skyward/opsportal/internal/db/dbtest"
	"skyward/opsportal/internal/db/repositories"
	"skyward/opsportal/internal/models/dtos"
)

func floatPtr(v float64) *float64 { return &v }
func boolPtr(v bool) *bool        { return &v }

func newMultiplierService(t *testing.T) *MultiplierService {
	orm, _ := dbtest.New(t)
	return NewMultiplierService(repositories.NewMultiplierRepository(orm))
}

func TestMultiplierService_Validation(t *testing.T) {
	svc := newMultiplierService(t)

	tests := []struct {
		name string
		req  dtos.MultiplierReq
	}{
		{"missing name", dtos.MultiplierReq{MinHours: 0, Multiplier: 1}},
		{"negative min", dtos.MultiplierReq{Name: "x", MinHours: -1, Multiplier: 1}},
		{"max not above min", dtos.MultiplierReq{Name: "x", MinHours: 5, MaxHours: floatPtr(5), Multiplier: 1}},
		{"zero multiplier", dtos.MultiplierReq{Name: "x", MinHours: 0, Multiplier: 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(context.Background(), tt.req)
			se, ok := AsServiceError(err)
			require.True(t, ok)
			assert.Equal(t, constants.ErrCodeValidationFailed, se.Code)
		})
	}
}

func TestMultiplierService_ResolveBands(t *testing.T) {
	svc := newMultiplierService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, dtos.MultiplierReq{Name: "medium haul", MinHours: 3, MaxHours: floatPtr(6), Multiplier: 1.25})
	require.NoError(t, err)
	_, err = svc.Create(ctx, dtos.MultiplierReq{Name: "long haul", MinHours: 6, Multiplier: 1.5})
	require.NoError(t, err)
	_, err = svc.Create(ctx, dtos.MultiplierReq{Name: "event", MinHours: 8, Multiplier: 3, IsActive: boolPtr(false)})
	require.NoError(t, err)

	tests := []struct {
		hours float64
		want  float64
	}{
		{1.5, DefaultMultiplier},
		{3, 1.25},
		{5.99, 1.25},
		{6, 1.5},
		{14, 1.5},
	}
	for _, tt := range tests {
		got, err := svc.Resolve(ctx, tt.hours)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "hours=%v", tt.hours)
	}
}

func TestMultiplierService_UpdateAndDelete(t *testing.T) {
	svc := newMultiplierService(t)
	ctx := context.Background()

	rule, err := svc.Create(ctx, dtos.MultiplierReq{Name: "bonus", MinHours: 0, MaxHours: floatPtr(2), Multiplier: 2})
	require.NoError(t, err)
	assert.True(t, rule.IsActive)

	updated, err := svc.Update(ctx, rule.ID, dtos.MultiplierReq{Name: "bonus", MinHours: 0, Multiplier: 1.1, IsActive: boolPtr(false)})
	require.NoError(t, err)
	assert.Nil(t, updated.MaxHours)
	assert.False(t, updated.IsActive)

	got, err := svc.Resolve(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, DefaultMultiplier, got)

	rules, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, rules, 1)
	assert.Nil(t, rules[0].MaxHours)

	require.NoError(t, svc.Delete(ctx, rule.ID))
	_, err = svc.Update(ctx, rule.ID, dtos.MultiplierReq{Name: "bonus", Multiplier: 1})
	se, ok := AsServiceError(err)
	require.True(t, ok)
	assert.Equal(t, constants.ErrCodeNotFound, se.Code)
}
