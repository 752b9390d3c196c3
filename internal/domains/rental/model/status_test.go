package model_test

import (
	"testing"

	"drivio/internal/domains/rental/model"

	"github.com/stretchr/testify/assert"
)

func TestStatus_Valid(t *testing.T) {
	for _, s := range model.Statuses {
		assert.True(t, s.Valid(), "expected %q to be valid", s)
	}

	assert.False(t, model.Status("").Valid())
	assert.False(t, model.Status("pending").Valid())
	assert.False(t, model.Status("PENDING_APPROVAL").Valid())
	assert.False(t, model.Status("deleted").Valid())
}

func TestStatus_Terminal(t *testing.T) {
	tests := []struct {
		status   model.Status
		terminal bool
	}{
		{model.StatusPendingApproval, false},
		{model.StatusApproved, false},
		{model.StatusActive, false},
		{model.StatusRejected, true},
		{model.StatusCompleted, true},
		{model.StatusCancelled, true},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.terminal, tt.status.Terminal(), "status %q", tt.status)
	}
}

func TestStatus_CanModify(t *testing.T) {
	tests := []struct {
		status    model.Status
		canModify bool
	}{
		{model.StatusPendingApproval, true},
		{model.StatusApproved, true},
		{model.StatusActive, false},
		{model.StatusRejected, false},
		{model.StatusCompleted, false},
		{model.StatusCancelled, false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.canModify, tt.status.CanModify(), "status %q", tt.status)
	}

	// Unknown values fail closed.
	assert.False(t, model.Status("garbage").CanModify())
}

func TestStatus_CanCancel(t *testing.T) {
	tests := []struct {
		status    model.Status
		canCancel bool
	}{
		{model.StatusPendingApproval, true},
		{model.StatusApproved, true},
		{model.StatusActive, true},
		{model.StatusRejected, true},
		{model.StatusCompleted, false},
		{model.StatusCancelled, false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.canCancel, tt.status.CanCancel(), "status %q", tt.status)
	}

	assert.False(t, model.Status("").CanCancel())
	assert.False(t, model.Status("unknown").CanCancel())
}

func TestStatus_CanReview(t *testing.T) {
	assert.True(t, model.StatusCompleted.CanReview(false))
	assert.False(t, model.StatusCompleted.CanReview(true), "a rental is reviewed at most once")

	for _, s := range model.Statuses {
		if s == model.StatusCompleted {
			continue
		}

		assert.False(t, s.CanReview(false), "status %q", s)
	}
}

func TestPaymentStatus_Valid(t *testing.T) {
	for _, p := range model.PaymentStatuses {
		assert.True(t, p.Valid(), "expected %q to be valid", p)
	}

	assert.False(t, model.PaymentStatus("").Valid())
	assert.False(t, model.PaymentStatus("unpaid").Valid())
}

func TestStatus_Descriptor(t *testing.T) {
	for _, s := range model.Statuses {
		desc := s.Descriptor()
		assert.NotEqual(t, model.UnknownDescriptor, desc, "status %q", s)
		assert.NotEmpty(t, desc.Label)
		assert.NotEmpty(t, desc.IconKind)
		assert.NotEmpty(t, desc.ColorClass)
	}

	assert.Equal(t, model.UnknownDescriptor, model.Status("bogus").Descriptor())
	assert.Equal(t, model.UnknownDescriptor, model.PaymentStatus("bogus").Descriptor())
}
