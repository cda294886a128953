package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestModerationStatusResolve(t *testing.T) {
	tests := []struct {
		name    string
		start   ModerationStatus
		next    ModerationStatus
		wantErr error
		want    ModerationStatus
	}{
		{"Pending to approved", StatusPending, StatusApproved, nil, StatusApproved},
		{"Pending to rejected", StatusPending, StatusRejected, nil, StatusRejected},
		{"Pending to published", StatusPending, StatusPublished, nil, StatusPublished},
		{"Approved is final", StatusApproved, StatusRejected, ErrAlreadyProcessed, StatusApproved},
		{"Rejected is final", StatusRejected, StatusApproved, ErrAlreadyProcessed, StatusRejected},
		{"Published is final", StatusPublished, StatusRejected, ErrAlreadyProcessed, StatusPublished},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := tt.start
			err := s.Resolve(tt.next)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.want, s)
		})
	}
}

func TestModerationStatusResolveInvalidTarget(t *testing.T) {
	s := StatusPending
	err := s.Resolve(StatusPending)
	assert.Error(t, err)
	assert.Equal(t, StatusPending, s)

	err = s.Resolve(ModerationStatus("bogus"))
	assert.Error(t, err)
	assert.Equal(t, StatusPending, s)
}

func TestNewReferralCode(t *testing.T) {
	code := NewReferralCode()
	assert.Len(t, code, 8)
	assert.Equal(t, "EM", code[:2])

	// Codes are effectively unique
	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		c := NewReferralCode()
		assert.False(t, seen[c])
		seen[c] = true
	}
}
