package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBloodGroup_CanDonateTo_SelfAlwaysCompatible(t *testing.T) {
	for _, group := range AllBloodGroups() {
		assert.True(t, group.CanDonateTo(group), "group %s must be able to donate to itself", group)
	}
}

func TestBloodGroup_UniversalDonorAndRecipient(t *testing.T) {
	for _, group := range AllBloodGroups() {
		assert.True(t, BloodGroupONeg.CanDonateTo(group), "O- must donate to %s", group)
		assert.True(t, group.CanDonateTo(BloodGroupABPos), "%s must donate to AB+", group)
	}

	// AB+ never grants blood to anyone but itself.
	for _, group := range AllBloodGroups() {
		if group == BloodGroupABPos {
			continue
		}
		assert.False(t, BloodGroupABPos.CanDonateTo(group), "AB+ must not donate to %s", group)
	}
}

func TestBloodGroup_CanDonateTo(t *testing.T) {
	tests := []struct {
		donor     BloodGroup
		recipient BloodGroup
		want      bool
	}{
		{donor: BloodGroupOPos, recipient: BloodGroupAPos, want: true},
		{donor: BloodGroupOPos, recipient: BloodGroupONeg, want: false},
		{donor: BloodGroupAPos, recipient: BloodGroupOPos, want: false},
		{donor: BloodGroupANeg, recipient: BloodGroupABNeg, want: true},
		{donor: BloodGroupBNeg, recipient: BloodGroupBPos, want: true},
		{donor: BloodGroupBPos, recipient: BloodGroupABNeg, want: false},
		{donor: BloodGroupABNeg, recipient: BloodGroupABPos, want: true},
	}

	for _, tt := range tests {
		t.Run(string(tt.donor)+"_to_"+string(tt.recipient), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.donor.CanDonateTo(tt.recipient))
		})
	}
}

func TestParseBloodGroup(t *testing.T) {
	tests := []struct {
		raw    string
		want   BloodGroup
		wantOK bool
	}{
		{raw: "O-", want: BloodGroupONeg, wantOK: true},
		{raw: "ab+", want: BloodGroupABPos, wantOK: true},
		{raw: " b+ ", want: BloodGroupBPos, wantOK: true},
		{raw: "C+", wantOK: false},
		{raw: "", wantOK: false},
		{raw: "O", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, ok := ParseBloodGroup(tt.raw)
			require.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestBloodGroup_Recipients_ReturnsCopy(t *testing.T) {
	recipients := BloodGroupONeg.Recipients()
	require.Len(t, recipients, 8)

	recipients[0] = BloodGroup("X?")
	assert.NotContains(t, BloodGroupONeg.Recipients(), BloodGroup("X?"))
}
