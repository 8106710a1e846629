// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import "strings"

// BloodGroup represents one of the eight canonical ABO/Rh blood groups.
type BloodGroup string

// The eight canonical ABO/Rh blood groups.
const (
	BloodGroupONeg  BloodGroup = "O-"
	BloodGroupOPos  BloodGroup = "O+"
	BloodGroupANeg  BloodGroup = "A-"
	BloodGroupAPos  BloodGroup = "A+"
	BloodGroupBNeg  BloodGroup = "B-"
	BloodGroupBPos  BloodGroup = "B+"
	BloodGroupABNeg BloodGroup = "AB-"
	BloodGroupABPos BloodGroup = "AB+"
)

// compatibility maps a donor blood group to the set of recipient groups that
// donor may legally supply to. O- is the universal donor, AB+ the universal
// recipient. The table is total over the eight canonical groups.
var compatibility = map[BloodGroup][]BloodGroup{
	BloodGroupONeg:  {BloodGroupONeg, BloodGroupOPos, BloodGroupANeg, BloodGroupAPos, BloodGroupBNeg, BloodGroupBPos, BloodGroupABNeg, BloodGroupABPos},
	BloodGroupOPos:  {BloodGroupOPos, BloodGroupAPos, BloodGroupBPos, BloodGroupABPos},
	BloodGroupANeg:  {BloodGroupANeg, BloodGroupAPos, BloodGroupABNeg, BloodGroupABPos},
	BloodGroupAPos:  {BloodGroupAPos, BloodGroupABPos},
	BloodGroupBNeg:  {BloodGroupBNeg, BloodGroupBPos, BloodGroupABNeg, BloodGroupABPos},
	BloodGroupBPos:  {BloodGroupBPos, BloodGroupABPos},
	BloodGroupABNeg: {BloodGroupABNeg, BloodGroupABPos},
	BloodGroupABPos: {BloodGroupABPos},
}

// AllBloodGroups returns the eight canonical blood groups.
func AllBloodGroups() []BloodGroup {
	return []BloodGroup{
		BloodGroupONeg, BloodGroupOPos,
		BloodGroupANeg, BloodGroupAPos,
		BloodGroupBNeg, BloodGroupBPos,
		BloodGroupABNeg, BloodGroupABPos,
	}
}

// ParseBloodGroup normalizes and validates a raw blood group string.
// An unrecognized value is a caller validation failure, not a table failure.
func ParseBloodGroup(raw string) (BloodGroup, bool) {
	group := BloodGroup(strings.ToUpper(strings.TrimSpace(raw)))
	if !group.Valid() {
		return "", false
	}

	return group, true
}

// Valid reports whether the group is one of the eight canonical values.
func (g BloodGroup) Valid() bool {
	_, ok := compatibility[g]

	return ok
}

// CanDonateTo reports whether a donor with this group may supply blood to a
// recipient with the given group.
func (g BloodGroup) CanDonateTo(recipient BloodGroup) bool {
	for _, candidate := range compatibility[g] {
		if candidate == recipient {
			return true
		}
	}

	return false
}

// Recipients returns the recipient groups this donor group may supply to.
func (g BloodGroup) Recipients() []BloodGroup {
	recipients := compatibility[g]
	out := make([]BloodGroup, len(recipients))
	copy(out, recipients)

	return out
}

// String implements fmt.Stringer.
func (g BloodGroup) String() string {
	return string(g)
}
