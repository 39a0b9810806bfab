package models

// PrivacyLevel defines the visibility scope of a drill or training plan
type PrivacyLevel string

const (
	PrivacyPrivate PrivacyLevel = "private"
	PrivacyTeam    PrivacyLevel = "team"
	PrivacyPublic  PrivacyLevel = "public"
)

// IsValid checks if the PrivacyLevel is valid
func (p PrivacyLevel) IsValid() bool {
	switch p {
	case PrivacyPrivate, PrivacyTeam, PrivacyPublic:
		return true
	}
	return false
}

// SkillLevel defines the intended audience of a drill
type SkillLevel string

const (
	SkillBeginner     SkillLevel = "beginner"
	SkillIntermediate SkillLevel = "intermediate"
	SkillAdvanced     SkillLevel = "advanced"
	SkillAllLevels    SkillLevel = "all"
)

// IsValid checks if the SkillLevel is valid
func (s SkillLevel) IsValid() bool {
	switch s {
	case SkillBeginner, SkillIntermediate, SkillAdvanced, SkillAllLevels:
		return true
	}
	return false
}
