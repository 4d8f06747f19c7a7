package models

// MembershipTier is the billing tier stored on a user profile.
type MembershipTier string

const (
	TierBasic      MembershipTier = "Basic"
	TierPro        MembershipTier = "Pro"
	TierEnterprise MembershipTier = "Enterprise"
)

// UserRole is the access-control role assigned to a principal.
type UserRole string

const (
	RoleAdmin UserRole = "admin"
	RoleUser  UserRole = "user"
	RoleGuest UserRole = "guest"
)

// Profile holds the authenticated user's stored settings.
type Profile struct {
	Name           string
	Email          string
	Phone          string
	MembershipTier MembershipTier
}

// Complete reports whether the profile can be treated as set up. A profile
// with a blank display name is functionally equivalent to no profile at all
// and must route the user to setup.
func (p *Profile) Complete() bool {
	return p != nil && p.Name != ""
}

func (p *Profile) ToMap() map[string]any {
	return map[string]any{
		"name":           p.Name,
		"email":          p.Email,
		"phone":          p.Phone,
		"membershipTier": string(p.MembershipTier),
	}
}

func ProfileFromMap(m map[string]any) *Profile {
	return &Profile{
		Name:           str(m, "name"),
		Email:          str(m, "email"),
		Phone:          str(m, "phone"),
		MembershipTier: MembershipTier(str(m, "membershipTier")),
	}
}
