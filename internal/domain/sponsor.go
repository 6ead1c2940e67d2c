package domain

import "context"

// Sponsor represents a sponsor, keyed by the composite
// (SponsorName, SponsorPhoneNo) natural key.
type Sponsor struct {
	SponsorName    string  `json:"SponsorName"`
	SponsorPhoneNo string  `json:"SponsorPhoneNo"`
	Email          *string `json:"SponsorEmail"`
}

// SponsorSupport attributes a sponsor's support for an event by sponsorship
// type and estimated value. It is the many-to-many link between Event and
// Sponsor.
type SponsorSupport struct {
	EventID         int      `json:"EventID"`
	SponsorName     string   `json:"SponsorName"`
	SponsorPhoneNo  string   `json:"SponsorPhoneNo"`
	SponsorshipType string   `json:"SponsorshipType"`
	EstimatedValue  *float64 `json:"EstimatedValue"`
}

// SponsorRepository defines storage operations for sponsors and their support
// records.
type SponsorRepository interface {
	ListAll(ctx context.Context) ([]*Sponsor, error)
	Create(ctx context.Context, s *Sponsor) error
	Update(ctx context.Context, sponsorName, sponsorPhoneNo string, fields []FieldAssignment) (int64, error)
	Delete(ctx context.Context, sponsorName, sponsorPhoneNo string) error
	// SupportingAllTypes returns sponsors whose support records cover every
	// sponsorship type recorded anywhere in the support table.
	SupportingAllTypes(ctx context.Context) ([]*Sponsor, error)
	ListSupport(ctx context.Context, sponsorName, sponsorPhoneNo string) ([]*SponsorSupport, error)
}

// SponsorService defines sponsor CRUD and reporting operations.
type SponsorService interface {
	ListSponsors(ctx context.Context) ([]*Sponsor, error)
	AddSponsor(ctx context.Context, s *Sponsor) error
	UpdateSponsor(ctx context.Context, sponsorName, sponsorPhoneNo string, fields map[string]any) error
	DeleteSponsor(ctx context.Context, sponsorName, sponsorPhoneNo string) error
	SponsorsSupportingAllTypes(ctx context.Context) ([]*Sponsor, error)
	ListSponsorSupport(ctx context.Context, sponsorName, sponsorPhoneNo string) ([]*SponsorSupport, error)
}
