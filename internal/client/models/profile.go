package models

// ProfileVersion is the schema version sent with every upsert.
const ProfileVersion = 1

type Identity struct {
	FullName    string `json:"full_name"`
	Email       string `json:"email,omitempty"`
	Phone       string `json:"phone,omitempty"`
	Location    string `json:"location,omitempty"`
	LinkedInURL string `json:"linkedin_url,omitempty"`
}

type Skills struct {
	Hard []string `json:"hard"`
	Soft []string `json:"soft,omitempty"`
}

type Experience struct {
	Company string   `json:"company"`
	Role    string   `json:"role"`
	Start   string   `json:"start"`
	End     string   `json:"end,omitempty"`
	Bullets []string `json:"bullets"`
}

// Profile is the career profile. It is always replaced as a whole.
type Profile struct {
	ProfileVersion int          `json:"profile_version"`
	Identity       Identity     `json:"identity"`
	Headline       string       `json:"headline"`
	Skills         Skills       `json:"skills"`
	Experience     []Experience `json:"experience"`
}

// NewProfile returns an empty profile at the current schema version.
func NewProfile() *Profile {
	return &Profile{
		ProfileVersion: ProfileVersion,
		Skills:         Skills{Hard: []string{}},
		Experience:     []Experience{},
	}
}

// ProfileEnvelope is the GET /v1/profile response. Data is nil for accounts
// that never saved a profile.
type ProfileEnvelope struct {
	Data *Profile `json:"data"`
}

func (p *ProfileEnvelope) Validate() error { return nil }

type UpsertProfileRequest struct {
	Profile *Profile `json:"profile"`
}

// Ack is used for endpoints whose body carries nothing the client reads.
type Ack struct {
	OK      bool   `json:"ok"`
	Message string `json:"message,omitempty"`
}

func (a *Ack) Validate() error { return nil }

// ParsedCV is the text extracted from an uploaded PDF.
type ParsedCV struct {
	Text      string `json:"text"`
	Pages     int    `json:"pages"`
	WordCount int    `json:"word_count"`
}

func (p *ParsedCV) Validate() error {
	return need("text", p.Text != "")
}
