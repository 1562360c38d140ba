package models

import "encoding/json"

// JobSource tells the backend where a job description came from.
const JobSourcePaste = "paste"

type ParseJobRequest struct {
	Source  string `json:"source"`
	RawText string `json:"raw_text"`
}

type ParsedJob struct {
	JobID  string          `json:"job_id"`
	Parsed json.RawMessage `json:"parsed,omitempty"`
}

func (p *ParsedJob) Validate() error {
	return need("job_id", p.JobID != "")
}

type RemoteOkJob struct {
	RemoteOkID string   `json:"remoteok_id"`
	Slug       string   `json:"slug"`
	Title      string   `json:"title"`
	Company    string   `json:"company"`
	Location   string   `json:"location"`
	Salary     string   `json:"salary"`
	Tags       []string `json:"tags"`
	URL        string   `json:"url"`
	PostedAt   string   `json:"posted_at"`
	Logo       string   `json:"logo"`
}

type RemoteOkList struct {
	Jobs  []RemoteOkJob `json:"jobs"`
	Count int           `json:"count"`
}

func (l *RemoteOkList) Validate() error {
	for _, j := range l.Jobs {
		if j.Slug == "" {
			return &FieldError{Field: "jobs[].slug"}
		}
	}
	return nil
}

type IngestRequest struct {
	Slug string `json:"slug"`
}

type CountrySummary struct {
	Code              string  `json:"code"`
	Name              string  `json:"name"`
	Flag              string  `json:"flag"`
	Region            string  `json:"region"`
	CostOfLivingIndex float64 `json:"cost_of_living_index"`
	IncomeTaxTopPct   float64 `json:"income_tax_top_pct"`
	DigitalNomadVisa  bool    `json:"digital_nomad_visa"`
}

type CountryList struct {
	Countries []CountrySummary `json:"countries"`
}

func (l *CountryList) Validate() error {
	for _, c := range l.Countries {
		if c.Code == "" {
			return &FieldError{Field: "countries[].code"}
		}
	}
	return nil
}

type SalaryBands struct {
	Junior string `json:"junior"`
	Mid    string `json:"mid"`
	Senior string `json:"senior"`
}

type CountryContext struct {
	Name                      string      `json:"name"`
	Flag                      string      `json:"flag"`
	Region                    string      `json:"region"`
	Currency                  string      `json:"currency"`
	OfficialLanguages         []string    `json:"official_languages"`
	Timezone                  string      `json:"timezone"`
	CostOfLivingIndex         float64     `json:"cost_of_living_index"`
	AvgTechSalaryUSD          SalaryBands `json:"avg_tech_salary_usd"`
	IncomeTaxTopPct           float64     `json:"income_tax_top_pct"`
	SocialSecurityEmployerPct float64     `json:"social_security_employer_pct"`
	SocialSecurityEmployeePct float64     `json:"social_security_employee_pct"`
	Healthcare                string      `json:"healthcare"`
	ContractTypesCommon       []string    `json:"contract_types_common"`
	B2BContractorNotes        string      `json:"b2b_contractor_notes"`
	DigitalNomadVisa          bool        `json:"digital_nomad_visa"`
	EUCitizenRightToWork      bool        `json:"eu_citizen_right_to_work"`
	NonEUWorkPermit           string      `json:"non_eu_work_permit"`
	RemoteWorkCulture         string      `json:"remote_work_culture"`
	KeyFacts                  []string    `json:"key_facts"`
	QualityOfLife             string      `json:"quality_of_life"`
}

func (c *CountryContext) Validate() error {
	return need("name", c.Name != "")
}
