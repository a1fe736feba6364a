package domain

import (
	"encoding/json"
	"fmt"
)

// Profile is one person's record from the KTH profile directory.
type Profile struct {
	GivenName  string       `json:"givenName"`
	FamilyName string       `json:"familyName"`
	Email      string       `json:"email"`
	URL        string       `json:"url"`
	WorksFor   []Department `json:"worksFor"`
	// Optional fields must be sent but are nil when the value is "" or null.
	JobTitle     *string `json:"jobTitle,omitempty"`
	WorkLocation *string `json:"workLocation,omitempty"`
	Telephone    *string `json:"telephone,omitempty"`
}

// Department is an organizational unit a profile works for.
type Department struct {
	Name string `json:"name"`
}

// DecodeProfile parses a profile response body.
func DecodeProfile(data []byte) (*Profile, error) {
	var p Profile
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("domain.DecodeProfile: %w", err)
	}
	return &p, nil
}

// UnmarshalJSON requires every key, including the optional ones, and
// normalizes "" and null optional values to nil.
func (p *Profile) UnmarshalJSON(data []byte) error {
	var raw struct {
		GivenName    *string         `json:"givenName"`
		FamilyName   *string         `json:"familyName"`
		Email        *string         `json:"email"`
		URL          *string         `json:"url"`
		WorksFor     *[]Department   `json:"worksFor"`
		JobTitle     json.RawMessage `json:"jobTitle"`
		WorkLocation json.RawMessage `json:"workLocation"`
		Telephone    json.RawMessage `json:"telephone"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	// An absent key leaves its RawMessage empty; null is kept as "null".
	required := []struct {
		key string
		ok  bool
	}{
		{"givenName", raw.GivenName != nil},
		{"familyName", raw.FamilyName != nil},
		{"email", raw.Email != nil},
		{"url", raw.URL != nil},
		{"worksFor", raw.WorksFor != nil},
		{"jobTitle", len(raw.JobTitle) > 0},
		{"workLocation", len(raw.WorkLocation) > 0},
		{"telephone", len(raw.Telephone) > 0},
	}
	for _, r := range required {
		if !r.ok {
			return fmt.Errorf("missing field %q", r.key)
		}
	}

	jobTitle, err := optionalString("jobTitle", raw.JobTitle)
	if err != nil {
		return err
	}
	workLocation, err := optionalString("workLocation", raw.WorkLocation)
	if err != nil {
		return err
	}
	telephone, err := optionalString("telephone", raw.Telephone)
	if err != nil {
		return err
	}

	*p = Profile{
		GivenName:    *raw.GivenName,
		FamilyName:   *raw.FamilyName,
		Email:        *raw.Email,
		URL:          *raw.URL,
		WorksFor:     *raw.WorksFor,
		JobTitle:     jobTitle,
		WorkLocation: workLocation,
		Telephone:    telephone,
	}
	return nil
}

// UnmarshalJSON requires the name key.
func (d *Department) UnmarshalJSON(data []byte) error {
	var raw struct {
		Name *string `json:"name"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw.Name == nil {
		return fmt.Errorf("missing field %q", "name")
	}
	d.Name = *raw.Name
	return nil
}

// optionalString decodes a present optional value; null and "" become nil.
func optionalString(key string, msg json.RawMessage) (*string, error) {
	var v *string
	if err := json.Unmarshal(msg, &v); err != nil {
		return nil, fmt.Errorf("field %q: %w", key, err)
	}
	if v == nil || *v == "" {
		return nil, nil
	}
	return v, nil
}
