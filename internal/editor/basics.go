package editor

import "github.com/jonathan/resume-studio/internal/schema"

// SetBasicsField updates one field of the basics record. City and region
// address the nested location record directly, matching how the form
// flattens them.
func SetBasicsField(r *schema.Resume, field, value string) error {
	switch field {
	case "name":
		r.Basics.Name = value
	case "label":
		r.Basics.Label = value
	case "email":
		r.Basics.Email = value
	case "phone":
		r.Basics.Phone = value
	case "url":
		r.Basics.URL = value
	case "summary":
		r.Basics.Summary = value
	case "city":
		r.Basics.Location.City = value
	case "region":
		r.Basics.Location.Region = value
	default:
		return &UnknownFieldError{Collection: schema.KeyBasics, Field: field}
	}
	return nil
}

// AddProfile appends a blank profile under basics and returns its id.
func AddProfile(r *schema.Resume) string {
	p := schema.BlankProfile()
	r.Basics.Profiles = append(r.Basics.Profiles, p)
	return p.ID
}

// UpdateProfile sets one field of the profile with the given id.
func UpdateProfile(r *schema.Resume, id, field, value string) error {
	return apply(r.Basics.Profiles, id, profileID, func(p *schema.Profile) error {
		switch field {
		case "network":
			p.Network = value
		case "username":
			p.Username = value
		case "url":
			p.URL = value
		default:
			return &UnknownFieldError{Collection: schema.KeyBasics, Field: field}
		}
		return nil
	})
}

// RemoveProfile filters the profile with the given id. Missing ids are a
// no-op.
func RemoveProfile(r *schema.Resume, id string) {
	r.Basics.Profiles = removeByID(r.Basics.Profiles, id, profileID)
}

var profileID = func(p schema.Profile) string { return p.ID }
