package schema

// Boundary normalization for externally generated data (AI drafts,
// imports, restored backups). Incoming items may arrive without IDs or
// with nil list fields; normalization assigns fresh IDs where missing and
// replaces nil slices with empty ones so the rest of the system never has
// to nil-check. Existing IDs and all field values are preserved.

// NormalizeResume normalizes every collection of r in place.
func NormalizeResume(r *Resume) {
	if r == nil {
		return
	}
	for i := range r.Basics.Profiles {
		if r.Basics.Profiles[i].ID == "" {
			r.Basics.Profiles[i].ID = NewID()
		}
	}
	if r.Basics.Profiles == nil {
		r.Basics.Profiles = []Profile{}
	}
	for i := range r.Work {
		if r.Work[i].ID == "" {
			r.Work[i].ID = NewID()
		}
		if r.Work[i].Highlights == nil {
			r.Work[i].Highlights = []string{}
		}
	}
	for i := range r.Volunteer {
		if r.Volunteer[i].ID == "" {
			r.Volunteer[i].ID = NewID()
		}
		if r.Volunteer[i].Highlights == nil {
			r.Volunteer[i].Highlights = []string{}
		}
	}
	for i := range r.Education {
		if r.Education[i].ID == "" {
			r.Education[i].ID = NewID()
		}
		if r.Education[i].Courses == nil {
			r.Education[i].Courses = []string{}
		}
	}
	for i := range r.Awards {
		if r.Awards[i].ID == "" {
			r.Awards[i].ID = NewID()
		}
	}
	for i := range r.Certificates {
		if r.Certificates[i].ID == "" {
			r.Certificates[i].ID = NewID()
		}
	}
	for i := range r.Publications {
		if r.Publications[i].ID == "" {
			r.Publications[i].ID = NewID()
		}
	}
	for i := range r.Skills {
		if r.Skills[i].ID == "" {
			r.Skills[i].ID = NewID()
		}
		if r.Skills[i].Keywords == nil {
			r.Skills[i].Keywords = []string{}
		}
	}
	for i := range r.Languages {
		if r.Languages[i].ID == "" {
			r.Languages[i].ID = NewID()
		}
	}
	for i := range r.Interests {
		if r.Interests[i].ID == "" {
			r.Interests[i].ID = NewID()
		}
		if r.Interests[i].Keywords == nil {
			r.Interests[i].Keywords = []string{}
		}
	}
	for i := range r.References {
		if r.References[i].ID == "" {
			r.References[i].ID = NewID()
		}
	}
	for i := range r.Projects {
		if r.Projects[i].ID == "" {
			r.Projects[i].ID = NewID()
		}
		if r.Projects[i].Highlights == nil {
			r.Projects[i].Highlights = []string{}
		}
		if r.Projects[i].Keywords == nil {
			r.Projects[i].Keywords = []string{}
		}
	}
}

// NormalizeCoverLetter guarantees the body invariant (at least one
// paragraph) and a known tone.
func NormalizeCoverLetter(c *CoverLetter) {
	if c == nil {
		return
	}
	if len(c.Body) == 0 {
		c.Body = []string{""}
	}
	if c.Tone != "" && !ValidTone(c.Tone) {
		c.Tone = ToneProfessional
	}
}
