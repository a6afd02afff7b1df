package schema

// Blank item constructors used when the editor appends a new entry to a
// collection. Each call assigns a fresh ID.

// BlankWork returns an empty work entry with a fresh ID.
func BlankWork() Work {
	return Work{ID: NewID(), Highlights: []string{}}
}

// BlankVolunteer returns an empty volunteer entry with a fresh ID.
func BlankVolunteer() Volunteer {
	return Volunteer{ID: NewID(), Highlights: []string{}}
}

// BlankEducation returns an empty education entry with a fresh ID.
func BlankEducation() Education {
	return Education{ID: NewID(), Courses: []string{}}
}

// BlankAward returns an empty award entry with a fresh ID.
func BlankAward() Award {
	return Award{ID: NewID()}
}

// BlankCertificate returns an empty certificate entry with a fresh ID.
func BlankCertificate() Certificate {
	return Certificate{ID: NewID()}
}

// BlankPublication returns an empty publication entry with a fresh ID.
func BlankPublication() Publication {
	return Publication{ID: NewID()}
}

// BlankSkill returns an empty skill entry with a fresh ID. New skills
// start at mid proficiency.
func BlankSkill() Skill {
	return Skill{ID: NewID(), Level: 3, Keywords: []string{}}
}

// BlankLanguage returns an empty language entry with a fresh ID.
func BlankLanguage() Language {
	return Language{ID: NewID()}
}

// BlankInterest returns an empty interest entry with a fresh ID.
func BlankInterest() Interest {
	return Interest{ID: NewID(), Keywords: []string{}}
}

// BlankReference returns an empty reference entry with a fresh ID.
func BlankReference() Reference {
	return Reference{ID: NewID()}
}

// BlankProject returns an empty project entry with a fresh ID.
func BlankProject() Project {
	return Project{ID: NewID(), Highlights: []string{}, Keywords: []string{}}
}

// BlankProfile returns an empty basics profile with a fresh ID.
func BlankProfile() Profile {
	return Profile{ID: NewID()}
}
