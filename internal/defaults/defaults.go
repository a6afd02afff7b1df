// Package defaults supplies the seed schema instances and the default
// section layout. The same values serve as initial state on first run and
// as the merge baseline when a stored value predates a schema change.
// Every call returns a fresh copy with fresh IDs so two profiles never
// share item identity.
package defaults

import (
	"time"

	"github.com/jonathan/resume-studio/internal/schema"
)

// Resume returns the seed resume shown to a brand-new profile.
func Resume() schema.Resume {
	return schema.Resume{
		Basics: schema.Basics{
			Name:    "Your Name",
			Label:   "Your Job Title",
			Email:   "your.email@example.com",
			Phone:   "123-456-7890",
			URL:     "your-portfolio.com",
			Summary: "A brief professional summary about yourself. Highlight your key skills, experience, and career goals. Use the AI assistant to generate a compelling summary!",
			Location: schema.Location{
				City:   "City",
				Region: "State",
			},
			Profiles: []schema.Profile{
				{ID: schema.NewID(), Network: "LinkedIn", Username: "yourname", URL: "linkedin.com/in/yourname"},
				{ID: schema.NewID(), Network: "GitHub", Username: "yourname", URL: "github.com/yourname"},
			},
		},
		Work: []schema.Work{
			{
				ID:        schema.NewID(),
				Name:      "Tech Solutions Inc.",
				Position:  "Senior Software Engineer",
				URL:       "https://techsolutions.com",
				Location:  "San Francisco, CA",
				StartDate: "2020-01",
				EndDate:   "Present",
				Summary:   "Developed and maintained critical features for a high-traffic web application.",
				Highlights: []string{
					"Led the development of a new microservices architecture, improving scalability and reliability.",
					"Mentored junior developers and conducted code reviews to ensure code quality.",
					"Improved application performance by 30% through code optimization and caching strategies.",
				},
			},
		},
		Volunteer: []schema.Volunteer{},
		Education: []schema.Education{
			{
				ID:          schema.NewID(),
				Institution: "State University",
				URL:         "https://stateuni.edu",
				Area:        "Computer Science",
				StudyType:   "Bachelor of Science",
				StartDate:   "2016-08",
				EndDate:     "2020-05",
				Score:       "3.8/4.0",
				Courses: []string{
					"Data Structures and Algorithms",
					"Web Development",
					"Database Systems",
				},
			},
		},
		Awards:       []schema.Award{},
		Certificates: []schema.Certificate{},
		Publications: []schema.Publication{},
		Skills: []schema.Skill{
			{ID: schema.NewID(), Name: "Go", Level: 5, Keywords: []string{"Backend", "Concurrency"}},
			{ID: schema.NewID(), Name: "TypeScript", Level: 5, Keywords: []string{"Web Development", "Frontend"}},
			{ID: schema.NewID(), Name: "PostgreSQL", Level: 4, Keywords: []string{"Databases"}},
			{ID: schema.NewID(), Name: "Docker", Level: 4, Keywords: []string{"Infrastructure"}},
		},
		Languages: []schema.Language{
			{ID: schema.NewID(), Language: "English", Fluency: "Native Speaker"},
		},
		Interests:  []schema.Interest{},
		References: []schema.Reference{},
		Projects: []schema.Project{
			{
				ID:          schema.NewID(),
				Name:        "Personal Portfolio Website",
				Description: "A responsive website to showcase my projects and skills.",
				StartDate:   "2022-06",
				EndDate:     "2022-08",
				URL:         "your-portfolio.com",
				Highlights: []string{
					"Built with a modern static stack for a fast user experience.",
					"Integrated with a headless CMS for easy content management.",
				},
				Keywords: []string{"Web", "CMS"},
			},
		},
	}
}

// SectionOrder is the default display order for resume sections.
var SectionOrder = []schema.SectionKey{
	schema.KeyWork, schema.KeyProjects, schema.KeyEducation, schema.KeySkills,
	schema.KeyVolunteer, schema.KeyAwards, schema.KeyCertificates,
	schema.KeyPublications, schema.KeyLanguages, schema.KeyInterests,
	schema.KeyReferences,
}

// Layout returns the default section layout. Work, projects, education,
// skills, and languages start enabled; the rest start hidden.
func Layout() schema.Layout {
	sections := map[schema.SectionKey]schema.Section{
		schema.KeyWork:         {ID: schema.KeyWork, Name: "Work Experience", Enabled: true},
		schema.KeyEducation:    {ID: schema.KeyEducation, Name: "Education", Enabled: true},
		schema.KeySkills:       {ID: schema.KeySkills, Name: "Skills", Enabled: true},
		schema.KeyProjects:     {ID: schema.KeyProjects, Name: "Projects", Enabled: true},
		schema.KeyVolunteer:    {ID: schema.KeyVolunteer, Name: "Volunteer", Enabled: false},
		schema.KeyAwards:       {ID: schema.KeyAwards, Name: "Awards", Enabled: false},
		schema.KeyCertificates: {ID: schema.KeyCertificates, Name: "Certificates", Enabled: false},
		schema.KeyPublications: {ID: schema.KeyPublications, Name: "Publications", Enabled: false},
		schema.KeyLanguages:    {ID: schema.KeyLanguages, Name: "Languages", Enabled: true},
		schema.KeyInterests:    {ID: schema.KeyInterests, Name: "Interests", Enabled: false},
		schema.KeyReferences:   {ID: schema.KeyReferences, Name: "References", Enabled: false},
	}
	return schema.Layout{
		Sections:     sections,
		SectionOrder: append([]schema.SectionKey(nil), SectionOrder...),
	}
}

// CoverLetter returns the seed cover letter, dated today.
func CoverLetter() schema.CoverLetter {
	return schema.CoverLetter{
		Date:           time.Now().Format("January 2, 2006"),
		RecipientName:  "Hiring Manager",
		RecipientTitle: "Hiring Manager Title",
		CompanyName:    "Company Name",
		Salutation:     "Dear Hiring Manager,",
		Body: []string{
			"I am writing to express my keen interest in the [Job Title] position at [Company Name], which I saw advertised on [Platform]. With my experience in [Your Industry/Field] and skills in [2-3 key skills], I am confident I would be a valuable asset to your team.",
			"In my previous role at [Previous Company], I was responsible for [key responsibility]. One of my proudest achievements was [specific achievement with quantifiable result]. This experience has equipped me with a strong foundation in skills that are essential for this role.",
			"I have been following [Company Name]'s work and am impressed by [something specific about the company]. I am eager to contribute my expertise to a team that is making a difference.",
			"Thank you for considering my application. I am enthusiastic about the opportunity to discuss how my background and skills can benefit [Company Name]. I look forward to hearing from you.",
		},
		Signoff: "Sincerely,",
		Tone:    schema.ToneProfessional,
	}
}
