package store

// Well-known value keys. Each is namespaced per profile via StorageKey.
const (
	KeyResumeData          = "resumeData"
	KeyResumeLayout        = "resumeLayout"
	KeySelectedTemplate    = "selectedTemplate"
	KeyCoverLetterData     = "coverLetterData"
	KeyCoverLetterTemplate = "coverLetterTemplate"
	KeyIsPremium           = "isPremium"
	KeyJobs                = "jobs"
)

// BackupKeys lists the keys included in a backup file, in the order they
// are exported.
var BackupKeys = []string{
	KeyResumeData,
	KeyResumeLayout,
	KeySelectedTemplate,
	KeyCoverLetterData,
	KeyCoverLetterTemplate,
	KeyIsPremium,
}
