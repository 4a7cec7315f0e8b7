package model

// Wiki is the per-wiki configuration shared by the pipeline and the jobs.
type Wiki struct {
	ID                  string
	ServerName          string
	IgnoredUserGroups   []string
	ModelID             string
	AnnouncementPage    string
	AnnouncementSection string
}
