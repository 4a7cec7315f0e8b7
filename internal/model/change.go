package model

// Change types admitted by the pipeline.
const (
	ChangeTypeEdit = "edit"
	ChangeTypeNew  = "new"
)

// CanaryDomain marks synthetic stream heartbeat events.
const CanaryDomain = "canary"

// Change is one item of the recent-change stream.
type Change struct {
	Schema     string         `json:"$schema"`
	Meta       ChangeMeta     `json:"meta"`
	ID         int64          `json:"id"`
	Type       string         `json:"type"`
	Namespace  int            `json:"namespace"`
	Title      string         `json:"title"`
	Comment    string         `json:"comment"`
	Timestamp  int64          `json:"timestamp"`
	User       string         `json:"user"`
	Bot        bool           `json:"bot"`
	Patrolled  bool           `json:"patrolled"`
	Minor      bool           `json:"minor"`
	Revision   ChangeRevision `json:"revision"`
	ServerURL  string         `json:"server_url"`
	ServerName string         `json:"server_name"`
	Wiki       string         `json:"wiki"`
}

// ChangeMeta is the event envelope.
type ChangeMeta struct {
	URI       string `json:"uri"`
	RequestID string `json:"request_id"`
	ID        string `json:"id"`
	DT        string `json:"dt"`
	Domain    string `json:"domain"`
	Stream    string `json:"stream"`
	Topic     string `json:"topic"`
	Partition int    `json:"partition"`
	Offset    int64  `json:"offset"`
}

// ChangeRevision holds the revision ids of a change. Old is nil for page
// creations.
type ChangeRevision struct {
	Old *int64 `json:"old,omitempty"`
	New int64  `json:"new"`
}
