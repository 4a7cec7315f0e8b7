package usecase

import (
	"sort"
	"time"

	"citron-srv/internal/model"
	"citron-srv/pkg/util"
)

// BuildReport aggregates a day of detections by hostname. Each entry carries
// the HH:mm of its earliest revision, the mean score and the contributing
// revision ids; entries are ordered by descending score, ties in first
// appearance order. The first row seen for a revision names its page and
// user. feedbacks are carried over unchanged.
func BuildReport(rows []model.ReportedHostname, feedbacks []model.ReportFeedback, version int, updatedAt string) model.Report {
	type group struct {
		minTimestamp int64
		sum          float64
		revisionIDs  []int64
	}

	order := make([]string, 0)
	groups := make(map[string]*group)
	revisions := make(map[int64]model.ReportRevision)

	for _, r := range rows {
		g, ok := groups[r.Hostname]
		if !ok {
			g = &group{minTimestamp: r.RevisionTimestamp}
			groups[r.Hostname] = g
			order = append(order, r.Hostname)
		}
		g.minTimestamp = min(g.minTimestamp, r.RevisionTimestamp)
		g.sum += r.Score
		g.revisionIDs = append(g.revisionIDs, r.RevisionID)

		if _, ok := revisions[r.RevisionID]; !ok {
			revisions[r.RevisionID] = model.ReportRevision{Page: r.Page, User: r.User}
		}
	}

	hostnames := make([]model.ReportHostname, 0, len(order))
	for _, h := range order {
		g := groups[h]
		hostnames = append(hostnames, model.ReportHostname{
			Hostname:    h,
			Time:        time.Unix(g.minTimestamp, 0).UTC().Format(util.HourMinuteFormat),
			Score:       g.sum / float64(len(g.revisionIDs)),
			RevisionIDs: g.revisionIDs,
		})
	}
	sort.SliceStable(hostnames, func(i, j int) bool {
		return hostnames[i].Score > hostnames[j].Score
	})

	if feedbacks == nil {
		feedbacks = []model.ReportFeedback{}
	}

	return model.Report{
		Version:   version,
		UpdatedAt: updatedAt,
		Hostnames: hostnames,
		Revisions: revisions,
		Feedbacks: feedbacks,
	}
}

// PromotedHostnames returns, sorted, the hostnames that received at least
// one good verdict and no bad one.
func PromotedHostnames(feedbacks []model.ReportFeedback) []string {
	type verdicts struct{ good, bad bool }
	byHostname := make(map[string]*verdicts)
	for _, f := range feedbacks {
		v, ok := byHostname[f.Hostname]
		if !ok {
			v = &verdicts{}
			byHostname[f.Hostname] = v
		}
		switch f.Status {
		case model.FeedbackGood:
			v.good = true
		case model.FeedbackBad:
			v.bad = true
		}
	}

	promoted := make([]string, 0)
	for h, v := range byHostname {
		if v.good && !v.bad {
			promoted = append(promoted, h)
		}
	}
	sort.Strings(promoted)
	return promoted
}
