package postgre

import (
	"citron-srv/internal/model"
)

// buildReportedHostnameArgs - Insert arguments in reportedHostnameColumns order
func buildReportedHostnameArgs(rh model.ReportedHostname) []any {
	return []any{
		rh.ID,
		rh.CreatedAt.UTC(),
		rh.WikiID,
		rh.User,
		rh.Page,
		rh.RevisionID,
		rh.RevisionTimestamp,
		rh.Hostname,
		rh.Score,
		rh.ModelNumber,
	}
}

func scanReportedHostname(s scanner) (model.ReportedHostname, error) {
	var rh model.ReportedHostname
	err := s.Scan(
		&rh.ID,
		&rh.CreatedAt,
		&rh.WikiID,
		&rh.User,
		&rh.Page,
		&rh.RevisionID,
		&rh.RevisionTimestamp,
		&rh.Hostname,
		&rh.Score,
		&rh.ModelNumber,
	)
	rh.CreatedAt = rh.CreatedAt.UTC()
	return rh, err
}
