package repository

import "time"

type GetPageRankOptions struct {
	Hostname string
}

type SavePageRankOptions struct {
	Hostname string
	Rank     float64
	TTL      time.Duration
}
