package feature

import (
	"fmt"

	"citron-srv/pkg/table"
)

// TablesConfig names the CSV files behind Tables. Only the first column of
// each file is read.
type TablesConfig struct {
	AkaRanks               string
	TrancoRanks            string
	MajesticMillionRanks   string
	CloudflareRadarDomains string
	SpecialWords           string
	CommercialTLDs         string
	EntertainmentTLDs      string
	GamblingTLDs           string
	SuspiciousTLDs         string
}

// Tables are the static lookups used to build features. They are read-only
// after loading.
type Tables struct {
	AkaRanks               map[string]int
	TrancoRanks            map[string]int
	MajesticMillionRanks   map[string]int
	CloudflareRadarDomains map[string]struct{}
	SpecialWords           []string
	CommercialTLDs         map[string]struct{}
	EntertainmentTLDs      map[string]struct{}
	GamblingTLDs           map[string]struct{}
	SuspiciousTLDs         map[string]struct{}
}

// LoadTables reads every table named in cfg.
func LoadTables(cfg TablesConfig) (*Tables, error) {
	t := &Tables{}
	ranks := []struct {
		path string
		dst  *map[string]int
	}{
		{cfg.AkaRanks, &t.AkaRanks},
		{cfg.TrancoRanks, &t.TrancoRanks},
		{cfg.MajesticMillionRanks, &t.MajesticMillionRanks},
	}
	for _, r := range ranks {
		values, err := table.ReadFirstColumn(r.path)
		if err != nil {
			return nil, fmt.Errorf("feature: load ranks: %w", err)
		}
		*r.dst = table.Ranks(values)
	}

	sets := []struct {
		path string
		dst  *map[string]struct{}
	}{
		{cfg.CloudflareRadarDomains, &t.CloudflareRadarDomains},
		{cfg.CommercialTLDs, &t.CommercialTLDs},
		{cfg.EntertainmentTLDs, &t.EntertainmentTLDs},
		{cfg.GamblingTLDs, &t.GamblingTLDs},
		{cfg.SuspiciousTLDs, &t.SuspiciousTLDs},
	}
	for _, s := range sets {
		values, err := table.ReadFirstColumn(s.path)
		if err != nil {
			return nil, fmt.Errorf("feature: load set: %w", err)
		}
		*s.dst = table.Set(values)
	}

	words, err := table.ReadFirstColumn(cfg.SpecialWords)
	if err != nil {
		return nil, fmt.Errorf("feature: load special words: %w", err)
	}
	for _, w := range words {
		if w != "" {
			t.SpecialWords = append(t.SpecialWords, w)
		}
	}
	return t, nil
}

// Rank looks up key in m, returning -1 when absent.
func Rank(m map[string]int, key string) (int, bool) {
	r, ok := m[key]
	if !ok {
		return -1, false
	}
	return r, true
}

// Has reports set membership.
func Has(m map[string]struct{}, key string) bool {
	_, ok := m[key]
	return ok
}
