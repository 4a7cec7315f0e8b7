package feature

// VectorSize is the width of HostnameFeature.Vector.
const VectorSize = 20

type CollectInput struct {
	Hostname string
}

type CollectManyInput struct {
	Hostnames []string
}

// HostnameFeature is the classifier input for one hostname. Ranks are -1 when
// not available.
type HostnameFeature struct {
	Hostname                     string  `json:"hostname"`
	OpenPageRank                 float64 `json:"open_page_rank"`
	OpenPageRankAvailable        bool    `json:"open_page_rank_available"`
	AkaRank                      int     `json:"aka_rank"`
	AkaRankAvailable             bool    `json:"aka_rank_available"`
	TrancoRank                   int     `json:"tranco_rank"`
	TrancoRankAvailable          bool    `json:"tranco_rank_available"`
	MajesticMillionRank          int     `json:"majestic_million_rank"`
	MajesticMillionRankAvailable bool    `json:"majestic_million_rank_available"`
	CloudflareRadarAvailable     bool    `json:"cloudflare_radar_available"`
	HasSpecialWord               bool    `json:"has_special_word"`
	CommercialTLD                bool    `json:"commercial_tld"`
	EntertainmentTLD             bool    `json:"entertainment_tld"`
	GamblingTLD                  bool    `json:"gambling_tld"`
	SuspiciousTLD                bool    `json:"suspicious_tld"`
	HostnameLength               int     `json:"hostname_length"`
	DotCount                     int     `json:"dot_count"`
	DigitCount                   int     `json:"digit_count"`
	IsIPv4                       bool    `json:"is_ipv4"`
	IsTopDomain                  bool    `json:"is_top_domain"`
	IsTopPrivateDomain           bool    `json:"is_top_private_domain"`
}

// Vector encodes f in the column order the models were trained on.
func (f HostnameFeature) Vector() []float32 {
	return []float32{
		float32(f.OpenPageRank),
		flag(f.OpenPageRankAvailable),
		float32(f.AkaRank),
		flag(f.AkaRankAvailable),
		float32(f.TrancoRank),
		flag(f.TrancoRankAvailable),
		float32(f.MajesticMillionRank),
		flag(f.MajesticMillionRankAvailable),
		flag(f.CloudflareRadarAvailable),
		flag(f.HasSpecialWord),
		flag(f.CommercialTLD),
		flag(f.EntertainmentTLD),
		flag(f.GamblingTLD),
		flag(f.SuspiciousTLD),
		float32(f.HostnameLength),
		float32(f.DotCount),
		float32(f.DigitCount),
		flag(f.IsIPv4),
		flag(f.IsTopDomain),
		flag(f.IsTopPrivateDomain),
	}
}

func flag(b bool) float32 {
	if b {
		return 1
	}
	return 0
}
