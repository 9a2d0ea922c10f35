package tmf

type RecordStatus string

const (
	RecordStatusActive   RecordStatus = "active"
	RecordStatusInactive RecordStatus = "inactive"
)

func (s RecordStatus) Valid() bool {
	return s == RecordStatusActive || s == RecordStatusInactive
}

type FareBasis string

const (
	FareBasisDistance    FareBasis = "distance_based"
	FareBasisStationPair FareBasis = "station_pair_based"
)

type TaxMode string

const (
	TaxModeIncluded TaxMode = "included"
	TaxModeExcluded TaxMode = "excluded"
)

type PassDuration string

//goland:noinspection GoUnusedConst
const (
	PassDurationDaily      PassDuration = "daily"
	PassDurationMonthly    PassDuration = "monthly"
	PassDurationQuarterly  PassDuration = "quarterly"
	PassDurationSemiAnnual PassDuration = "semi_annual"
	PassDurationAnnual     PassDuration = "annual"
)

var PassDurations = []PassDuration{
	PassDurationDaily,
	PassDurationMonthly,
	PassDurationQuarterly,
	PassDurationSemiAnnual,
	PassDurationAnnual,
}

func (d PassDuration) Valid() bool {
	for _, duration := range PassDurations {
		if d == duration {
			return true
		}
	}

	return false
}
