package entity

// PackageTier keys the static price table together with car size.
type PackageTier string

const (
	TierBasic    PackageTier = "basic"
	TierAdvanced PackageTier = "advanced"
	TierPremium  PackageTier = "premium"
)

type Package struct {
	Base
	Name          string      `db:"name"`
	NameAr        string      `db:"name_ar"`
	Tier          PackageTier `db:"tier"`
	BasePrice     float64     `db:"base_price"`
	OriginalPrice float64     `db:"original_price"`
	Washes        int         `db:"washes"`
	Features      []string    `db:"features"`
	IsActive      bool        `db:"is_active"`
}
