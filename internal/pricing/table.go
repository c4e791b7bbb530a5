package pricing

import (
	"fmt"

	"github.com/google/uuid"

	"carwash-booking/internal/data/entity"
)

// Entry holds the concrete numbers for one (size, tier) pair.
type Entry struct {
	Price         float64 `json:"price"`
	OriginalPrice float64 `json:"original_price"`
	Savings       float64 `json:"savings"`
	Washes        int     `json:"washes"`
	PaidWashes    int     `json:"paid_washes"`
	FreeWashes    int     `json:"free_washes"`
}

// Table maps car size and package tier to a price entry. Constructed once at
// startup and injected into the catalog service.
type Table struct {
	entries map[entity.CarSize]map[entity.PackageTier]Entry
	tiers   map[string]entity.PackageTier
}

// Lookup returns the entry for the given size and tier.
func (t *Table) Lookup(size entity.CarSize, tier entity.PackageTier) (Entry, error) {
	byTier, ok := t.entries[size]
	if !ok {
		return Entry{}, fmt.Errorf("unknown car size %q", size)
	}
	entry, ok := byTier[tier]
	if !ok {
		return Entry{}, fmt.Errorf("unknown package tier %q", tier)
	}
	return entry, nil
}

// TierByName resolves a package display name (Arabic catalog names included)
// to its tier key.
func (t *Table) TierByName(name string) (entity.PackageTier, bool) {
	tier, ok := t.tiers[name]
	return tier, ok
}

// DefaultTable builds the baked-in price table. Numbers mirror the catalog
// the store is seeded with; the table also acts as the fallback when the
// packages collection has no row for an id.
func DefaultTable() *Table {
	return &Table{
		entries: map[entity.CarSize]map[entity.PackageTier]Entry{
			entity.CarSizeSmall: {
				entity.TierBasic:    {Price: 150, OriginalPrice: 180, Savings: 30, Washes: 6, PaidWashes: 5, FreeWashes: 1},
				entity.TierAdvanced: {Price: 280, OriginalPrice: 340, Savings: 60, Washes: 10, PaidWashes: 8, FreeWashes: 2},
				entity.TierPremium:  {Price: 400, OriginalPrice: 500, Savings: 100, Washes: 14, PaidWashes: 11, FreeWashes: 3},
			},
			entity.CarSizeMedium: {
				entity.TierBasic:    {Price: 180, OriginalPrice: 216, Savings: 36, Washes: 6, PaidWashes: 5, FreeWashes: 1},
				entity.TierAdvanced: {Price: 320, OriginalPrice: 390, Savings: 70, Washes: 10, PaidWashes: 8, FreeWashes: 2},
				entity.TierPremium:  {Price: 450, OriginalPrice: 560, Savings: 110, Washes: 14, PaidWashes: 11, FreeWashes: 3},
			},
			entity.CarSizeLarge: {
				entity.TierBasic:    {Price: 210, OriginalPrice: 250, Savings: 40, Washes: 6, PaidWashes: 5, FreeWashes: 1},
				entity.TierAdvanced: {Price: 360, OriginalPrice: 440, Savings: 80, Washes: 10, PaidWashes: 8, FreeWashes: 2},
				entity.TierPremium:  {Price: 500, OriginalPrice: 625, Savings: 125, Washes: 14, PaidWashes: 11, FreeWashes: 3},
			},
		},
		tiers: map[string]entity.PackageTier{
			"Basic":           entity.TierBasic,
			"Advanced":        entity.TierAdvanced,
			"Premium":         entity.TierPremium,
			"الباقة الأساسية": entity.TierBasic,
			"الباقة المتقدمة": entity.TierAdvanced,
			"الباقة المميزة":  entity.TierPremium,
		},
	}
}

// Fixed ids so the embedded catalog matches the seeded store rows.
var (
	BasicPackageID    = uuid.MustParse("8d9f2a4e-1c6b-4f3a-9e2d-5a7c8b1d0e31")
	AdvancedPackageID = uuid.MustParse("3b1e7c9a-4d2f-4e8b-a6c1-9f0d3e5a7b42")
	PremiumPackageID  = uuid.MustParse("6f4a2d8c-7e1b-4a9f-b3e5-1c8d0a2f6e53")
)

// FallbackPackages is the embedded catalog used when the store is
// unreachable or has no row for a requested package.
func FallbackPackages() []*entity.Package {
	return []*entity.Package{
		{
			Base:          entity.Base{ID: BasicPackageID},
			Name:          "Basic",
			NameAr:        "الباقة الأساسية",
			Tier:          entity.TierBasic,
			BasePrice:     150,
			OriginalPrice: 180,
			Washes:        6,
			Features:      []string{"exterior wash", "tire shine"},
			IsActive:      true,
		},
		{
			Base:          entity.Base{ID: AdvancedPackageID},
			Name:          "Advanced",
			NameAr:        "الباقة المتقدمة",
			Tier:          entity.TierAdvanced,
			BasePrice:     280,
			OriginalPrice: 340,
			Washes:        10,
			Features:      []string{"exterior wash", "interior vacuum", "tire shine"},
			IsActive:      true,
		},
		{
			Base:          entity.Base{ID: PremiumPackageID},
			Name:          "Premium",
			NameAr:        "الباقة المميزة",
			Tier:          entity.TierPremium,
			BasePrice:     400,
			OriginalPrice: 500,
			Washes:        14,
			Features:      []string{"exterior wash", "interior vacuum", "wax polish", "tire shine"},
			IsActive:      true,
		},
	}
}
