package response

import (
	"carwash-booking/internal/data/entity"
	"carwash-booking/internal/pricing"
)

type PackageResponse struct {
	ID            string             `json:"id"`
	Name          string             `json:"name"`
	NameAr        string             `json:"name_ar"`
	Tier          entity.PackageTier `json:"tier"`
	BasePrice     float64            `json:"base_price"`
	OriginalPrice float64            `json:"original_price"`
	Washes        int                `json:"washes"`
	Features      []string           `json:"features"`
}

// PricedPackageResponse is the package merged with the (size, tier) price
// table entry.
type PricedPackageResponse struct {
	PackageResponse
	Size       entity.CarSize `json:"size"`
	Savings    float64        `json:"savings"`
	PaidWashes int            `json:"paid_washes"`
	FreeWashes int            `json:"free_washes"`
}

func PackageToResponse(pkg *entity.Package) PackageResponse {
	return PackageResponse{
		ID:            pkg.ID.String(),
		Name:          pkg.Name,
		NameAr:        pkg.NameAr,
		Tier:          pkg.Tier,
		BasePrice:     pkg.BasePrice,
		OriginalPrice: pkg.OriginalPrice,
		Washes:        pkg.Washes,
		Features:      pkg.Features,
	}
}

// MergePricing overlays a price table entry onto the base package.
func MergePricing(pkg *entity.Package, size entity.CarSize, entry pricing.Entry) PricedPackageResponse {
	resp := PricedPackageResponse{
		PackageResponse: PackageToResponse(pkg),
		Size:            size,
		Savings:         entry.Savings,
		PaidWashes:      entry.PaidWashes,
		FreeWashes:      entry.FreeWashes,
	}
	resp.BasePrice = entry.Price
	resp.OriginalPrice = entry.OriginalPrice
	resp.Washes = entry.Washes
	return resp
}
