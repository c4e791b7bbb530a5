package request

type CheckoutRequest struct {
	PackageID string `json:"package_id" validate:"required,uuid4"`
	CarID     string `json:"car_id" validate:"required,uuid4"`
	Method    string `json:"method" validate:"required,oneof=card applepay"`
}
