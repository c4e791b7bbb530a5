package request

type ScanBarcodeRequest struct {
	Barcode  string `json:"barcode" validate:"required,min=8,max=64"`
	BranchID string `json:"branch_id" validate:"required,uuid4"`
}
