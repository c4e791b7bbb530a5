package gateway

// successCodes is the fixed allow-list of gateway result codes that count as
// a successful payment. Opaque classification table from the gateway docs;
// do not reorder or "simplify".
var successCodes = map[string]struct{}{
	"000.000.000": {},
	"000.000.100": {},
	"000.100.105": {},
	"000.100.106": {},
	"000.100.110": {},
	"000.100.111": {},
	"000.100.112": {},
	"000.200.000": {},
	"000.200.100": {},
	"000.300.000": {},
	"000.300.100": {},
	"000.300.101": {},
	"000.300.102": {},
	"000.310.100": {},
	"000.310.101": {},
	"000.310.110": {},
	"000.400.000": {},
	"000.400.010": {},
	"000.400.020": {},
	"000.400.040": {},
	"000.400.050": {},
	"000.400.060": {},
	"000.400.070": {},
	"000.400.080": {},
	"000.400.090": {},
	"000.400.100": {},
	"000.600.000": {},
}

// IsSuccessCode classifies a gateway result code against the allow-list.
func IsSuccessCode(code string) bool {
	_, ok := successCodes[code]
	return ok
}
