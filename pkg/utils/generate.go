package utils

import (
	"encoding/hex"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ==================== BARCODE ====================

// GenerateBarcode creates the redemption token printed as a QR/barcode.
// UUID-derived so it is unique without coordination.
func GenerateBarcode() string {
	id := uuid.New()
	return strings.ToUpper(hex.EncodeToString(id[:]))
}

// ==================== MERCHANT TRANSACTION ID ====================

// GenerateMerchantTransactionID creates the id sent to the payment gateway.
// Format: WASH-YYYYMMDD-HHMMSS-RANDOM
func GenerateMerchantTransactionID() string {
	now := time.Now()

	datePart := now.Format("20060102")
	timePart := now.Format("150405")
	randomPart := fmt.Sprintf("%04d", rand.Intn(10000))

	return fmt.Sprintf("WASH-%s-%s-%s", datePart, timePart, randomPart)
}
