package adaptor

import (
	"encoding/json"
	"html/template"
	"net/http"

	"carwash-booking/internal/data/entity"
	"carwash-booking/internal/dto/request"
	"carwash-booking/internal/usecase"
	"carwash-booking/pkg/utils"

	"go.uber.org/zap"
)

type PaymentHandler struct {
	service usecase.PurchaseService
	config  *utils.Config
	log     *zap.Logger
}

func NewPaymentHandler(service usecase.PurchaseService, config *utils.Config, log *zap.Logger) *PaymentHandler {
	return &PaymentHandler{
		service: service,
		config:  config,
		log:     log.With(zap.String("handler", "payment")),
	}
}

// Checkout handles POST /api/payments/checkout (protected)
func (h *PaymentHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.CheckoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	checkout, err := h.service.Checkout(r.Context(), userID, &req)
	if err != nil {
		handleServiceError(h.log, w, err, "prepare checkout")
		return
	}

	utils.ResponseCreated(w, "success", checkout)
}

// resultPage is shown to the customer coming back from the hosted payment
// form, then bounces them to the frontend.
var resultPage = template.Must(template.New("result").Parse(`<!DOCTYPE html>
<html lang="ar" dir="rtl">
<head>
<meta charset="utf-8">
<meta http-equiv="refresh" content="3;url={{.RedirectURL}}">
<title>{{.Title}}</title>
<style>body{font-family:sans-serif;text-align:center;padding-top:4rem}</style>
</head>
<body>
<h1>{{.Heading}}</h1>
<p>{{.Detail}}</p>
</body>
</html>
`))

type resultPageData struct {
	Title       string
	Heading     string
	Detail      string
	RedirectURL string
}

// PaymentResult handles GET /hyperpay/payment-result (public). The gateway
// redirects the customer here with id and resourcePath query parameters.
func (h *PaymentHandler) PaymentResult(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	checkoutID := query.Get("id")
	resourcePath := query.Get("resourcePath")
	if checkoutID == "" || resourcePath == "" {
		utils.ResponseBadRequest(w, "id and resourcePath query parameters are required", nil)
		return
	}

	payment, err := h.service.Finalize(r.Context(), checkoutID, resourcePath)
	if err != nil {
		handleServiceError(h.log, w, err, "finalize payment")
		return
	}

	data := resultPageData{
		Title:       "نتيجة الدفع",
		RedirectURL: h.config.App.FrontendURL + "/payment/result?status=" + string(payment.Status),
	}
	if payment.Status == entity.PaymentStatusCompleted {
		data.Heading = "تم الدفع بنجاح"
		data.Detail = "تم تفعيل باقتك. جاري تحويلك..."
	} else {
		data.Heading = "فشلت عملية الدفع"
		data.Detail = "لم يتم خصم أي مبلغ. جاري تحويلك..."
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := resultPage.Execute(w, data); err != nil {
		h.log.Error("Failed to render payment result page", zap.Error(err))
	}
}

// ListPayments handles GET /api/user/payments (protected)
func (h *PaymentHandler) ListPayments(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	query := r.URL.Query()
	page := utils.ParseInt(query.Get("page"), 1)
	perPage := utils.ParseInt(query.Get("per_page"), 10)

	payments, err := h.service.ListPayments(r.Context(), userID, page, perPage)
	if err != nil {
		handleServiceError(h.log, w, err, "list payments")
		return
	}

	utils.ResponseSuccess(w, "success", payments)
}
