package dto

import "nfckart.link/models"

// UpdateOrderStatusRequest PATCH /api/orders/:orderId gövdesi.
// Durum sadece bilinen altı değerden biri olabilir; geçiş sırası kontrol edilmez.
type UpdateOrderStatusRequest struct {
	Status         string  `json:"status" validate:"required,oneof=PENDING CONFIRMED PROCESSING SHIPPED DELIVERED CANCELLED"`
	TrackingNumber *string `json:"trackingNumber" validate:"omitempty,max=100"`
	DeliveryMethod *string `json:"deliveryMethod" validate:"omitempty,max=50"`
}

// ConsentItem tek bir yasal metin onayı.
type ConsentItem struct {
	DocumentType    string `json:"documentType" validate:"required,oneof=terms privacy distance_sales kvkk"`
	DocumentVersion string `json:"documentVersion" validate:"required,max=20"`
}

// RecordConsentsRequest POST /api/orders/:orderId/consents gövdesi.
type RecordConsentsRequest struct {
	Consents []ConsentItem `json:"consents" validate:"required,min=1,dive"`
}

// OrderResponse siparişi, takip ekranındaki doğrusal ilerleme adımıyla birlikte döndürür.
type OrderResponse struct {
	*models.Order
	ProgressStep int `json:"progressStep"` // PENDING=0 ... DELIVERED=4, CANCELLED=-1
}

// NewOrderResponse siparişten yanıt üretir.
func NewOrderResponse(order *models.Order) OrderResponse {
	return OrderResponse{Order: order, ProgressStep: order.Status.Step()}
}
