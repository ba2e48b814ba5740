package request

type UpdateOrderStatusRequest struct {
	Status         string  `json:"status" binding:"required"`
	TrackingNumber *string `json:"tracking_number,omitempty"`
	TrackingURL    *string `json:"tracking_url,omitempty"`
}
