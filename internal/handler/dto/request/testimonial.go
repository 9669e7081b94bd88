package request

type CreateTestimonialRequest struct {
	Name  string `json:"name"`
	Role  string `json:"role"`
	Story string `json:"story"`
}
