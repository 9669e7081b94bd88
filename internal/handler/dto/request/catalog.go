package request

type CreateServiceRequest struct {
	Name  string `json:"name"`
	Price string `json:"price"`
	Desc  string `json:"desc"`
}

// UpdateServiceRequest fields left empty keep their stored value.
type UpdateServiceRequest struct {
	Name  string `json:"name"`
	Price string `json:"price"`
	Desc  string `json:"desc"`
}

type CreateGalleryItemRequest struct {
	URL string `json:"url"`
}

type UpdateGalleryItemRequest struct {
	URL string `json:"url"`
}
