package handler

type createProductRequest struct {
	Name        string `json:"name"        validate:"required"`
	Description string `json:"description" validate:"required"`
	Price       int64  `json:"price"       validate:"required,gt=0"`
	ImageURL    string `json:"image_url"   validate:"required"`
	Stock       int64  `json:"stock"       validate:"gte=0"`
	CategoryID  int64  `json:"category"    validate:"required"`
}

type productResponse struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Slug        string  `json:"slug"`
	Description string  `json:"description"`
	Price       int64   `json:"price"`
	ImageURL    string  `json:"image_url"`
	Stock       int64   `json:"stock"`
	CategoryID  int64   `json:"category_id"`
	SupplierID  int64   `json:"supplier_id"`
	Rating      float64 `json:"rating"`
}
