package handler

type createProductRequest struct {
	Ref   string  `json:"ref"   form:"ref"   validate:"required"`
	Name  string  `json:"name"  form:"name"  validate:"required"`
	Price float64 `json:"price" form:"price" validate:"gte=0"`
	Stock int     `json:"stock" form:"stock" validate:"gte=0"`
}

// updateProductRequest has no ref: the path parameter identifies the product
// and the ref is immutable.
type updateProductRequest struct {
	Name  string  `json:"name"  form:"name"  validate:"required"`
	Price float64 `json:"price" form:"price" validate:"gte=0"`
	Stock int     `json:"stock" form:"stock" validate:"gte=0"`
}
