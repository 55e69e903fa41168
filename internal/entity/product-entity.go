package entity

type ProductStatus string

const (
	ProductAvailable   ProductStatus = "AVAILABLE"
	ProductUnavailable ProductStatus = "UNAVAILABLE"
	ProductHidden      ProductStatus = "HIDDEN"
)

func (s ProductStatus) IsValid() bool {
	switch s {
	case ProductAvailable, ProductUnavailable, ProductHidden:
		return true
	}
	return false
}

type Product struct {
	ID          int64         `json:"id"`
	ShopID      int64         `json:"shopId"`
	Name        string        `json:"name"`
	Description string        `json:"description,omitempty"`
	Price       float64       `json:"price"`
	Quantity    int           `json:"quantity"`
	ImageURL    string        `json:"imageUrl,omitempty"`
	CategoryID  int64         `json:"categoryId,omitempty"`
	Status      ProductStatus `json:"status"`
}
