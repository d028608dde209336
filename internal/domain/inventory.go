package domain

// Vendor is a supplier. Names are not unique; two vendors may share one.
type Vendor struct {
	ID   int64  `json:"id" db:"id"`
	Name string `json:"name" db:"name"`
}

// Product belongs to exactly one vendor. The store cascades vendor deletes
// onto products, so a product never outlives its vendor.
type Product struct {
	ID       int64   `json:"id" db:"id"`
	VendorID int64   `json:"vendor_id" db:"vendor_id"`
	Name     string  `json:"name" db:"name"`
	Category *string `json:"category" db:"category"`
	Quantity int     `json:"quantity" db:"quantity"`
	Price    float64 `json:"price" db:"price"`
	Contains int     `json:"contains" db:"contains"`
	Box      int     `json:"box" db:"box"`
}

// ProductWithVendor is the public listing row: a product joined to the name
// of the vendor that owns it.
type ProductWithVendor struct {
	Product
	VendorName string `json:"vendor_name" db:"vendor_name"`
}
