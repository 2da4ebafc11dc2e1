package request

import "strings"

type SelectVariantRequest struct {
	VariantID string `json:"variant_id" binding:"required"`
}

type SelectSubVariantRequest struct {
	SubVariantID string `json:"sub_variant_id" binding:"required"`
}

// SelectAddressRequest carries the opaque address record chosen from the
// externally owned address book.
type SelectAddressRequest struct {
	AddressID string `json:"address_id" binding:"required"`
	Name      string `json:"name,omitempty"`
	Detail    string `json:"detail,omitempty"`
}

type SetQuantityRequest struct {
	Quantity int `json:"quantity" binding:"required"`
}

type UpdateLocaleRequest struct {
	Locale string `json:"locale" binding:"required"`
}

func (r UpdateLocaleRequest) GetLocale() string {
	return strings.ToLower(strings.TrimSpace(r.Locale))
}
