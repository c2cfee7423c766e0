package structs

// Settings is the store-wide singleton document, key "main".
type Settings struct {
	StoreName           string `json:"storeName"`
	StoreNameFr         string `json:"storeNameFr"`
	OutOfStockMessage   string `json:"outOfStockMessage"`
	OutOfStockMessageFr string `json:"outOfStockMessageFr"`
}

// UpdateSettingsRequest merges over the stored document: only non-nil
// fields overwrite.
type UpdateSettingsRequest struct {
	StoreName           *string `json:"storeName"`
	StoreNameFr         *string `json:"storeNameFr"`
	OutOfStockMessage   *string `json:"outOfStockMessage"`
	OutOfStockMessageFr *string `json:"outOfStockMessageFr"`
}

// DefaultSettings returns the values served when the settings document has
// never been written.
func DefaultSettings() Settings {
	return Settings{
		StoreName:           "Ecom-Shop",
		StoreNameFr:         "Ecom-Shop",
		OutOfStockMessage:   "نفذت الكمية، سنتواصل معك قريبا عند توفره من جديد",
		OutOfStockMessageFr: "Rupture de stock, nous vous contacterons bientôt",
	}
}
