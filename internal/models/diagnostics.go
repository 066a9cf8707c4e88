package models

// Diagnostics summarises record counts and collaborator health.
type Diagnostics struct {
	Stations           int64  `json:"stations"`
	PrepItems          int64  `json:"prep_items"`
	Recipes            int64  `json:"recipes"`
	SubmittedPrepItems int64  `json:"submitted_prep_items"`
	Users              int64  `json:"users"`
	DatabaseStatus     string `json:"database_status"`
	CatalogOnline      bool   `json:"catalog_online"`
}
