package domain

import "time"

// AuditFields holds standard audit information for domain entities.
type AuditFields struct {
	CreatedAt     time.Time `json:"createdAt"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
}

// DeleteItemResponse reports the outcome of a delete mutation.
// A missing item is reported with Success=false rather than an error.
type DeleteItemResponse struct {
	Success       bool    `json:"success"`
	Message       string  `json:"message"`
	DeletedItemID *string `json:"deletedItemId"`
}
