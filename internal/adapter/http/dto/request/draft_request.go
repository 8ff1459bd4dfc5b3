package request

// AddDraftItemRequest adds one unit of a catalog product to the active
// draft. Name and price are snapshotted server-side from the catalog cache.
type AddDraftItemRequest struct {
	ProductID string `json:"product_id" binding:"required"`
}

type DraftQuantityRequest struct {
	ProductID string `json:"product_id" binding:"required"`
	Quantity  int    `json:"quantity"`
}

type DraftMetadataRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}
