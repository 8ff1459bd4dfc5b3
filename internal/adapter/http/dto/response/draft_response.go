package response

import (
	"garden_manager/internal/domain/entities"
	"garden_manager/pkg"
)

type DraftResponse struct {
	Name         string                  `json:"name"`
	Description  string                  `json:"description"`
	Items        []OrderLineItemResponse `json:"items"`
	Total        float64                 `json:"total"`
	TotalDisplay string                  `json:"total_display"`
}

func FromDraft(d entities.OrderDraft) DraftResponse {
	total := d.Total()
	return DraftResponse{
		Name:         d.Name,
		Description:  d.Description,
		Items:        fromLineItems(d.Items),
		Total:        total.InexactFloat64(),
		TotalDisplay: pkg.FormatPrice(total),
	}
}
