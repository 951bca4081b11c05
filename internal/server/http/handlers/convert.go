package handlers

import (
	"github.com/polkiloo/autoservice/internal/domain/model"
	"github.com/polkiloo/autoservice/internal/server/http/dto"
	"github.com/polkiloo/autoservice/internal/usecase"
)

func toOrderResponse(order *model.Order) dto.OrderResponse {
	images := make([]string, 0, len(order.Images))
	for _, img := range order.Images {
		images = append(images, img.Path)
	}
	return dto.OrderResponse{
		ID:                   order.ID,
		VehicleID:            order.VehicleID,
		ClientID:             order.ClientID,
		DepartmentID:         order.DepartmentID,
		ClientDiagnose:       order.ClientDiagnose,
		Status:               int(order.Status),
		StartDate:            order.StartDate,
		EndDate:              order.EndDate,
		SendDoneNotification: order.SendDoneNotification,
		Images:               images,
	}
}

func toEstimateInput(req dto.EstimateRequest) usecase.EstimateInput {
	in := usecase.EstimateInput{
		Totals: model.Totals{
			Parts:    req.TotalPartsPrice,
			Services: req.TotalServicesPrice,
			Total:    req.TotalPrice,
		},
		Parts:    make([]model.EstimatePart, 0, len(req.Parts)),
		Services: make([]model.EstimateService, 0, len(req.Services)),
	}
	for _, p := range req.Parts {
		in.Parts = append(in.Parts, model.EstimatePart{
			ID:             p.ID,
			Name:           p.Name,
			EAN:            p.EAN,
			Amount:         p.Amount,
			GrossUnitPrice: p.GrossUnitPrice,
			TotalPrice:     p.TotalPrice,
			Source:         p.Source,
		})
	}
	for _, s := range req.Services {
		in.Services = append(in.Services, model.EstimateService{
			ID:             s.ID,
			Name:           s.Name,
			Amount:         s.Amount,
			GrossUnitPrice: s.GrossUnitPrice,
			TotalPrice:     s.TotalPrice,
			Source:         s.Source,
		})
	}
	return in
}

func toEstimateResponse(code string, e *model.Estimate) dto.EstimateResponse {
	resp := dto.EstimateResponse{
		Code:               code,
		ID:                 e.ID,
		OrderID:            e.OrderID,
		TotalPartsPrice:    e.TotalPartsPrice,
		TotalServicesPrice: e.TotalServicesPrice,
		TotalPrice:         e.TotalPrice,
		Parts:              make([]dto.EstimatePart, 0, len(e.Parts)),
		Services:           make([]dto.EstimateService, 0, len(e.Services)),
		UpdatedAt:          e.UpdatedAt,
	}
	for _, p := range e.Parts {
		resp.Parts = append(resp.Parts, dto.EstimatePart{
			ID:             p.ID,
			Name:           p.Name,
			EAN:            p.EAN,
			Amount:         p.Amount,
			GrossUnitPrice: p.GrossUnitPrice,
			TotalPrice:     p.TotalPrice,
			Source:         p.Source,
		})
	}
	for _, s := range e.Services {
		resp.Services = append(resp.Services, dto.EstimateService{
			ID:             s.ID,
			Name:           s.Name,
			Amount:         s.Amount,
			GrossUnitPrice: s.GrossUnitPrice,
			TotalPrice:     s.TotalPrice,
			Source:         s.Source,
		})
	}
	return resp
}

func toComplaintResponse(code string, c *model.Complaint) dto.ComplaintResponse {
	return dto.ComplaintResponse{
		Code:              code,
		ID:                c.ID,
		OrderID:           c.OrderID,
		Status:            string(c.Status),
		Description:       c.Description,
		SubmitDescription: c.SubmitDescription,
		Date:              c.Date,
	}
}

// toDemand reports false when the demand or one of its items carries no status.
func toDemand(req dto.DemandRequest) (model.Demand, bool) {
	if req.Status == nil {
		return model.Demand{}, false
	}
	demand := model.Demand{
		RequesterID:  req.RequesterID,
		DepartmentID: req.DepartmentID,
		Date:         req.Date,
		Status:       model.DemandStatus(*req.Status),
		Items:        make([]model.DemandItem, 0, len(req.Items)),
	}
	for _, item := range req.Items {
		if item.Status == nil {
			return model.Demand{}, false
		}
		demand.Items = append(demand.Items, model.DemandItem{
			ID:             item.ID,
			Name:           item.Name,
			EAN:            item.EAN,
			GrossUnitPrice: item.GrossUnitPrice,
			Amount:         item.Amount,
			Status:         model.DemandItemStatus(*item.Status),
		})
	}
	return demand, true
}

func toDemandResponse(code string, d *model.Demand) dto.DemandResponse {
	resp := dto.DemandResponse{
		Code:         code,
		ID:           d.ID,
		RequesterID:  d.RequesterID,
		DepartmentID: d.DepartmentID,
		Date:         d.Date,
		Status:       int(d.Status),
		FulfilledAt:  d.FulfilledAt,
		Items:        make([]dto.DemandItem, 0, len(d.Items)),
	}
	for _, item := range d.Items {
		status := int(item.Status)
		resp.Items = append(resp.Items, dto.DemandItem{
			ID:             item.ID,
			Name:           item.Name,
			EAN:            item.EAN,
			GrossUnitPrice: item.GrossUnitPrice,
			Amount:         item.Amount,
			Status:         &status,
			MergedAt:       item.MergedAt,
		})
	}
	return resp
}

func toStockItem(item model.StockItem) dto.StockItem {
	return dto.StockItem{
		ID:           item.ID,
		DepartmentID: item.DepartmentID,
		EAN:          item.EAN,
		Name:         item.Name,
		Amount:       item.Amount,
		UnitPrice:    item.UnitPrice,
		BinLocation:  item.BinLocation,
		UpdatedAt:    item.UpdatedAt,
	}
}
