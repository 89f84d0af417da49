package service

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/nixjke/baz-car/internal/catalog"
	"github.com/nixjke/baz-car/internal/domain"
)

// The storefront reaches the booking pipeline through three forms with
// different field names: the full form with separate pickup/return inputs,
// a variant with a single range picker, and the quick-add modal. Each gets
// an adapter here so everything downstream sees one canonical draft.

const dateLayout = "2006-01-02"

// FullFormInput mirrors the main booking form.
type FullFormInput struct {
	VehicleID        string          `json:"vehicleId"`
	PickupDate       string          `json:"pickupDate"`
	ReturnDate       string          `json:"returnDate"`
	Name             string          `json:"name"`
	Phone            string          `json:"phone"`
	Email            string          `json:"email"`
	DeliveryOptionID string          `json:"deliveryOption"`
	Services         map[string]bool `json:"additionalServices"`
}

// RangeFormInput mirrors the variant with a single date-range picker.
type RangeFormInput struct {
	VehicleID        string   `json:"vehicleId"`
	Range            []string `json:"rentPeriod"` // [start, end]
	ContactName      string   `json:"contactName"`
	ContactPhone     string   `json:"contactPhone"`
	ContactEmail     string   `json:"contactEmail"`
	DeliveryOptionID string   `json:"deliveryOptionId"`
	AddOnIDs         []string `json:"addOnIds"`
}

// QuickAddInput mirrors the quick-add modal on vehicle cards.
type QuickAddInput struct {
	VehicleID string `json:"vehicleId"`
	From      string `json:"from"`
	To        string `json:"to"`
	Name      string `json:"name"`
	Phone     string `json:"phone"`
}

// DraftBuilder normalizes flow-specific inputs into a ReservationDraft,
// filling in the catalog's default delivery option when a flow omits one.
type DraftBuilder struct {
	services *catalog.ServiceCatalog
}

func NewDraftBuilder(services *catalog.ServiceCatalog) *DraftBuilder {
	return &DraftBuilder{services: services}
}

func (b *DraftBuilder) FromFullForm(in FullFormInput) (domain.ReservationDraft, error) {
	dates, err := parseRange(in.PickupDate, in.ReturnDate)
	if err != nil {
		return domain.ReservationDraft{}, err
	}

	var addOnIDs []string
	for id, selected := range in.Services {
		if selected {
			addOnIDs = append(addOnIDs, id)
		}
	}

	return domain.ReservationDraft{
		VehicleID:        in.VehicleID,
		Dates:            dates,
		ContactName:      in.Name,
		ContactPhone:     in.Phone,
		ContactEmail:     in.Email,
		DeliveryOptionID: b.deliveryOrDefault(in.DeliveryOptionID),
		AddOnIDs:         domain.NormalizeAddOnIDs(addOnIDs),
	}, nil
}

func (b *DraftBuilder) FromRangeForm(in RangeFormInput) (domain.ReservationDraft, error) {
	var start, end string
	if len(in.Range) > 0 {
		start = in.Range[0]
	}
	if len(in.Range) > 1 {
		end = in.Range[1]
	}
	dates, err := parseRange(start, end)
	if err != nil {
		return domain.ReservationDraft{}, err
	}

	return domain.ReservationDraft{
		VehicleID:        in.VehicleID,
		Dates:            dates,
		ContactName:      in.ContactName,
		ContactPhone:     in.ContactPhone,
		ContactEmail:     in.ContactEmail,
		DeliveryOptionID: b.deliveryOrDefault(in.DeliveryOptionID),
		AddOnIDs:         domain.NormalizeAddOnIDs(in.AddOnIDs),
	}, nil
}

func (b *DraftBuilder) FromQuickAdd(in QuickAddInput) (domain.ReservationDraft, error) {
	dates, err := parseRange(in.From, in.To)
	if err != nil {
		return domain.ReservationDraft{}, err
	}

	return domain.ReservationDraft{
		VehicleID:        in.VehicleID,
		Dates:            dates,
		ContactName:      in.Name,
		ContactPhone:     in.Phone,
		DeliveryOptionID: b.services.DefaultDeliveryID(),
	}, nil
}

// FromFlow dispatches a raw form payload to the adapter named by the flow
// tag ("full", "range" or "quick").
func (b *DraftBuilder) FromFlow(flow string, form json.RawMessage) (domain.ReservationDraft, error) {
	switch flow {
	case "full":
		var in FullFormInput
		if err := json.Unmarshal(form, &in); err != nil {
			return domain.ReservationDraft{}, fmt.Errorf("invalid full form payload: %w", err)
		}
		return b.FromFullForm(in)
	case "range":
		var in RangeFormInput
		if err := json.Unmarshal(form, &in); err != nil {
			return domain.ReservationDraft{}, fmt.Errorf("invalid range form payload: %w", err)
		}
		return b.FromRangeForm(in)
	case "quick":
		var in QuickAddInput
		if err := json.Unmarshal(form, &in); err != nil {
			return domain.ReservationDraft{}, fmt.Errorf("invalid quick-add payload: %w", err)
		}
		return b.FromQuickAdd(in)
	default:
		return domain.ReservationDraft{}, fmt.Errorf("unknown form flow %q", flow)
	}
}

func (b *DraftBuilder) deliveryOrDefault(id string) string {
	if id == "" {
		return b.services.DefaultDeliveryID()
	}
	return id
}

// parseRange converts form date strings into a DateRange. Empty strings are
// allowed (an incomplete draft), malformed ones are not.
func parseRange(startStr, endStr string) (domain.DateRange, error) {
	var dates domain.DateRange
	if startStr != "" {
		start, err := time.Parse(dateLayout, startStr)
		if err != nil {
			return domain.DateRange{}, fmt.Errorf("invalid start date %q: %w", startStr, err)
		}
		dates.Start = start
	}
	if endStr != "" {
		end, err := time.Parse(dateLayout, endStr)
		if err != nil {
			return domain.DateRange{}, fmt.Errorf("invalid end date %q: %w", endStr, err)
		}
		dates.End = end
	}
	return dates, nil
}
