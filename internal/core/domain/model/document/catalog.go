package document

import (
	"time"

	"docflow/internal/core/domain/model/actor"
	"docflow/internal/core/domain/model/docpackage"
	"docflow/internal/core/domain/model/kernel"
	"docflow/internal/core/domain/model/status"
)

// OrganizationForm of a counterparty; individuals are not asked for an invoice.
type OrganizationForm string

const (
	LegalEntity OrganizationForm = "LEGAL"
	Individual  OrganizationForm = "INDIVIDUAL"
)

// Template describes a document slot a package type expects.
type Template struct {
	Slot           string
	Title          string
	Extension      string
	IsRequired     bool
	NeedsSignature map[actor.Role]bool
}

// Uploaded is a stored document together with the signatures collected on it.
type Uploaded struct {
	ID       kernel.UUID
	Slot     string
	SignedAt map[actor.Role]*time.Time
}

// Catalog lists the slots of a package given its counterparty form and what is
// already uploaded.
type Catalog func(pkg *docpackage.Package, form OrganizationForm, uploaded []Uploaded) []Template

const (
	SlotAct         = "view"
	SlotActEditable = "editable"
	SlotBill        = "bill"
)

var catalogs = map[docpackage.Type]Catalog{
	docpackage.Act: ActCatalog,
}

// CatalogFor returns the catalog of a package type.
func CatalogFor(t docpackage.Type) (Catalog, bool) {
	c, ok := catalogs[t]
	return c, ok
}

// ActCatalog is the closing-documents set: the act signed by both parties, an
// optional editable copy, and the counterparty's invoice. The invoice is shown
// in Approval or once uploaded, and is required unless the counterparty is an individual.
func ActCatalog(pkg *docpackage.Package, form OrganizationForm, uploaded []Uploaded) []Template {
	templates := []Template{
		{
			Slot:       SlotAct,
			Title:      "Act",
			Extension:  "pdf",
			IsRequired: true,
			NeedsSignature: map[actor.Role]bool{
				actor.Operator:     true,
				actor.Counterparty: true,
			},
		},
		{
			Slot:           SlotActEditable,
			Title:          "Act (editable)",
			Extension:      "*",
			IsRequired:     false,
			NeedsSignature: map[actor.Role]bool{},
		},
	}

	if pkg.Status() == status.Approval || hasSlot(uploaded, SlotBill) {
		templates = append(templates, Template{
			Slot:       SlotBill,
			Title:      "Invoice",
			Extension:  "pdf",
			IsRequired: form != Individual,
			NeedsSignature: map[actor.Role]bool{
				actor.Counterparty: true,
			},
		})
	}

	return templates
}

// Fill joins templates with the uploaded documents, one requirement per template.
func Fill(templates []Template, uploaded []Uploaded) []Requirement {
	bySlot := make(map[string]Uploaded, len(uploaded))
	for _, u := range uploaded {
		bySlot[u.Slot] = u
	}

	requirements := make([]Requirement, 0, len(templates))
	for _, tpl := range templates {
		req := Requirement{
			Slot:           tpl.Slot,
			Title:          tpl.Title,
			IsRequired:     tpl.IsRequired,
			NeedsSignature: tpl.NeedsSignature,
			SignedAt:       map[actor.Role]*time.Time{},
		}
		if u, ok := bySlot[tpl.Slot]; ok {
			id := u.ID
			req.DocumentID = &id
			req.IsUploaded = true
			req.SignedAt = u.SignedAt
		}
		requirements = append(requirements, req)
	}
	return requirements
}

func hasSlot(uploaded []Uploaded, slot string) bool {
	for _, u := range uploaded {
		if u.Slot == slot {
			return true
		}
	}
	return false
}
