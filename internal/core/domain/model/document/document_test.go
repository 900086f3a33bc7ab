package document_test

import (
	"testing"
	"time"

	"docflow/internal/core/domain/model/actor"
	"docflow/internal/core/domain/model/docpackage"
	"docflow/internal/core/domain/model/document"
	"docflow/internal/core/domain/model/kernel"
	"docflow/internal/core/domain/model/status"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPackage(t *testing.T, current status.Status) *docpackage.Package {
	t.Helper()
	pkg, err := docpackage.RestorePackage(
		kernel.NewUUID(), docpackage.Act, current,
		kernel.NewUUID(), kernel.NewUUID(), "2024-03", time.Now(), time.Now(),
	)
	require.NoError(t, err)
	return pkg
}

func slots(templates []document.Template) []string {
	result := make([]string, 0, len(templates))
	for _, tpl := range templates {
		result = append(result, tpl.Slot)
	}
	return result
}

func TestRequirement_MissingUpload(t *testing.T) {
	assert.True(t, document.Requirement{IsRequired: true}.MissingUpload())
	assert.False(t, document.Requirement{IsRequired: true, IsUploaded: true}.MissingUpload())
	assert.False(t, document.Requirement{IsRequired: false}.MissingUpload())
}

func TestRequirement_MissingSignatureBy(t *testing.T) {
	signed := time.Now()
	needsBoth := map[actor.Role]bool{actor.Operator: true, actor.Counterparty: true}

	testCases := []struct {
		name     string
		req      document.Requirement
		role     actor.Role
		expected bool
	}{
		{
			name:     "required unsigned",
			req:      document.Requirement{IsRequired: true, IsUploaded: true, NeedsSignature: needsBoth},
			role:     actor.Counterparty,
			expected: true,
		},
		{
			name: "signed by role",
			req: document.Requirement{
				IsRequired: true, IsUploaded: true, NeedsSignature: needsBoth,
				SignedAt: map[actor.Role]*time.Time{actor.Counterparty: &signed},
			},
			role:     actor.Counterparty,
			expected: false,
		},
		{
			name: "signed by the other role only",
			req: document.Requirement{
				IsRequired: true, IsUploaded: true, NeedsSignature: needsBoth,
				SignedAt: map[actor.Role]*time.Time{actor.Counterparty: &signed},
			},
			role:     actor.Operator,
			expected: true,
		},
		{
			name:     "role does not sign",
			req:      document.Requirement{IsRequired: true, IsUploaded: true, NeedsSignature: map[actor.Role]bool{actor.Counterparty: true}},
			role:     actor.Operator,
			expected: false,
		},
		{
			name:     "optional and not uploaded",
			req:      document.Requirement{NeedsSignature: needsBoth},
			role:     actor.Operator,
			expected: false,
		},
		{
			name:     "optional but uploaded",
			req:      document.Requirement{IsUploaded: true, NeedsSignature: needsBoth},
			role:     actor.Operator,
			expected: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.req.MissingSignatureBy(tc.role))
		})
	}
}

func TestActCatalog(t *testing.T) {
	t.Run("should hide bill in Draft when not uploaded", func(t *testing.T) {
		templates := document.ActCatalog(newPackage(t, status.Draft), document.LegalEntity, nil)

		assert.Equal(t, []string{document.SlotAct, document.SlotActEditable}, slots(templates))
	})

	t.Run("should show required bill in Approval for legal entity", func(t *testing.T) {
		templates := document.ActCatalog(newPackage(t, status.Approval), document.LegalEntity, nil)

		require.Len(t, templates, 3)
		assert.Equal(t, document.SlotBill, templates[2].Slot)
		assert.True(t, templates[2].IsRequired)
		assert.True(t, templates[2].NeedsSignature[actor.Counterparty])
		assert.False(t, templates[2].NeedsSignature[actor.Operator])
	})

	t.Run("should not require bill from individuals", func(t *testing.T) {
		templates := document.ActCatalog(newPackage(t, status.Approval), document.Individual, nil)

		require.Len(t, templates, 3)
		assert.False(t, templates[2].IsRequired)
	})

	t.Run("should show uploaded bill in any status", func(t *testing.T) {
		uploaded := []document.Uploaded{{ID: kernel.NewUUID(), Slot: document.SlotBill}}

		templates := document.ActCatalog(newPackage(t, status.Verification), document.LegalEntity, uploaded)

		assert.Contains(t, slots(templates), document.SlotBill)
	})
}

func TestFill(t *testing.T) {
	signed := time.Now()
	docID := kernel.NewUUID()
	templates := document.ActCatalog(newPackage(t, status.Draft), document.LegalEntity, nil)
	uploaded := []document.Uploaded{{
		ID:       docID,
		Slot:     document.SlotAct,
		SignedAt: map[actor.Role]*time.Time{actor.Operator: &signed},
	}}

	requirements := document.Fill(templates, uploaded)

	require.Len(t, requirements, 2)
	view := requirements[0]
	assert.Equal(t, "Act", view.Title)
	assert.True(t, view.IsUploaded)
	require.NotNil(t, view.DocumentID)
	assert.True(t, view.DocumentID.IsEqual(docID))
	assert.False(t, view.MissingSignatureBy(actor.Operator))
	assert.True(t, view.MissingSignatureBy(actor.Counterparty))

	editable := requirements[1]
	assert.False(t, editable.IsUploaded)
	assert.Nil(t, editable.DocumentID)
	assert.False(t, editable.MissingUpload())
}

func TestCatalogFor(t *testing.T) {
	_, ok := document.CatalogFor(docpackage.Act)
	assert.True(t, ok)

	_, ok = document.CatalogFor("XYZ")
	assert.False(t, ok)
}
