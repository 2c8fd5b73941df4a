package normalize

import (
	"inventory-viewer/core/fields"
	"inventory-viewer/feature/inventory/detect"
	"inventory-viewer/feature/inventory/mapping"
	"inventory-viewer/feature/inventory/models"
	"inventory-viewer/feature/inventory/store"
)

// Document is one parsed export file.
type Document struct {
	Name    string
	Payload any
	// Category forces the category; empty means detect it.
	Category models.Category
}

// Result reports what happened to one document.
type Result struct {
	Name     string          `json:"name"`
	Category models.Category `json:"category"`
	Added    int             `json:"added"`
	Rescued  bool            `json:"rescued,omitempty"`
}

// Rescue reports whether an undetected payload looks like an inventory list:
// more than half of its sample records carry a quantity or count field.
func Rescue(payload any) bool {
	samples := detect.Samples(payload)
	if len(samples) == 0 {
		return false
	}
	hits := 0
	for _, s := range samples {
		rec, ok := s.(map[string]any)
		if !ok {
			continue
		}
		if _, ok := fields.Get(rec, "quantity", "count"); ok {
			hits++
		}
	}
	return hits*2 > len(samples)
}

// Classify picks the category of a document: the forced category, the detector verdict,
// the loose filename hint, then the inventory rescue.
func Classify(doc Document) (models.Category, bool) {
	if doc.Category != "" {
		return doc.Category, false
	}
	if c := detect.Detect(doc.Payload, doc.Name); c != models.Unknown {
		return c, false
	}
	if c := detect.Hint(doc.Name); c != models.Unknown {
		return c, false
	}
	if Rescue(doc.Payload) {
		return models.Items, true
	}
	return models.Unknown, false
}

// Ingest normalizes docs in order and appends the records to st.
// Documents that cannot be classified are dropped with Added == 0.
func Ingest(st *store.Store, reg *mapping.Registry, docs []Document) []Result {
	results := make([]Result, 0, len(docs))
	for _, doc := range docs {
		cat, rescued := Classify(doc)
		res := Result{Name: doc.Name, Category: cat, Rescued: rescued}
		switch cat {
		case models.Characters:
			res.Added = st.AddCharacters(Characters(doc.Payload, reg))
		case models.Weapons:
			res.Added = st.AddWeapons(Weapons(doc.Payload, reg))
		case models.Echoes:
			res.Added = st.AddEchoes(Echoes(doc.Payload, reg))
		case models.Items, models.Resources:
			res.Category = models.Items
			res.Added = st.AddItems(Items(doc.Payload, reg))
		}
		results = append(results, res)
	}
	return results
}
