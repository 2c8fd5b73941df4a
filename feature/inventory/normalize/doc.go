// Package normalize turns raw export payloads into canonical inventory records.
//
// Each category transform first flattens the payload shape into entries, then extracts
// fields through their key synonyms and resolves ids through the mapping registry.
// Unresolvable data degrades to raw ids; nothing in this package returns an error.
//
// # Payload Shapes
//
// Entries accepts the shapes seen in the wild:
//
//	shape                 example                           accepted by
//	sequence              [ {...}, {...} ]                  every category
//	id-keyed object       { "1507": {...}, "1207": {...} }  every category
//	single-key-wrapped    [ { "21050066": {...} } ]         weapons only
//
// Keyed entries remember their object key. Elements that are not objects are skipped,
// and any other payload yields no entries.
//
// # Ids and Names
//
// Character, echo and item ids come from the id synonyms first and fall back to a numeric
// object key. Weapon ids prefer the object key, because wrapped weapon exports key each
// record by its template id. A string "id" field is kept verbatim as a slug id.
//
// Names resolve the id through the registry. On a miss the record's own name is tried
// (exporters sometimes put an id there), then the raw id is shown.
//
// # Classification
//
// Classify picks a category in this order: the category forced by the caller, the
// detect rules, the loose filename hint, then the inventory rescue. Rescue accepts an
// otherwise unknown payload as items when more than half of its samples carry a quantity
// or count field.
//
// # Usage
//
//	results := normalize.Ingest(st, reg, []normalize.Document{
//	    {Name: "characters.json", Payload: payload},
//	})
package normalize
