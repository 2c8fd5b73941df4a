// Package detect classifies decoded exports into record categories.
//
// Exporters do not declare a schema and emit arrays, id-keyed objects or wrapped objects
// interchangeably, so classification is a best-effort heuristic over the first sample
// record. Detect never fails: anything it cannot place is reported as models.Unknown.
//
// # Samples
//
// Samples lists the candidate records of a payload. A sequence is used as-is. An object
// contributes its values in SortedKeys order, which puts canonical integer keys first
// (ascending by value) and the remaining keys after them (lexically). The first sample
// decides; it must be an object for any structural rule to apply.
//
// # Rules
//
// Rules are evaluated in order and the first match wins:
//
//	order  category    the first sample has
//	1      echoes      sonata, stats or mainStat
//	2      characters  weaponId, equippedWeapon or element; or both name and level
//	3      weapons     a rank key, plus name or weaponType
//	4      items       a quantity or count key (reported from the resources rule)
//
// Echoes are checked first so echo records that carry name and level are not taken
// for characters. The resources rule exists only inside this package; Detect reports it
// as models.Items.
//
// # Filenames
//
// When no rule matches, FilenameRules compare the lowercased filename against the
// fragments written by the inventory camera exporter:
//
//	characters_wuwainventorykamera  characters
//	weapons_wuwainventorykamera     weapons
//	echoes_wuwainventorykamera      echoes
//	inventory_wuwainventorykamera   items
//
// Hint applies the looser HintRules (char, weap, echo, invent). It is a separate call
// because callers consult it only after Detect has returned models.Unknown.
//
// # Usage
//
//	cat := detect.Detect(payload, filename)
//	if cat == models.Unknown {
//	    cat = detect.Hint(filename)
//	}
package detect
